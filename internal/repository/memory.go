package repository

import (
	"sync"
	"time"

	"groomstation/internal/db"
	apperr "groomstation/internal/errors"
)

// MemoryAvailabilityRepository keeps the slot pools in process memory with
// one mutex per (station, date) key, so contention on one pool never blocks
// another. Used by tests and embedded deployments.
type MemoryAvailabilityRepository struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	slots map[string][]string
	holds map[string]time.Time
}

func NewMemoryAvailabilityRepository() *MemoryAvailabilityRepository {
	return &MemoryAvailabilityRepository{
		locks: make(map[string]*sync.Mutex),
		slots: make(map[string][]string),
		holds: make(map[string]time.Time),
	}
}

func slotKey(stationID, date string) string {
	return stationID + "|" + date
}

func (r *MemoryAvailabilityRepository) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

func (r *MemoryAvailabilityRepository) ListSlots(stationID, date string) ([]string, error) {
	key := slotKey(stationID, date)
	l := r.lockFor(key)
	l.Lock()
	defer l.Unlock()
	return append([]string{}, r.slots[key]...), nil
}

func (r *MemoryAvailabilityRepository) PublishSlots(stationID, date string, times []string) error {
	key := slotKey(stationID, date)
	l := r.lockFor(key)
	l.Lock()
	defer l.Unlock()
	r.slots[key] = append([]string{}, times...)
	return nil
}

func (r *MemoryAvailabilityRepository) ReserveSlot(stationID, date, timeLabel string) error {
	key := slotKey(stationID, date)
	l := r.lockFor(key)
	l.Lock()
	defer l.Unlock()

	remaining, found := removeLabel(r.slots[key], timeLabel)
	if !found {
		return apperr.ErrSlotUnavailable
	}
	r.slots[key] = remaining
	r.holds[key+"|"+timeLabel] = time.Now().UTC()
	return nil
}

func (r *MemoryAvailabilityRepository) ReleaseSlot(stationID, date, timeLabel string) error {
	key := slotKey(stationID, date)
	l := r.lockFor(key)
	l.Lock()
	defer l.Unlock()

	if updated, changed := insertLabel(r.slots[key], timeLabel); changed {
		r.slots[key] = updated
	}
	return nil
}

func (r *MemoryAvailabilityRepository) ClearHold(stationID, date, timeLabel string) error {
	key := slotKey(stationID, date)
	l := r.lockFor(key)
	l.Lock()
	defer l.Unlock()
	delete(r.holds, key+"|"+timeLabel)
	return nil
}

// HeldSlots reports the triples currently held but not yet backed by a
// persisted booking. Test helper.
func (r *MemoryAvailabilityRepository) HeldSlots() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.holds)
}

type MemoryStationRepository struct {
	mu       sync.RWMutex
	stations map[string]*db.Station
	order    []string
}

func NewMemoryStationRepository() *MemoryStationRepository {
	return &MemoryStationRepository{stations: make(map[string]*db.Station)}
}

// SaveStation inserts or replaces a station record.
func (r *MemoryStationRepository) SaveStation(st *db.Station) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stations[st.ID]; !ok {
		r.order = append(r.order, st.ID)
	}
	r.stations[st.ID] = st
}

func (r *MemoryStationRepository) ListStations() ([]db.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stations := make([]db.Station, 0, len(r.order))
	for _, id := range r.order {
		stations = append(stations, *r.stations[id])
	}
	return stations, nil
}

func (r *MemoryStationRepository) GetStation(id string) (*db.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stations[id], nil
}

func (r *MemoryStationRepository) ListStationsByOwner(ownerID string) ([]db.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var stations []db.Station
	for _, id := range r.order {
		if r.stations[id].OwnerID == ownerID {
			stations = append(stations, *r.stations[id])
		}
	}
	return stations, nil
}

type MemoryBookingRepository struct {
	mu         sync.Mutex
	byID       map[string]*db.Booking
	byCustomer map[string][]string
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		byID:       make(map[string]*db.Booking),
		byCustomer: make(map[string][]string),
	}
}

func (r *MemoryBookingRepository) CreateBooking(b *db.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *b
	stored.Services = append([]db.BookedService{}, b.Services...)
	r.byID[b.ID] = &stored
	r.byCustomer[b.CustomerID] = append(r.byCustomer[b.CustomerID], b.ID)
	return nil
}

func (r *MemoryBookingRepository) GetBooking(id string) (*db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	copied.Services = append([]db.BookedService{}, b.Services...)
	return &copied, nil
}

// ListBookingsByCustomer preserves insertion order.
func (r *MemoryBookingRepository) ListBookingsByCustomer(customerID string) ([]*db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []*db.Booking
	for _, id := range r.byCustomer[customerID] {
		b := r.byID[id]
		copied := *b
		copied.Services = append([]db.BookedService{}, b.Services...)
		bookings = append(bookings, &copied)
	}
	return bookings, nil
}

func (r *MemoryBookingRepository) UpdateBookingStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return apperr.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return nil
}

type MemoryOwnerRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*db.Owner
}

func NewMemoryOwnerRepository() *MemoryOwnerRepository {
	return &MemoryOwnerRepository{byEmail: make(map[string]*db.Owner)}
}

func (r *MemoryOwnerRepository) GetOwnerByEmail(email string) (*db.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (r *MemoryOwnerRepository) CreateOwner(o *db.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[o.Email] = o
	return nil
}
