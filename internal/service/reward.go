package service

import (
	"math/rand"

	"groomstation/internal/db"
)

// RewardPolicy decides, once at confirmation time, whether a booking gets
// the collectible reward flag. The decision is never revisited; cancellation
// keeps whatever flag was issued.
type RewardPolicy interface {
	Decide(b *db.Booking) bool
}

// CoinFlipRewardPolicy issues the reward to roughly half of all bookings.
type CoinFlipRewardPolicy struct{}

func (CoinFlipRewardPolicy) Decide(*db.Booking) bool {
	return rand.Intn(2) == 1
}

// FixedRewardPolicy always answers the same; used in tests.
type FixedRewardPolicy struct {
	Issue bool
}

func (p FixedRewardPolicy) Decide(*db.Booking) bool {
	return p.Issue
}
