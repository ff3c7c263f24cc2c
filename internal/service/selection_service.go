package service

import (
	"groomstation/internal/db"
	"groomstation/internal/entities"
)

// AggregateSelection sums price and duration over the catalog entries
// matching serviceIDs. Unknown ids are ignored: when a catalog changes
// between selection and confirmation the totals cover the resolvable
// subset. Pure and independent of input order; duplicate ids count once.
func AggregateSelection(catalog []db.Service, serviceIDs []string) entities.SelectionTotals {
	wanted := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		wanted[id] = true
	}

	var totals entities.SelectionTotals
	for _, s := range catalog {
		if wanted[s.ID] {
			totals.TotalPrice += s.Price
			totals.TotalDurationMinutes += s.DurationMinutes
		}
	}
	return totals
}

// ResolveSelection returns the catalog entries matching serviceIDs in
// catalog order, and whether every requested id resolved.
func ResolveSelection(catalog []db.Service, serviceIDs []string) ([]db.Service, bool) {
	wanted := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		wanted[id] = true
	}

	var resolved []db.Service
	for _, s := range catalog {
		if wanted[s.ID] {
			resolved = append(resolved, s)
			delete(wanted, s.ID)
		}
	}
	return resolved, len(wanted) == 0
}
