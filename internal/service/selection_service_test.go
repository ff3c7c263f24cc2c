package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groomstation/internal/db"
)

var testCatalog = []db.Service{
	{ID: "s1", Name: "Haircut & Styling", DurationMinutes: 45, Price: 35},
	{ID: "s2", Name: "Beard Trim", DurationMinutes: 20, Price: 15},
	{ID: "s3", Name: "Hot Towel Shave", DurationMinutes: 30, Price: 25},
}

func TestAggregateSelection(t *testing.T) {
	totals := AggregateSelection(testCatalog, []string{"s1", "s3"})
	assert.Equal(t, 60, totals.TotalPrice)
	assert.Equal(t, 75, totals.TotalDurationMinutes)
}

func TestAggregateSelectionOrderIndependent(t *testing.T) {
	a := AggregateSelection(testCatalog, []string{"s1", "s2", "s3"})
	b := AggregateSelection(testCatalog, []string{"s3", "s1", "s2"})
	assert.Equal(t, a, b)
	assert.Equal(t, 75, a.TotalPrice)
	assert.Equal(t, 95, a.TotalDurationMinutes)
}

func TestAggregateSelectionIgnoresUnknownIDs(t *testing.T) {
	totals := AggregateSelection(testCatalog, []string{"s2", "ghost"})
	assert.Equal(t, 15, totals.TotalPrice)
	assert.Equal(t, 20, totals.TotalDurationMinutes)
}

func TestAggregateSelectionEmpty(t *testing.T) {
	assert.Zero(t, AggregateSelection(testCatalog, nil))
	assert.Zero(t, AggregateSelection(nil, []string{"s1"}))
}

func TestAggregateSelectionCountsDuplicatesOnce(t *testing.T) {
	totals := AggregateSelection(testCatalog, []string{"s2", "s2"})
	assert.Equal(t, 15, totals.TotalPrice)
}

func TestResolveSelection(t *testing.T) {
	services, ok := ResolveSelection(testCatalog, []string{"s3", "s1"})
	assert.True(t, ok)
	// Catalog order, not request order.
	assert.Equal(t, "s1", services[0].ID)
	assert.Equal(t, "s3", services[1].ID)

	_, ok = ResolveSelection(testCatalog, []string{"s1", "ghost"})
	assert.False(t, ok)
}
