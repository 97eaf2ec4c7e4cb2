package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripFilterNormalize(t *testing.T) {
	var f TripFilter
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)

	// Oversized requests clamp to the cap so the reported pageSize
	// matches the rows actually returned
	f = TripFilter{Page: 3, PageSize: 5000}
	f.Normalize()
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, MaxPageSize, f.PageSize)

	f = TripFilter{Page: -2, PageSize: 50}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 50, f.PageSize)
}
