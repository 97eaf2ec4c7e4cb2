package models

// TripFilter represents filter parameters for querying cleaned trips.
// Filters compose by logical AND; an empty hour or payment type subset
// means no restriction on that dimension.
type TripFilter struct {
	StartDate    string  `form:"startDate"`    // YYYY-MM-DD, inclusive
	EndDate      string  `form:"endDate"`      // YYYY-MM-DD, inclusive
	Hours        []int   `form:"hours"`        // Pickup hours 0-23
	PaymentTypes []int64 `form:"paymentTypes"` // Payment type codes
	Page         int     `form:"page"`
	PageSize     int     `form:"pageSize"`
}

// Pagination bounds for trip listings
const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// Normalize clamps pagination to valid bounds so handlers and
// repositories report the same effective page size
func (f *TripFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// StatsFilter represents filter parameters for aggregate queries
type StatsFilter struct {
	StartDate    string  `form:"startDate"`
	EndDate      string  `form:"endDate"`
	Hours        []int   `form:"hours"`
	PaymentTypes []int64 `form:"paymentTypes"`
	Limit        int     `form:"limit"` // Max results for ranked aggregates
}
