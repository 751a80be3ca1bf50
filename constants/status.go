package constants

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// User roles
const (
	RoleManager = 1
	RoleAdmin   = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// House list sort keys
const (
	SortByName      = "name"
	SortByPriceLow  = "price_low"
	SortByPriceHigh = "price_high"
	SortByCapacity  = "capacity"
)

// Default page sizes
const (
	HousesPageSize  = 6
	GalleryPageSize = 12
	ReviewsPageSize = 10
)

// Booking guest count bounds
const (
	MinGuestsCount = 1
	MaxGuestsCount = 10
)
