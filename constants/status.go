package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// User role
const (
	RoleReceptionist = 0
	RoleAdmin        = 1
)

// Hotel status
const (
	HotelStatusInactive = 0
	HotelStatusActive   = 1
)

// Room status
const (
	RoomStatusAvailable   = 0
	RoomStatusOccupied    = 1
	RoomStatusMaintenance = 2
)
