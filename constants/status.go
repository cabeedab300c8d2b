package constants

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Meal plan status
const (
	MealPlanStatusActive   = 1
	MealPlanStatusInactive = 0
)

// User role (dùng cho middleware auth)
const (
	RoleSuperAdmin   = 1
	RoleAdmin        = 2
	RoleReceptionist = 3
)
