package dto

// MealPlanResponse là DTO cho response gói ăn
type MealPlanResponse struct {
	ID         uint    `json:"id"`
	RoomTypeID uint    `json:"roomTypeId"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	AdultPrice float64 `json:"adultPrice"`
	ChildPrice float64 `json:"childPrice"`
	Status     int     `json:"status"`
}

// UpsertMealPlanRequest là DTO cho request tạo/cập nhật gói ăn
type UpsertMealPlanRequest struct {
	RoomTypeID uint    `json:"roomTypeId" validate:"required"`
	Code       string  `json:"code" validate:"required"`
	Name       string  `json:"name"`
	AdultPrice float64 `json:"adultPrice" validate:"gte=0"`
	ChildPrice float64 `json:"childPrice" validate:"gte=0"`
	Status     int     `json:"status"`
}
