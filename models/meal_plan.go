package models

import "time"

// MealPlan bảng giá gói ăn theo loại phòng (CP: chỉ ăn sáng, MAP: hai bữa, AP: ba bữa)
type MealPlan struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID uint      `json:"roomTypeId" gorm:"index:idx_meal_plan_type_code,unique"`
	Code       string    `json:"code" gorm:"index:idx_meal_plan_type_code,unique"`
	Name       string    `json:"name"`
	AdultPrice float64   `json:"adultPrice"`
	ChildPrice float64   `json:"childPrice"`
	Status     int       `json:"status" gorm:"default:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
