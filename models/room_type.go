package models

import "time"

type RoomType struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	MealPlans   []MealPlan `json:"mealPlans,omitempty" gorm:"foreignKey:RoomTypeID"`
}
