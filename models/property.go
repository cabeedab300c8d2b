package models

import "time"

type Property struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Ward      string    `json:"ward"`
	District  string    `json:"district"`
	Province  string    `json:"province"`
	Status    int       `json:"status" gorm:"default:1"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:PropertyID"`
}
