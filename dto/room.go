package dto

import "time"

type RoomResponse struct {
	RoomId               uint      `json:"id"`
	RoomName             string    `json:"roomName"`
	Occupancy            int       `json:"occupancy"`
	ExtraBedCapacity     int       `json:"extraBedCapacity"`
	BasePrice            float64   `json:"basePrice"`
	SingleOccupancyPrice *float64  `json:"singleOccupancyPrice,omitempty"`
	Status               int       `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	Parent               Parents   `json:"parent"`
}

// Parents là DTO cho thông tin property cha của room
type Parents struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

// RoomDetail là DTO cho thông tin chi tiết của room
type RoomDetail struct {
	RoomId               uint     `json:"id"`
	RoomName             string   `json:"roomName"`
	RoomTypeID           uint     `json:"roomTypeId"`
	RoomTypeName         string   `json:"roomTypeName"`
	Occupancy            int      `json:"occupancy"`
	ExtraBedCapacity     int      `json:"extraBedCapacity"`
	BasePrice            float64  `json:"basePrice"`
	SingleOccupancyPrice *float64 `json:"singleOccupancyPrice,omitempty"`
	ExtraBedPriceAdult   float64  `json:"extraBedPriceAdult"`
	ExtraBedPriceChild   float64  `json:"extraBedPriceChild"`
	ExtraBedPriceInfant  float64  `json:"extraBedPriceInfant"`
	Description          string   `json:"description"`
	Status               int      `json:"status"`
	Parent               Parents  `json:"parent"`
}
