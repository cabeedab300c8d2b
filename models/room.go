package models

import (
	"strconv"
	"time"

	"zomestay-backend/pricing"
)

type Room struct {
	RoomId               uint      `json:"id" gorm:"primaryKey"`
	PropertyID           uint      `json:"propertyId"`
	RoomTypeID           uint      `json:"roomTypeId"`
	RoomName             string    `json:"roomName"`
	Occupancy            int       `json:"occupancy"`
	ExtraBedCapacity     int       `json:"extraBedCapacity"`
	BasePrice            float64   `json:"basePrice"`
	SingleOccupancyPrice *float64  `json:"singleOccupancyPrice,omitempty"`
	ExtraBedPriceAdult   float64   `json:"extraBedPriceAdult"`
	ExtraBedPriceChild   float64   `json:"extraBedPriceChild"`
	ExtraBedPriceInfant  float64   `json:"extraBedPriceInfant"`
	Description          string    `json:"description"`
	Status               int       `json:"status" gorm:"default:1"`
	Avatar               string    `json:"avatar"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Property             Property  `json:"parent,omitempty" gorm:"foreignKey:PropertyID"`
	RoomType             RoomType  `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// ToPricingRoom chuyển model sang dạng đầu vào cho engine tính giá
func (r *Room) ToPricingRoom() pricing.Room {
	return pricing.Room{
		ID:                   strconv.FormatUint(uint64(r.RoomId), 10),
		RoomTypeID:           strconv.FormatUint(uint64(r.RoomTypeID), 10),
		Occupancy:            r.Occupancy,
		ExtraBedCapacity:     r.ExtraBedCapacity,
		BasePrice:            r.BasePrice,
		SingleOccupancyPrice: r.SingleOccupancyPrice,
		ExtraBedPriceAdult:   r.ExtraBedPriceAdult,
		ExtraBedPriceChild:   r.ExtraBedPriceChild,
		ExtraBedPriceInfant:  r.ExtraBedPriceInfant,
	}
}
