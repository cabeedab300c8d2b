package dto

// MealSelection gói ăn khách chọn cho một phòng
type MealSelection struct {
	RoomID   uint   `json:"roomId"`
	PlanCode string `json:"planCode"`
}

// QuoteRequest là DTO cho request báo giá
type QuoteRequest struct {
	PropertyID     uint            `json:"propertyId" validate:"required"`
	RoomIDs        []uint          `json:"roomIds" validate:"required,min=1"`
	CheckInDate    string          `json:"checkInDate" validate:"required"`
	CheckOutDate   string          `json:"checkOutDate" validate:"required"`
	Adults         int             `json:"adults"`
	ChildrenBed    int             `json:"childrenBed"`
	InfantsBed     int             `json:"infantsBed"`
	ChildrenNoBed  int             `json:"childrenNoBed"`
	InfantsNoBed   int             `json:"infantsNoBed"`
	MealSelections []MealSelection `json:"mealSelections,omitempty"`
}

// QuoteOccupants số khách theo loại trong một nhóm slot
type QuoteOccupants struct {
	Adults      int `json:"adults"`
	ChildrenBed int `json:"childrenBed"`
	InfantsBed  int `json:"infantsBed"`
}

// QuoteNoBed khách không giường gắn vào phòng
type QuoteNoBed struct {
	ChildrenNoBed int `json:"childrenNoBed"`
	InfantsNoBed  int `json:"infantsNoBed"`
}

// QuoteRoomResponse báo giá chi tiết của một phòng
type QuoteRoomResponse struct {
	RoomID         uint           `json:"roomId"`
	RoomName       string         `json:"roomName"`
	RoomTypeID     uint           `json:"roomTypeId"`
	Base           QuoteOccupants `json:"base"`
	Extra          QuoteOccupants `json:"extra"`
	NoBed          QuoteNoBed     `json:"noBed"`
	IsSingle       bool           `json:"isSingle"`
	PerNight       float64        `json:"perNight"`
	Total          float64        `json:"total"`
	MealsTotal     float64        `json:"mealsTotal"`
	TotalWithMeals float64        `json:"totalWithMeals"`
}

// QuoteResponse là DTO cho response báo giá
type QuoteResponse struct {
	PropertyID uint                `json:"propertyId"`
	Nights     int                 `json:"nights"`
	Rooms      []QuoteRoomResponse `json:"rooms"`
	GrandTotal float64             `json:"grandTotal"`
	Warnings   []string            `json:"warnings,omitempty"`
}

// CapacitySuggestion gợi ý khi các phòng đã chọn không đủ sức chứa
type CapacitySuggestion struct {
	NeedBed        int `json:"needBed"`
	Capacity       int `json:"capacity"`
	Shortfall      int `json:"shortfall"`
	MinRoomsNeeded int `json:"minRoomsNeeded"`
}

// DistributionDetail số khách chưa xếp được theo loại
type DistributionDetail struct {
	Adults      int `json:"adults"`
	ChildrenBed int `json:"childrenBed"`
	InfantsBed  int `json:"infantsBed"`
}
