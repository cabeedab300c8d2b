package pricing

// Room mô tả một phòng ứng viên cho việc phân bổ khách.
// Dữ liệu đầu vào, không bao giờ bị thay đổi trong quá trình tính toán.
type Room struct {
	ID                   string   `json:"id"`
	RoomTypeID           string   `json:"roomTypeId,omitempty"`
	Occupancy            int      `json:"occupancy"`
	ExtraBedCapacity     int      `json:"extraBedCapacity"`
	BasePrice            float64  `json:"basePrice"`
	SingleOccupancyPrice *float64 `json:"singleOccupancyPrice,omitempty"`
	ExtraBedPriceAdult   float64  `json:"extraBedPriceAdult"`
	ExtraBedPriceChild   float64  `json:"extraBedPriceChild"`
	ExtraBedPriceInfant  float64  `json:"extraBedPriceInfant"`
}

// Capacity tổng sức chứa của phòng (giường cơ bản + giường phụ).
func (r Room) Capacity() int {
	return r.Occupancy + r.ExtraBedCapacity
}

// Party mô tả đoàn khách cho toàn bộ booking.
type Party struct {
	Adults        int `json:"adults"`
	ChildrenBed   int `json:"childrenBed"`
	InfantsBed    int `json:"infantsBed"`
	ChildrenNoBed int `json:"childrenNoBed"`
	InfantsNoBed  int `json:"infantsNoBed"`
}

// NeedBed số khách cần giường (người lớn + trẻ em có giường + em bé có giường).
func (p Party) NeedBed() int {
	return p.Adults + p.ChildrenBed + p.InfantsBed
}

// Occupants đếm số khách theo loại trong một nhóm slot (cơ bản hoặc giường phụ).
type Occupants struct {
	Adults      int `json:"adults"`
	ChildrenBed int `json:"childrenBed"`
	InfantsBed  int `json:"infantsBed"`
}

// Total tổng số khách trong nhóm slot.
func (o Occupants) Total() int {
	return o.Adults + o.ChildrenBed + o.InfantsBed
}

// NoBedOccupants khách không cần giường, chỉ gắn vào phòng để hiển thị.
type NoBedOccupants struct {
	ChildrenNoBed int `json:"childrenNoBed"`
	InfantsNoBed  int `json:"infantsNoBed"`
}

// RoomAssignment kết quả phân bổ khách cho một phòng.
type RoomAssignment struct {
	RoomID     string         `json:"roomId"`
	RoomTypeID string         `json:"roomTypeId,omitempty"`
	Base       Occupants      `json:"base"`
	Extra      Occupants      `json:"extra"`
	NoBed      NoBedOccupants `json:"noBed"`
}

// RoomPrice giá giường của một phòng cho cả kỳ lưu trú.
type RoomPrice struct {
	RoomID   string  `json:"roomId"`
	PerNight float64 `json:"perNight"`
	Total    float64 `json:"total"`
	IsSingle bool    `json:"isSingle"`
}

// PlanRate đơn giá một gói ăn theo đầu người mỗi đêm.
type PlanRate struct {
	Adult float64 `json:"adult"`
	Child float64 `json:"child"`
}

// MealPricingTable bảng giá gói ăn: roomTypeID -> planID -> đơn giá.
type MealPricingTable map[string]map[string]PlanRate

// InfantMealPolicy quy định tính tiền ăn cho em bé có giường.
type InfantMealPolicy string

const (
	// InfantMealAsChild em bé có giường tính theo giá trẻ em
	InfantMealAsChild InfantMealPolicy = "child"
	// InfantMealFree em bé không tính tiền ăn
	InfantMealFree InfantMealPolicy = "none"
)

// RoomMealPrice tiền ăn của một phòng cho cả kỳ lưu trú.
type RoomMealPrice struct {
	RoomID string  `json:"roomId"`
	Total  float64 `json:"total"`
}

// MealQuote kết quả tính tiền ăn cho tất cả các phòng.
type MealQuote struct {
	PerRoom    []RoomMealPrice `json:"perRoom"`
	TotalMeals float64         `json:"totalMeals"`
}

// PricedRoom tổng hợp giá giường và tiền ăn của một phòng.
type PricedRoom struct {
	RoomID         string  `json:"roomId"`
	PerNight       float64 `json:"perNight"`
	Total          float64 `json:"total"`
	IsSingle       bool    `json:"isSingle"`
	MealsTotal     float64 `json:"mealsTotal"`
	TotalWithMeals float64 `json:"totalWithMeals"`
}

// QuoteTotals tổng hợp giá của toàn bộ báo giá.
type QuoteTotals struct {
	PerRoom    []PricedRoom `json:"perRoom"`
	GrandTotal float64      `json:"grandTotal"`
}
