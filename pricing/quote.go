// Package pricing là engine phân bổ sức chứa và tính giá phòng.
// Toàn bộ package là hàm thuần: không I/O, không trạng thái dùng chung,
// mọi lần gọi đều độc lập và trả về cấu trúc mới.
package pricing

import "fmt"

// QuoteInput dữ liệu đầu vào cho một lần báo giá hoàn chỉnh.
type QuoteInput struct {
	Rooms  []Room
	Party  Party
	Nights int

	// Tiền ăn là tùy chọn: bỏ trống MealSelections thì không tính.
	MealSelections   map[string]string
	MealPricing      MealPricingTable
	InfantMealPolicy InfantMealPolicy
}

// Quote kết quả báo giá: phân bổ, giá từng phòng, tổng cộng và cảnh báo.
type Quote struct {
	Assignments []RoomAssignment `json:"assignments"`
	Totals      QuoteTotals      `json:"totals"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// BuildQuote chạy trọn quy trình: phân bổ -> giá giường -> tiền ăn -> tổng hợp.
// Lỗi duy nhất đến từ bước phân bổ (validation, sức chứa, phân bổ);
// các bước tính giá không bao giờ lỗi với phân bổ hợp lệ.
func BuildQuote(in QuoteInput) (*Quote, error) {
	if in.Nights < 1 {
		return nil, &ValidationError{Fields: []string{"nights"}}
	}

	assignments, err := Allocate(in.Rooms, in.Party)
	if err != nil {
		return nil, err
	}

	bedPrices := make([]RoomPrice, len(assignments))
	for i, r := range in.Rooms {
		bedPrices[i] = PriceRoom(r, assignments[i], in.Nights)
	}

	var meals *MealQuote
	if len(in.MealSelections) > 0 {
		policy := in.InfantMealPolicy
		if policy != InfantMealAsChild {
			policy = InfantMealFree
		}
		m := PriceMeals(assignments, in.MealSelections, in.MealPricing, in.Nights, policy)
		meals = &m
	}

	return &Quote{
		Assignments: assignments,
		Totals:      Combine(bedPrices, meals),
		Warnings:    partyWarnings(in.Rooms, in.Party),
	}, nil
}

// partyWarnings cảnh báo không chặn kết quả, ví dụ quá nhiều khách
// không giường so với số phòng đã chọn.
func partyWarnings(rooms []Room, party Party) []string {
	var warnings []string

	bedless := party.ChildrenNoBed + party.InfantsNoBed
	if len(rooms) > 0 && bedless > len(rooms)*MaxBedlessPerRoom {
		warnings = append(warnings, fmt.Sprintf(
			"số khách không giường (%d) cao so với %d phòng đã chọn", bedless, len(rooms)))
	}

	return warnings
}
