package pricing

import (
	"errors"
	"strings"
	"testing"
)

func TestCombineWithoutMeals(t *testing.T) {
	bedPrices := []RoomPrice{
		{RoomID: "r1", PerNight: 2000, Total: 4000, IsSingle: true},
		{RoomID: "r2", PerNight: 3000, Total: 6000},
	}

	totals := Combine(bedPrices, nil)
	if totals.GrandTotal != 10000 {
		t.Errorf("GrandTotal = %v, muốn 10000", totals.GrandTotal)
	}
	for _, pr := range totals.PerRoom {
		if pr.MealsTotal != 0 {
			t.Errorf("phòng %s: MealsTotal = %v, muốn 0", pr.RoomID, pr.MealsTotal)
		}
		if pr.TotalWithMeals != pr.Total {
			t.Errorf("phòng %s: TotalWithMeals = %v, muốn %v", pr.RoomID, pr.TotalWithMeals, pr.Total)
		}
	}
}

func TestCombineMergesByRoomID(t *testing.T) {
	bedPrices := []RoomPrice{
		{RoomID: "r1", PerNight: 2000, Total: 4000},
		{RoomID: "r2", PerNight: 3000, Total: 6000},
	}
	meals := &MealQuote{
		PerRoom:    []RoomMealPrice{{RoomID: "r2", Total: 900}},
		TotalMeals: 900,
	}

	totals := Combine(bedPrices, meals)
	if totals.PerRoom[0].TotalWithMeals != 4000 {
		t.Errorf("r1 TotalWithMeals = %v, muốn 4000", totals.PerRoom[0].TotalWithMeals)
	}
	if totals.PerRoom[1].TotalWithMeals != 6900 {
		t.Errorf("r2 TotalWithMeals = %v, muốn 6900", totals.PerRoom[1].TotalWithMeals)
	}
	if totals.GrandTotal != 10900 {
		t.Errorf("GrandTotal = %v, muốn 10900", totals.GrandTotal)
	}
}

func TestBuildQuoteEndToEnd(t *testing.T) {
	single := 2000.0
	in := QuoteInput{
		Rooms: []Room{
			{ID: "r1", RoomTypeID: "deluxe", Occupancy: 2, ExtraBedCapacity: 1, BasePrice: 3000, SingleOccupancyPrice: &single, ExtraBedPriceAdult: 800},
			{ID: "r2", RoomTypeID: "deluxe", Occupancy: 2, BasePrice: 3000, SingleOccupancyPrice: &single},
		},
		Party:  Party{Adults: 3, ChildrenNoBed: 1},
		Nights: 2,
		MealSelections: map[string]string{
			"r1": "CP",
		},
		MealPricing:      mealTable(),
		InfantMealPolicy: InfantMealFree,
	}

	quote, err := BuildQuote(in)
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}

	// r1 nhận 2 người lớn base, r2 nhận 1 người lớn (giá đơn)
	if quote.Assignments[0].Base != (Occupants{Adults: 2}) {
		t.Errorf("r1 base = %+v, muốn 2 người lớn", quote.Assignments[0].Base)
	}
	if quote.Assignments[1].Base != (Occupants{Adults: 1}) {
		t.Errorf("r2 base = %+v, muốn 1 người lớn", quote.Assignments[1].Base)
	}
	if quote.Assignments[0].NoBed != (NoBedOccupants{ChildrenNoBed: 1}) {
		t.Errorf("NoBed = %+v, muốn gắn vào phòng đầu", quote.Assignments[0].NoBed)
	}

	// r1: 3000*2 đêm + tiền ăn 2*300*2 = 7200; r2: giá đơn 2000*2 = 4000
	if quote.Totals.PerRoom[0].Total != 6000 || quote.Totals.PerRoom[0].MealsTotal != 1200 {
		t.Errorf("r1 = %+v, muốn total 6000 meals 1200", quote.Totals.PerRoom[0])
	}
	if !quote.Totals.PerRoom[1].IsSingle || quote.Totals.PerRoom[1].Total != 4000 {
		t.Errorf("r2 = %+v, muốn single với total 4000", quote.Totals.PerRoom[1])
	}
	if quote.Totals.GrandTotal != 11200 {
		t.Errorf("GrandTotal = %v, muốn 11200", quote.Totals.GrandTotal)
	}
}

func TestBuildQuoteWithoutMeals(t *testing.T) {
	in := QuoteInput{
		Rooms:  []Room{{ID: "r1", Occupancy: 2, ExtraBedCapacity: 2, BasePrice: 3000}},
		Party:  Party{Adults: 2},
		Nights: 1,
	}

	quote, err := BuildQuote(in)
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}
	if quote.Totals.GrandTotal != 3000 {
		t.Errorf("GrandTotal = %v, muốn 3000", quote.Totals.GrandTotal)
	}
	if quote.Totals.PerRoom[0].MealsTotal != 0 {
		t.Errorf("MealsTotal = %v, muốn 0 khi không chọn gói ăn", quote.Totals.PerRoom[0].MealsTotal)
	}
}

func TestBuildQuoteInvalidNights(t *testing.T) {
	for _, nights := range []int{0, -1} {
		_, err := BuildQuote(QuoteInput{
			Rooms:  []Room{{ID: "r1", Occupancy: 2, BasePrice: 1000}},
			Party:  Party{Adults: 1},
			Nights: nights,
		})

		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("nights=%d: error = %v, muốn ValidationError", nights, err)
		}
		if len(valErr.Fields) != 1 || valErr.Fields[0] != "nights" {
			t.Errorf("nights=%d: Fields = %v, muốn [nights]", nights, valErr.Fields)
		}
	}
}

func TestBuildQuoteCapacityErrorHasNoResult(t *testing.T) {
	quote, err := BuildQuote(QuoteInput{
		Rooms:  []Room{{ID: "r1", Occupancy: 2, BasePrice: 1000}},
		Party:  Party{Adults: 5},
		Nights: 1,
	})
	if quote != nil {
		t.Errorf("quote = %+v, muốn nil khi không đủ sức chứa", quote)
	}
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("error = %v, muốn CapacityError", err)
	}
}

func TestBuildQuoteBedlessWarning(t *testing.T) {
	quote, err := BuildQuote(QuoteInput{
		Rooms:  []Room{{ID: "r1", Occupancy: 2, BasePrice: 1000}},
		Party:  Party{Adults: 1, ChildrenNoBed: 2, InfantsNoBed: 1},
		Nights: 1,
	})
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}
	if len(quote.Warnings) != 1 || !strings.Contains(quote.Warnings[0], "khách không giường") {
		t.Errorf("Warnings = %v, muốn cảnh báo khách không giường", quote.Warnings)
	}

	// Dưới ngưỡng thì không cảnh báo
	quote, err = BuildQuote(QuoteInput{
		Rooms:  []Room{{ID: "r1", Occupancy: 2, BasePrice: 1000}},
		Party:  Party{Adults: 1, ChildrenNoBed: 2},
		Nights: 1,
	})
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}
	if len(quote.Warnings) != 0 {
		t.Errorf("Warnings = %v, muốn rỗng", quote.Warnings)
	}
}

func TestBuildQuoteNightsScaling(t *testing.T) {
	base := QuoteInput{
		Rooms:          []Room{{ID: "r1", RoomTypeID: "deluxe", Occupancy: 2, ExtraBedCapacity: 1, BasePrice: 3000, ExtraBedPriceAdult: 800}},
		Party:          Party{Adults: 3},
		Nights:         1,
		MealSelections: map[string]string{"r1": "CP"},
		MealPricing:    mealTable(),
	}

	one, err := BuildQuote(base)
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}

	base.Nights = 5
	five, err := BuildQuote(base)
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}

	if five.Totals.GrandTotal != one.Totals.GrandTotal*5 {
		t.Errorf("GrandTotal 5 đêm = %v, muốn %v", five.Totals.GrandTotal, one.Totals.GrandTotal*5)
	}
}
