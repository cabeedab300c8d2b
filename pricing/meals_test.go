package pricing

import "testing"

func mealTable() MealPricingTable {
	return MealPricingTable{
		"deluxe": {
			"CP": {Adult: 300, Child: 150},
			"AP": {Adult: 900, Child: 450},
		},
		"standard": {
			"CP": {Adult: 200, Child: 100},
		},
	}
}

func TestPriceMeals(t *testing.T) {
	assignments := []RoomAssignment{
		{RoomID: "r1", RoomTypeID: "deluxe", Base: Occupants{Adults: 2}, Extra: Occupants{ChildrenBed: 1}},
		{RoomID: "r2", RoomTypeID: "standard", Base: Occupants{Adults: 1}},
	}

	tests := []struct {
		name        string
		selections  map[string]string
		policy      InfantMealPolicy
		nights      int
		wantPerRoom map[string]float64
		wantTotal   float64
	}{
		{
			name:       "both rooms priced",
			selections: map[string]string{"r1": "CP", "r2": "CP"},
			policy:     InfantMealFree,
			nights:     2,
			// r1: 2*300 + 1*150 = 750/đêm; r2: 200/đêm
			wantPerRoom: map[string]float64{"r1": 1500, "r2": 400},
			wantTotal:   1900,
		},
		{
			name:        "room without selection is zero",
			selections:  map[string]string{"r1": "AP"},
			policy:      InfantMealFree,
			nights:      1,
			wantPerRoom: map[string]float64{"r1": 2250, "r2": 0},
			wantTotal:   2250,
		},
		{
			name:        "unknown plan for room type is zero",
			selections:  map[string]string{"r1": "CP", "r2": "AP"},
			policy:      InfantMealFree,
			nights:      1,
			wantPerRoom: map[string]float64{"r1": 750, "r2": 0},
			wantTotal:   750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceMeals(assignments, tt.selections, mealTable(), tt.nights, tt.policy)
			if len(got.PerRoom) != len(assignments) {
				t.Fatalf("PerRoom có %d phòng, muốn %d", len(got.PerRoom), len(assignments))
			}
			for _, pr := range got.PerRoom {
				if want, ok := tt.wantPerRoom[pr.RoomID]; ok && pr.Total != want {
					t.Errorf("phòng %s: Total = %v, muốn %v", pr.RoomID, pr.Total, want)
				}
			}
			if got.TotalMeals != tt.wantTotal {
				t.Errorf("TotalMeals = %v, muốn %v", got.TotalMeals, tt.wantTotal)
			}
		})
	}
}

func TestPriceMealsInfantPolicy(t *testing.T) {
	assignments := []RoomAssignment{
		{RoomID: "r1", RoomTypeID: "deluxe", Base: Occupants{Adults: 1, InfantsBed: 1}, Extra: Occupants{InfantsBed: 1}},
	}
	selections := map[string]string{"r1": "CP"}

	free := PriceMeals(assignments, selections, mealTable(), 1, InfantMealFree)
	if free.TotalMeals != 300 {
		t.Errorf("policy none: TotalMeals = %v, muốn 300", free.TotalMeals)
	}

	asChild := PriceMeals(assignments, selections, mealTable(), 1, InfantMealAsChild)
	// 1 người lớn + 2 em bé có giường tính giá trẻ em: 300 + 2*150
	if asChild.TotalMeals != 600 {
		t.Errorf("policy child: TotalMeals = %v, muốn 600", asChild.TotalMeals)
	}
}

func TestPriceMealsIgnoresBedlessGuests(t *testing.T) {
	assignments := []RoomAssignment{
		{
			RoomID: "r1", RoomTypeID: "deluxe",
			Base:  Occupants{Adults: 2},
			NoBed: NoBedOccupants{ChildrenNoBed: 3, InfantsNoBed: 2},
		},
	}

	got := PriceMeals(assignments, map[string]string{"r1": "CP"}, mealTable(), 2, InfantMealAsChild)
	if got.TotalMeals != 1200 {
		t.Errorf("TotalMeals = %v, muốn 1200 (khách không giường không tính tiền ăn)", got.TotalMeals)
	}
}

func TestPriceMealsNilTable(t *testing.T) {
	assignments := []RoomAssignment{{RoomID: "r1", RoomTypeID: "deluxe", Base: Occupants{Adults: 1}}}

	got := PriceMeals(assignments, map[string]string{"r1": "CP"}, nil, 2, InfantMealFree)
	if got.TotalMeals != 0 {
		t.Errorf("TotalMeals = %v, muốn 0 khi không có bảng giá", got.TotalMeals)
	}
	if len(got.PerRoom) != 1 || got.PerRoom[0].Total != 0 {
		t.Errorf("PerRoom = %+v, muốn một phòng với tiền ăn 0", got.PerRoom)
	}
}
