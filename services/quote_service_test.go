package services

import (
	"testing"

	"zomestay-backend/models"
	"zomestay-backend/pricing"
)

func TestToQuoteResponse(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 7, RoomName: "Deluxe 101", RoomTypeID: 2},
		{RoomId: 9, RoomName: "Standard 202", RoomTypeID: 3},
	}

	quote := &pricing.Quote{
		Assignments: []pricing.RoomAssignment{
			{
				RoomID: "7",
				Base:   pricing.Occupants{Adults: 2},
				Extra:  pricing.Occupants{ChildrenBed: 1},
				NoBed:  pricing.NoBedOccupants{InfantsNoBed: 1},
			},
			{
				RoomID: "9",
				Base:   pricing.Occupants{Adults: 1},
			},
		},
		Totals: pricing.QuoteTotals{
			PerRoom: []pricing.PricedRoom{
				{RoomID: "7", PerNight: 3500, Total: 7000, MealsTotal: 1200, TotalWithMeals: 8200},
				{RoomID: "9", PerNight: 2000, Total: 4000, IsSingle: true, TotalWithMeals: 4000},
			},
			GrandTotal: 12200,
		},
		Warnings: []string{"số khách không giường (5) cao so với 2 phòng đã chọn"},
	}

	resp := toQuoteResponse(4, 2, rooms, quote)

	if resp.PropertyID != 4 {
		t.Errorf("PropertyID = %d, muốn 4", resp.PropertyID)
	}
	if resp.Nights != 2 {
		t.Errorf("Nights = %d, muốn 2", resp.Nights)
	}
	if resp.GrandTotal != 12200 {
		t.Errorf("GrandTotal = %v, muốn 12200", resp.GrandTotal)
	}
	if len(resp.Rooms) != 2 {
		t.Fatalf("số phòng = %d, muốn 2", len(resp.Rooms))
	}

	first := resp.Rooms[0]
	if first.RoomID != 7 || first.RoomName != "Deluxe 101" || first.RoomTypeID != 2 {
		t.Errorf("phòng đầu sai định danh: %+v", first)
	}
	if first.Base.Adults != 2 || first.Extra.ChildrenBed != 1 || first.NoBed.InfantsNoBed != 1 {
		t.Errorf("phòng đầu sai phân bổ: %+v", first)
	}
	if first.PerNight != 3500 || first.Total != 7000 || first.MealsTotal != 1200 || first.TotalWithMeals != 8200 {
		t.Errorf("phòng đầu sai giá: %+v", first)
	}

	second := resp.Rooms[1]
	if !second.IsSingle {
		t.Errorf("phòng thứ hai phải là single occupancy")
	}
	if second.TotalWithMeals != 4000 || second.MealsTotal != 0 {
		t.Errorf("phòng thứ hai sai giá: %+v", second)
	}

	if len(resp.Warnings) != 1 {
		t.Errorf("số cảnh báo = %d, muốn 1", len(resp.Warnings))
	}
}
