package pricing

import "testing"

func testRoom() Room {
	single := 2000.0
	return Room{
		ID:                   "r1",
		Occupancy:            2,
		ExtraBedCapacity:     1,
		BasePrice:            3000,
		SingleOccupancyPrice: &single,
		ExtraBedPriceAdult:   800,
	}
}

func TestPriceRoom(t *testing.T) {
	tests := []struct {
		name         string
		room         Room
		assignment   RoomAssignment
		nights       int
		wantPerNight float64
		wantTotal    float64
		wantSingle   bool
	}{
		{
			name:         "single occupancy",
			room:         testRoom(),
			assignment:   RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 1}},
			nights:       2,
			wantPerNight: 2000,
			wantTotal:    4000,
			wantSingle:   true,
		},
		{
			name:         "two adults use base price",
			room:         testRoom(),
			assignment:   RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 2}},
			nights:       1,
			wantPerNight: 3000,
			wantTotal:    3000,
			wantSingle:   false,
		},
		{
			name:         "adult on extra bed adds surcharge",
			room:         testRoom(),
			assignment:   RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 2}, Extra: Occupants{Adults: 1}},
			nights:       1,
			wantPerNight: 3800,
			wantTotal:    3800,
			wantSingle:   false,
		},
		{
			name: "child and infant surcharges",
			room: Room{
				ID: "r2", Occupancy: 2, ExtraBedCapacity: 2, BasePrice: 5000,
				ExtraBedPriceChild: 500, ExtraBedPriceInfant: 200,
			},
			assignment:   RoomAssignment{RoomID: "r2", Base: Occupants{Adults: 2}, Extra: Occupants{ChildrenBed: 1, InfantsBed: 1}},
			nights:       3,
			wantPerNight: 5700,
			wantTotal:    17100,
			wantSingle:   false,
		},
		{
			name:         "one adult with child in base is not single",
			room:         testRoom(),
			assignment:   RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 1, ChildrenBed: 1}},
			nights:       1,
			wantPerNight: 3000,
			wantTotal:    3000,
			wantSingle:   false,
		},
		{
			name:         "one adult with extra occupant is not single",
			room:         testRoom(),
			assignment:   RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 1}, Extra: Occupants{Adults: 1}},
			nights:       1,
			wantPerNight: 3800,
			wantTotal:    3800,
			wantSingle:   false,
		},
		{
			name:         "bedless guests do not affect single occupancy",
			room:         testRoom(),
			assignment:   RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 1}, NoBed: NoBedOccupants{ChildrenNoBed: 1}},
			nights:       3,
			wantPerNight: 2000,
			wantTotal:    6000,
			wantSingle:   true,
		},
		{
			name: "missing single price falls back to base price",
			room: Room{ID: "r3", Occupancy: 2, BasePrice: 2500},
			assignment: RoomAssignment{
				RoomID: "r3", Base: Occupants{Adults: 1},
			},
			nights:       2,
			wantPerNight: 2500,
			wantTotal:    5000,
			wantSingle:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceRoom(tt.room, tt.assignment, tt.nights)
			if got.PerNight != tt.wantPerNight {
				t.Errorf("PerNight = %v, muốn %v", got.PerNight, tt.wantPerNight)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %v, muốn %v", got.Total, tt.wantTotal)
			}
			if got.IsSingle != tt.wantSingle {
				t.Errorf("IsSingle = %v, muốn %v", got.IsSingle, tt.wantSingle)
			}
			if got.RoomID != tt.assignment.RoomID {
				t.Errorf("RoomID = %q, muốn %q", got.RoomID, tt.assignment.RoomID)
			}
		})
	}
}

func TestPriceRoomNightsMonotonicity(t *testing.T) {
	// Giữ nguyên phân bổ, nhân số đêm lên k thì tổng giá nhân đúng k
	rm := testRoom()
	a := RoomAssignment{RoomID: "r1", Base: Occupants{Adults: 2}, Extra: Occupants{Adults: 1}}

	base := PriceRoom(rm, a, 1)
	for _, k := range []int{2, 3, 7, 30} {
		got := PriceRoom(rm, a, k)
		if got.Total != base.Total*float64(k) {
			t.Errorf("nights=%d: Total = %v, muốn %v", k, got.Total, base.Total*float64(k))
		}
		if got.PerNight != base.PerNight {
			t.Errorf("nights=%d: PerNight = %v, muốn không đổi %v", k, got.PerNight, base.PerNight)
		}
	}
}
