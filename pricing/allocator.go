package pricing

import "fmt"

// Các hằng số chính sách phân bổ. Thứ tự ưu tiên xếp chỗ là cố định:
// người lớn trước để tối đa số phòng đạt giá đơn (single occupancy),
// sau đó trẻ em có giường, cuối cùng em bé có giường.
const (
	// NoBedAttachRoomIndex khách không giường luôn gắn vào phòng đầu tiên
	NoBedAttachRoomIndex = 0
	// MaxBedlessPerRoom ngưỡng cảnh báo: quá số này mỗi phòng sẽ sinh warning
	MaxBedlessPerRoom = 2
)

// Allocate xếp đoàn khách vào các phòng đã chọn theo hai lượt:
// lượt một lấp giường cơ bản của từng phòng theo thứ tự caller đưa vào,
// lượt hai lấp giường phụ. Không sắp xếp lại phòng, không backtracking —
// thứ tự phòng khác nhau có thể cho kết quả phân bổ (và giá) khác nhau.
func Allocate(rooms []Room, party Party) ([]RoomAssignment, error) {
	if err := validateAllocateInput(rooms, party); err != nil {
		return nil, err
	}

	needBed := party.NeedBed()
	totalCapacity := 0
	maxPerRoom := 0
	for _, r := range rooms {
		totalCapacity += r.Capacity()
		if c := r.Capacity(); c > maxPerRoom {
			maxPerRoom = c
		}
	}

	if needBed > totalCapacity {
		minRooms := 0
		if maxPerRoom > 0 {
			minRooms = (needBed + maxPerRoom - 1) / maxPerRoom
		}
		return nil, &CapacityError{
			NeedBed:        needBed,
			Capacity:       totalCapacity,
			MinRoomsNeeded: minRooms,
		}
	}

	remaining := Occupants{
		Adults:      party.Adults,
		ChildrenBed: party.ChildrenBed,
		InfantsBed:  party.InfantsBed,
	}

	assignments := make([]RoomAssignment, len(rooms))
	for i, r := range rooms {
		assignments[i] = RoomAssignment{RoomID: r.ID, RoomTypeID: r.RoomTypeID}
	}

	// Lượt 1: giường cơ bản
	for i, r := range rooms {
		fillSlots(&assignments[i].Base, r.Occupancy, &remaining)
	}

	// Lượt 2: giường phụ
	for i, r := range rooms {
		fillSlots(&assignments[i].Extra, r.ExtraBedCapacity, &remaining)
	}

	// Sau hai lượt vẫn còn khách chưa xếp được thì báo lỗi phân bổ.
	// Với kiểm tra tổng sức chứa ở trên, nhánh này gần như không xảy ra,
	// nhưng vẫn giữ để bắt trường hợp phân mảnh theo từng phòng.
	if remaining.Total() > 0 {
		return nil, &DistributionError{Remaining: remaining}
	}

	assignments[NoBedAttachRoomIndex].NoBed = NoBedOccupants{
		ChildrenNoBed: party.ChildrenNoBed,
		InfantsNoBed:  party.InfantsNoBed,
	}

	return assignments, nil
}

// fillSlots lấp tối đa capacity chỗ từ remaining theo thứ tự ưu tiên cố định.
func fillSlots(dst *Occupants, capacity int, remaining *Occupants) {
	free := capacity

	take := min(free, remaining.Adults)
	dst.Adults += take
	remaining.Adults -= take
	free -= take

	take = min(free, remaining.ChildrenBed)
	dst.ChildrenBed += take
	remaining.ChildrenBed -= take
	free -= take

	take = min(free, remaining.InfantsBed)
	dst.InfantsBed += take
	remaining.InfantsBed -= take
}

// validateAllocateInput kiểm tra phòng và đoàn khách, gom tất cả field vi phạm.
func validateAllocateInput(rooms []Room, party Party) error {
	var fields []string

	if len(rooms) == 0 {
		fields = append(fields, "rooms")
	}
	for i, r := range rooms {
		if r.Occupancy < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].occupancy", i))
		}
		if r.ExtraBedCapacity < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].extraBedCapacity", i))
		}
		if r.BasePrice < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].basePrice", i))
		}
		if r.SingleOccupancyPrice != nil && *r.SingleOccupancyPrice < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].singleOccupancyPrice", i))
		}
		if r.ExtraBedPriceAdult < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].extraBedPriceAdult", i))
		}
		if r.ExtraBedPriceChild < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].extraBedPriceChild", i))
		}
		if r.ExtraBedPriceInfant < 0 {
			fields = append(fields, fmt.Sprintf("rooms[%d].extraBedPriceInfant", i))
		}
	}

	if party.Adults < 1 {
		fields = append(fields, "party.adults")
	}
	if party.ChildrenBed < 0 {
		fields = append(fields, "party.childrenBed")
	}
	if party.InfantsBed < 0 {
		fields = append(fields, "party.infantsBed")
	}
	if party.ChildrenNoBed < 0 {
		fields = append(fields, "party.childrenNoBed")
	}
	if party.InfantsNoBed < 0 {
		fields = append(fields, "party.infantsNoBed")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
