package pricing

import (
	"fmt"
	"strings"
)

// ValidationError dữ liệu đầu vào không hợp lệ, liệt kê tất cả các field vi phạm.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "dữ liệu không hợp lệ: " + strings.Join(e.Fields, ", ")
}

// CapacityError tổng sức chứa của các phòng đã chọn không đủ cho số khách cần giường.
type CapacityError struct {
	NeedBed        int
	Capacity       int
	MinRoomsNeeded int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("không đủ sức chứa: cần %d giường nhưng các phòng đã chọn chỉ có %d, cần tối thiểu %d phòng",
		e.NeedBed, e.Capacity, e.MinRoomsNeeded)
}

// Shortfall số giường còn thiếu.
func (e *CapacityError) Shortfall() int {
	return e.NeedBed - e.Capacity
}

// DistributionError tổng sức chứa đủ nhưng không xếp hết khách vào từng phòng.
// Trường hợp hiếm, xem fillSlots trong allocator.go.
type DistributionError struct {
	Remaining Occupants
}

func (e *DistributionError) Error() string {
	return fmt.Sprintf("không xếp được hết khách vào phòng: còn lại %d người lớn, %d trẻ em, %d em bé",
		e.Remaining.Adults, e.Remaining.ChildrenBed, e.Remaining.InfantsBed)
}
