package utils

import (
	"fmt"
	"time"
)

// DateLayout định dạng ngày dùng trong toàn bộ API (dd/mm/yyyy)
const DateLayout = "02/01/2006"

// ParseDate chuyển chuỗi ngày dd/mm/yyyy thành time.Time
func ParseDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

// CalculateNights tính số đêm giữa ngày nhận và ngày trả phòng
func CalculateNights(checkInDate, checkOutDate string) (int, error) {
	checkIn, err := ParseDate(checkInDate)
	if err != nil {
		return 0, fmt.Errorf("ngày nhận phòng không hợp lệ: %w", err)
	}

	checkOut, err := ParseDate(checkOutDate)
	if err != nil {
		return 0, fmt.Errorf("ngày trả phòng không hợp lệ: %w", err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return 0, fmt.Errorf("ngày trả phòng phải sau ngày nhận phòng")
	}

	return nights, nil
}
