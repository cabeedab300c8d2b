package validator

import (
	"strings"
	"time"

	"zomestay-backend/dto"
	"zomestay-backend/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateQuoteRequest validate request báo giá
func ValidateQuoteRequest(req *dto.QuoteRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	if req.Adults < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Booking phải có ít nhất một người lớn", nil)
	}
	if req.ChildrenBed < 0 || req.InfantsBed < 0 || req.ChildrenNoBed < 0 || req.InfantsNoBed < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số khách không được âm", nil)
	}

	checkInDate, err := time.Parse("02/01/2006", req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOutDate, err := time.Parse("02/01/2006", req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	seen := make(map[uint]bool, len(req.RoomIDs))
	for _, id := range req.RoomIDs {
		if id == 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "ID phòng không hợp lệ", nil)
		}
		// Mỗi phòng chỉ được xuất hiện một lần, phòng trùng sẽ bị tính giá hai lần
		if seen[id] {
			return errors.NewAppError(errors.ErrCodeValidation, "Danh sách phòng chứa ID trùng lặp", nil)
		}
		seen[id] = true
	}

	for _, sel := range req.MealSelections {
		if sel.RoomID == 0 || strings.TrimSpace(sel.PlanCode) == "" {
			return errors.NewAppError(errors.ErrCodeValidation, "Gói ăn đã chọn không hợp lệ", nil)
		}
	}

	return nil
}

// ValidateMealPlan validate request tạo/cập nhật gói ăn
func ValidateMealPlan(req *dto.UpsertMealPlanRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	if strings.TrimSpace(req.Code) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã gói ăn không được để trống", nil)
	}

	if req.AdultPrice < 0 || req.ChildPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gói ăn không được âm", nil)
	}

	return nil
}
