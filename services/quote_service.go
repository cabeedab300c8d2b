package services

import (
	"fmt"
	"strconv"

	"zomestay-backend/dto"
	"zomestay-backend/errors"
	"zomestay-backend/models"
	"zomestay-backend/pricing"
	"zomestay-backend/services/logger"
	"zomestay-backend/utils"
)

// QuoteService ghép kho phòng, bảng giá gói ăn và engine tính giá
// thành một báo giá hoàn chỉnh cho request của khách.
type QuoteService struct {
	rooms  *RoomService
	meals  *MealPlanService
	logger logger.Logger
}

// QuoteServiceOptions tham số khởi tạo QuoteService
type QuoteServiceOptions struct {
	Rooms  *RoomService
	Meals  *MealPlanService
	Logger logger.Logger
}

// NewQuoteService tạo instance mới của QuoteService
func NewQuoteService(opts QuoteServiceOptions) *QuoteService {
	return &QuoteService{
		rooms:  opts.Rooms,
		meals:  opts.Meals,
		logger: opts.Logger,
	}
}

// BuildQuote tính báo giá cho request: số đêm, phân bổ khách, giá giường, tiền ăn.
// Lỗi từ engine (ValidationError, CapacityError, DistributionError) được trả
// nguyên dạng để controller ánh xạ sang response phù hợp.
func (s *QuoteService) BuildQuote(req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	nights, err := utils.CalculateNights(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, err.Error(), err)
	}

	roomModels, err := s.rooms.GetRoomsForQuote(req.PropertyID, req.RoomIDs)
	if err != nil {
		return nil, err
	}

	engineRooms := make([]pricing.Room, len(roomModels))
	for i, rm := range roomModels {
		engineRooms[i] = rm.ToPricingRoom()
	}

	input := pricing.QuoteInput{
		Rooms: engineRooms,
		Party: pricing.Party{
			Adults:        req.Adults,
			ChildrenBed:   req.ChildrenBed,
			InfantsBed:    req.InfantsBed,
			ChildrenNoBed: req.ChildrenNoBed,
			InfantsNoBed:  req.InfantsNoBed,
		},
		Nights: nights,
	}

	var planWarnings []string
	if len(req.MealSelections) > 0 {
		table, err := s.meals.GetPricingTable()
		if err != nil {
			return nil, err
		}

		selections, warnings, err := s.resolveMealSelections(req.MealSelections, roomModels, table)
		if err != nil {
			return nil, err
		}

		input.MealSelections = selections
		input.MealPricing = table
		input.InfantMealPolicy = pricing.InfantMealFree
		planWarnings = warnings
	}

	quote, err := pricing.BuildQuote(input)
	if err != nil {
		return nil, err
	}

	resp := toQuoteResponse(req.PropertyID, nights, roomModels, quote)
	resp.Warnings = append(resp.Warnings, planWarnings...)

	s.logger.Info("Báo giá %d phòng, %d đêm, tổng %.2f", len(roomModels), nights, resp.GrandTotal)

	return resp, nil
}

// resolveMealSelections chuyển lựa chọn gói ăn sang map cho engine.
// Mã gói không tồn tại cho loại phòng đó không chặn báo giá: phòng đó
// không tính tiền ăn, kèm cảnh báo và gợi ý mã gần nhất nếu có.
func (s *QuoteService) resolveMealSelections(selections []dto.MealSelection, rooms []models.Room, table pricing.MealPricingTable) (map[string]string, []string, error) {
	byID := make(map[uint]models.Room, len(rooms))
	for _, r := range rooms {
		byID[r.RoomId] = r
	}

	known, err := s.meals.GetKnownPlanCodes()
	if err != nil {
		return nil, nil, err
	}

	resolved := make(map[string]string, len(selections))
	var warnings []string
	for _, sel := range selections {
		room, ok := byID[sel.RoomID]
		if !ok {
			return nil, nil, errors.NewAppError(errors.ErrCodeRoomNotFound,
				fmt.Sprintf("Lựa chọn gói ăn cho phòng %d không thuộc báo giá", sel.RoomID), nil)
		}

		typeKey := strconv.FormatUint(uint64(room.RoomTypeID), 10)
		if _, ok := table[typeKey][sel.PlanCode]; !ok {
			warning := fmt.Sprintf("phòng %d: không có gói ăn %q cho loại phòng này", sel.RoomID, sel.PlanCode)
			if suggestion := SuggestPlanCode(sel.PlanCode, known); suggestion != "" {
				warning += fmt.Sprintf(", có phải bạn muốn %q?", suggestion)
			}
			warnings = append(warnings, warning)
			continue
		}

		resolved[strconv.FormatUint(uint64(sel.RoomID), 10)] = sel.PlanCode
	}

	return resolved, warnings, nil
}

// toQuoteResponse ánh xạ kết quả engine sang DTO response theo thứ tự phòng
func toQuoteResponse(propertyID uint, nights int, rooms []models.Room, quote *pricing.Quote) *dto.QuoteResponse {
	priced := make(map[string]pricing.PricedRoom, len(quote.Totals.PerRoom))
	for _, p := range quote.Totals.PerRoom {
		priced[p.RoomID] = p
	}

	respRooms := make([]dto.QuoteRoomResponse, len(rooms))
	for i, rm := range rooms {
		a := quote.Assignments[i]
		p := priced[a.RoomID]
		respRooms[i] = dto.QuoteRoomResponse{
			RoomID:     rm.RoomId,
			RoomName:   rm.RoomName,
			RoomTypeID: rm.RoomTypeID,
			Base: dto.QuoteOccupants{
				Adults:      a.Base.Adults,
				ChildrenBed: a.Base.ChildrenBed,
				InfantsBed:  a.Base.InfantsBed,
			},
			Extra: dto.QuoteOccupants{
				Adults:      a.Extra.Adults,
				ChildrenBed: a.Extra.ChildrenBed,
				InfantsBed:  a.Extra.InfantsBed,
			},
			NoBed: dto.QuoteNoBed{
				ChildrenNoBed: a.NoBed.ChildrenNoBed,
				InfantsNoBed:  a.NoBed.InfantsNoBed,
			},
			IsSingle:       p.IsSingle,
			PerNight:       p.PerNight,
			Total:          p.Total,
			MealsTotal:     p.MealsTotal,
			TotalWithMeals: p.TotalWithMeals,
		}
	}

	return &dto.QuoteResponse{
		PropertyID: propertyID,
		Nights:     nights,
		Rooms:      respRooms,
		GrandTotal: quote.Totals.GrandTotal,
		Warnings:   quote.Warnings,
	}
}
