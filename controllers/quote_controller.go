package controllers

import (
	stderrors "errors"
	"fmt"
	"strings"

	"zomestay-backend/dto"
	"zomestay-backend/errors"
	"zomestay-backend/pricing"
	"zomestay-backend/response"
	"zomestay-backend/services"
	"zomestay-backend/utils"
	"zomestay-backend/validator"

	"github.com/gin-gonic/gin"
)

// QuoteController xử lý API báo giá
type QuoteController struct {
	quotes *services.QuoteService
}

// NewQuoteController tạo instance mới của QuoteController
func NewQuoteController(quotes *services.QuoteService) *QuoteController {
	return &QuoteController{quotes: quotes}
}

// CreateQuote tính báo giá cho các phòng đã chọn
// @Summary Tính báo giá phòng
// @Description Phân bổ khách vào các phòng đã chọn và tính giá giường, tiền ăn
// @Tags quote
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Thông tin báo giá"
// @Success 200 {object} response.Response{data=dto.QuoteResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/quote [post]
func (ctl *QuoteController) CreateQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateQuoteRequest(&req); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	quote, err := ctl.quotes.BuildQuote(req)
	if err != nil {
		handleQuoteError(c, err)
		return
	}

	utils.LogInfo("Báo giá: chỗ ở %d, %d phòng, %d đêm, tổng %.2f",
		quote.PropertyID, len(quote.Rooms), quote.Nights, quote.GrandTotal)
	response.Success(c, quote)
}

// handleQuoteError ánh xạ lỗi từ engine và service sang HTTP response
func handleQuoteError(c *gin.Context, err error) {
	var valErr *pricing.ValidationError
	if stderrors.As(err, &valErr) {
		response.BadRequest(c, fmt.Sprintf("Dữ liệu không hợp lệ: %s", strings.Join(valErr.Fields, ", ")))
		return
	}

	var capErr *pricing.CapacityError
	if stderrors.As(err, &capErr) {
		response.BadRequestWithData(c,
			fmt.Sprintf("Các phòng đã chọn không đủ sức chứa, cần tối thiểu %d phòng", capErr.MinRoomsNeeded),
			dto.CapacitySuggestion{
				NeedBed:        capErr.NeedBed,
				Capacity:       capErr.Capacity,
				Shortfall:      capErr.Shortfall(),
				MinRoomsNeeded: capErr.MinRoomsNeeded,
			})
		return
	}

	var distErr *pricing.DistributionError
	if stderrors.As(err, &distErr) {
		response.BadRequestWithData(c, "Không xếp được hết khách vào các phòng đã chọn",
			dto.DistributionDetail{
				Adults:      distErr.Remaining.Adults,
				ChildrenBed: distErr.Remaining.ChildrenBed,
				InfantsBed:  distErr.Remaining.InfantsBed,
			})
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeRoomNotFound, errors.ErrCodePlanNotFound:
			response.NotFound(c)
		case errors.ErrCodeRoomNotAvailable, errors.ErrCodePropertyMismatch, errors.ErrCodeInvalidFormat, errors.ErrCodeValidation, errors.ErrCodeInvalidAmount:
			response.BadRequest(c, appErr.Message)
		default:
			utils.LogError("Lỗi khi tính báo giá: %v", err)
			response.ServerError(c)
		}
		return
	}

	utils.LogError("Lỗi không xác định khi tính báo giá: %v", err)
	response.ServerError(c)
}
