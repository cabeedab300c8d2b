package controllers

import (
	"strconv"

	"zomestay-backend/dto"
	"zomestay-backend/errors"
	"zomestay-backend/response"
	"zomestay-backend/services"
	"zomestay-backend/validator"

	"github.com/gin-gonic/gin"
)

// MealPlanController xử lý API gói ăn
type MealPlanController struct {
	meals *services.MealPlanService
}

// NewMealPlanController tạo instance mới của MealPlanController
func NewMealPlanController(meals *services.MealPlanService) *MealPlanController {
	return &MealPlanController{meals: meals}
}

// GetMealPlans lấy danh sách gói ăn đang hoạt động
// @Summary Lấy danh sách gói ăn
// @Tags mealplan
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.MealPlanResponse}
// @Router /api/v1/mealplans [get]
func (ctl *MealPlanController) GetMealPlans(c *gin.Context) {
	plans, err := ctl.meals.GetAllMealPlans()
	if err != nil {
		response.ServerError(c)
		return
	}

	planResponses := make([]dto.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		planResponses = append(planResponses, dto.MealPlanResponse{
			ID:         plan.ID,
			RoomTypeID: plan.RoomTypeID,
			Code:       plan.Code,
			Name:       plan.Name,
			AdultPrice: plan.AdultPrice,
			ChildPrice: plan.ChildPrice,
			Status:     plan.Status,
		})
	}

	response.Success(c, planResponses)
}

// UpsertMealPlan tạo mới hoặc cập nhật một gói ăn (chỉ admin)
// @Summary Tạo/cập nhật gói ăn
// @Tags mealplan
// @Accept json
// @Produce json
// @Param request body dto.UpsertMealPlanRequest true "Thông tin gói ăn"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.MealPlanResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/mealplans [post]
func (ctl *MealPlanController) UpsertMealPlan(c *gin.Context) {
	var req dto.UpsertMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateMealPlan(&req); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	plan, err := ctl.meals.UpsertMealPlan(req)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.MealPlanResponse{
		ID:         plan.ID,
		RoomTypeID: plan.RoomTypeID,
		Code:       plan.Code,
		Name:       plan.Name,
		AdultPrice: plan.AdultPrice,
		ChildPrice: plan.ChildPrice,
		Status:     plan.Status,
	})
}

// DeleteMealPlan xóa một gói ăn (chỉ admin)
// @Summary Xóa gói ăn
// @Tags mealplan
// @Produce json
// @Param id path int true "ID gói ăn"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/mealplans/{id} [delete]
func (ctl *MealPlanController) DeleteMealPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID gói ăn không hợp lệ")
		return
	}

	if err := ctl.meals.DeleteMealPlan(uint(id)); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodePlanNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
