package services

import (
	"strconv"
	"time"

	"zomestay-backend/config"
	"zomestay-backend/constants"
	"zomestay-backend/dto"
	"zomestay-backend/errors"
	"zomestay-backend/models"
	"zomestay-backend/pricing"
	"zomestay-backend/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// MealPlanService xử lý gói ăn và bảng giá gói ăn
type MealPlanService struct {
	db     *gorm.DB
	redis  *redis.Client
	logger logger.Logger
}

// MealPlanServiceOptions tham số khởi tạo MealPlanService
type MealPlanServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

// NewMealPlanService tạo instance mới của MealPlanService
func NewMealPlanService(opts MealPlanServiceOptions) *MealPlanService {
	return &MealPlanService{
		db:     opts.DB,
		redis:  opts.Redis,
		logger: opts.Logger,
	}
}

// GetAllMealPlans lấy tất cả gói ăn đang hoạt động, ưu tiên đọc từ cache
func (s *MealPlanService) GetAllMealPlans() ([]models.MealPlan, error) {
	var plans []models.MealPlan

	if s.redis != nil {
		if err := GetFromRedis(config.Ctx, s.redis, CacheKeyAllMealPlans, &plans); err == nil && len(plans) > 0 {
			return plans, nil
		}
	}

	if err := s.db.Where("status = ?", constants.MealPlanStatusActive).Find(&plans).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lấy được danh sách gói ăn", err)
	}

	if s.redis != nil {
		if err := SetToRedis(config.Ctx, s.redis, CacheKeyAllMealPlans, plans, 10*time.Minute); err != nil {
			s.logger.Warn("Lỗi khi lưu danh sách gói ăn vào Redis: %v", err)
		}
	}

	return plans, nil
}

// GetPricingTable xây bảng giá gói ăn cho engine: roomTypeID -> planCode -> đơn giá
func (s *MealPlanService) GetPricingTable() (pricing.MealPricingTable, error) {
	plans, err := s.GetAllMealPlans()
	if err != nil {
		return nil, err
	}

	table := make(pricing.MealPricingTable)
	for _, p := range plans {
		typeKey := strconv.FormatUint(uint64(p.RoomTypeID), 10)
		if _, ok := table[typeKey]; !ok {
			table[typeKey] = make(map[string]pricing.PlanRate)
		}
		table[typeKey][p.Code] = pricing.PlanRate{
			Adult: p.AdultPrice,
			Child: p.ChildPrice,
		}
	}

	return table, nil
}

// GetKnownPlanCodes lấy danh sách mã gói ăn đang có, dùng cho gợi ý khi khách gõ sai
func (s *MealPlanService) GetKnownPlanCodes() ([]string, error) {
	plans, err := s.GetAllMealPlans()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	codes := make([]string, 0, len(plans))
	for _, p := range plans {
		if !seen[p.Code] {
			seen[p.Code] = true
			codes = append(codes, p.Code)
		}
	}

	return codes, nil
}

// UpsertMealPlan tạo mới hoặc cập nhật một gói ăn theo cặp (roomTypeId, code)
func (s *MealPlanService) UpsertMealPlan(req dto.UpsertMealPlanRequest) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.Where("room_type_id = ? AND code = ?", req.RoomTypeID, req.Code).First(&plan).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn gói ăn", err)
	}

	plan.RoomTypeID = req.RoomTypeID
	plan.Code = req.Code
	plan.Name = req.Name
	plan.AdultPrice = req.AdultPrice
	plan.ChildPrice = req.ChildPrice
	plan.Status = req.Status

	if err := s.db.Save(&plan).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được gói ăn", err)
	}

	s.invalidateCache()

	return &plan, nil
}

// DeleteMealPlan xóa một gói ăn theo id
func (s *MealPlanService) DeleteMealPlan(id uint) error {
	result := s.db.Delete(&models.MealPlan{}, id)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không xóa được gói ăn", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodePlanNotFound, "Không tìm thấy gói ăn", errors.ErrMealPlanNotFound)
	}

	s.invalidateCache()

	return nil
}

func (s *MealPlanService) invalidateCache() {
	if s.redis == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.redis, CacheKeyAllMealPlans); err != nil {
		s.logger.Warn("Lỗi khi xóa cache gói ăn: %v", err)
	}
}

// WarmCache nạp lại cache danh sách gói ăn (gọi từ cron job)
func (s *MealPlanService) WarmCache() error {
	if s.redis == nil {
		return nil
	}

	var plans []models.MealPlan
	if err := s.db.Where("status = ?", constants.MealPlanStatusActive).Find(&plans).Error; err != nil {
		return err
	}

	return SetToRedis(config.Ctx, s.redis, CacheKeyAllMealPlans, plans, 24*time.Hour)
}
