package services

import (
	"fmt"
	"time"

	"zomestay-backend/config"
	"zomestay-backend/constants"
	"zomestay-backend/errors"
	"zomestay-backend/models"
	"zomestay-backend/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RoomService xử lý truy vấn kho phòng, có cache Redis
type RoomService struct {
	db     *gorm.DB
	redis  *redis.Client
	logger logger.Logger
}

// RoomServiceOptions tham số khởi tạo RoomService
type RoomServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

// NewRoomService tạo instance mới của RoomService
func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		db:     opts.DB,
		redis:  opts.Redis,
		logger: opts.Logger,
	}
}

// GetAllRooms lấy tất cả phòng, ưu tiên đọc từ cache
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room

	if s.redis != nil {
		if err := GetFromRedis(config.Ctx, s.redis, CacheKeyAllRooms, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := s.db.Preload("Property").Preload("RoomType").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lấy được danh sách phòng", err)
	}

	if s.redis != nil {
		if err := SetToRedis(config.Ctx, s.redis, CacheKeyAllRooms, rooms, 10*time.Minute); err != nil {
			s.logger.Warn("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	return rooms, nil
}

// GetRoomByID lấy chi tiết một phòng
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Property").Preload("RoomType").First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, fmt.Sprintf("Không tìm thấy phòng %d", id), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn phòng", err)
	}
	return &room, nil
}

// GetRoomsForQuote lấy các phòng cho một báo giá, giữ nguyên thứ tự caller đưa vào.
// Mọi phòng phải tồn tại, thuộc đúng property, đang mở bán và không trùng lặp:
// một phòng xuất hiện hai lần sẽ bị tính sức chứa và giá gấp đôi.
func (s *RoomService) GetRoomsForQuote(propertyID uint, roomIDs []uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Preload("RoomType").Where("room_id IN ?", roomIDs).Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn phòng", err)
	}

	byID := make(map[uint]models.Room, len(rooms))
	for _, r := range rooms {
		if r.PropertyID != propertyID {
			return nil, errors.NewAppError(errors.ErrCodePropertyMismatch,
				fmt.Sprintf("Phòng %d không thuộc chỗ ở %d", r.RoomId, propertyID), nil)
		}
		if r.Status != constants.RoomStatusAvailable {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotAvailable,
				fmt.Sprintf("Phòng %d hiện không mở bán", r.RoomId), errors.ErrRoomNotAvailable)
		}
		byID[r.RoomId] = r
	}

	// Trả về theo đúng thứ tự request — thứ tự phòng ảnh hưởng kết quả phân bổ
	ordered := make([]models.Room, 0, len(roomIDs))
	requested := make(map[uint]bool, len(roomIDs))
	for _, id := range roomIDs {
		if requested[id] {
			return nil, errors.NewAppError(errors.ErrCodeValidation,
				fmt.Sprintf("Phòng %d xuất hiện nhiều lần trong báo giá", id), nil)
		}
		requested[id] = true

		r, ok := byID[id]
		if !ok {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, fmt.Sprintf("Không tìm thấy phòng %d", id), nil)
		}
		ordered = append(ordered, r)
	}

	return ordered, nil
}

// WarmCache nạp lại cache danh sách phòng (gọi từ cron job)
func (s *RoomService) WarmCache() error {
	if s.redis == nil {
		return nil
	}

	var rooms []models.Room
	if err := s.db.Preload("Property").Preload("RoomType").Find(&rooms).Error; err != nil {
		return err
	}

	return SetToRedis(config.Ctx, s.redis, CacheKeyAllRooms, rooms, 24*time.Hour)
}
