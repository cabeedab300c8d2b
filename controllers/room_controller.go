package controllers

import (
	"strconv"

	"zomestay-backend/dto"
	"zomestay-backend/errors"
	"zomestay-backend/response"
	"zomestay-backend/services"

	"github.com/gin-gonic/gin"
)

// RoomController xử lý API danh sách phòng
type RoomController struct {
	rooms *services.RoomService
}

// NewRoomController tạo instance mới của RoomController
func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetRooms lấy danh sách phòng có phân trang
// @Summary Lấy danh sách phòng
// @Tags room
// @Produce json
// @Param page query int false "Trang"
// @Param limit query int false "Số phần tử mỗi trang"
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /api/v1/rooms [get]
func (ctl *RoomController) GetRooms(c *gin.Context) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	rooms, err := ctl.rooms.GetAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	total := len(rooms)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	roomResponses := make([]dto.RoomResponse, 0, end-start)
	for _, room := range rooms[start:end] {
		roomResponses = append(roomResponses, dto.RoomResponse{
			RoomId:               room.RoomId,
			RoomName:             room.RoomName,
			Occupancy:            room.Occupancy,
			ExtraBedCapacity:     room.ExtraBedCapacity,
			BasePrice:            room.BasePrice,
			SingleOccupancyPrice: room.SingleOccupancyPrice,
			Status:               room.Status,
			CreatedAt:            room.CreatedAt,
			UpdatedAt:            room.UpdatedAt,
			Parent: dto.Parents{
				Id:   room.Property.ID,
				Name: room.Property.Name,
			},
		})
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

// GetRoomDetail lấy chi tiết một phòng
// @Summary Lấy chi tiết phòng
// @Tags room
// @Produce json
// @Param id path int true "ID phòng"
// @Success 200 {object} response.Response{data=dto.RoomDetail}
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [get]
func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	room, err := ctl.rooms.GetRoomByID(uint(id))
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeRoomNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.RoomDetail{
		RoomId:               room.RoomId,
		RoomName:             room.RoomName,
		RoomTypeID:           room.RoomTypeID,
		RoomTypeName:         room.RoomType.Name,
		Occupancy:            room.Occupancy,
		ExtraBedCapacity:     room.ExtraBedCapacity,
		BasePrice:            room.BasePrice,
		SingleOccupancyPrice: room.SingleOccupancyPrice,
		ExtraBedPriceAdult:   room.ExtraBedPriceAdult,
		ExtraBedPriceChild:   room.ExtraBedPriceChild,
		ExtraBedPriceInfant:  room.ExtraBedPriceInfant,
		Description:          room.Description,
		Status:               room.Status,
		Parent: dto.Parents{
			Id:   room.Property.ID,
			Name: room.Property.Name,
		},
	})
}
