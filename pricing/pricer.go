package pricing

// PriceRoom tính giá giường của một phòng theo phân bổ đã có.
// Không bao giờ lỗi: giá đơn thiếu thì dùng giá cơ bản, phụ phí thiếu coi như 0.
func PriceRoom(room Room, a RoomAssignment, nights int) RoomPrice {
	// Giá đơn chỉ áp dụng khi phòng có đúng một người lớn và không còn ai khác,
	// kể cả giường phụ.
	isSingle := a.Base.Adults == 1 && a.Base.Total() == 1 && a.Extra.Total() == 0

	perNight := room.BasePrice
	if isSingle && room.SingleOccupancyPrice != nil {
		perNight = *room.SingleOccupancyPrice
	}

	perNight += room.ExtraBedPriceAdult*float64(a.Extra.Adults) +
		room.ExtraBedPriceChild*float64(a.Extra.ChildrenBed) +
		room.ExtraBedPriceInfant*float64(a.Extra.InfantsBed)

	return RoomPrice{
		RoomID:   a.RoomID,
		PerNight: perNight,
		Total:    perNight * float64(nights),
		IsSingle: isSingle,
	}
}
