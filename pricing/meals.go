package pricing

// PriceMeals tính tiền ăn cho từng phòng theo gói ăn đã chọn.
// Phòng không chọn gói, hoặc loại phòng không có bảng giá cho gói đã chọn,
// thì tiền ăn bằng 0 — không phải lỗi. Khách không giường không bao giờ
// tính tiền ăn, chỉ khách chiếm giường (cơ bản hoặc phụ) mới tính.
func PriceMeals(assignments []RoomAssignment, selections map[string]string, table MealPricingTable, nights int, policy InfantMealPolicy) MealQuote {
	quote := MealQuote{PerRoom: make([]RoomMealPrice, 0, len(assignments))}

	for _, a := range assignments {
		total := 0.0

		planID, selected := selections[a.RoomID]
		if selected {
			if rate, ok := lookupPlanRate(table, a.RoomTypeID, planID); ok {
				adults := a.Base.Adults + a.Extra.Adults
				kids := a.Base.ChildrenBed + a.Extra.ChildrenBed
				infants := a.Base.InfantsBed + a.Extra.InfantsBed

				perNight := float64(adults)*rate.Adult + float64(kids)*rate.Child
				if policy == InfantMealAsChild {
					perNight += float64(infants) * rate.Child
				}
				total = perNight * float64(nights)
			}
		}

		quote.PerRoom = append(quote.PerRoom, RoomMealPrice{RoomID: a.RoomID, Total: total})
		quote.TotalMeals += total
	}

	return quote
}

func lookupPlanRate(table MealPricingTable, roomTypeID, planID string) (PlanRate, bool) {
	if table == nil {
		return PlanRate{}, false
	}
	plans, ok := table[roomTypeID]
	if !ok {
		return PlanRate{}, false
	}
	rate, ok := plans[planID]
	return rate, ok
}
