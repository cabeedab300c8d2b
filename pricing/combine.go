package pricing

// Combine gộp giá giường và tiền ăn theo từng phòng rồi tính tổng cộng.
// meals có thể nil (không yêu cầu tính tiền ăn) — khi đó tiền ăn coi như 0.
func Combine(bedPrices []RoomPrice, meals *MealQuote) QuoteTotals {
	mealByRoom := map[string]float64{}
	if meals != nil {
		for _, m := range meals.PerRoom {
			mealByRoom[m.RoomID] = m.Total
		}
	}

	totals := QuoteTotals{PerRoom: make([]PricedRoom, 0, len(bedPrices))}
	for _, bp := range bedPrices {
		mealsTotal := mealByRoom[bp.RoomID]
		pr := PricedRoom{
			RoomID:         bp.RoomID,
			PerNight:       bp.PerNight,
			Total:          bp.Total,
			IsSingle:       bp.IsSingle,
			MealsTotal:     mealsTotal,
			TotalWithMeals: bp.Total + mealsTotal,
		}
		totals.PerRoom = append(totals.PerRoom, pr)
		totals.GrandTotal += pr.TotalWithMeals
	}

	return totals
}
