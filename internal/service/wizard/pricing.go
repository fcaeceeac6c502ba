package wizard

import "github.com/m04kA/TourOperator-BookingService/internal/domain"

// recomputeTotals пересчитывает промежуточные суммы и общий итог
// из текущих коллекций позиций
//
// Вызывается после каждой структурной мутации коллекций: закешированному
// итогу после мутации доверять нельзя, итог всегда выводится заново
func recomputeTotals(st domain.BookingState) domain.BookingState {
	st.Subtotals = domain.Subtotals{
		Flights:        sumFlights(st.Flights),
		Accommodations: sumAccommodations(st.Accommodations),
		Vehicles:       sumVehicles(st.Vehicles),
		Activities:     sumActivities(st.Activities),
	}
	st.TotalPrice = st.Subtotals.Sum()
	return st
}

func sumFlights(items []domain.FlightItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}

func sumAccommodations(items []domain.AccommodationItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}

func sumVehicles(items []domain.VehicleItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}

func sumActivities(items []domain.ActivityItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}
