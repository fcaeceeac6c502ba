package domain

// Шаги мастера оформления заявки
const (
	StepClient         = 1
	StepFlights        = 2
	StepAccommodations = 3
	StepVehicles       = 4
	StepActivities     = 5
	StepSummary        = 6

	TotalSteps = 6
)

// Значения по умолчанию
const (
	DefaultTravelWindowDays = 7
	DefaultCurrency         = "RUB"
)

// Business validation constants
const (
	MinQuantity    = 1
	MaxQuantity    = 50
	MaxNotesLength = 1000

	// Минимальная длительность аренды транспорта (дней), ниже которой
	// валидатор дат выдаёт предупреждение
	MinRentalDays = 2

	// Допуск у границы периода поездки (дней), внутри которого
	// валидатор дат выдаёт предупреждение
	BoundaryWarningDays = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Категории позиций заявки
const (
	CategoryFlight        = "flight"
	CategoryAccommodation = "accommodation"
	CategoryVehicle       = "vehicle"
	CategoryActivity      = "activity"
)

// Categories список всех категорий позиций
// Используется при валидации входных данных и сборке ответов
var Categories = []string{
	CategoryFlight,
	CategoryAccommodation,
	CategoryVehicle,
	CategoryActivity,
}
