package get_calendar_overview

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Request модель запроса обзора календаря
type Request struct {
	StartDate types.Date
	EndDate   types.Date
}

// Response сводка за период
type Response struct {
	StartDate         types.Date
	EndDate           types.Date
	TotalAppointments int // Неотмененные записи в [StartDate, EndDate]
	AvailableSlots    int // Свободные слоты в [StartDate, EndDate)
	BusySlots         int
}

// Settings параметры расчета обзора
type Settings struct {
	DurationMinutes int // Длительность слота для подсчета свободных слотов
	MaxPeriodDays   int
}
