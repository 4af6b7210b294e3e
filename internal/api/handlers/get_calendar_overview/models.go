package get_calendar_overview

import (
	getCalendarOverview "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_overview"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// OverviewResponse HTTP response model
type OverviewResponse struct {
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	TotalAppointments int    `json:"totalAppointments"`
	AvailableSlots    int    `json:"availableSlots"`
	BusySlots         int    `json:"busySlots"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startStr, endStr string) (*getCalendarOverview.Request, error) {
	start, err := types.ParseDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := types.ParseDate(endStr)
	if err != nil {
		return nil, err
	}
	return &getCalendarOverview.Request{StartDate: start, EndDate: end}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarOverview.Response) *OverviewResponse {
	return &OverviewResponse{
		StartDate:         resp.StartDate.String(),
		EndDate:           resp.EndDate.String(),
		TotalAppointments: resp.TotalAppointments,
		AvailableSlots:    resp.AvailableSlots,
		BusySlots:         resp.BusySlots,
	}
}
