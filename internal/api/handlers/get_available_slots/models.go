package get_available_slots

import (
	"strconv"

	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	DurationMinutes int             `json:"duration"`
	IsBlackout      bool            `json:"isBlackout"`
	Slots           []AvailableSlot `json:"availableSlots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.String(),
		DurationMinutes: resp.DurationMinutes,
		IsBlackout:      resp.IsBlackout,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустая длительность означает длительность по умолчанию; явный 0 отклоняется use case.
func ToUseCaseRequest(dateStr, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}
	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = &duration
	}

	return req, nil
}
