package list_appointments

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// ToServiceRequest собирает запрос к сервису из query параметров.
// Пустые параметры означают отсутствие фильтра.
func ToServiceRequest(startDate, endDate, status, includeCancelled string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if startDate != "" {
		req.StartDate = ptr.Ptr(startDate)
	}
	if endDate != "" {
		req.EndDate = ptr.Ptr(endDate)
	}
	if status != "" {
		req.Status = ptr.Ptr(status)
	}
	if includeCancelled != "" {
		v, err := strconv.ParseBool(includeCancelled)
		if err != nil {
			return nil, fmt.Errorf("includeCancelled: %w", err)
		}
		req.IncludeCancelled = v
	}

	return req, nil
}
