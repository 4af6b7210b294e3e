package availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// IsBlackout возвращает true, если день целиком закрыт хотя бы одной blackout-датой.
// Неповторяющаяся дата совпадает по году, месяцу и дню, повторяющаяся - только по месяцу и дню.
func IsBlackout(day types.Date, blackouts []domain.BlackoutDate) bool {
	for i := range blackouts {
		if blackouts[i].Matches(day) {
			return true
		}
	}
	return false
}
