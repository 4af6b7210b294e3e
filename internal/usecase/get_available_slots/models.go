package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date            types.Date // Дата, на которую нужны слоты
	DurationMinutes *int       // Длительность записи; nil - длительность по умолчанию из конфигурации
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            types.Date    // Дата, на которую запрашивались слоты
	DurationMinutes int           // Фактически использованная длительность
	IsBlackout      bool          // День закрыт blackout-датой
	Slots           []domain.Slot // Свободные слоты в порядке генерации
}

// Limits допустимый диапазон длительности записи
type Limits struct {
	MinDurationMinutes int
	MaxDurationMinutes int
}
