package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName    string          // Имя клиента
	CustomerPhone   string          // Телефон клиента
	CustomerEmail   *string         // Email клиента (опционально)
	StartsAt        types.WallClock // Начало записи, локальное время без часового пояса
	DurationMinutes *int            // Длительность; nil - длительность услуги или конфигурации
	Notes           *string         // Заметки (опционально)
	AppointmentType *string         // Тип записи, совпадает с названием услуги каталога (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	StartsAt        types.WallClock
	EndsAt          types.WallClock
	DurationMinutes int
	Status          string
	Notes           *string
	AppointmentType *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Limits допустимый диапазон длительности записи
type Limits struct {
	MinDurationMinutes int
	MaxDurationMinutes int
}
