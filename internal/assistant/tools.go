package assistant

// Имена инструментов, которые модель может вызвать
const (
	ToolCheckAvailability = "checkAvailability"
	ToolBookAppointment   = "bookAppointment"
)

// Tool описание инструмента в формате function calling
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function имя, описание и JSON-схема параметров
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

// Parameters JSON-схема объекта аргументов
type Parameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property JSON-схема одного аргумента
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Tools возвращает описания всех инструментов
func Tools() []Tool {
	return []Tool{
		{
			Type: "function",
			Function: Function{
				Name:        ToolCheckAvailability,
				Description: "Checks for available appointment slots on a given date.",
				Parameters: Parameters{
					Type: "object",
					Properties: map[string]Property{
						"date": {
							Type:        "string",
							Description: "The date to check for availability, in YYYY-MM-DD format.",
						},
						"duration": {
							Type:        "number",
							Description: "The duration of the appointment in minutes.",
						},
					},
					Required: []string{"date", "duration"},
				},
			},
		},
		{
			Type: "function",
			Function: Function{
				Name:        ToolBookAppointment,
				Description: "Books a new appointment with the customer.",
				Parameters: Parameters{
					Type: "object",
					Properties: map[string]Property{
						"customerName":  {Type: "string", Description: "The customer's full name."},
						"customerPhone": {Type: "string", Description: "The customer's phone number."},
						"datetime": {
							Type:        "string",
							Description: "The appointment start as local time, YYYY-MM-DD HH:mm (an ISO 8601 zone suffix is ignored).",
						},
						"duration": {
							Type:        "number",
							Description: "The duration of the appointment in minutes.",
						},
						"notes": {Type: "string", Description: "Any additional notes for the appointment."},
					},
					Required: []string{"customerName", "customerPhone", "datetime", "duration"},
				},
			},
		},
	}
}
