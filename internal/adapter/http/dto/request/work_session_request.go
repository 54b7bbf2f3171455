package request

// Numeric fields carry no required binding: gin treats zero values as absent,
// and zero rates, hours and quantities are for the use case guards to judge.

type StartTimerRequest struct {
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourly_rate"`
}

type LogTimeRequest struct {
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Description string  `json:"description"`
}

type AddMaterialRequest struct {
	Name       string  `json:"name" binding:"required"`
	PartNumber string  `json:"part_number"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Category   string  `json:"category"`
}

type AddTaskRequest struct {
	Description string `json:"description" binding:"required"`
}

// TaskProgressRequest marks one task, addressed by position, done or not.
// Index is a pointer so position zero survives the required binding.
type TaskProgressRequest struct {
	Index     *int `json:"index" binding:"required"`
	Completed bool `json:"completed"`
}

type NoteRequest struct {
	Text string `json:"text" binding:"required"`
}
