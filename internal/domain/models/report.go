package models

import "fmt"

const reportFormat = "Training type: %s; " +
	"Duration: %.3f h; " +
	"Distance: %.3f km; " +
	"Mean speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Report is the summary of one finished training.
type Report struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the report as a single line, every number with three decimals.
func (r Report) Message() string {
	return fmt.Sprintf(reportFormat, r.TrainingType, r.Duration, r.Distance, r.Speed, r.Calories)
}

func (r Report) String() string {
	return r.Message()
}
