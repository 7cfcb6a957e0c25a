package models

// Package is a raw reading from the sensor block: a training tag and its values.
type Package struct {
	Type string    `yaml:"type" json:"type"`
	Data []float64 `yaml:"data" json:"data"`
}
