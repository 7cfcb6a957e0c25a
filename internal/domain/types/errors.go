package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownDiscipline  = errors.New("unknown training type")
	ErrParamCount         = errors.New("wrong number of training parameters")
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrNotImplemented     = errors.New("operation not implemented for abstract training type")
)

// UnknownDisciplineError is returned when a package carries a tag outside of Disciplines().
type UnknownDisciplineError struct {
	Tag   string
	Valid []Discipline
}

func (e *UnknownDisciplineError) Error() string {
	valid := make([]string, 0, len(e.Valid))
	for _, d := range e.Valid {
		valid = append(valid, d.String())
	}
	return fmt.Sprintf("%s: %q, valid types: %s", ErrUnknownDiscipline, e.Tag, strings.Join(valid, ", "))
}

func (e *UnknownDisciplineError) Unwrap() error {
	return ErrUnknownDiscipline
}

// ParamCountError is returned when the values tuple does not match the discipline arity.
type ParamCountError struct {
	Discipline Discipline
	Expected   int
	Got        int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrParamCount, e.Discipline, e.Expected, e.Got)
}

func (e *ParamCountError) Unwrap() error {
	return ErrParamCount
}

// InvalidMeasurementError describes a single field that failed validation.
type InvalidMeasurementError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidMeasurementError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidMeasurement, e.Field, e.Value, e.Reason)
}

func (e *InvalidMeasurementError) Unwrap() error {
	return ErrInvalidMeasurement
}
