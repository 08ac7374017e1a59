// File: errors.go
// Role: sentinel errors for plans and configurations.

package experiment

import "errors"

var (
	// ErrUnknownModel indicates a model name other than er/ws.
	ErrUnknownModel = errors.New("experiment: unknown model")

	// ErrInvalidPlan indicates a plan that cannot run (no configurations,
	// no iterations, negative sample size).
	ErrInvalidPlan = errors.New("experiment: invalid plan")

	// ErrSampleTooLarge indicates SampleIndices was asked for more distinct
	// indices than the range holds.
	ErrSampleTooLarge = errors.New("experiment: sample larger than population")
)
