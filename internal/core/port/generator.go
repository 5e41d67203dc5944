package port

import (
	"context"
	"time"

	"growth-agent/internal/core/domain"
)

// Generator is the outbound port to the generative language model. Every
// failure is returned as an error wrapping ErrGeneration.
type Generator interface {
	// Generate submits prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
	// GeneratePlan requests a weekly growth plan for biz. A successful
	// response that is not a JSON object is returned as a Raw payload.
	GeneratePlan(ctx context.Context, biz domain.BusinessContext) (domain.PlanPayload, error)
}

// Telemetry receives core events for metrics.
type Telemetry interface {
	ObserveAdmission(outcome string)
	ObserveGeneration(contentType domain.ContentType, outcome string, elapsed time.Duration)
}

// Admission outcomes reported to Telemetry.
const (
	AdmissionAuthenticated = "authenticated"
	AdmissionAllowed       = "allowed"
	AdmissionDenied        = "denied"
	AdmissionError         = "error"
)

// Generation outcomes reported to Telemetry.
const (
	GenerationSuccess = "success"
	GenerationFailure = "failure"
)

// NopTelemetry discards all events.
type NopTelemetry struct{}

func (NopTelemetry) ObserveAdmission(string) {}

func (NopTelemetry) ObserveGeneration(domain.ContentType, string, time.Duration) {}
