package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

const (
	DefaultFreeTierLimit  = 2
	DefaultFreeTierWindow = 24 * time.Hour
)

var errNoCallerIP = errors.New("anonymous caller has no ip address")

// RateGate admits anonymous callers to a fixed number of generations per IP
// address within a rolling window. Authenticated callers are always
// admitted and never recorded.
type RateGate struct {
	store     port.UsageStore
	limit     int
	window    time.Duration
	now       func() time.Time
	telemetry port.Telemetry
}

// NewRateGate returns a gate writing to store. A non-positive window falls
// back to DefaultFreeTierWindow.
func NewRateGate(store port.UsageStore, limit int, window time.Duration, telemetry port.Telemetry) *RateGate {
	if window <= 0 {
		window = DefaultFreeTierWindow
	}
	if telemetry == nil {
		telemetry = port.NopTelemetry{}
	}
	return &RateGate{
		store:     store,
		limit:     limit,
		window:    window,
		now:       time.Now,
		telemetry: telemetry,
	}
}

// Admit reports whether caller may generate now. For an anonymous caller the
// usage record is written in the same atomic step as the count, so an
// admitted attempt is consumed even if the generation later fails. Store
// errors deny the caller.
func (g *RateGate) Admit(ctx context.Context, caller domain.Caller) (bool, error) {
	if caller.Authenticated() {
		g.telemetry.ObserveAdmission(port.AdmissionAuthenticated)
		return true, nil
	}
	if !caller.IP.IsValid() {
		g.telemetry.ObserveAdmission(port.AdmissionError)
		return false, errNoCallerIP
	}

	now := g.now().UTC()
	rec := domain.UsageRecord{
		ID:         uuid.NewString(),
		IPAddress:  caller.IP.Unmap(),
		SessionKey: caller.SessionKey,
		CreatedAt:  now,
	}
	ok, err := g.store.AdmitFreeTier(ctx, rec, now.Add(-g.window), g.limit)
	if err != nil {
		g.telemetry.ObserveAdmission(port.AdmissionError)
		return false, err
	}
	if !ok {
		g.telemetry.ObserveAdmission(port.AdmissionDenied)
		return false, nil
	}
	g.telemetry.ObserveAdmission(port.AdmissionAllowed)
	return true, nil
}
