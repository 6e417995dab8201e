package health

import (
	"context"

	"github.com/kailas-cloud/seedicon/internal/domain/figure"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db DBPinger
}

// New creates a Service. db can be nil (cache store not configured).
func New(db DBPinger) *Service {
	return &Service{db: db}
}

// Check runs health checks. The derivation self-check exercises the full
// digest-to-parameters path; it only fails if the binary is miscompiled,
// but it turns /health into an end-to-end probe.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			checks["cache_store"] = CheckError
		} else {
			checks["cache_store"] = CheckOK
		}
	}

	if _, err := figure.Derive(seed.New("health", 0)); err != nil {
		checks["derivation"] = CheckError
	} else {
		checks["derivation"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
