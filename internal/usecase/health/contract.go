package health

import "context"

// CorpusPinger checks transcript corpus availability.
type CorpusPinger interface {
	Ping(ctx context.Context) error
}

// NarrativeChecker checks narrative provider availability.
type NarrativeChecker interface {
	HealthCheck(ctx context.Context) error
}
