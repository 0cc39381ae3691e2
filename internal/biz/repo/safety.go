package repo

import (
	"context"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
)

// SafetyRepo is the remote content-safety interface.
// An error means the service could not produce a verdict; callers apply
// the fail-open policy (domain.DefaultSafeVerdict) themselves so the
// fallback stays a visible, testable decision.
type SafetyRepo interface {
	Check(ctx context.Context, text string) (domain.Verdict, error)
}

// OracleRepo generates short empathetic lines.
// Errors degrade to a fixed per-mode fallback list at the call site.
type OracleRepo interface {
	GenerateLine(ctx context.Context, mode domain.OracleMode) (string, error)
}
