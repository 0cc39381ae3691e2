package data

import (
	"context"
	"fmt"

	"github.com/fsociety-space/fsociety-core/gemini"
	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
)

// geminiSafetyRepo implements the safety check on the Gemini client
type geminiSafetyRepo struct {
	client *gemini.Client
}

// NewSafetyRepo creates a safety repository. A nil client (no API key
// configured) yields a repository whose verdicts are always the
// fail-open default.
func NewSafetyRepo(client *gemini.Client) repo.SafetyRepo {
	return &geminiSafetyRepo{client: client}
}

// Check returns the service verdict, or an error for the caller's
// fail-open policy to absorb
func (r *geminiSafetyRepo) Check(ctx context.Context, text string) (domain.Verdict, error) {
	if r.client == nil {
		return domain.DefaultSafeVerdict(), nil
	}

	result, err := r.client.CheckSafety(ctx, text)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("check safety: %w", err)
	}
	return domain.Verdict{Safe: result.Safe, Reason: result.Reason}, nil
}

// geminiOracleRepo implements line generation on the Gemini client
type geminiOracleRepo struct {
	client *gemini.Client
}

// NewOracleRepo creates a generation repository. A nil client always
// errors, pushing callers to their fixed fallback lists.
func NewOracleRepo(client *gemini.Client) repo.OracleRepo {
	return &geminiOracleRepo{client: client}
}

// GenerateLine generates a short line in the requested mode
func (r *geminiOracleRepo) GenerateLine(ctx context.Context, mode domain.OracleMode) (string, error) {
	if r.client == nil {
		return "", fmt.Errorf("generate line: no client configured")
	}
	return r.client.GenerateLine(ctx, string(mode))
}
