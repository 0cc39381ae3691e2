package domain

// Verdict is the outcome of a remote safety check
type Verdict struct {
	Safe   bool
	Reason string
	// Defaulted marks a verdict produced by the fail-open policy rather
	// than the service itself (call error, timeout, unparseable reply).
	Defaulted bool
}

// DefaultSafeVerdict is the codified fallback when the safety service
// cannot be reached: the system prefers availability over strict
// enforcement and lets the content through.
func DefaultSafeVerdict() Verdict {
	return Verdict{Safe: true, Defaulted: true}
}

// OracleMode selects the tone of a generated ambient line
type OracleMode string

const (
	OracleChaos  OracleMode = "chaos"
	OracleRelief OracleMode = "relief"
)
