package goshape

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles parsing options. The zero value is the permissive default:
// duplicate keys are tolerated (last one wins, per encoding/json convention)
// and neither depth nor size is capped.
type ParseOpt struct {
	OnDuplicateKey Severity // Error rejects duplicate JSON keys; Ignore/Warn tolerate them.
	MaxDepth       int      // Maximum input nesting depth (0 = unlimited).
	MaxBytes       int64    // Maximum consumed input bytes (0 = unlimited).
}
