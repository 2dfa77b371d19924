// Package severity provides severity level constants for warnings reported
// by the merger and arxio packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a condition reported during a
// merge run.
type Severity int

const (
	// SeverityError indicates a condition that makes the merged document
	// invalid and must abort the run.
	SeverityError Severity = iota

	// SeverityWarning indicates a degraded-but-recoverable condition that
	// should be reviewed, such as a gracefully skipped name clash.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing
	// choices, such as a synthesized container.
	SeverityInfo

	// SeverityCritical indicates a condition that lost information and
	// cannot be recovered from.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
