package merger

import (
	"fmt"
	"strings"

	"github.com/jmattsson/arxtools/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnNameClash indicates a name clash was detected during a merge.
	WarnNameClash WarningCategory = "name_clash"
	// WarnMissingSourcePackage indicates a required source package was absent.
	WarnMissingSourcePackage WarningCategory = "missing_source_package"
	// WarnContainerSynthesized indicates a schema-mandated container was created.
	WarnContainerSynthesized WarningCategory = "container_synthesized"
	// WarnPackageSynthesized indicates a missing destination package was created.
	WarnPackageSynthesized WarningCategory = "package_synthesized"
	// WarnIdentityReplaced indicates duplicate identities were replaced.
	WarnIdentityReplaced WarningCategory = "identity_replaced"
)

// MergeWarning represents a structured warning from the merger package.
// It provides detailed context about non-fatal conditions encountered
// during a merge run.
type MergeWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path is the absolute path of the affected container, if known.
	Path string
	// Message is a human-readable description.
	Message string
	// SourceFile is the document that triggered the warning.
	SourceFile string
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the warning message.
func (w *MergeWarning) String() string {
	return w.Message
}

// NewNameClashWarning creates a warning for a merge name clash.
func NewNameClashWarning(keys []string, srcPath, dstPath, sourceFile string, mode Mode) *MergeWarning {
	return &MergeWarning{
		Category: WarnNameClash,
		Path:     dstPath,
		Message: fmt.Sprintf("%d name clash(es) merging %s into %s: %s",
			len(keys), srcPath, dstPath, strings.Join(keys, ", ")),
		SourceFile: sourceFile,
		Severity:   severity.SeverityWarning,
		Context: map[string]any{
			"keys":        keys,
			"source_path": srcPath,
			"dest_path":   dstPath,
			"mode":        string(mode),
		},
	}
}

// NewMissingSourcePackageWarning creates a warning for an absent source package.
func NewMissingSourcePackageWarning(name, sourceFile string, tolerated bool) *MergeWarning {
	sev := severity.SeverityWarning
	msg := fmt.Sprintf("package %s is missing in source document %s", name, sourceFile)
	if tolerated {
		sev = severity.SeverityInfo
		msg += " (tolerated)"
	}
	return &MergeWarning{
		Category:   WarnMissingSourcePackage,
		Message:    msg,
		SourceFile: sourceFile,
		Severity:   sev,
		Context: map[string]any{
			"package":   name,
			"tolerated": tolerated,
		},
	}
}

// NewContainerSynthesizedWarning creates a warning for a synthesized container.
// anchored is false when the container had to be appended at the end because
// its anchor sibling could not be found.
func NewContainerSynthesizedWarning(tag, parentPath string, anchored bool) *MergeWarning {
	sev := severity.SeverityInfo
	msg := fmt.Sprintf("created missing container <%s> under %s", tag, parentPath)
	if !anchored {
		sev = severity.SeverityWarning
		msg += " (appended: anchor sibling not found)"
	}
	return &MergeWarning{
		Category: WarnContainerSynthesized,
		Path:     parentPath,
		Message:  msg,
		Severity: sev,
		Context: map[string]any{
			"tag":      tag,
			"anchored": anchored,
		},
	}
}

// NewPackageSynthesizedWarning creates a warning for a synthesized
// destination package.
func NewPackageSynthesizedWarning(name, srcPath, sourceFile string) *MergeWarning {
	return &MergeWarning{
		Category:   WarnPackageSynthesized,
		Path:       srcPath,
		Message:    fmt.Sprintf("destination package %s not found, created from %s", name, srcPath),
		SourceFile: sourceFile,
		Severity:   severity.SeverityInfo,
		Context: map[string]any{
			"package": name,
		},
	}
}

// NewIdentityReplacedWarning creates a summary warning for replaced
// duplicate identities.
func NewIdentityReplacedWarning(count int, sourceFile string) *MergeWarning {
	return &MergeWarning{
		Category:   WarnIdentityReplaced,
		Message:    fmt.Sprintf("replaced %d duplicate identity value(s)", count),
		SourceFile: sourceFile,
		Severity:   severity.SeverityInfo,
		Context: map[string]any{
			"count": count,
		},
	}
}

// MergeWarnings is a collection of MergeWarning.
type MergeWarnings []*MergeWarning

// Strings returns the warning messages.
func (ws MergeWarnings) Strings() []string {
	result := make([]string, len(ws))
	for i, w := range ws {
		if w == nil {
			continue
		}
		result[i] = w.String()
	}
	return result
}

// ByCategory filters warnings by category.
func (ws MergeWarnings) ByCategory(cat WarningCategory) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// BySeverity filters warnings by severity.
func (ws MergeWarnings) BySeverity(sev severity.Severity) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Severity == sev {
			result = append(result, w)
		}
	}
	return result
}

// Summary returns a formatted summary of warnings.
func (ws MergeWarnings) Summary() string {
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d warning(s):\n", len(ws)))
	for _, w := range ws {
		sb.WriteString("  - ")
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
