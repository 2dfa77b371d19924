package merger

import (
	"github.com/google/uuid"

	"github.com/jmattsson/arxtools/arxdoc"
)

// EnsureUniqueIdentities walks doc and replaces every duplicate
// unique-identity attribute value with a freshly generated one. The first
// occurrence of a value in traversal order keeps it; later occurrences are
// rewritten. Afterwards no two nodes in doc share an identity value.
//
// Run this exactly once, after all merges into doc are complete: running it
// earlier lets a later merge reintroduce the same external identity value
// it just repaired. Returns the number of replaced identities.
func (m *Merger) EnsureUniqueIdentities(doc *arxdoc.Document) int {
	seen := make(map[string]bool)
	replaced := 0
	doc.Root.Walk(func(n *arxdoc.Node) {
		id, ok := n.Identity()
		if !ok {
			return
		}
		if seen[id] {
			fresh := uuid.NewString()
			mergerLogger.Debug("replacing duplicate identity",
				"tag", n.Tag,
				"name", n.LocalName(),
				"old", id,
				"new", fresh)
			n.SetIdentity(fresh)
			seen[fresh] = true
			replaced++
			return
		}
		seen[id] = true
	})
	if replaced > 0 {
		m.warnings = append(m.warnings,
			NewIdentityReplacedWarning(replaced, doc.SourcePath))
	}
	return replaced
}

// ReplaceIdentity gives n a freshly generated identity, preserving
// traceability by replacing rather than removing the attribute. It reports
// whether the node carried an identity to replace.
func ReplaceIdentity(n *arxdoc.Node) bool {
	if _, ok := n.Identity(); !ok {
		mergerLogger.Warn("node carries no identity to replace",
			"tag", n.Tag,
			"name", n.LocalName())
		return false
	}
	n.SetIdentity(uuid.NewString())
	return true
}
