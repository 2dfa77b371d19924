package merger

import (
	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

// ContainerRule names one expected sub-container of an ordered schema
// table. New synthesizes the container when it is missing; a nil New marks
// a container that must already exist.
type ContainerRule struct {
	Tag string
	New func() *arxdoc.Node
}

// ContainerSchema is the ordered list of sub-containers the external format
// mandates for one parent tag.
type ContainerSchema []ContainerRule

// EnsureContainers walks schema in order and synthesizes every missing
// container under parent, inserting each immediately after the last
// already-present (or just-created) schema sibling so the external format's
// sequencing rules hold. When no anchor sibling can be found the container
// is appended at the end instead; this is degraded but recoverable and is
// logged as such.
//
// A missing container whose rule has no factory is fatal: the destination
// tree violates a hard structural precondition and the merge step must be
// aborted.
//
// EnsureContainers is idempotent: once every schema container exists, a
// second call inserts nothing.
func (m *Merger) EnsureContainers(doc *arxdoc.Document, parent *arxdoc.Node, schema ContainerSchema) error {
	parentAbs, err := arxdoc.AbsolutePath(parent, doc)
	if err != nil {
		return err
	}

	var anchor *arxdoc.Node
	for _, rule := range schema {
		found := parent.Child(rule.Tag)
		if found != nil {
			anchor = found
			continue
		}
		if rule.New == nil {
			return &arxerrors.MissingContainerError{
				Tag:        rule.Tag,
				ParentPath: parentAbs,
				SourceFile: doc.SourcePath,
				Message:    "container cannot be synthesized",
			}
		}

		created := rule.New()
		index := 0
		anchored := true
		if anchor != nil {
			index = anchorIndex(parent, anchor)
			if index < 0 {
				// The anchor left the child list through raw tree
				// manipulation; append instead of failing.
				anchored = false
				index = len(parent.Children)
				mergerLogger.Warn("anchor sibling not found, appending container at the end",
					"tag", rule.Tag,
					"parent", parentAbs)
			}
		}
		if err := doc.AttachAt(parent, created, index); err != nil {
			return err
		}
		m.warnings = append(m.warnings,
			NewContainerSynthesizedWarning(rule.Tag, parentAbs, anchored))
		anchor = created
	}
	return nil
}

// anchorIndex returns the insertion index immediately after anchor among
// parent's children, or -1 when anchor is absent.
func anchorIndex(parent, anchor *arxdoc.Node) int {
	for i, c := range parent.Children {
		if c == anchor {
			return i + 1
		}
	}
	return -1
}

// EthernetChannelSchema is the ordered container table for an
// ETHERNET-PHYSICAL-CHANNEL. COMM-CONNECTORS and NETWORK-ENDPOINTS must
// already exist; the triggering containers and the SO-AD-CONFIG are
// synthesized on demand.
func EthernetChannelSchema() ContainerSchema {
	return ContainerSchema{
		{Tag: "COMM-CONNECTORS", New: nil},
		{Tag: "I-SIGNAL-TRIGGERINGS", New: NewSignalTriggerings},
		{Tag: "PDU-TRIGGERINGS", New: NewPduTriggerings},
		{Tag: "NETWORK-ENDPOINTS", New: nil},
		{Tag: "SO-AD-CONFIG", New: NewSoAdConfig},
	}
}

// SoAdConfigSchema is the ordered container table for a SO-AD-CONFIG.
func SoAdConfigSchema() ContainerSchema {
	return ContainerSchema{
		{Tag: "CONNECTION-BUNDLES", New: NewConnectionBundles},
		{Tag: "SOCKET-ADDRESSS", New: NewSocketAddresses},
	}
}
