package merger

import (
	"strings"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

// PrefixElements renames every descendant of parent with the given tag by
// prepending prefix to its local name, replacing each renamed node's
// identity with a fresh one. Returns the number of nodes renamed.
//
// Renaming changes the nodes' absolute paths; run PrefixRefs over the
// references that point at them, with the same prefix, to keep the document
// internally consistent.
func (m *Merger) PrefixElements(doc *arxdoc.Document, parent *arxdoc.Node, prefix, tag string) int {
	renamed := 0
	for _, el := range parent.FindAll(tag) {
		ReplaceIdentity(el)
		if !el.SetLocalName(prefix + el.LocalName()) {
			mergerLogger.Warn("cannot prefix anonymous node",
				"tag", tag,
				"source", doc.SourcePath)
			continue
		}
		renamed++
	}
	return renamed
}

// PrefixRefs rewrites every descendant reference of parent with the given
// tag to point at a prefixed name: prefix is inserted before the final
// segment of the reference path. The optional keep filter restricts the
// rewrite to references it accepts; nil keeps all.
//
// refTag must name a reference tag (containing "-REF" or "-TREF");
// anything else is a planning mistake and fails with a
// *arxerrors.PlanError before any reference is touched.
func (m *Merger) PrefixRefs(parent *arxdoc.Node, prefix, refTag string, keep func(*arxdoc.Node) bool) error {
	if !strings.Contains(refTag, "-REF") && !strings.Contains(refTag, "-TREF") {
		return &arxerrors.PlanError{
			Option:  "refTag",
			Value:   refTag,
			Message: "tag does not name a reference field",
		}
	}
	for _, ref := range parent.FindAll(refTag) {
		if keep != nil && !keep(ref) {
			continue
		}
		i := strings.LastIndex(ref.Text, "/")
		ref.Text = ref.Text[:i+1] + prefix + ref.Text[i+1:]
	}
	return nil
}
