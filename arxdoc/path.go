package arxdoc

import (
	"strings"

	"github.com/jmattsson/arxtools/arxerrors"
)

// AbsolutePath computes n's absolute path in doc by walking the parent index
// from n up to the document root, prepending each ancestor's SHORT-NAME.
// Ancestors without one (grouping containers such as ELEMENTS, and nodes
// named only by a DEFINITION-REF) contribute nothing.
//
// A missing ancestor link mid-walk means the node, or one of its ancestors,
// was attached outside the engine. That is a programming error: the
// resulting *arxerrors.PathResolutionError is terminal and must never be
// retried.
func AbsolutePath(n *Node, doc *Document) (string, error) {
	var segments []string
	cur := n
	for cur != doc.Root {
		if name := cur.PathName(); name != "" {
			segments = append(segments, name)
		}
		parent, ok := doc.Parent(cur)
		if !ok {
			return "", &arxerrors.PathResolutionError{
				Tag:        n.Tag,
				Name:       n.LocalName(),
				SourceFile: doc.SourcePath,
				Message:    "ancestor <" + cur.Tag + "> has no parent-index entry",
			}
		}
		cur = parent
	}
	// Reverse into root-to-node order.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return "/" + strings.Join(segments, "/"), nil
}

// FindByPath resolves an absolute path back to its node by walking the tree
// from the root, matching one named descendant per path segment. It returns
// nil if any segment cannot be matched.
//
// Reference fields store paths like /VehicleProject/Communication/Pdu1; this
// is how the node a reference points at is recovered.
func FindByPath(doc *Document, path string) *Node {
	cur := doc.Root
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		cur = namedChild(cur, name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// namedChild finds the nearest descendant of n whose SHORT-NAME equals name,
// without descending past other path-named nodes: nodes that contribute no
// path segment are looked through, path-named ones are segments of their
// own.
func namedChild(n *Node, name string) *Node {
	for _, c := range n.Children {
		if ln := c.PathName(); ln != "" {
			if ln == name {
				return c
			}
			continue
		}
		if found := namedChild(c, name); found != nil {
			return found
		}
	}
	return nil
}
