package arxdoc

import (
	"github.com/jmattsson/arxtools/arxerrors"
)

// Document wraps a root node together with the parent index required for
// absolute-path resolution. The index is populated incrementally by the
// attach primitives; nodes inserted by raw slice manipulation are not in the
// index and cannot be path-resolved.
//
// Documents are mutable and not safe for concurrent use. Merges against one
// destination document must be strictly sequential.
type Document struct {
	Root *Node
	// SourcePath identifies where the document came from. Used in errors
	// and warnings; may be empty for documents built in memory.
	SourcePath string
	// Namespace is the XML namespace URI of the external format, captured
	// on read and re-emitted on write. Tags inside the tree are stored
	// namespace-stripped.
	Namespace string

	parents map[*Node]*Node
}

// NewDocument creates a document around root. The parent index starts empty:
// nodes already under root are unknown to the index until Reindex is called
// or they are re-attached through the engine.
func NewDocument(root *Node, sourcePath string) *Document {
	return &Document{
		Root:       root,
		SourcePath: sourcePath,
		parents:    make(map[*Node]*Node),
	}
}

// Parent returns the indexed parent of n, or (nil, false) if n has no index
// entry. The root node never has an entry.
func (d *Document) Parent(n *Node) (*Node, bool) {
	p, ok := d.parents[n]
	return p, ok
}

// Attach appends children under parent and records their parentage. The
// entire attached subtree is indexed, so composite nodes built by factories
// remain path-resolvable.
//
// A transparent child (see IsTransparent) is not attached itself: its own
// children are spliced in one by one, each re-parented to parent.
func (d *Document) Attach(parent *Node, children ...*Node) {
	for _, child := range children {
		if IsTransparent(child.Tag) {
			for _, el := range child.Children {
				parent.Children = append(parent.Children, el)
				d.index(el, parent)
			}
			continue
		}
		parent.Children = append(parent.Children, child)
		d.index(child, parent)
	}
}

// index records child's parent and the parentage of child's whole subtree.
func (d *Document) index(child, parent *Node) {
	d.parents[child] = parent
	for _, c := range child.Children {
		d.index(c, child)
	}
}

// AttachAt inserts child under parent at the given index among existing
// siblings and records its parentage.
//
// Unlike Attach, the child is inserted as itself, without flattening: this
// is the primitive container synthesis uses to place an empty container
// (transparent-tagged or not) at its schema-mandated position. Splicing a
// populated pseudo-container at an index is not a defined operation; attach
// populated pseudo-containers through Attach.
func (d *Document) AttachAt(parent, child *Node, index int) error {
	if IsTransparent(child.Tag) && len(child.Children) > 0 {
		return &arxerrors.PlanError{
			Option:  "child",
			Value:   child.Tag,
			Message: "populated transparent containers cannot be attached at an index",
		}
	}
	if index < 0 || index > len(parent.Children) {
		index = len(parent.Children)
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[index+1:], parent.Children[index:])
	parent.Children[index] = child
	d.index(child, parent)
	return nil
}

// Detach removes child from parent's child list and drops its index entry.
// It reports whether the child was found. Descendants of the detached child
// keep their entries; re-attaching the subtree through Attach restores
// consistency for the child itself.
func (d *Document) Detach(parent, child *Node) bool {
	for i, c := range parent.Children {
		if c == child {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			delete(d.parents, child)
			return true
		}
	}
	return false
}

// Reindex rebuilds the parent index from a full traversal of the tree.
// Intended for documents freshly materialized by a reader, before any
// engine-performed attach.
func (d *Document) Reindex() {
	d.parents = make(map[*Node]*Node)
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			d.parents[c] = n
			walk(c)
		}
	}
	if d.Root != nil {
		walk(d.Root)
	}
}

// IndexSize returns the number of entries in the parent index.
func (d *Document) IndexSize() int {
	return len(d.parents)
}
