package arxdoc

// IdentityAttr is the attribute carrying a node's unique identity value.
const IdentityAttr = "UUID"

// nameHolderTags are the tags whose text supplies a node's local name when
// they appear among the node's children. Only SHORT-NAME contributes
// absolute-path segments; a DEFINITION-REF names its node for matching, but
// its text is itself a full reference path.
var nameHolderTags = map[string]bool{
	"SHORT-NAME":     true,
	"DEFINITION-REF": true,
}

// transparentTags is the closed set of pseudo-container tags that are
// flattened on attach: their children are spliced directly into the true
// parent instead of being nested under them.
var transparentTags = map[string]bool{
	"ELEMENTS":                   true,
	"SOCKET-ADDRESSS":            true, // misspelled tag is correct per the external format
	"DATA-TRANSFORMATIONS":       true,
	"TRANSFORMATION-TECHNOLOGYS": true,
	"CONNECTION-BUNDLES":         true,
}

// IsTransparent reports whether tag denotes a flatten-on-append
// pseudo-container.
func IsTransparent(tag string) bool {
	return transparentTags[tag]
}

// IsNameHolder reports whether tag is a name-holder tag.
func IsNameHolder(tag string) bool {
	return nameHolderTags[tag]
}

// Node is a tagged tree element with attributes, optional text, and an
// ordered child list. Nodes carry no parent pointer; parentage is tracked by
// the owning Document's parent index.
type Node struct {
	Tag      string
	Attrib   map[string]string
	Text     string
	Children []*Node
}

// NewNode creates a node with the given tag and no children.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// NewLeaf creates a leaf node with the given tag and text.
func NewLeaf(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// NewNamed creates a node with the given tag and a SHORT-NAME child holding
// name.
func NewNamed(tag, name string) *Node {
	return &Node{Tag: tag, Children: []*Node{NewLeaf("SHORT-NAME", name)}}
}

// LocalName returns the text of the node's first name-holder child, or ""
// if the node is anonymous.
func (n *Node) LocalName() string {
	for _, c := range n.Children {
		if nameHolderTags[c.Tag] {
			return c.Text
		}
	}
	return ""
}

// PathName returns the text of the node's first SHORT-NAME child, or "" if
// there is none. Unlike LocalName, a DEFINITION-REF does not qualify: its
// text is a full reference path and must never appear as a single path
// segment.
func (n *Node) PathName() string {
	for _, c := range n.Children {
		if c.Tag == "SHORT-NAME" {
			return c.Text
		}
	}
	return ""
}

// SetLocalName sets the text of the node's first name-holder child. It
// returns false if the node is anonymous.
func (n *Node) SetLocalName(name string) bool {
	for _, c := range n.Children {
		if nameHolderTags[c.Tag] {
			c.Text = name
			return true
		}
	}
	return false
}

// Identity returns the node's unique-identity attribute value and whether it
// is present.
func (n *Node) Identity() (string, bool) {
	v, ok := n.Attrib[IdentityAttr]
	return v, ok
}

// SetIdentity sets the node's unique-identity attribute value.
func (n *Node) SetIdentity(id string) {
	if n.Attrib == nil {
		n.Attrib = make(map[string]string, 1)
	}
	n.Attrib[IdentityAttr] = id
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildValue returns the text of the first direct child with the given tag,
// or "" if there is none.
func (n *Node) ChildValue(tag string) string {
	if c := n.Child(tag); c != nil {
		return c.Text
	}
	return ""
}

// SetChildValue sets the text of the first direct child with the given tag.
// It returns false if there is no such child.
func (n *Node) SetChildValue(tag, value string) bool {
	if c := n.Child(tag); c != nil {
		c.Text = value
		return true
	}
	return false
}

// FindFirst returns the first descendant of n (depth-first, document order)
// with the given tag, or nil. The node itself is not considered.
func (n *Node) FindFirst(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
		if found := c.FindFirst(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns all descendants of n (depth-first, document order) with
// the given tag. The node itself is not considered.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
		out = append(out, c.FindAll(tag)...)
	}
	return out
}

// FindNamed returns the first descendant with the given tag whose local name
// (or, for leaf nodes, whose text) equals name, or nil.
func (n *Node) FindNamed(tag, name string) *Node {
	for _, c := range n.FindAll(tag) {
		if matchesName(c, name) {
			return c
		}
	}
	return nil
}

// FindAllNamed returns every descendant with the given tag whose local name
// (or, for leaf nodes, whose text) equals name.
func (n *Node) FindAllNamed(tag, name string) []*Node {
	var out []*Node
	for _, c := range n.FindAll(tag) {
		if matchesName(c, name) {
			out = append(out, c)
		}
	}
	return out
}

func matchesName(n *Node, name string) bool {
	if len(n.Children) > 0 {
		return n.LocalName() == name
	}
	return n.Text == name
}

// Walk calls fn for n and every descendant in depth-first, document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Clone returns a deep copy of the node and its subtree. The copy shares no
// state with the original and belongs to no document until attached.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Tag: n.Tag, Text: n.Text}
	if n.Attrib != nil {
		out.Attrib = make(map[string]string, len(n.Attrib))
		for k, v := range n.Attrib {
			out.Attrib[k] = v
		}
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Equal reports whether two subtrees have the same tags, text, attributes,
// and children in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if len(a.Attrib) != len(b.Attrib) {
		return false
	}
	for k, v := range a.Attrib {
		if bv, ok := b.Attrib[k]; !ok || bv != v {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
