// Package arxdoc provides the node and document model the merge engine
// operates on: tagged tree nodes with ordered children, an attribute map
// carrying the unique-identity attribute, and an externally maintained
// parent index that makes absolute-path resolution possible without parent
// pointers in the node type.
//
// # Model
//
// A [Node] is a tag, an attribute map, optional text, and an ordered child
// list. A node's local name is the text of its first name-holder child
// (SHORT-NAME or DEFINITION-REF); nodes without one are anonymous. A
// [Document] wraps a root node plus a parent index that is populated
// incrementally as nodes are attached through [Document.Attach] — not by
// traversal. Nodes attached by raw slice manipulation are invisible to the
// index, so all structural mutation must go through the attach primitives.
//
// # Absolute Paths
//
// [AbsolutePath] computes a node's durable external identity: the '/'-joined
// chain of SHORT-NAMEs from the root down to the node. Ancestors without a
// SHORT-NAME (grouping containers such as ELEMENTS, and nodes named only by
// a DEFINITION-REF) contribute nothing to the path.
// Reference fields elsewhere in a document set store these paths as text;
// [FindByPath] resolves a path back to its node.
//
// # Transparent Containers
//
// A closed set of tags ([IsTransparent]) denotes pseudo-containers whose
// entire purpose is to be spliced away on attach: attaching an ELEMENTS node
// actually attaches each of its children, re-parented to the true parent.
// The set is defined once, here, so adding a transparent tag is a one-line
// change.
package arxdoc
