// Package arxio reads and writes the external XML tree format into and out
// of arxdoc documents.
//
// Tags are stored namespace-stripped inside the tree; the namespace URI of
// the root element is captured on the document and re-emitted on write, so
// all tag matching in the engine works on plain local names.
package arxio
