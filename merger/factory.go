package merger

import (
	"github.com/jmattsson/arxtools/arxdoc"
)

// Node factories for the containers the engine synthesizes. Each returns a
// fresh, unattached node; callers attach it through the document primitives
// so the parent index stays consistent.

// NewPackage creates an AR-PACKAGE with the given name, identity, and an
// empty ELEMENTS container.
func NewPackage(name, id string) *arxdoc.Node {
	pkg := &arxdoc.Node{
		Tag: "AR-PACKAGE",
		Children: []*arxdoc.Node{
			arxdoc.NewLeaf("SHORT-NAME", name),
			NewElements(),
		},
	}
	pkg.SetIdentity(id)
	return pkg
}

// NewPackages creates an empty AR-PACKAGES container.
func NewPackages() *arxdoc.Node {
	return arxdoc.NewNode("AR-PACKAGES")
}

// NewElements creates an empty ELEMENTS container.
func NewElements() *arxdoc.Node {
	return arxdoc.NewNode("ELEMENTS")
}

// NewSignalTriggerings creates an empty I-SIGNAL-TRIGGERINGS container.
func NewSignalTriggerings() *arxdoc.Node {
	return arxdoc.NewNode("I-SIGNAL-TRIGGERINGS")
}

// NewPduTriggerings creates an empty PDU-TRIGGERINGS container.
func NewPduTriggerings() *arxdoc.Node {
	return arxdoc.NewNode("PDU-TRIGGERINGS")
}

// NewSoAdConfig creates an empty SO-AD-CONFIG container.
func NewSoAdConfig() *arxdoc.Node {
	return arxdoc.NewNode("SO-AD-CONFIG")
}

// NewConnectionBundles creates an empty CONNECTION-BUNDLES container.
func NewConnectionBundles() *arxdoc.Node {
	return arxdoc.NewNode("CONNECTION-BUNDLES")
}

// NewSocketAddresses creates an empty SOCKET-ADDRESSS container.
// The misspelled tag is correct per the external format.
func NewSocketAddresses() *arxdoc.Node {
	return arxdoc.NewNode("SOCKET-ADDRESSS")
}
