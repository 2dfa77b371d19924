// Package arxtools provides tools for merging hierarchical, tag-typed
// configuration documents and relocating the textual cross-references between
// them.
//
// The documents arxtools operates on are vehicle-network descriptions: large
// trees of tagged nodes in which a node's identity is its absolute path, a
// '/'-joined chain of local names from the root. Independent tools author
// these documents separately; arxtools merges them into one destination
// document while keeping every path-typed reference pointing at the correct,
// possibly renamed, target.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - arxdoc: the node and document model, the parent index, the attach
//     primitive, and absolute-path resolution
//   - merger: the merge engine, reference relocation, ordered container
//     synthesis, and identity deduplication
//   - arxio: reading and writing the external XML tree format
//
// Structured errors shared by all packages live in arxerrors.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/jmattsson/arxtools
//
// # Quick Start
//
// Read two documents and merge the source's root packages into the
// destination according to a plan:
//
//	import (
//		"github.com/jmattsson/arxtools/arxio"
//		"github.com/jmattsson/arxtools/merger"
//	)
//
//	src, err := arxio.ReadFile("device.arxml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	dst, err := arxio.ReadFile("system.arxml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m := merger.New(merger.DefaultConfig())
//	plan := merger.Plan{Packages: []merger.PackagePlan{
//		{Name: "Signal", Mode: merger.ModeStrict},
//		{Name: "SignalGroup", Mode: merger.ModeStrict},
//	}}
//	pathMap, err := m.CopyRootPackages(src, dst, plan)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m.EnsureUniqueIdentities(dst)
//	if m.Clashes().AnyStrict() {
//		log.Fatal("name clashes in strict-mode packages")
//	}
//	_ = arxio.WriteFile(dst, "merged.arxml")
//
// Merges against one destination are inherently sequential: each call mutates
// the destination tree and its parent index in place, and the next call's
// path computations depend on those mutations. Parallelism is only safe
// across independent destination documents.
//
// # Command Line
//
// The arxtools command wraps the library for plan-driven merges:
//
//	arxtools merge -i device1.arxml,device2.arxml -d system.arxml -o merged.arxml --plan plan.yaml
//	arxtools inspect merged.arxml
//
// # Related Packages
//
//   - [github.com/jmattsson/arxtools/arxdoc] - Document model and path resolution
//   - [github.com/jmattsson/arxtools/merger] - Merge engine and reference relocation
//   - [github.com/jmattsson/arxtools/arxio] - External format parsing and serialization
//   - [github.com/jmattsson/arxtools/arxerrors] - Structured error types
package arxtools
