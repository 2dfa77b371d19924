// Package merger provides the merge engine for hierarchical configuration
// documents: attaching source nodes into a destination container with name
// clash detection, relocating the textual path references that point at the
// merged nodes, synthesizing schema-mandated containers, and deduplicating
// unique identities after a run.
//
// # Quick Start
//
// Merge the children of a source container into a destination container and
// relocate the references that pointed at them:
//
//	m := merger.New(merger.DefaultConfig())
//	pathMap, err := m.Extend(srcElems, dstContainer, srcDoc, dstDoc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	refs := dstDoc.Root.FindAll("I-SIGNAL-TRIGGERING-REF")
//	if err := merger.Relocate(refs, pathMap, false); err != nil {
//		log.Fatal(err)
//	}
//
// # Merge Modes
//
// Control how name clashes between source and destination are handled:
//   - ModeStrict: attach nothing from the clashing call; the recorded clash
//     makes the whole run abort (default)
//   - ModeGraceful: attach only the non-clashing source nodes
//
// Clashes never surface as errors from Extend. They are recorded in the
// Merger's [ClashSet]; orchestration reads AnyStrict after all merges and
// treats a true result as fatal before serializing the destination.
//
// # Sequencing
//
// A Merger and the documents it mutates are not safe for concurrent use.
// Merges into one destination document are inherently serial: each call
// consumes the cumulative tree and parent-index state of the previous ones.
// Run EnsureUniqueIdentities exactly once, after the last merge into a
// document — running it earlier lets a later merge reintroduce a duplicate
// identity it just repaired.
//
// # Related Packages
//
//   - [github.com/jmattsson/arxtools/arxdoc] - Node and document model
//   - [github.com/jmattsson/arxtools/arxio] - External format parsing and serialization
//   - [github.com/jmattsson/arxtools/arxerrors] - Structured error types
package merger
