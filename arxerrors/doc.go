// Package arxerrors provides structured error types for arxtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - PathResolutionError: a node's absolute path cannot be computed because
//     a parent-index link is missing; always a programming/usage error
//   - MissingContainerError: a destination tree lacks a required container
//     that cannot be synthesized
//   - PrefixNotFoundError: a prefix substitution was requested for a prefix
//     absent from a reference's text
//   - RelocationError: a strict relocation encountered a reference with no
//     entry in the path map
//   - ParseError: the external tree format could not be read
//   - PlanError: invalid merge plan, configuration, or input options
//
// # Usage with errors.Is
//
//	pathMap, err := m.Extend(src, dst, srcDoc, dstDoc)
//	if err != nil {
//	    var pathErr *arxerrors.PathResolutionError
//	    if errors.As(err, &pathErr) {
//	        // A node was attached outside the engine; fix the caller,
//	        // never retry.
//	    }
//	}
//
// All failures the engine reports are deterministic functions of its input:
// none are transient, and none should be retried.
package arxerrors
