package merger

import (
	"strings"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

// Relocate rewrites reference fields using a path-relocation map. Each
// reference whose text is a key in pathMap is replaced with the mapped
// value. References not present in the map are left untouched unless strict
// is set, in which case the first unmatched reference is returned as a
// *arxerrors.RelocationError.
//
// Side effects are confined to the text of the reference fields; node
// identity and structure are untouched.
func Relocate(refs []*arxdoc.Node, pathMap PathMap, strict bool) error {
	for _, ref := range refs {
		if newPath, ok := pathMap[ref.Text]; ok {
			ref.Text = newPath
			continue
		}
		if strict {
			return &arxerrors.RelocationError{
				Ref: ref.Text,
				Tag: ref.Tag,
			}
		}
	}
	return nil
}

// RelocatePrefix rewrites reference fields by structural prefix
// substitution: in each reference's text the first occurrence of oldPrefix
// is replaced with newPrefix.
//
// A reference that does not contain oldPrefix at all fails with a
// *arxerrors.PrefixNotFoundError and is left unmodified; silent no-ops
// previously caused dangling references, so absence is intentionally
// strict. Only the first occurrence is replaced.
func RelocatePrefix(refs []*arxdoc.Node, oldPrefix, newPrefix string) error {
	for _, ref := range refs {
		if !strings.Contains(ref.Text, oldPrefix) {
			return &arxerrors.PrefixNotFoundError{
				Ref:    ref.Text,
				Prefix: oldPrefix,
			}
		}
	}
	for _, ref := range refs {
		ref.Text = strings.Replace(ref.Text, oldPrefix, newPrefix, 1)
	}
	return nil
}
