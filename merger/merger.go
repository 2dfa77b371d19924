package merger

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

// mergerLogger is used for warnings in merger functions.
// Tests can replace this with a discard logger to suppress expected warnings.
var mergerLogger = slog.Default()

// Mode defines how name clashes between source and destination are handled
type Mode string

const (
	// ModeStrict attaches nothing from a clashing Extend call; the recorded
	// clash aborts the whole run once orchestration checks for it
	ModeStrict Mode = "strict"
	// ModeGraceful attaches only the source nodes whose key does not clash
	ModeGraceful Mode = "graceful"
)

// ValidModes returns all valid merge mode strings
func ValidModes() []string {
	return []string{string(ModeStrict), string(ModeGraceful)}
}

// IsValidMode checks if a mode string is valid
func IsValidMode(mode string) bool {
	switch Mode(mode) {
	case ModeStrict, ModeGraceful:
		return true
	default:
		return false
	}
}

// KeyFunc extracts the merge-equality key of a node. The default is the
// node's local name; callers supply custom keys for anonymous or
// irregularly-shaped nodes (leaf references, conditional wrappers).
type KeyFunc func(*arxdoc.Node) string

// LocalNameKey is the default KeyFunc: a node's local name.
func LocalNameKey(n *arxdoc.Node) string {
	return n.LocalName()
}

// TextKey keys a node by its text. Useful for leaf reference nodes, which
// have no name-holder child.
func TextKey(n *arxdoc.Node) string {
	return n.Text
}

// PathMap maps pre-merge source paths to post-merge destination paths. One
// is produced per Extend call; callers performing several related merges
// accumulate them with Merge so a single relocation pass stays correct
// across all of them.
type PathMap map[string]string

// Merge adds all entries of other into pm, overwriting on key overlap.
func (pm PathMap) Merge(other PathMap) {
	for k, v := range other {
		pm[k] = v
	}
}

// Config configures a Merger
type Config struct {
	// Mode is the default clash handling mode for all merges
	Mode Mode
	// SourceKey extracts the merge key of a source node (default: local name)
	SourceKey KeyFunc
	// DestKey extracts the merge key of an existing destination child
	// (default: local name)
	DestKey KeyFunc
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Mode:      ModeStrict,
		SourceKey: LocalNameKey,
		DestKey:   LocalNameKey,
	}
}

// Merger performs merges into destination documents and accumulates the
// clash and warning state of one run.
//
// Concurrency: Merger instances are not safe for concurrent use, and merges
// into one destination document must be strictly sequential.
type Merger struct {
	config   Config
	clashes  ClashSet
	warnings MergeWarnings
}

// New creates a new Merger instance with the provided configuration
func New(config Config) *Merger {
	if config.SourceKey == nil {
		config.SourceKey = LocalNameKey
	}
	if config.DestKey == nil {
		config.DestKey = LocalNameKey
	}
	if config.Mode == "" {
		config.Mode = ModeStrict
	}
	return &Merger{config: config}
}

// Clashes returns the clash state accumulated since the last ResetRun.
func (m *Merger) Clashes() *ClashSet {
	return &m.clashes
}

// Warnings returns the warnings accumulated since the last ResetRun.
func (m *Merger) Warnings() MergeWarnings {
	return m.warnings
}

// ResetRun clears all accumulated clash and warning state. Call it at the
// start of each run when reusing a Merger in a long-lived process.
func (m *Merger) ResetRun() {
	m.clashes.Reset()
	m.warnings = nil
}

// ExtendOption overrides the Merger configuration for one Extend call
type ExtendOption func(*extendConfig)

type extendConfig struct {
	mode      Mode
	sourceKey KeyFunc
	destKey   KeyFunc
}

// WithMode overrides the clash handling mode for one call
func WithMode(mode Mode) ExtendOption {
	return func(c *extendConfig) { c.mode = mode }
}

// WithSourceKey overrides the source key function for one call
func WithSourceKey(key KeyFunc) ExtendOption {
	return func(c *extendConfig) { c.sourceKey = key }
}

// WithDestKey overrides the destination key function for one call
func WithDestKey(key KeyFunc) ExtendOption {
	return func(c *extendConfig) { c.destKey = key }
}

// Extend merges src into dstContainer, detecting name clashes against the
// container's existing children, and returns the path-relocation map for
// the merged nodes.
//
// For every source node the returned PathMap records where its pre-merge
// path now points: the path of an already-present destination duplicate, or
// the destination container's path extended by the node's own trailing
// segment. Clash handling is a coarse admission gate on the intersection of
// source and destination key sets: a non-empty intersection attaches either
// nothing (ModeStrict) or only the non-clashing nodes (ModeGraceful), and
// records the event in the Merger's ClashSet. Clashes are data, not errors.
//
// The given source nodes are attached as-is (no copying); clone them first
// if the source document must stay intact. Source nodes must carry distinct
// non-empty keys: a duplicated source-side key is rejected with a PlanError
// rather than silently resolved first-wins. Nodes whose key is empty are
// not comparable and never participate in clash detection.
//
// An empty src returns an empty PathMap and performs no attachment.
func (m *Merger) Extend(src []*arxdoc.Node, dstContainer *arxdoc.Node, srcDoc, dstDoc *arxdoc.Document, opts ...ExtendOption) (PathMap, error) {
	cfg := extendConfig{
		mode:      m.config.Mode,
		sourceKey: m.config.SourceKey,
		destKey:   m.config.DestKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pathMap := make(PathMap, len(src))
	if len(src) == 0 {
		return pathMap, nil
	}

	// Source-side keys must be unique: the engine would otherwise keep
	// only the first node and silently drop the rest.
	srcKeys := make(map[string]bool, len(src))
	for _, el := range src {
		key := cfg.sourceKey(el)
		if key == "" {
			continue
		}
		if srcKeys[key] {
			return nil, &arxerrors.PlanError{
				Option:  "src",
				Value:   key,
				Message: "duplicate key among source nodes",
			}
		}
		srcKeys[key] = true
	}

	dstPath, err := arxdoc.AbsolutePath(dstContainer, dstDoc)
	if err != nil {
		return nil, err
	}

	// Map every source path to its post-merge destination path.
	for _, el := range src {
		key := cfg.sourceKey(el)
		srcPath, err := arxdoc.AbsolutePath(el, srcDoc)
		if err != nil {
			return nil, err
		}

		duplicate := findByKey(dstContainer.Children, cfg.destKey, key)
		if duplicate != nil {
			// The destination already owns this identity; nothing new
			// will be attached for it.
			dupPath, err := arxdoc.AbsolutePath(duplicate, dstDoc)
			if err != nil {
				return nil, err
			}
			pathMap[srcPath] = dupPath
		} else {
			pathMap[srcPath] = dstPath + srcPath[strings.LastIndex(srcPath, "/"):]
		}
	}

	// Coarse admission gate: the intersection of source and destination
	// key sets, independent of the per-node matching above.
	var clashes []string
	for _, el := range dstContainer.Children {
		if key := cfg.destKey(el); key != "" && srcKeys[key] {
			clashes = append(clashes, key)
		}
	}
	sort.Strings(clashes)

	if len(clashes) > 0 {
		srcParent := parentPath(src[0], srcDoc)
		mergerLogger.Warn("name clashes found",
			"count", len(clashes),
			"source", srcParent,
			"dest", dstPath,
			"keys", clashes)

		event := ClashEvent{
			Keys:       clashes,
			SourcePath: srcParent,
			DestPath:   dstPath,
			SourceFile: srcDoc.SourcePath,
			Mode:       cfg.mode,
		}
		m.clashes.Record(event)
		m.warnings = append(m.warnings,
			NewNameClashWarning(clashes, srcParent, dstPath, srcDoc.SourcePath, cfg.mode))

		if cfg.mode == ModeGraceful {
			// Attach only the elements without clashes.
			clashed := make(map[string]bool, len(clashes))
			for _, k := range clashes {
				clashed[k] = true
			}
			for _, el := range src {
				if !clashed[cfg.sourceKey(el)] {
					dstDoc.Attach(dstContainer, el)
				}
			}
		}
		return pathMap, nil
	}

	dstDoc.Attach(dstContainer, src...)
	return pathMap, nil
}

// findByKey returns the first node whose key equals key, or nil. Empty keys
// never match.
func findByKey(nodes []*arxdoc.Node, keyOf KeyFunc, key string) *arxdoc.Node {
	if key == "" {
		return nil
	}
	for _, n := range nodes {
		if keyOf(n) == key {
			return n
		}
	}
	return nil
}

// parentPath returns the absolute path of n's parent container, best-effort
// (used for diagnostics only).
func parentPath(n *arxdoc.Node, doc *arxdoc.Document) string {
	path, err := arxdoc.AbsolutePath(n, doc)
	if err != nil {
		return ""
	}
	if i := strings.LastIndex(path, "/"); i > 0 {
		return path[:i]
	}
	return "/"
}
