package merger

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

func TestMain(m *testing.M) {
	// Clash handling is exercised on purpose; keep the expected warnings
	// out of the test output.
	mergerLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

// pkgSpec describes one package of a test document: a name and the local
// names of its signal elements.
type pkgSpec struct {
	name  string
	elems []string
}

// buildDoc builds a reindexed document with a top-level package container
// holding one package per spec, each element an I-SIGNAL with a unique
// identity.
func buildDoc(source string, pkgs ...pkgSpec) *arxdoc.Document {
	root := arxdoc.NewNode("AUTOSAR")
	arPkgs := arxdoc.NewNode("AR-PACKAGES")
	root.Children = append(root.Children, arPkgs)
	for _, p := range pkgs {
		pkg := NewPackage(p.name, "id-"+p.name)
		elements := pkg.Child("ELEMENTS")
		for _, e := range p.elems {
			el := arxdoc.NewNamed("I-SIGNAL", e)
			el.SetIdentity("id-" + p.name + "-" + e)
			elements.Children = append(elements.Children, el)
		}
		arPkgs.Children = append(arPkgs.Children, pkg)
	}
	doc := arxdoc.NewDocument(root, source)
	doc.Reindex()
	return doc
}

// elementsOf returns the ELEMENTS container of the named package.
func elementsOf(t *testing.T, doc *arxdoc.Document, pkg string) *arxdoc.Node {
	t.Helper()
	p := doc.Root.FindNamed("AR-PACKAGE", pkg)
	require.NotNil(t, p, "package %s not found", pkg)
	el := p.Child("ELEMENTS")
	require.NotNil(t, el, "package %s has no ELEMENTS", pkg)
	return el
}

func TestExtend(t *testing.T) {
	tests := []struct {
		name           string
		src            pkgSpec
		dst            pkgSpec
		opts           []ExtendOption
		expectError    bool
		errorContains  string
		validateResult func(t *testing.T, m *Merger, pm PathMap, dstElems *arxdoc.Node)
	}{
		{
			name: "no clashes attaches everything",
			src:  pkgSpec{name: "Src", elems: []string{"P1", "P2"}},
			dst:  pkgSpec{name: "Dst", elems: []string{"Q1"}},
			validateResult: func(t *testing.T, m *Merger, pm PathMap, dstElems *arxdoc.Node) {
				require.Len(t, pm, 2, "one relocation entry per source node")
				assert.Equal(t, "/Dst/P1", pm["/Src/P1"])
				assert.Equal(t, "/Dst/P2", pm["/Src/P2"])
				assert.Len(t, dstElems.Children, 3)
				assert.False(t, m.Clashes().AnyStrict())
				assert.False(t, m.Clashes().AnyGraceful())
				assert.Empty(t, m.Warnings())
			},
		},
		{
			name: "strict clash attaches nothing",
			src:  pkgSpec{name: "Src", elems: []string{"P1", "P2"}},
			dst:  pkgSpec{name: "Dst", elems: []string{"P1"}},
			opts: []ExtendOption{WithMode(ModeStrict)},
			validateResult: func(t *testing.T, m *Merger, pm PathMap, dstElems *arxdoc.Node) {
				// Nothing attached, not even the non-clashing P2.
				assert.Len(t, dstElems.Children, 1)
				assert.True(t, m.Clashes().AnyStrict())
				require.Len(t, m.Clashes().Strict(), 1)
				assert.Equal(t, []string{"P1"}, m.Clashes().Strict()[0].Keys)
				// The map still covers every source node: the clashing one
				// points at the destination's existing duplicate.
				require.Len(t, pm, 2)
				assert.Equal(t, "/Dst/P1", pm["/Src/P1"])
				assert.Equal(t, "/Dst/P2", pm["/Src/P2"])
				require.Len(t, m.Warnings().ByCategory(WarnNameClash), 1)
			},
		},
		{
			name: "graceful clash attaches the non-clashing nodes",
			src:  pkgSpec{name: "Src", elems: []string{"P1", "P2", "P3"}},
			dst:  pkgSpec{name: "Dst", elems: []string{"P2"}},
			opts: []ExtendOption{WithMode(ModeGraceful)},
			validateResult: func(t *testing.T, m *Merger, pm PathMap, dstElems *arxdoc.Node) {
				assert.Len(t, dstElems.Children, 3, "P1 and P3 attached next to the existing P2")
				assert.False(t, m.Clashes().AnyStrict())
				assert.True(t, m.Clashes().AnyGraceful())
				require.Len(t, pm, 3)
				assert.Equal(t, "/Dst/P2", pm["/Src/P2"])
			},
		},
		{
			name:          "duplicate source-side keys are rejected",
			src:           pkgSpec{name: "Src", elems: []string{"P1", "P1"}},
			dst:           pkgSpec{name: "Dst"},
			expectError:   true,
			errorContains: "duplicate key",
		},
		{
			name: "empty source is a no-op",
			src:  pkgSpec{name: "Src"},
			dst:  pkgSpec{name: "Dst", elems: []string{"Q1"}},
			validateResult: func(t *testing.T, m *Merger, pm PathMap, dstElems *arxdoc.Node) {
				assert.Empty(t, pm)
				assert.Len(t, dstElems.Children, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcDoc := buildDoc("src.arxml", tt.src)
			dstDoc := buildDoc("dst.arxml", tt.dst)
			srcElems := elementsOf(t, srcDoc, tt.src.name)
			dstElems := elementsOf(t, dstDoc, tt.dst.name)

			m := New(DefaultConfig())
			pm, err := m.Extend(srcElems.Children, dstElems, srcDoc, dstDoc, tt.opts...)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				var planErr *arxerrors.PlanError
				assert.ErrorAs(t, err, &planErr)
				return
			}
			require.NoError(t, err)
			if tt.validateResult != nil {
				tt.validateResult(t, m, pm, dstElems)
			}
		})
	}
}

func TestExtendNestedContainerScenario(t *testing.T) {
	// Merging the contents of /Src/Pdu into an empty /Dst/Pdu maps each
	// element to its destination path under the new parent chain.
	buildNested := func(source, outer string, elems ...string) *arxdoc.Document {
		doc := buildDoc(source, pkgSpec{name: outer})
		pdu := arxdoc.NewNamed("I-SIGNAL-I-PDU", "Pdu")
		for _, e := range elems {
			pdu.Children = append(pdu.Children, arxdoc.NewNamed("I-PDU-TIMING", e))
		}
		doc.Attach(elementsOf(t, doc, outer), pdu)
		return doc
	}
	srcDoc := buildNested("src.arxml", "Src", "P1", "P2")
	dstDoc := buildNested("dst.arxml", "Dst")
	srcPdu := srcDoc.Root.FindNamed("I-SIGNAL-I-PDU", "Pdu")
	dstPdu := dstDoc.Root.FindNamed("I-SIGNAL-I-PDU", "Pdu")

	m := New(DefaultConfig())
	pm, err := m.Extend(srcPdu.Children[1:], dstPdu, srcDoc, dstDoc)
	require.NoError(t, err)

	assert.Equal(t, PathMap{
		"/Src/Pdu/P1": "/Dst/Pdu/P1",
		"/Src/Pdu/P2": "/Dst/Pdu/P2",
	}, pm)
	assert.NotNil(t, dstPdu.FindNamed("I-PDU-TIMING", "P1"))
	assert.NotNil(t, dstPdu.FindNamed("I-PDU-TIMING", "P2"))
}

func TestExtendAttachedNodesAreResolvable(t *testing.T) {
	srcDoc := buildDoc("src.arxml", pkgSpec{name: "Src", elems: []string{"P1"}})
	dstDoc := buildDoc("dst.arxml", pkgSpec{name: "Dst"})
	srcElems := elementsOf(t, srcDoc, "Src")
	dstElems := elementsOf(t, dstDoc, "Dst")
	moved := srcElems.Children[0]

	m := New(DefaultConfig())
	_, err := m.Extend(srcElems.Children, dstElems, srcDoc, dstDoc)
	require.NoError(t, err)

	path, err := arxdoc.AbsolutePath(moved, dstDoc)
	require.NoError(t, err)
	assert.Equal(t, "/Dst/P1", path, "attached node resolves against the destination document")
}

func TestExtendWithTextKey(t *testing.T) {
	// Leaf reference nodes have no name holder; keying by text is the only
	// way to compare them.
	srcDoc := buildDoc("src.arxml", pkgSpec{name: "Src"})
	dstDoc := buildDoc("dst.arxml", pkgSpec{name: "Dst"})
	srcElems := elementsOf(t, srcDoc, "Src")
	dstElems := elementsOf(t, dstDoc, "Dst")

	dstDoc.Attach(dstElems, arxdoc.NewLeaf("FIBEX-ELEMENT-REF", "/Sig/A"))
	srcRefs := []*arxdoc.Node{
		arxdoc.NewLeaf("FIBEX-ELEMENT-REF", "/Sig/A"),
		arxdoc.NewLeaf("FIBEX-ELEMENT-REF", "/Sig/B"),
	}
	srcDoc.Attach(srcElems, srcRefs...)

	m := New(DefaultConfig())
	_, err := m.Extend(srcRefs, dstElems, srcDoc, dstDoc,
		WithMode(ModeGraceful), WithSourceKey(TextKey), WithDestKey(TextKey))
	require.NoError(t, err)

	assert.Len(t, dstElems.Children, 2, "only the non-clashing reference attached")
	assert.True(t, m.Clashes().AnyGraceful())
	require.Len(t, m.Clashes().Graceful(), 1)
	assert.Equal(t, []string{"/Sig/A"}, m.Clashes().Graceful()[0].Keys)
}

func TestMergerResetRun(t *testing.T) {
	srcDoc := buildDoc("src.arxml", pkgSpec{name: "Src", elems: []string{"P1"}})
	dstDoc := buildDoc("dst.arxml", pkgSpec{name: "Dst", elems: []string{"P1"}})

	m := New(Config{Mode: ModeStrict})
	_, err := m.Extend(elementsOf(t, srcDoc, "Src").Children, elementsOf(t, dstDoc, "Dst"), srcDoc, dstDoc)
	require.NoError(t, err)
	require.True(t, m.Clashes().AnyStrict())
	require.NotEmpty(t, m.Warnings())

	m.ResetRun()
	assert.False(t, m.Clashes().AnyStrict())
	assert.Empty(t, m.Warnings())
}

func TestIsValidMode(t *testing.T) {
	assert.True(t, IsValidMode("strict"))
	assert.True(t, IsValidMode("graceful"))
	assert.False(t, IsValidMode(""))
	assert.False(t, IsValidMode("lenient"))
	assert.Len(t, ValidModes(), 2)
}

func TestPathMapMerge(t *testing.T) {
	pm := PathMap{"/A/X": "/B/X"}
	pm.Merge(PathMap{"/A/Y": "/B/Y", "/A/X": "/C/X"})
	assert.Equal(t, PathMap{"/A/X": "/C/X", "/A/Y": "/B/Y"}, pm)
}
