package arxio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0">
  <AR-PACKAGES>
    <AR-PACKAGE UUID="pkg-1">
      <SHORT-NAME>Communication</SHORT-NAME>
      <ELEMENTS>
        <I-SIGNAL UUID="sig-1">
          <SHORT-NAME>Sig1</SHORT-NAME>
        </I-SIGNAL>
        <I-SIGNAL-REF>/Communication/Sig1</I-SIGNAL-REF>
      </ELEMENTS>
    </AR-PACKAGE>
  </AR-PACKAGES>
</AUTOSAR>
`

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleDoc), "sample.arxml")
	require.NoError(t, err)

	assert.Equal(t, "sample.arxml", doc.SourcePath)
	assert.Equal(t, "http://autosar.org/schema/r4.0", doc.Namespace)
	assert.Equal(t, "AUTOSAR", doc.Root.Tag, "tags stored namespace-stripped")

	pkg := doc.Root.FindNamed("AR-PACKAGE", "Communication")
	require.NotNil(t, pkg)
	id, ok := pkg.Identity()
	require.True(t, ok)
	assert.Equal(t, "pkg-1", id)
	assert.NotContains(t, pkg.Attrib, "xmlns", "namespace declarations are not attributes")

	sig := pkg.FindNamed("I-SIGNAL", "Sig1")
	require.NotNil(t, sig)
	assert.Equal(t, "/Communication/Sig1", pkg.FindFirst("I-SIGNAL-REF").Text)

	// The document arrives fully reindexed: paths resolve immediately.
	path, err := arxdoc.AbsolutePath(sig, doc)
	require.NoError(t, err)
	assert.Equal(t, "/Communication/Sig1", path)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "unclosed element", input: "<AUTOSAR><AR-PACKAGES></AUTOSAR>"},
		{name: "not xml at all", input: "packages:\n  - name: X\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "bad.arxml")
			require.Error(t, err)
			assert.ErrorIs(t, err, arxerrors.ErrParse)
			var parseErr *arxerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "bad.arxml", parseErr.Path)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleDoc), "sample.arxml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(doc, &buf))
	out := buf.String()
	assert.Contains(t, out, `xmlns="http://autosar.org/schema/r4.0"`)
	assert.Contains(t, out, `UUID="sig-1"`)

	again, err := Read(strings.NewReader(out), "roundtrip.arxml")
	require.NoError(t, err)
	assert.True(t, arxdoc.Equal(doc.Root, again.Root), "round-trip preserves the tree")
	assert.Equal(t, doc.Namespace, again.Namespace)
}

func TestPrefixedAttributesRoundTrip(t *testing.T) {
	const prefixedDoc = `<?xml version="1.0" encoding="UTF-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://autosar.org/schema/r4.0 AUTOSAR_00049.xsd">
  <AR-PACKAGES/>
</AUTOSAR>
`
	doc, err := Read(strings.NewReader(prefixedDoc), "prefixed.arxml")
	require.NoError(t, err)

	assert.Equal(t, "http://autosar.org/schema/r4.0", doc.Namespace)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema-instance", doc.Root.Attrib["xmlns:xsi"])
	assert.Equal(t, "http://autosar.org/schema/r4.0 AUTOSAR_00049.xsd", doc.Root.Attrib["xsi:schemaLocation"])

	var buf bytes.Buffer
	require.NoError(t, Write(doc, &buf))
	out := buf.String()
	assert.Contains(t, out, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	assert.Contains(t, out, `xsi:schemaLocation="http://autosar.org/schema/r4.0 AUTOSAR_00049.xsd"`)

	again, err := Read(strings.NewReader(out), "roundtrip.arxml")
	require.NoError(t, err)
	assert.True(t, arxdoc.Equal(doc.Root, again.Root), "prefixed attributes survive a round trip")
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.arxml")
	out := filepath.Join(dir, "out.arxml")
	require.NoError(t, os.WriteFile(in, []byte(sampleDoc), 0o600))

	doc, err := ReadFile(in)
	require.NoError(t, err)
	require.NoError(t, WriteFile(doc, out))

	again, err := ReadFile(out)
	require.NoError(t, err)
	assert.True(t, arxdoc.Equal(doc.Root, again.Root))

	_, err = ReadFile(filepath.Join(dir, "missing.arxml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, arxerrors.ErrParse)
}
