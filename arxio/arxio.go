package arxio

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

// Read parses the external XML tree format from r into a fully reindexed
// document. sourcePath identifies the origin for errors and warnings; it is
// not opened.
//
// Whitespace-only text content is dropped, other text is stored trimmed.
// The default namespace declaration is captured on the document, not stored
// as an attribute. Prefixed declarations (xmlns:xsi) and prefixed attributes
// (xsi:schemaLocation) keep their prefixed form, so they survive a write.
func Read(r io.Reader, sourcePath string) (*arxdoc.Document, error) {
	dec := xml.NewDecoder(r)

	var root *arxdoc.Node
	var namespace string
	var stack []*arxdoc.Node
	prefixes := make(map[string]string)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(sourcePath, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := arxdoc.NewNode(t.Name.Local)
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" {
					prefixes[attr.Value] = attr.Name.Local
				}
			}
			for _, attr := range t.Attr {
				var key string
				switch {
				case attr.Name.Space == "" && attr.Name.Local == "xmlns":
					if root == nil && attr.Value != "" {
						namespace = attr.Value
					}
					continue
				case attr.Name.Space == "xmlns":
					key = "xmlns:" + attr.Name.Local
				case attr.Name.Space != "":
					// The decoder resolves a declared prefix to its URI;
					// map it back so the prefixed form is what gets stored.
					if prefix, ok := prefixes[attr.Name.Space]; ok {
						key = prefix + ":" + attr.Name.Local
					} else {
						key = attr.Name.Space + ":" + attr.Name.Local
					}
				default:
					key = attr.Name.Local
				}
				if node.Attrib == nil {
					node.Attrib = make(map[string]string, len(t.Attr))
				}
				node.Attrib[key] = attr.Value
			}
			if root == nil {
				root = node
				if namespace == "" {
					namespace = t.Name.Space
				}
			} else if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if text := strings.TrimSpace(string(t)); text != "" {
				stack[len(stack)-1].Text += text
			}
		}
	}

	if root == nil {
		return nil, &arxerrors.ParseError{
			Path:    sourcePath,
			Message: "document has no root element",
		}
	}

	doc := arxdoc.NewDocument(root, sourcePath)
	doc.Namespace = namespace
	doc.Reindex()
	return doc, nil
}

// ReadFile parses the external XML tree format from the file at path.
func ReadFile(path string) (*arxdoc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &arxerrors.ParseError{
			Path:    path,
			Message: "cannot open document",
			Cause:   err,
		}
	}
	defer f.Close()
	return Read(f, path)
}

// Write serializes doc to w as indented XML. The namespace captured on read
// is re-emitted on the root element.
func Write(doc *arxdoc.Document, w io.Writer) error {
	if doc == nil || doc.Root == nil {
		return &arxerrors.ParseError{
			Path:    sourceOf(doc),
			Message: "document has no root element",
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encodeNode(enc, doc.Root, doc.Namespace); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile serializes doc to the file at path.
func WriteFile(doc *arxdoc.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeNode emits n and its subtree. namespace is non-empty for the root
// element only.
func encodeNode(enc *xml.Encoder, n *arxdoc.Node, namespace string) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	if namespace != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "xmlns"},
			Value: namespace,
		})
	}
	// Deterministic attribute order keeps the output diffable.
	keys := make([]string, 0, len(n.Attrib))
	for k := range n.Attrib {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: k},
			Value: n.Attrib[k],
		})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeNode(enc, c, ""); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}

// parseError wraps a decoder error, extracting the line number when the
// underlying error carries one.
func parseError(sourcePath string, err error) error {
	line := 0
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		line = syntaxErr.Line
	}
	return &arxerrors.ParseError{
		Path:    sourcePath,
		Line:    line,
		Message: "malformed document",
		Cause:   err,
	}
}

func sourceOf(doc *arxdoc.Document) string {
	if doc == nil {
		return ""
	}
	return doc.SourcePath
}
