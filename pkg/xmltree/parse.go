package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrParse is returned when the document is not well-formed XML.
var ErrParse = errors.New("malformed document")

// Load parses the XML file at path and returns its root element.
func Load(path string) (*Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}

	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	root, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// ParseString parses an inline XML document.
func ParseString(text string) (*Node, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a whole XML document from r and builds its element tree.
// Only elements and their attributes are kept; text, comments and directives are dropped.
// Documents declaring a non UTF-8 encoding, such as ISO-8859-1, are decoded first.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var (
		root  *Node
		stack []*Node
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch elem := token.(type) {
		case xml.StartElement:
			node := newNode(elem)
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(elem)) > 0 {
				return nil, fmt.Errorf("%w: text outside of the document element", ErrParse)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}

	return root, nil
}

func newNode(elem xml.StartElement) *Node {
	node := &Node{
		Tag:   elem.Name.Local,
		Attrs: make(map[string]string, len(elem.Attr)),
	}
	for _, attr := range elem.Attr {
		node.Attrs[attrKey(attr.Name)] = attr.Value
	}
	return node
}

// attrKey keys namespaced attributes as "{namespace}local", so that they never shadow
// an attribute without namespace of the same local name.
func attrKey(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
