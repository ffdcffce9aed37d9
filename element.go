package svg2pptx

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Element is a node in a parsed SVG document tree.
type Element struct {
	Tag      string // local name, namespace prefix stripped
	Attrib   map[string]string
	Parent   *Element
	Children []*Element
	Text     string // concatenated character data
}

// Attr returns the attribute value, or the empty string when absent.
func (e *Element) Attr(name string) string {
	return e.Attrib[name]
}

// Rendered returns false for subtrees that define reusable or meta content
// and do not render by themselves, such as defs and clipPath.
func (e *Element) Rendered() bool {
	return !nonRenderedTags[e.Tag]
}

// styleDecl extracts a declaration from an inline style attribute value.
func styleDecl(style, name string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		if k, v, ok := strings.Cut(decl, ":"); ok && strings.TrimSpace(k) == name {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// Paint resolves a presentation property such as fill or stroke-width,
// checking the inline style attribute before the presentation attribute and
// walking up the ancestor chain, since paint properties inherit in SVG.
func (e *Element) Paint(name string) string {
	for ; e != nil; e = e.Parent {
		if style, ok := e.Attrib["style"]; ok {
			if v, ok := styleDecl(style, name); ok {
				return v
			}
		}
		if v, ok := e.Attrib[name]; ok {
			return v
		}
	}
	return ""
}

// localName strips a namespace prefix, eg. svg:rect becomes rect.
func localName(s string) string {
	if i := strings.IndexByte(s, ':'); i != -1 {
		return s[i+1:]
	}
	return s
}

// unquote strips the surrounding quotes the XML lexer leaves on attribute
// values.
func unquote(b []byte) string {
	if 1 < len(b) && (b[0] == '"' || b[0] == '\'') && b[len(b)-1] == b[0] {
		b = b[1 : len(b)-1]
	}
	return string(b)
}

// ParseSVG parses an SVG document into an element tree rooted at the first
// svg element. Markup before the root (XML declaration, doctype, comments)
// is skipped.
func ParseSVG(r io.Reader) (*Element, error) {
	l := xml.NewLexer(parse.NewInput(r))

	var root, cur, open *Element
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() == io.EOF {
				if root == nil {
					return nil, fmt.Errorf("no svg root element found")
				}
				return root, nil
			}
			return nil, l.Err()
		case xml.StartTagToken:
			e := &Element{Tag: localName(string(l.Text())), Attrib: map[string]string{}, Parent: cur}
			if cur != nil {
				cur.Children = append(cur.Children, e)
			} else if root == nil && e.Tag == "svg" {
				root = e
			}
			open = e
		case xml.AttributeToken:
			if open != nil {
				open.Attrib[localName(string(l.Text()))] = unquote(l.AttrVal())
			}
		case xml.StartTagCloseToken:
			if open != nil && (open.Parent != nil || open == root) {
				cur = open
			}
			open = nil
		case xml.StartTagCloseVoidToken:
			open = nil
		case xml.EndTagToken:
			if cur != nil {
				cur = cur.Parent
			}
		case xml.TextToken:
			if cur != nil {
				cur.Text += string(data)
			}
		case xml.CDATAToken:
			if cur != nil {
				cur.Text += string(l.Text())
			}
		}
	}
}
