// Package markup parses a small text block language into
// imagetext.TextBlock values.
//
// A document holds one block. Block attributes set the layout and the
// defaults of its spans; each span is a quoted string, optionally preceded
// by the span keyword and its own attributes:
//
//	// greeting card
//	block align=center x=canvas-center y=end(480) width=320 size=40 {
//	    span weight=bold color=#ffcc00 "Hello\n"
//	    "world"
//	}
//
// Block attributes are align, x, y, width, height and font. Span attributes,
// also accepted on the block as defaults, are size, weight, color, family
// and lineheight. Colors are #rgb, #rgba, #rrggbb or #rrggbbaa with
// straight alpha. Axes take a number (start edge), start(n), end(n),
// center(n) or canvas-center.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/imagetext"
)

// Sentinel errors returned by Parse.
var (
	// ErrEmptyMarkup is returned for a document without a block.
	ErrEmptyMarkup = errors.New("markup: empty document")

	// ErrUnknownAttribute is returned for an attribute name that does not
	// apply where it is used.
	ErrUnknownAttribute = errors.New("markup: unknown attribute")

	// ErrInvalidValue is returned for an attribute value of the wrong kind
	// or out of range.
	ErrInvalidValue = errors.New("markup: invalid value")
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{3})\b`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+|\.\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[=(){}]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "LineComment"),
		participle.UseLookahead(2),
	)
)

// Document is the root AST node of a markup file.
type Document struct {
	Block *Block `parser:"@@?"`
}

// Block is a text block with its attributes and spans.
type Block struct {
	Pos   lexer.Position `parser:""`
	Attrs []*Attr        `parser:"'block' @@*"`
	Spans []*SpanNode    `parser:"'{' @@* '}'"`
}

// SpanNode is one span of text.
type SpanNode struct {
	Pos   lexer.Position `parser:""`
	Attrs []*Attr        `parser:"( 'span' @@* )?"`
	Text  StringLiteral  `parser:"@String"`
}

// Attr is a key=value attribute.
type Attr struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@Ident '='"`
	Value *Value         `parser:"@@"`
}

// Value is an attribute value.
type Value struct {
	Str    *StringLiteral `parser:"  @String"`
	Number *float64       `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Call   *Call          `parser:"| @@"`
	Ident  *string        `parser:"| @Ident"`
}

// Call is a function-style value such as end(480).
type Call struct {
	Name string  `parser:"@Ident '('"`
	Arg  float64 `parser:"@Number ')'"`
}

// String returns the value as written, for error messages.
func (v *Value) String() string {
	switch {
	case v == nil:
		return "<nil>"
	case v.Str != nil:
		return strconv.Quote(string(*v.Str))
	case v.Number != nil:
		return strconv.FormatFloat(*v.Number, 'g', -1, 64)
	case v.Color != nil:
		return *v.Color
	case v.Call != nil:
		return fmt.Sprintf("%s(%g)", v.Call.Name, v.Call.Arg)
	case v.Ident != nil:
		return *v.Ident
	default:
		return "<empty>"
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// ParseDocument parses markup from r into its syntax tree. filename is only
// used in error positions.
func ParseDocument(filename string, r io.Reader) (*Document, error) {
	doc, err := documentParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	return doc, nil
}

// Parse parses markup from r into a text block.
func Parse(filename string, r io.Reader) (imagetext.TextBlock, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return imagetext.TextBlock{}, fmt.Errorf("markup: read %s: %w", filename, err)
	}
	if blank(string(src)) {
		return imagetext.TextBlock{}, ErrEmptyMarkup
	}
	doc, err := ParseDocument(filename, bytes.NewReader(src))
	if err != nil {
		return imagetext.TextBlock{}, err
	}
	return doc.TextBlock()
}

// blank reports whether src holds nothing but whitespace and comments.
func blank(src string) bool {
	for line := range strings.Lines(src) {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "//") {
			return false
		}
	}
	return true
}

// ParseString parses markup held in a string into a text block.
func ParseString(src string) (imagetext.TextBlock, error) {
	return Parse("", strings.NewReader(src))
}
