package markup

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/imagetext"
)

var weightNames = map[string]imagetext.Weight{
	"thin":       imagetext.WeightThin,
	"extralight": imagetext.WeightExtraLight,
	"light":      imagetext.WeightLight,
	"normal":     imagetext.WeightNormal,
	"regular":    imagetext.WeightNormal,
	"medium":     imagetext.WeightMedium,
	"semibold":   imagetext.WeightSemibold,
	"bold":       imagetext.WeightBold,
	"extrabold":  imagetext.WeightExtraBold,
	"black":      imagetext.WeightBlack,
}

const colorForms = "a #rgb, #rgba, #rrggbb or #rrggbbaa color"

var alignNames = map[string]imagetext.TextAlign{
	"left":      imagetext.TextAlignLeft,
	"right":     imagetext.TextAlignRight,
	"end":       imagetext.TextAlignEnd,
	"center":    imagetext.TextAlignCenter,
	"justified": imagetext.TextAlignJustified,
}

// TextBlock converts the document to a text block.
func (d *Document) TextBlock() (imagetext.TextBlock, error) {
	if d == nil || d.Block == nil {
		return imagetext.TextBlock{}, ErrEmptyMarkup
	}
	b := d.Block

	var block imagetext.TextBlock
	defaults := imagetext.NewSpan("")
	for _, a := range b.Attrs {
		var err error
		switch a.Key {
		case "align":
			block.TextAlign, err = a.align()
		case "x":
			block.Alignment.X, err = a.axis()
		case "y":
			block.Alignment.Y, err = a.axis()
		case "width":
			var w float32
			w, err = a.positive()
			block.MaxWidth = &w
		case "height":
			var h float32
			h, err = a.positive()
			block.MaxHeight = &h
		case "font":
			block.Font, err = a.name()
		default:
			err = a.applySpan(&defaults)
		}
		if err != nil {
			return imagetext.TextBlock{}, err
		}
	}

	block.Spans = make([]imagetext.Span, 0, len(b.Spans))
	for _, n := range b.Spans {
		s := defaults
		s.Text = string(n.Text)
		for _, a := range n.Attrs {
			if err := a.applySpan(&s); err != nil {
				return imagetext.TextBlock{}, err
			}
		}
		block.Spans = append(block.Spans, s)
	}
	return block, nil
}

// applySpan sets the span attribute a on s.
func (a *Attr) applySpan(s *imagetext.Span) error {
	var err error
	switch a.Key {
	case "size":
		s.FontSize, err = a.positive()
	case "weight":
		s.Weight, err = a.weight()
	case "color":
		s.Color, err = a.color()
	case "family":
		s.Family, err = a.name()
	case "lineheight":
		s.LineHeight, err = a.positive()
	default:
		return fmt.Errorf("%s: %w %q", a.Pos, ErrUnknownAttribute, a.Key)
	}
	return err
}

func (a *Attr) invalid(want string) error {
	return fmt.Errorf("%s: %w for %s: %s, want %s", a.Pos, ErrInvalidValue, a.Key, a.Value, want)
}

func (a *Attr) positive() (float32, error) {
	if a.Value.Number == nil || *a.Value.Number <= 0 {
		return 0, a.invalid("a positive number")
	}
	return float32(*a.Value.Number), nil
}

func (a *Attr) name() (string, error) {
	switch {
	case a.Value.Str != nil:
		return string(*a.Value.Str), nil
	case a.Value.Ident != nil:
		return *a.Value.Ident, nil
	default:
		return "", a.invalid("a name")
	}
}

func (a *Attr) align() (imagetext.TextAlign, error) {
	if a.Value.Ident != nil {
		if v, ok := alignNames[strings.ToLower(*a.Value.Ident)]; ok {
			return v, nil
		}
	}
	return 0, a.invalid("left, right, end, center or justified")
}

func (a *Attr) weight() (imagetext.Weight, error) {
	v := a.Value
	switch {
	case v.Number != nil && *v.Number >= 1 && *v.Number <= 1000:
		return imagetext.Weight(*v.Number), nil
	case v.Ident != nil:
		if w, ok := weightNames[strings.ToLower(*v.Ident)]; ok {
			return w, nil
		}
	}
	return 0, a.invalid("a weight name or a number from 1 to 1000")
}

func (a *Attr) axis() (imagetext.AxisAlign, error) {
	v := a.Value
	switch {
	case v.Number != nil:
		return imagetext.StartAt(float32(*v.Number)), nil
	case v.Ident != nil && *v.Ident == "canvas-center":
		return imagetext.CenterAtCanvasCenter(), nil
	case v.Call != nil:
		arg := float32(v.Call.Arg)
		switch v.Call.Name {
		case "start":
			return imagetext.StartAt(arg), nil
		case "end":
			return imagetext.EndAt(arg), nil
		case "center":
			return imagetext.CenterAt(arg), nil
		}
	}
	return imagetext.AxisAlign{}, a.invalid("a number, start(n), end(n), center(n) or canvas-center")
}

// color parses #rgb, #rgba, #rrggbb or #rrggbbaa, with straight alpha,
// into a premultiplied color.
func (a *Attr) color() (color.RGBA, error) {
	if a.Value.Color == nil {
		return color.RGBA{}, a.invalid(colorForms)
	}
	hex := strings.TrimPrefix(*a.Value.Color, "#")
	if len(hex) == 3 || len(hex) == 4 {
		long := make([]byte, 0, 2*len(hex))
		for i := range len(hex) {
			long = append(long, hex[i], hex[i])
		}
		hex = string(long)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 8 {
		return color.RGBA{}, a.invalid(colorForms)
	}
	c := color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
