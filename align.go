package imagetext

import "fmt"

// AxisKind selects how an AxisAlign anchors the block on one axis.
type AxisKind uint8

const (
	// AxisStart puts the start edge of the block at Value.
	AxisStart AxisKind = iota
	// AxisEnd puts the end edge of the block at Value.
	AxisEnd
	// AxisCenter puts the middle of the block at Value.
	AxisCenter
	// AxisCanvasCenter puts the middle of the block at the middle of the
	// surface. Value is ignored.
	AxisCanvasCenter
)

// String returns the string representation of the kind.
func (k AxisKind) String() string {
	switch k {
	case AxisStart:
		return "StartAt"
	case AxisEnd:
		return "EndAt"
	case AxisCenter:
		return "CenterAt"
	case AxisCanvasCenter:
		return "CenterAtCanvasCenter"
	default:
		return unknownStr
	}
}

// AxisAlign anchors a block on one axis. The zero value is StartAt(0).
type AxisAlign struct {
	Kind  AxisKind
	Value float32
}

// StartAt anchors the start edge of the block at v.
func StartAt(v float32) AxisAlign { return AxisAlign{Kind: AxisStart, Value: v} }

// EndAt anchors the end edge of the block at v.
func EndAt(v float32) AxisAlign { return AxisAlign{Kind: AxisEnd, Value: v} }

// CenterAt anchors the middle of the block at v.
func CenterAt(v float32) AxisAlign { return AxisAlign{Kind: AxisCenter, Value: v} }

// CenterAtCanvasCenter anchors the middle of the block at the middle of the
// surface.
func CenterAtCanvasCenter() AxisAlign { return AxisAlign{Kind: AxisCanvasCenter} }

// Resolve returns the start coordinate of a block of the given extent on a
// surface of surfaceExtent.
func (a AxisAlign) Resolve(extent, surfaceExtent float32) float32 {
	switch a.Kind {
	case AxisEnd:
		return a.Value - extent
	case AxisCenter:
		return a.Value - extent/2
	case AxisCanvasCenter:
		return surfaceExtent/2 - extent/2
	default:
		return a.Value
	}
}

// String implements fmt.Stringer.
func (a AxisAlign) String() string {
	if a.Kind == AxisCanvasCenter {
		return a.Kind.String() + "()"
	}
	return fmt.Sprintf("%s(%g)", a.Kind, a.Value)
}

// TextBlockPosition anchors a block on both axes.
type TextBlockPosition struct {
	X, Y AxisAlign
}

// String implements fmt.Stringer.
func (p TextBlockPosition) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Resolve returns the top-left pixel origin of a block measuring
// width by height on a surface of surfaceW by surfaceH pixels. The axes are
// resolved independently.
func Resolve(pos TextBlockPosition, width, height float32, surfaceW, surfaceH int) (x, y float32) {
	return pos.X.Resolve(width, float32(surfaceW)), pos.Y.Resolve(height, float32(surfaceH))
}
