package imagetext

import "testing"

func TestAxisAlign_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		a       AxisAlign
		extent  float32
		surface float32
		want    float32
	}{
		{"zero value", AxisAlign{}, 40, 100, 0},
		{"start", StartAt(12), 40, 100, 12},
		{"end", EndAt(100), 40, 100, 60},
		{"end past origin", EndAt(10), 40, 100, -30},
		{"center", CenterAt(50), 40, 100, 30},
		{"canvas center", CenterAtCanvasCenter(), 40, 100, 30},
		{"canvas center ignores value", AxisAlign{Kind: AxisCanvasCenter, Value: 999}, 40, 100, 30},
		{"canvas center overflow", CenterAtCanvasCenter(), 300, 100, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Resolve(tt.extent, tt.surface); got != tt.want {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tt.extent, tt.surface, got, tt.want)
			}
		})
	}
}

func TestResolve_IndependentAxes(t *testing.T) {
	pos := TextBlockPosition{X: CenterAtCanvasCenter(), Y: EndAt(80)}
	x, y := Resolve(pos, 100, 20, 400, 300)
	if x != 150 || y != 60 {
		t.Errorf("Resolve() = (%v, %v), want (150, 60)", x, y)
	}

	pos = TextBlockPosition{X: StartAt(7), Y: CenterAtCanvasCenter()}
	x, y = Resolve(pos, 100, 20, 400, 300)
	if x != 7 || y != 140 {
		t.Errorf("Resolve() = (%v, %v), want (7, 140)", x, y)
	}
}

func TestAxisAlign_String(t *testing.T) {
	tests := []struct {
		a    AxisAlign
		want string
	}{
		{StartAt(1.5), "StartAt(1.5)"},
		{EndAt(-2), "EndAt(-2)"},
		{CenterAt(0), "CenterAt(0)"},
		{CenterAtCanvasCenter(), "CenterAtCanvasCenter()"},
		{AxisAlign{Kind: 9}, "Unknown(0)"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
