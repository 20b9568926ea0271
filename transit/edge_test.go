package transit_test

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/transit-section/transit"
)

func TestEdge_IsValid(t *testing.T) {
	shapes := []transit.ShapeID{transit.NewShapeID(1, 2)}

	tests := []struct {
		name string
		edge transit.Edge
		want bool
	}{
		{
			name: "transfer edge",
			edge: transit.NewEdge(1, 2, 120.0, transit.InvalidLineID, true, nil),
			want: true,
		},
		{
			name: "same fields without transfer flag",
			edge: transit.NewEdge(1, 2, 120.0, transit.InvalidLineID, false, nil),
			want: false,
		},
		{
			name: "transfer edge with line",
			edge: transit.NewEdge(1, 2, 120.0, 7, true, nil),
			want: false,
		},
		{
			name: "transfer edge with shapes",
			edge: transit.NewEdge(1, 2, 120.0, transit.InvalidLineID, true, shapes),
			want: false,
		},
		{
			name: "line edge",
			edge: transit.NewEdge(1, 2, 120.0, 7, false, shapes),
			want: true,
		},
		{
			name: "line edge without shapes",
			edge: transit.NewEdge(1, 2, 120.0, 7, false, nil),
			want: true,
		},
		{
			name: "invalid stop1",
			edge: transit.NewEdge(transit.InvalidStopID, 2, 120.0, 7, false, nil),
			want: false,
		},
		{
			name: "invalid stop2 on transfer",
			edge: transit.NewEdge(1, transit.InvalidStopID, 120.0, transit.InvalidLineID, true, nil),
			want: false,
		},
		{
			name: "invalid weight",
			edge: transit.NewEdge(1, 2, transit.InvalidWeight, 7, false, nil),
			want: false,
		},
		{
			name: "NaN weight",
			edge: transit.NewTransferEdge(1, 2, math.NaN()),
			want: false,
		},
		{
			name: "infinite weight",
			edge: transit.NewLineEdge(1, 2, math.Inf(1), 7, nil),
			want: false,
		},
		{
			name: "sentinel filled",
			edge: transit.NewEdge(transit.InvalidStopID, transit.InvalidStopID, transit.InvalidWeight, transit.InvalidLineID, false, nil),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.IsValid(); got != tt.want {
				t.Errorf("%v.IsValid() = %t, want %t", tt.edge, got, tt.want)
			}
		})
	}
}

func TestEdge_KindConstructors(t *testing.T) {
	line := transit.NewLineEdge(1, 2, 60, 3, []transit.ShapeID{transit.NewShapeID(1, 2)})
	if line.Kind() != transit.LineEdge || !line.IsValid() {
		t.Errorf("line edge: kind %v, valid %t", line.Kind(), line.IsValid())
	}

	transfer := transit.NewTransferEdge(1, 2, 60)
	if transfer.Kind() != transit.TransferEdge || !transfer.IsValid() {
		t.Errorf("transfer edge: kind %v, valid %t", transfer.Kind(), transfer.IsValid())
	}
	if transfer.LineID() != transit.InvalidLineID || len(transfer.ShapeIDs()) != 0 {
		t.Errorf("transfer edge carries line or shapes: %v", transfer)
	}
}

func TestEdge_WithWeight(t *testing.T) {
	e := transit.NewLineEdge(1, 2, transit.InvalidWeight, 3, nil)
	if e.IsValid() {
		t.Fatal("edge without weight should be invalid")
	}

	filled := e.WithWeight(42)
	if !filled.IsValid() || filled.Weight() != 42 {
		t.Errorf("filled edge = %v", filled)
	}
	if e.Weight() != transit.InvalidWeight {
		t.Error("WithWeight must not modify the receiver")
	}
}

func TestEdge_IsEqualForTesting(t *testing.T) {
	shapes := []transit.ShapeID{transit.NewShapeID(1, 2), transit.NewShapeID(2, 3)}
	e := transit.NewLineEdge(1, 3, 300, 5, shapes)

	tests := []struct {
		name  string
		other transit.Edge
		want  bool
	}{
		{name: "reflexive", other: e, want: true},
		{name: "weight within tolerance", other: transit.NewLineEdge(1, 3, 300.005, 5, shapes), want: true},
		{name: "weight beyond tolerance", other: transit.NewLineEdge(1, 3, 300.02, 5, shapes), want: false},
		{name: "other line", other: transit.NewLineEdge(1, 3, 300, 6, shapes), want: false},
		{name: "shape order matters", other: transit.NewLineEdge(1, 3, 300, 5, []transit.ShapeID{shapes[1], shapes[0]}), want: false},
		{name: "reversed stops", other: transit.NewLineEdge(3, 1, 300, 5, shapes), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsEqualForTesting(tt.other); got != tt.want {
				t.Errorf("IsEqualForTesting = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNewEdge_CopiesShapes(t *testing.T) {
	shapes := []transit.ShapeID{transit.NewShapeID(1, 2)}
	e := transit.NewLineEdge(1, 2, 10, 1, shapes)
	shapes[0] = transit.NoShapeID

	if e.ShapeIDs()[0] != transit.NewShapeID(1, 2) {
		t.Errorf("edge shares caller slice: %v", e.ShapeIDs())
	}
}
