package transit_test

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/transit-section/transit"
)

func TestAlmostEqualPoints(t *testing.T) {
	base := transit.Point{X: 37.61, Y: 67.42}

	tests := []struct {
		name  string
		other transit.Point
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "within tolerance", other: transit.Point{X: base.X + 5e-7, Y: base.Y + 5e-7}, want: true},
		{name: "x off", other: transit.Point{X: base.X + 2e-6, Y: base.Y}, want: false},
		{name: "y off", other: transit.Point{X: base.X, Y: base.Y - 2e-6}, want: false},
		{name: "both off", other: transit.Point{X: base.X + 2e-6, Y: base.Y + 2e-6}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transit.AlmostEqualPoints(base, tt.other); got != tt.want {
				t.Errorf("AlmostEqualPoints(%v, %v) = %t, want %t", base, tt.other, got, tt.want)
			}
		})
	}
}

func TestAlmostEqualWeights(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "identical", a: 120, b: 120, want: true},
		{name: "within tolerance", a: 120, b: 120.005, want: true},
		{name: "beyond tolerance", a: 120, b: 120.02, want: false},
		{name: "negative direction", a: 120, b: 119.98, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transit.AlmostEqualWeights(tt.a, tt.b); got != tt.want {
				t.Errorf("AlmostEqualWeights(%g, %g) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIdentifierSentinels(t *testing.T) {
	if transit.InvalidLineID.IsValid() || transit.InvalidStopID.IsValid() ||
		transit.InvalidTransferID.IsValid() || transit.InvalidNetworkID.IsValid() ||
		transit.InvalidFeatureID.IsValid() || transit.InvalidOsmID.IsValid() {
		t.Error("sentinel identifiers must not be valid")
	}
	if !transit.LineID(0).IsValid() || !transit.StopID(0).IsValid() || !transit.NetworkID(0).IsValid() {
		t.Error("zero is an ordinary identifier")
	}
	if transit.InvalidStopID != transit.StopID(1<<64-1) {
		t.Errorf("InvalidStopID = %d", transit.InvalidStopID)
	}
	if transit.InvalidLineID != transit.LineID(1<<32-1) {
		t.Errorf("InvalidLineID = %d", transit.InvalidLineID)
	}
}

func TestIsValidWeight(t *testing.T) {
	tests := []struct {
		name string
		w    float64
		want bool
	}{
		{name: "zero", w: 0, want: true},
		{name: "positive", w: 120, want: true},
		{name: "invalid sentinel", w: transit.InvalidWeight, want: false},
		{name: "NaN", w: math.NaN(), want: false},
		{name: "positive infinity", w: math.Inf(1), want: false},
		{name: "negative infinity", w: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transit.IsValidWeight(tt.w); got != tt.want {
				t.Errorf("IsValidWeight(%g) = %t, want %t", tt.w, got, tt.want)
			}
		})
	}
}

func TestIsEqualForTesting_NonFiniteReflexive(t *testing.T) {
	inf := math.Inf(1)
	gate := transit.NewGate(transit.NoFeature, true, true, inf, []transit.StopID{1}, transit.Point{X: inf, Y: 1})
	edge := transit.NewTransferEdge(1, 2, inf)
	nanEdge := transit.NewTransferEdge(1, 2, math.NaN())
	stop := transit.NewStop(1, transit.NoFeature, transit.InvalidTransferID, []transit.LineID{1}, transit.Point{X: 1, Y: math.Inf(-1)}, nil)
	shape := transit.NewShape(transit.NewShapeID(1, 2), []transit.Point{{X: inf, Y: inf}})

	if !gate.IsEqualForTesting(gate) {
		t.Error("gate with infinite weight and point should equal itself")
	}
	if !edge.IsEqualForTesting(edge) || !nanEdge.IsEqualForTesting(nanEdge) {
		t.Error("edge with non-finite weight should equal itself")
	}
	if !stop.IsEqualForTesting(stop) || !shape.IsEqualForTesting(shape) {
		t.Error("records with infinite coordinates should equal themselves")
	}
	if transit.AlmostEqualWeights(inf, math.Inf(-1)) || transit.AlmostEqualWeights(inf, 120) {
		t.Error("infinity equals only the same infinity")
	}
}
