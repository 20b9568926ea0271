package transit_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-section/transit"
)

func TestFirstInvalid(t *testing.T) {
	lines := []transit.Line{
		transit.NewLine(1, "1", "", "bus", 1, []transit.StopID{1}),
		transit.NewLine(2, "2", "", "bus", 1, []transit.StopID{2}),
		transit.NewLine(3, "3", "", "bus", transit.InvalidNetworkID, []transit.StopID{3}),
		transit.NewLine(4, "4", "", "bus", 1, nil),
	}

	if got := transit.FirstInvalid(lines); got != 2 {
		t.Errorf("FirstInvalid = %d, want 2", got)
	}
	if transit.AllValid(lines) {
		t.Error("AllValid should be false")
	}
	if !transit.AllValid(lines[:2]) {
		t.Error("AllValid should be true for the first two lines")
	}
	if got := transit.FirstInvalid([]transit.Edge{}); got != -1 {
		t.Errorf("FirstInvalid(empty) = %d, want -1", got)
	}
}
