package transit

import (
	"fmt"
	"slices"
)

// EdgeKind tells a scheduled hop on a line from a free transfer hop.
type EdgeKind int

const (
	LineEdge EdgeKind = iota
	TransferEdge
)

func (k EdgeKind) String() string {
	if k == TransferEdge {
		return "transfer"
	}
	return "line"
}

// Edge is a directed timed connection between two stops.
//
// A transfer edge has no line and no geometry of its own. A line edge always
// belongs to exactly one line.
type Edge struct {
	stop1ID  StopID
	stop2ID  StopID
	weight   Weight
	lineID   LineID
	transfer bool
	shapeIDs []ShapeID
}

// NewEdge accepts any field combination, including contradictory ones;
// callers must check IsValid. shapeIDs is copied.
func NewEdge(stop1ID, stop2ID StopID, weight Weight, lineID LineID, transfer bool, shapeIDs []ShapeID) Edge {
	return Edge{
		stop1ID:  stop1ID,
		stop2ID:  stop2ID,
		weight:   weight,
		lineID:   lineID,
		transfer: transfer,
		shapeIDs: slices.Clone(shapeIDs),
	}
}

// NewLineEdge builds a scheduled hop of line lineID along shapeIDs.
func NewLineEdge(stop1ID, stop2ID StopID, weight Weight, lineID LineID, shapeIDs []ShapeID) Edge {
	return NewEdge(stop1ID, stop2ID, weight, lineID, false, shapeIDs)
}

// NewTransferEdge builds a transfer hop. It never carries a line or shapes.
func NewTransferEdge(stop1ID, stop2ID StopID, weight Weight) Edge {
	return NewEdge(stop1ID, stop2ID, weight, InvalidLineID, true, nil)
}

// WithWeight returns a copy of e with its weight replaced.
func (e Edge) WithWeight(weight Weight) Edge {
	e.weight = weight
	return e
}

func (e Edge) Stop1ID() StopID { return e.stop1ID }
func (e Edge) Stop2ID() StopID { return e.stop2ID }
func (e Edge) Weight() Weight { return e.weight }
func (e Edge) LineID() LineID { return e.lineID }
func (e Edge) Transfer() bool { return e.transfer }
func (e Edge) ShapeIDs() []ShapeID { return e.shapeIDs }

func (e Edge) Kind() EdgeKind {
	if e.transfer {
		return TransferEdge
	}
	return LineEdge
}

// IsValid enforces the transfer/line exclusivity: a transfer edge has no line
// and no shapes, a line edge has a line. Both need valid stops and a finite weight.
func (e Edge) IsValid() bool {
	if e.transfer && (e.lineID.IsValid() || len(e.shapeIDs) != 0) {
		return false
	}
	if !e.transfer && !e.lineID.IsValid() {
		return false
	}
	return e.stop1ID.IsValid() && e.stop2ID.IsValid() && IsValidWeight(e.weight)
}

func (e Edge) IsEqualForTesting(other Edge) bool {
	return e.stop1ID == other.stop1ID && e.stop2ID == other.stop2ID &&
		AlmostEqualWeights(e.weight, other.weight) &&
		e.lineID == other.lineID && e.transfer == other.transfer &&
		slices.Equal(e.shapeIDs, other.shapeIDs)
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge [stop1_id: %d, stop2_id: %d, weight: %g, line_id: %d, transfer: %t, shape_ids: %v]",
		e.stop1ID, e.stop2ID, e.weight, e.lineID, e.transfer, e.shapeIDs)
}
