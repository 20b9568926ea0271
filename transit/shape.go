package transit

import (
	"fmt"
	"slices"
)

// ShapeID names the polyline between two stops.
type ShapeID struct {
	stop1ID StopID
	stop2ID StopID
}

func NewShapeID(stop1ID, stop2ID StopID) ShapeID {
	return ShapeID{stop1ID: stop1ID, stop2ID: stop2ID}
}

// NoShapeID has both stops unset.
var NoShapeID = ShapeID{stop1ID: InvalidStopID, stop2ID: InvalidStopID}

func (s ShapeID) Stop1ID() StopID { return s.stop1ID }
func (s ShapeID) Stop2ID() StopID { return s.stop2ID }

func (s ShapeID) IsValid() bool {
	return s.stop1ID.IsValid() && s.stop2ID.IsValid()
}

func (s ShapeID) IsEqualForTesting(other ShapeID) bool { return s == other }

func (s ShapeID) String() string {
	return fmt.Sprintf("ShapeID [stop1_id: %d, stop2_id: %d]", s.stop1ID, s.stop2ID)
}

// Shape is the geometry of a ShapeID. It has no validity predicate: an empty
// or single-point polyline is left for the consumer to handle.
type Shape struct {
	id       ShapeID
	polyline []Point
}

func NewShape(id ShapeID, polyline []Point) Shape {
	return Shape{id: id, polyline: slices.Clone(polyline)}
}

func (s Shape) ID() ShapeID { return s.id }
func (s Shape) Polyline() []Point { return s.polyline }

func (s Shape) IsEqualForTesting(other Shape) bool {
	return s.id.IsEqualForTesting(other.id) && almostEqualPolylines(s.polyline, other.polyline)
}

func (s Shape) String() string {
	return fmt.Sprintf("Shape [id: %v, polyline: %v]", s.id, s.polyline)
}
