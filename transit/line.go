package transit

import (
	"fmt"
	"slices"
)

// Line is an ordered sequence of stops run by one network under one route number.
type Line struct {
	id        LineID
	number    string
	title     string
	kind      string
	networkID NetworkID
	stopIDs   []StopID
}

// NewLine copies stopIDs. kind is the free-form vehicle type ("bus", "subway", ...).
func NewLine(id LineID, number, title, kind string, networkID NetworkID, stopIDs []StopID) Line {
	return Line{
		id:        id,
		number:    number,
		title:     title,
		kind:      kind,
		networkID: networkID,
		stopIDs:   slices.Clone(stopIDs),
	}
}

func (l Line) ID() LineID { return l.id }
func (l Line) Number() string { return l.number }
func (l Line) Title() string { return l.title }
func (l Line) Type() string { return l.kind }
func (l Line) NetworkID() NetworkID { return l.networkID }
func (l Line) StopIDs() []StopID { return l.stopIDs }

func (l Line) IsValid() bool {
	return l.id.IsValid() && l.networkID.IsValid() && len(l.stopIDs) > 0
}

func (l Line) IsEqualForTesting(other Line) bool {
	return l.id == other.id && l.number == other.number && l.title == other.title &&
		l.kind == other.kind && l.networkID == other.networkID &&
		slices.Equal(l.stopIDs, other.stopIDs)
}

func (l Line) String() string {
	return fmt.Sprintf("Line [id: %d, number: %q, title: %q, type: %q, network_id: %d, stop_ids: %v]",
		l.id, l.number, l.title, l.kind, l.networkID, l.stopIDs)
}
