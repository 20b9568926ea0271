package transit

import (
	"fmt"
	"slices"
)

// Transfer is a cluster of stops reachable from each other without a
// scheduled edge, such as the platforms of one station. Its id is a stop id.
type Transfer struct {
	id           StopID
	point        Point
	stopIDs      []StopID
	titleAnchors []TitleAnchor
}

func NewTransfer(id StopID, point Point, stopIDs []StopID, titleAnchors []TitleAnchor) Transfer {
	return Transfer{
		id:           id,
		point:        point,
		stopIDs:      slices.Clone(stopIDs),
		titleAnchors: slices.Clone(titleAnchors),
	}
}

func (t Transfer) ID() StopID { return t.id }
func (t Transfer) Point() Point { return t.point }
func (t Transfer) StopIDs() []StopID { return t.stopIDs }
func (t Transfer) TitleAnchors() []TitleAnchor { return t.titleAnchors }

func (t Transfer) IsValid() bool {
	return t.id.IsValid() && len(t.stopIDs) > 0
}

func (t Transfer) IsEqualForTesting(other Transfer) bool {
	return t.id == other.id &&
		AlmostEqualPoints(t.point, other.point) &&
		slices.Equal(t.stopIDs, other.stopIDs) &&
		slices.Equal(t.titleAnchors, other.titleAnchors)
}

func (t Transfer) String() string {
	return fmt.Sprintf("Transfer [id: %d, point: %v, stop_ids: %v, title_anchors: %v]",
		t.id, t.point, t.stopIDs, t.titleAnchors)
}
