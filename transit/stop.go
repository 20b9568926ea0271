package transit

import (
	"fmt"
	"slices"
)

// Stop is a boardable point served by one or more lines.
type Stop struct {
	id           StopID
	feature      FeatureIdentifiers
	transferID   TransferID
	lineIDs      []LineID
	point        Point
	titleAnchors []TitleAnchor
}

// NewStop copies lineIDs and titleAnchors. transferID may be InvalidTransferID
// for a stop that is not part of any transfer.
func NewStop(id StopID, feature FeatureIdentifiers, transferID TransferID, lineIDs []LineID,
	point Point, titleAnchors []TitleAnchor) Stop {
	return Stop{
		id:           id,
		feature:      feature,
		transferID:   transferID,
		lineIDs:      slices.Clone(lineIDs),
		point:        point,
		titleAnchors: slices.Clone(titleAnchors),
	}
}

func (s Stop) ID() StopID { return s.id }
func (s Stop) Feature() FeatureIdentifiers { return s.feature }
func (s Stop) FeatureID() FeatureID { return s.feature.FeatureID() }
func (s Stop) TransferID() TransferID { return s.transferID }
func (s Stop) HasTransfer() bool { return s.transferID.IsValid() }
func (s Stop) LineIDs() []LineID { return s.lineIDs }
func (s Stop) Point() Point { return s.point }
func (s Stop) TitleAnchors() []TitleAnchor { return s.titleAnchors }

// IsValid requires an id and at least one line. Feature and transfer are optional.
func (s Stop) IsValid() bool {
	return s.id.IsValid() && len(s.lineIDs) > 0
}

func (s Stop) IsEqualForTesting(other Stop) bool {
	return s.id == other.id &&
		s.feature.IsEqualForTesting(other.feature) &&
		s.transferID == other.transferID &&
		slices.Equal(s.lineIDs, other.lineIDs) &&
		AlmostEqualPoints(s.point, other.point) &&
		slices.Equal(s.titleAnchors, other.titleAnchors)
}

func (s Stop) String() string {
	return fmt.Sprintf("Stop [id: %d, feature: %v, transfer_id: %d, line_ids: %v, point: %v, title_anchors: %v]",
		s.id, s.feature, s.transferID, s.lineIDs, s.point, s.titleAnchors)
}
