package graphdump

import (
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-section/transit"
)

// Graph is a whole transit graph dump.
type Graph struct {
	Stops     []StopRecord     `yaml:"stops"`
	Gates     []GateRecord     `yaml:"gates"`
	Edges     []EdgeRecord     `yaml:"edges"`
	Transfers []TransferRecord `yaml:"transfers"`
	Lines     []LineRecord     `yaml:"lines"`
	Shapes    []ShapeRecord    `yaml:"shapes"`
	Networks  []NetworkRecord  `yaml:"networks"`
}

type PointRecord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TitleAnchorRecord struct {
	MinZoom uint8          `yaml:"min_zoom"`
	Anchor  transit.Anchor `yaml:"anchor"`
}

type SegmentRecord struct {
	FeatureID  transit.FeatureID `yaml:"feature_id"`
	SegmentIdx uint32            `yaml:"segment_idx"`
	Forward    bool              `yaml:"forward"`
}

type ShapeIDRecord struct {
	Stop1ID transit.StopID `yaml:"stop1_id"`
	Stop2ID transit.StopID `yaml:"stop2_id"`
}

type StopRecord struct {
	ID           transit.StopID      `yaml:"id" validate:"ne=18446744073709551615"`
	OsmID        transit.OsmID       `yaml:"osm_id"`
	FeatureID    transit.FeatureID   `yaml:"feature_id"`
	TransferID   transit.TransferID  `yaml:"transfer_id"`
	LineIDs      []transit.LineID    `yaml:"line_ids" validate:"min=1"`
	Point        PointRecord         `yaml:"point"`
	TitleAnchors []TitleAnchorRecord `yaml:"title_anchors,omitempty"`
}

// GateRecord must be an entrance, an exit or both; see gateRoleRule.
type GateRecord struct {
	OsmID                 transit.OsmID     `yaml:"osm_id"`
	FeatureID             transit.FeatureID `yaml:"feature_id"`
	BestPedestrianSegment *SegmentRecord    `yaml:"best_pedestrian_segment,omitempty"`
	Entrance              bool              `yaml:"entrance"`
	Exit                  bool              `yaml:"exit"`
	Weight                transit.Weight    `yaml:"weight" validate:"weight"`
	StopIDs               []transit.StopID  `yaml:"stop_ids" validate:"min=1"`
	Point                 PointRecord       `yaml:"point"`
}

// EdgeRecord carries the transfer/line exclusivity checked by edgeKindRule.
type EdgeRecord struct {
	Stop1ID  transit.StopID  `yaml:"stop1_id" validate:"ne=18446744073709551615"`
	Stop2ID  transit.StopID  `yaml:"stop2_id" validate:"ne=18446744073709551615"`
	Weight   transit.Weight  `yaml:"weight" validate:"weight"`
	LineID   transit.LineID  `yaml:"line_id"`
	Transfer bool            `yaml:"transfer"`
	ShapeIDs []ShapeIDRecord `yaml:"shape_ids,omitempty"`
}

type TransferRecord struct {
	ID           transit.StopID      `yaml:"id" validate:"ne=18446744073709551615"`
	Point        PointRecord         `yaml:"point"`
	StopIDs      []transit.StopID    `yaml:"stop_ids" validate:"min=1"`
	TitleAnchors []TitleAnchorRecord `yaml:"title_anchors,omitempty"`
}

type LineRecord struct {
	ID        transit.LineID    `yaml:"id" validate:"ne=4294967295"`
	Number    string            `yaml:"number"`
	Title     string            `yaml:"title"`
	Type      string            `yaml:"type"`
	NetworkID transit.NetworkID `yaml:"network_id" validate:"ne=4294967295"`
	StopIDs   []transit.StopID  `yaml:"stop_ids" validate:"min=1"`
}

type ShapeRecord struct {
	ID       ShapeIDRecord `yaml:"id"`
	Polyline []PointRecord `yaml:"polyline"`
}

type NetworkRecord struct {
	ID    transit.NetworkID `yaml:"id" validate:"ne=4294967295"`
	Title string            `yaml:"title"`
}

// The UnmarshalYAML methods below pre-fill absent values so that fields
// missing from the document stay unset instead of becoming zero.

func (r *TitleAnchorRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain TitleAnchorRecord
	p := plain{MinZoom: transit.DefaultMinZoom, Anchor: transit.InvalidAnchor}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = TitleAnchorRecord(p)
	return nil
}

func (r *SegmentRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain SegmentRecord
	p := plain{FeatureID: transit.InvalidFeatureID}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = SegmentRecord(p)
	return nil
}

func (r *ShapeIDRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain ShapeIDRecord
	p := plain{Stop1ID: transit.InvalidStopID, Stop2ID: transit.InvalidStopID}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = ShapeIDRecord(p)
	return nil
}

func (r *StopRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain StopRecord
	p := plain{
		ID:         transit.InvalidStopID,
		OsmID:      transit.InvalidOsmID,
		FeatureID:  transit.InvalidFeatureID,
		TransferID: transit.InvalidTransferID,
	}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = StopRecord(p)
	return nil
}

func (r *GateRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain GateRecord
	p := plain{
		OsmID:     transit.InvalidOsmID,
		FeatureID: transit.InvalidFeatureID,
		Entrance:  true,
		Exit:      true,
		Weight:    transit.InvalidWeight,
	}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = GateRecord(p)
	return nil
}

func (r *EdgeRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain EdgeRecord
	p := plain{
		Stop1ID: transit.InvalidStopID,
		Stop2ID: transit.InvalidStopID,
		Weight:  transit.InvalidWeight,
		LineID:  transit.InvalidLineID,
	}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = EdgeRecord(p)
	return nil
}

func (r *TransferRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain TransferRecord
	p := plain{ID: transit.InvalidStopID}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = TransferRecord(p)
	return nil
}

func (r *LineRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain LineRecord
	p := plain{ID: transit.InvalidLineID, NetworkID: transit.InvalidNetworkID}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = LineRecord(p)
	return nil
}

func (r *NetworkRecord) UnmarshalYAML(value *yaml.Node) error {
	type plain NetworkRecord
	p := plain{ID: transit.InvalidNetworkID}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = NetworkRecord(p)
	return nil
}
