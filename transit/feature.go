package transit

import "fmt"

// FeatureIdentifiers pairs the OSM id of a map object with the feature id it
// was assigned in the container.
type FeatureIdentifiers struct {
	osmID     OsmID
	featureID FeatureID
}

// NoFeature is the identifier pair of a record that is not bound to a map feature.
var NoFeature = FeatureIdentifiers{osmID: InvalidOsmID, featureID: InvalidFeatureID}

func NewFeatureIdentifiers(osmID OsmID, featureID FeatureID) FeatureIdentifiers {
	return FeatureIdentifiers{osmID: osmID, featureID: featureID}
}

func (f FeatureIdentifiers) OsmID() OsmID { return f.osmID }
func (f FeatureIdentifiers) FeatureID() FeatureID { return f.featureID }

func (f FeatureIdentifiers) IsValid() bool { return f.featureID.IsValid() }

// IsEqualForTesting compares feature ids only. The OSM id is informational and
// is not stored in the binary section.
func (f FeatureIdentifiers) IsEqualForTesting(other FeatureIdentifiers) bool {
	return f.featureID == other.featureID
}

func (f FeatureIdentifiers) String() string {
	return fmt.Sprintf("FeatureIdentifiers [osm_id: %d, feature_id: %d]", f.osmID, f.featureID)
}

// SingleMwmSegment addresses one segment of a road feature inside a single map file.
type SingleMwmSegment struct {
	featureID  FeatureID
	segmentIdx uint32
	forward    bool
}

// NoSegment is the segment of a gate no pedestrian road reaches.
var NoSegment = SingleMwmSegment{featureID: InvalidFeatureID}

func NewSingleMwmSegment(featureID FeatureID, segmentIdx uint32, forward bool) SingleMwmSegment {
	return SingleMwmSegment{featureID: featureID, segmentIdx: segmentIdx, forward: forward}
}

func (s SingleMwmSegment) FeatureID() FeatureID { return s.featureID }
func (s SingleMwmSegment) SegmentIdx() uint32 { return s.segmentIdx }
func (s SingleMwmSegment) Forward() bool { return s.forward }

func (s SingleMwmSegment) IsValid() bool { return s.featureID.IsValid() }

func (s SingleMwmSegment) IsEqualForTesting(other SingleMwmSegment) bool {
	return s == other
}

func (s SingleMwmSegment) String() string {
	return fmt.Sprintf("SingleMwmSegment [feature_id: %d, segment_idx: %d, forward: %t]",
		s.featureID, s.segmentIdx, s.forward)
}
