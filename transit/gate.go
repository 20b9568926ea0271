package transit

import (
	"fmt"
	"slices"
)

// Gate connects the pedestrian network to one or more stops.
type Gate struct {
	feature               FeatureIdentifiers
	bestPedestrianSegment SingleMwmSegment
	entrance              bool
	exit                  bool
	weight                Weight
	stopIDs               []StopID
	point                 Point
}

// NewGate builds a gate without a pedestrian segment. stopIDs is copied.
func NewGate(feature FeatureIdentifiers, entrance, exit bool, weight Weight, stopIDs []StopID, point Point) Gate {
	return Gate{
		feature:               feature,
		bestPedestrianSegment: NoSegment,
		entrance:              entrance,
		exit:                  exit,
		weight:                weight,
		stopIDs:               slices.Clone(stopIDs),
		point:                 point,
	}
}

// WithBestPedestrianSegment returns a copy of g bound to the road segment used
// to walk to and from the gate.
func (g Gate) WithBestPedestrianSegment(s SingleMwmSegment) Gate {
	g.bestPedestrianSegment = s
	return g
}

func (g Gate) Feature() FeatureIdentifiers { return g.feature }
func (g Gate) FeatureID() FeatureID { return g.feature.FeatureID() }
func (g Gate) BestPedestrianSegment() SingleMwmSegment { return g.bestPedestrianSegment }
func (g Gate) Entrance() bool { return g.entrance }
func (g Gate) Exit() bool { return g.exit }
func (g Gate) Weight() Weight { return g.weight }
func (g Gate) StopIDs() []StopID { return g.stopIDs }
func (g Gate) Point() Point { return g.point }

// IsValid requires a finite weight, at least one of the entrance/exit roles and at
// least one reachable stop.
func (g Gate) IsValid() bool {
	return IsValidWeight(g.weight) && (g.entrance || g.exit) && len(g.stopIDs) > 0
}

func (g Gate) IsEqualForTesting(other Gate) bool {
	return g.feature.IsEqualForTesting(other.feature) &&
		g.bestPedestrianSegment.IsEqualForTesting(other.bestPedestrianSegment) &&
		g.entrance == other.entrance && g.exit == other.exit &&
		AlmostEqualWeights(g.weight, other.weight) &&
		slices.Equal(g.stopIDs, other.stopIDs) &&
		AlmostEqualPoints(g.point, other.point)
}

func (g Gate) String() string {
	return fmt.Sprintf("Gate [feature: %v, best_pedestrian_segment: %v, entrance: %t, exit: %t, weight: %g, stop_ids: %v, point: %v]",
		g.feature, g.bestPedestrianSegment, g.entrance, g.exit, g.weight, g.stopIDs, g.point)
}
