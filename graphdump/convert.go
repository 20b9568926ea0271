package graphdump

import (
	"slices"

	"github.com/theoremus-urban-solutions/transit-section/transit"
)

// Entities is a graph converted into transit values.
type Entities struct {
	Stops     []transit.Stop
	Gates     []transit.Gate
	Edges     []transit.Edge
	Transfers []transit.Transfer
	Lines     []transit.Line
	Shapes    []transit.Shape
	Networks  []transit.Network
}

// Entities converts every record. Conversion never fails; invalid records
// become invalid values, see Entities.Validate.
func (g *Graph) Entities() Entities {
	return Entities{
		Stops:     mapSlice(g.Stops, StopRecord.entity),
		Gates:     mapSlice(g.Gates, GateRecord.entity),
		Edges:     mapSlice(g.Edges, EdgeRecord.entity),
		Transfers: mapSlice(g.Transfers, TransferRecord.entity),
		Lines:     mapSlice(g.Lines, LineRecord.entity),
		Shapes:    mapSlice(g.Shapes, ShapeRecord.entity),
		Networks:  mapSlice(g.Networks, NetworkRecord.entity),
	}
}

// FromEntities builds a dump from transit values.
func FromEntities(e Entities) *Graph {
	return &Graph{
		Stops:     mapSlice(e.Stops, stopRecord),
		Gates:     mapSlice(e.Gates, gateRecord),
		Edges:     mapSlice(e.Edges, edgeRecord),
		Transfers: mapSlice(e.Transfers, transferRecord),
		Lines:     mapSlice(e.Lines, lineRecord),
		Shapes:    mapSlice(e.Shapes, shapeRecord),
		Networks:  mapSlice(e.Networks, networkRecord),
	}
}

func mapSlice[S, D any](src []S, f func(S) D) []D {
	if len(src) == 0 {
		return nil
	}
	dst := make([]D, len(src))
	for i, s := range src {
		dst[i] = f(s)
	}
	return dst
}

func (p PointRecord) point() transit.Point { return transit.Point{X: p.X, Y: p.Y} }

func pointRecord(p transit.Point) PointRecord { return PointRecord{X: p.X, Y: p.Y} }

func (r TitleAnchorRecord) anchor() transit.TitleAnchor {
	return transit.NewTitleAnchor(r.MinZoom, r.Anchor)
}

func titleAnchorRecord(a transit.TitleAnchor) TitleAnchorRecord {
	return TitleAnchorRecord{MinZoom: a.MinZoom(), Anchor: a.Anchor()}
}

func (r ShapeIDRecord) shapeID() transit.ShapeID { return transit.NewShapeID(r.Stop1ID, r.Stop2ID) }

func shapeIDRecord(id transit.ShapeID) ShapeIDRecord {
	return ShapeIDRecord{Stop1ID: id.Stop1ID(), Stop2ID: id.Stop2ID()}
}

func (r StopRecord) entity() transit.Stop {
	return transit.NewStop(r.ID, transit.NewFeatureIdentifiers(r.OsmID, r.FeatureID), r.TransferID,
		r.LineIDs, r.Point.point(), mapSlice(r.TitleAnchors, TitleAnchorRecord.anchor))
}

func stopRecord(s transit.Stop) StopRecord {
	return StopRecord{
		ID:           s.ID(),
		OsmID:        s.Feature().OsmID(),
		FeatureID:    s.FeatureID(),
		TransferID:   s.TransferID(),
		LineIDs:      slices.Clone(s.LineIDs()),
		Point:        pointRecord(s.Point()),
		TitleAnchors: mapSlice(s.TitleAnchors(), titleAnchorRecord),
	}
}

func (r GateRecord) entity() transit.Gate {
	g := transit.NewGate(transit.NewFeatureIdentifiers(r.OsmID, r.FeatureID), r.Entrance, r.Exit,
		r.Weight, r.StopIDs, r.Point.point())
	if s := r.BestPedestrianSegment; s != nil {
		g = g.WithBestPedestrianSegment(transit.NewSingleMwmSegment(s.FeatureID, s.SegmentIdx, s.Forward))
	}
	return g
}

func gateRecord(g transit.Gate) GateRecord {
	r := GateRecord{
		OsmID:     g.Feature().OsmID(),
		FeatureID: g.FeatureID(),
		Entrance:  g.Entrance(),
		Exit:      g.Exit(),
		Weight:    g.Weight(),
		StopIDs:   slices.Clone(g.StopIDs()),
		Point:     pointRecord(g.Point()),
	}
	if s := g.BestPedestrianSegment(); s.IsValid() {
		r.BestPedestrianSegment = &SegmentRecord{FeatureID: s.FeatureID(), SegmentIdx: s.SegmentIdx(), Forward: s.Forward()}
	}
	return r
}

func (r EdgeRecord) entity() transit.Edge {
	return transit.NewEdge(r.Stop1ID, r.Stop2ID, r.Weight, r.LineID, r.Transfer,
		mapSlice(r.ShapeIDs, ShapeIDRecord.shapeID))
}

func edgeRecord(e transit.Edge) EdgeRecord {
	return EdgeRecord{
		Stop1ID:  e.Stop1ID(),
		Stop2ID:  e.Stop2ID(),
		Weight:   e.Weight(),
		LineID:   e.LineID(),
		Transfer: e.Transfer(),
		ShapeIDs: mapSlice(e.ShapeIDs(), shapeIDRecord),
	}
}

func (r TransferRecord) entity() transit.Transfer {
	return transit.NewTransfer(r.ID, r.Point.point(), r.StopIDs, mapSlice(r.TitleAnchors, TitleAnchorRecord.anchor))
}

func transferRecord(t transit.Transfer) TransferRecord {
	return TransferRecord{
		ID:           t.ID(),
		Point:        pointRecord(t.Point()),
		StopIDs:      slices.Clone(t.StopIDs()),
		TitleAnchors: mapSlice(t.TitleAnchors(), titleAnchorRecord),
	}
}

func (r LineRecord) entity() transit.Line {
	return transit.NewLine(r.ID, r.Number, r.Title, r.Type, r.NetworkID, r.StopIDs)
}

func lineRecord(l transit.Line) LineRecord {
	return LineRecord{
		ID:        l.ID(),
		Number:    l.Number(),
		Title:     l.Title(),
		Type:      l.Type(),
		NetworkID: l.NetworkID(),
		StopIDs:   slices.Clone(l.StopIDs()),
	}
}

func (r ShapeRecord) entity() transit.Shape {
	return transit.NewShape(r.ID.shapeID(), mapSlice(r.Polyline, PointRecord.point))
}

func shapeRecord(s transit.Shape) ShapeRecord {
	return ShapeRecord{ID: shapeIDRecord(s.ID()), Polyline: mapSlice(s.Polyline(), pointRecord)}
}

func (r NetworkRecord) entity() transit.Network { return transit.NewNetwork(r.ID, r.Title) }

func networkRecord(n transit.Network) NetworkRecord {
	return NetworkRecord{ID: n.ID(), Title: n.Title()}
}
