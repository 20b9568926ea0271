/*
Package transit defines the in-memory model of the transit section of a map
container: stops, gates, edges, transfers, lines, shapes and networks, plus the
fixed-size header that locates each sub-table inside the section.

All records are immutable values. Constructors accept any combination of field
values and never fail; validity is queried afterwards with IsValid so bulk
loaders can build every record first and validate the whole batch later:

	edges := make([]transit.Edge, 0, len(raw))
	for _, r := range raw {
	    edges = append(edges, transit.NewEdge(r.Stop1, r.Stop2, r.Weight, r.Line, r.Transfer, r.Shapes))
	}
	if i := transit.FirstInvalid(edges); i >= 0 {
	    return fmt.Errorf("edge %d: %v", i, edges[i])
	}

# Identifiers

Every identifier kind reserves one value meaning "absent". Relations between
records (stop to line, stop to transfer, edge to shape) are plain identifier
values resolved by lookup, never pointers.

Zero is an ordinary identifier, so the Go zero value of a record is not an
"unset" record. Build unset records from the Invalid* sentinels.

# Equality for testing

Geometry and timing data are quantized by the binary encoding, so the
IsEqualForTesting methods compare points within PointsEqualEpsilon and weights
within WeightEqualEpsilon. Discrete fields are always compared exactly.

# Section layout

	+--------+-------+-------+-------+-----------+-------+--------+----------+
	| header | stops | gates | edges | transfers | lines | shapes | networks |
	+--------+-------+-------+-------+-----------+-------+--------+----------+
	0        32      gates   edges   transfers   lines   shapes   networks   end

TransitHeader.Sections slices a section along these offsets and rejects any
header whose offsets are not non-decreasing.
*/
package transit
