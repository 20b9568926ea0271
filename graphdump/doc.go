// Package graphdump reads and writes a human-readable dump of a transit graph.
//
// A dump is a YAML (or JSON, which yaml.v3 also accepts) document with one
// array per table, using the field names of the binary section:
//
//	stops:
//	  - id: 1
//	    line_ids: [19]
//	    point: {x: 37.61, y: 67.42}
//	edges:
//	  - stop1_id: 1
//	    stop2_id: 2
//	    weight: 120
//	    line_id: 19
//
// Omitted fields keep the "absent" value of the transit package (invalid ids,
// InvalidWeight, invalid anchors), so a dump only lists what it knows.
//
// Records are checked with struct tags (go-playground/validator) before they
// are converted into transit values, which gives field-level messages that
// transit's boolean IsValid cannot. Both checks implement the same rules.
package graphdump
