package transit

import "math"

// Identifier kinds. Each kind reserves its maximum value as the "absent" sentinel.
type (
	LineID     uint32
	StopID     uint64
	TransferID uint64
	NetworkID  uint32
	FeatureID  uint32
	OsmID      uint64
)

// Weight is a traversal cost in seconds.
type Weight = float64

const (
	InvalidLineID     LineID     = math.MaxUint32
	InvalidStopID     StopID     = math.MaxUint64
	InvalidTransferID TransferID = math.MaxUint64
	InvalidNetworkID  NetworkID  = math.MaxUint32
	InvalidFeatureID  FeatureID  = math.MaxUint32
	InvalidOsmID      OsmID      = math.MaxUint64

	// InvalidWeight marks a weight that was not computed yet.
	InvalidWeight Weight = -1.0
)

func (id LineID) IsValid() bool { return id != InvalidLineID }
func (id StopID) IsValid() bool { return id != InvalidStopID }
func (id TransferID) IsValid() bool { return id != InvalidTransferID }
func (id NetworkID) IsValid() bool { return id != InvalidNetworkID }
func (id FeatureID) IsValid() bool { return id != InvalidFeatureID }
func (id OsmID) IsValid() bool { return id != InvalidOsmID }

// IsValidWeight reports whether w is a computed, finite cost.
func IsValidWeight(w Weight) bool {
	return w != InvalidWeight && !math.IsNaN(w) && !math.IsInf(w, 0)
}
