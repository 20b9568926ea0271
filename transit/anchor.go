package transit

import "fmt"

// Anchor is the side of a label relative to its point, as a bit set.
type Anchor uint8

const (
	AnchorCenter Anchor = 0
	AnchorLeft   Anchor = 1 << 0
	AnchorRight  Anchor = 1 << 1
	AnchorTop    Anchor = 1 << 2
	AnchorBottom Anchor = 1 << 3

	AnchorLeftTop     = AnchorLeft | AnchorTop
	AnchorRightTop    = AnchorRight | AnchorTop
	AnchorLeftBottom  = AnchorLeft | AnchorBottom
	AnchorRightBottom = AnchorRight | AnchorBottom

	InvalidAnchor Anchor = 255
)

// DefaultMinZoom is the most detailed style scale.
const DefaultMinZoom uint8 = 17

func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	case AnchorLeftTop:
		return "left_top"
	case AnchorRightTop:
		return "right_top"
	case AnchorLeftBottom:
		return "left_bottom"
	case AnchorRightBottom:
		return "right_bottom"
	case InvalidAnchor:
		return "invalid"
	}
	return fmt.Sprintf("anchor(%d)", uint8(a))
}

// TitleAnchor places a stop or transfer title starting from a zoom level.
type TitleAnchor struct {
	minZoom uint8
	anchor  Anchor
}

func NewTitleAnchor(minZoom uint8, anchor Anchor) TitleAnchor {
	return TitleAnchor{minZoom: minZoom, anchor: anchor}
}

// DefaultTitleAnchor returns the zero-information anchor: most detailed zoom, no side.
func DefaultTitleAnchor() TitleAnchor {
	return TitleAnchor{minZoom: DefaultMinZoom, anchor: InvalidAnchor}
}

func (t TitleAnchor) MinZoom() uint8 { return t.minZoom }
func (t TitleAnchor) Anchor() Anchor { return t.anchor }

func (t TitleAnchor) IsValid() bool { return t.anchor != InvalidAnchor }

func (t TitleAnchor) IsEqualForTesting(other TitleAnchor) bool { return t == other }

func (t TitleAnchor) String() string {
	return fmt.Sprintf("TitleAnchor [min_zoom: %d, anchor: %s]", t.minZoom, t.anchor)
}
