package transit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the encoded size of TransitHeader in bytes.
const HeaderSize = 32

var (
	ErrShortHeader      = errors.New("transit: header shorter than 32 bytes")
	ErrInvalidHeader    = errors.New("transit: header offsets are not non-decreasing")
	ErrHeaderNotLoaded  = errors.New("transit: header version is 0")
	ErrHeaderOverlap    = errors.New("transit: stops table overlaps the header")
	ErrSectionTruncated = errors.New("transit: section shorter than header end offset")
)

// TransitHeader locates the sub-tables of a transit section. Offsets are in
// bytes from the start of the section, header included.
//
// The zero value (see Reset) means "no header loaded"; it satisfies IsValid
// and must be told apart with IsLoaded.
type TransitHeader struct {
	Version         uint16
	Reserve         uint16
	GatesOffset     uint32
	EdgesOffset     uint32
	TransfersOffset uint32
	LinesOffset     uint32
	ShapesOffset    uint32
	NetworksOffset  uint32
	EndOffset       uint32
}

func NewTransitHeader(version uint16, gatesOffset, edgesOffset, transfersOffset, linesOffset,
	shapesOffset, networksOffset, endOffset uint32) TransitHeader {
	return TransitHeader{
		Version:         version,
		GatesOffset:     gatesOffset,
		EdgesOffset:     edgesOffset,
		TransfersOffset: transfersOffset,
		LinesOffset:     linesOffset,
		ShapesOffset:    shapesOffset,
		NetworksOffset:  networksOffset,
		EndOffset:       endOffset,
	}
}

// Reset zeroes every field, version included.
func (h *TransitHeader) Reset() {
	*h = TransitHeader{}
}

// IsLoaded reports whether the header was read from a section.
func (h TransitHeader) IsLoaded() bool { return h.Version != 0 }

// IsValid reports whether
// gates <= edges <= transfers <= lines <= shapes <= networks <= end.
// Equal neighbours are allowed: an empty sub-table is legal.
func (h TransitHeader) IsValid() bool {
	return h.GatesOffset <= h.EdgesOffset && h.EdgesOffset <= h.TransfersOffset &&
		h.TransfersOffset <= h.LinesOffset && h.LinesOffset <= h.ShapesOffset &&
		h.ShapesOffset <= h.NetworksOffset && h.NetworksOffset <= h.EndOffset
}

func (h TransitHeader) IsEqualForTesting(other TransitHeader) bool { return h == other }

// MarshalBinary encodes h as 32 little-endian bytes.
func (h TransitHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, HeaderSize)
	b = binary.LittleEndian.AppendUint16(b, h.Version)
	b = binary.LittleEndian.AppendUint16(b, h.Reserve)
	for _, off := range h.offsets() {
		b = binary.LittleEndian.AppendUint32(b, off)
	}
	return b, nil
}

// UnmarshalBinary decodes the first HeaderSize bytes of data. It does not
// check the offsets; use IsValid or Sections for that.
func (h *TransitHeader) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d", ErrShortHeader, len(data))
	}
	le := binary.LittleEndian
	*h = TransitHeader{
		Version:         le.Uint16(data[0:]),
		Reserve:         le.Uint16(data[2:]),
		GatesOffset:     le.Uint32(data[4:]),
		EdgesOffset:     le.Uint32(data[8:]),
		TransfersOffset: le.Uint32(data[12:]),
		LinesOffset:     le.Uint32(data[16:]),
		ShapesOffset:    le.Uint32(data[20:]),
		NetworksOffset:  le.Uint32(data[24:]),
		EndOffset:       le.Uint32(data[28:]),
	}
	return nil
}

// ReadHeader reads and checks a header from r. A header with decreasing
// offsets is returned together with an error wrapping ErrInvalidHeader, and
// a header with version 0 (see IsLoaded) with ErrHeaderNotLoaded.
func ReadHeader(r io.Reader) (TransitHeader, error) {
	var buf [HeaderSize]byte
	var h TransitHeader
	if n, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return h, fmt.Errorf("%w: got %d", ErrShortHeader, n)
		}
		return h, fmt.Errorf("read transit header: %w", err)
	}
	if err := h.UnmarshalBinary(buf[:]); err != nil {
		return h, err
	}
	if !h.IsLoaded() {
		return h, ErrHeaderNotLoaded
	}
	if !h.IsValid() {
		return h, fmt.Errorf("%w: %v", ErrInvalidHeader, h)
	}
	return h, nil
}

// Sections holds the raw encoded sub-tables of a transit section.
type Sections struct {
	Stops     []byte
	Gates     []byte
	Edges     []byte
	Transfers []byte
	Lines     []byte
	Shapes    []byte
	Networks  []byte
}

// Sections slices section (starting with the encoded header) along the
// header offsets. It never truncates: a header that is invalid, overlaps
// itself or points past the end of section is an error.
func (h TransitHeader) Sections(section []byte) (Sections, error) {
	if !h.IsValid() {
		return Sections{}, fmt.Errorf("%w: %v", ErrInvalidHeader, h)
	}
	if h.GatesOffset < HeaderSize {
		return Sections{}, fmt.Errorf("%w: gates offset %d", ErrHeaderOverlap, h.GatesOffset)
	}
	if uint64(h.EndOffset) > uint64(len(section)) {
		return Sections{}, fmt.Errorf("%w: end offset %d, section %d bytes", ErrSectionTruncated, h.EndOffset, len(section))
	}
	return Sections{
		Stops:     section[HeaderSize:h.GatesOffset:h.GatesOffset],
		Gates:     section[h.GatesOffset:h.EdgesOffset:h.EdgesOffset],
		Edges:     section[h.EdgesOffset:h.TransfersOffset:h.TransfersOffset],
		Transfers: section[h.TransfersOffset:h.LinesOffset:h.LinesOffset],
		Lines:     section[h.LinesOffset:h.ShapesOffset:h.ShapesOffset],
		Shapes:    section[h.ShapesOffset:h.NetworksOffset:h.NetworksOffset],
		Networks:  section[h.NetworksOffset:h.EndOffset:h.EndOffset],
	}, nil
}

func (h TransitHeader) offsets() [7]uint32 {
	return [7]uint32{
		h.GatesOffset, h.EdgesOffset, h.TransfersOffset, h.LinesOffset,
		h.ShapesOffset, h.NetworksOffset, h.EndOffset,
	}
}

func (h TransitHeader) String() string {
	return fmt.Sprintf("TransitHeader [version: %d, reserve: %d, gatesOffset: %d, edgesOffset: %d, "+
		"transfersOffset: %d, linesOffset: %d, shapesOffset: %d, networksOffset: %d, endOffset: %d]",
		h.Version, h.Reserve, h.GatesOffset, h.EdgesOffset, h.TransfersOffset, h.LinesOffset,
		h.ShapesOffset, h.NetworksOffset, h.EndOffset)
}
