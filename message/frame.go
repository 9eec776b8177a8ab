package message

import "github.com/bizzaro-jhunt/tsdp-go/errors"

// FrameType identifies the shape of a frame's payload.
type FrameType uint8

const (
	FrameUint   FrameType = 0
	FrameFloat  FrameType = 1
	FrameString FrameType = 2
	FrameTstamp FrameType = 6
	FrameNil    FrameType = 7
)

func (t FrameType) String() string {
	switch t {
	case FrameUint:
		return "UINT"
	case FrameFloat:
		return "FLOAT"
	case FrameString:
		return "STRING"
	case FrameTstamp:
		return "TSTAMP"
	case FrameNil:
		return "NIL"
	default:
		return "RESERVED"
	}
}

func (t FrameType) valid() bool {
	switch t {
	case FrameUint, FrameFloat, FrameString, FrameTstamp, FrameNil:
		return true
	default:
		return false
	}
}

// Frame is one typed, length-prefixed payload unit within a message. Data
// is the frame's raw payload octets, already decoded from the wire for
// Type's sake but not yet interpreted as a Go value — use the FrameAsX
// accessors on Message for that.
type Frame struct {
	Type FrameType
	Data []byte

	// final records whether this frame carried the final-frame bit when
	// read off the wire. Pack recomputes the bit from position rather
	// than trusting it, so it is only meaningful on a frame produced by
	// Unpack.
	final bool
}

// lengthValid reports whether n is a legal payload length for frame type
// t, per the construction rules of Extend: UINT requires n in {2,4,8},
// FLOAT requires n in {4,8}, TSTAMP requires n == 8, NIL requires n == 0,
// STRING accepts any length up to MaxFrameLength.
func lengthValid(t FrameType, n int) bool {
	switch t {
	case FrameUint:
		return n == 2 || n == 4 || n == 8
	case FrameFloat:
		return n == 4 || n == 8
	case FrameTstamp:
		return n == 8
	case FrameNil:
		return n == 0
	case FrameString:
		return n >= 0 && n <= MaxFrameLength
	default:
		return false
	}
}

// Extend appends one frame of the given type carrying data. data is
// copied; the frame owns its own storage, so later mutation of the slice
// the caller passed in never affects the message. Extend fails if the type
// is unknown, if data's length does not match what the type requires, or
// if data exceeds MaxFrameLength octets (the wire format's 12-bit length
// field).
func (m *Message) Extend(t FrameType, data []byte) error {
	if !t.valid() {
		return errors.Newf("message.Extend", errors.KindInvalidFrame, "unknown frame type %d", t)
	}
	if len(data) > MaxFrameLength {
		return errors.Newf("message.Extend", errors.KindInvalidFrame, "frame of %d octets exceeds MaxFrameLength (%d)", len(data), MaxFrameLength)
	}
	if !lengthValid(t, len(data)) {
		return errors.Newf("message.Extend", errors.KindInvalidFrame, "frame type %s does not accept length %d", t, len(data))
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	m.frames = append(m.frames, Frame{Type: t, Data: owned})
	return nil
}

// frameAt returns the frame at position n, bounds-checked.
func (m *Message) frameAt(n int) (*Frame, error) {
	if n < 0 || n >= len(m.frames) {
		return nil, errors.Newf("message", errors.KindInvalidFrame, "frame index %d out of range (nframes=%d)", n, len(m.frames))
	}
	return &m.frames[n], nil
}
