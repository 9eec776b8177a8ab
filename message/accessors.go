package message

import (
	"encoding/binary"
	"math"

	"github.com/bizzaro-jhunt/tsdp-go/errors"
)

func wrongFrame(op string, n int, f *Frame, want FrameType, wantLen int) error {
	return errors.Newf(op, errors.KindInvalidFrame,
		"frame %d is %s/%d, want %s/%d", n, f.Type, len(f.Data), want, wantLen)
}

// FrameAsUint2 interprets frame n as a 2-octet big-endian unsigned integer.
func (m *Message) FrameAsUint2(n int) (uint16, error) {
	f, err := m.frameAt(n)
	if err != nil {
		return 0, err
	}
	if f.Type != FrameUint || len(f.Data) != 2 {
		return 0, wrongFrame("message.FrameAsUint2", n, f, FrameUint, 2)
	}
	return binary.BigEndian.Uint16(f.Data), nil
}

// FrameAsUint4 interprets frame n as a 4-octet big-endian unsigned integer.
func (m *Message) FrameAsUint4(n int) (uint32, error) {
	f, err := m.frameAt(n)
	if err != nil {
		return 0, err
	}
	if f.Type != FrameUint || len(f.Data) != 4 {
		return 0, wrongFrame("message.FrameAsUint4", n, f, FrameUint, 4)
	}
	return binary.BigEndian.Uint32(f.Data), nil
}

// FrameAsUint8 interprets frame n as an 8-octet big-endian unsigned integer.
func (m *Message) FrameAsUint8(n int) (uint64, error) {
	f, err := m.frameAt(n)
	if err != nil {
		return 0, err
	}
	if f.Type != FrameUint || len(f.Data) != 8 {
		return 0, wrongFrame("message.FrameAsUint8", n, f, FrameUint, 8)
	}
	return binary.BigEndian.Uint64(f.Data), nil
}

// FrameAsFloat8 interprets frame n as a floating-point value, widening a
// 4-octet single-precision payload to float64 or decoding an 8-octet
// double-precision payload directly. A FLOAT/32 payload is never truncated
// back down to 32 bits internally: the in-memory value is always a full
// float64, per the wire format's resolved FLOAT/64 semantics.
func (m *Message) FrameAsFloat8(n int) (float64, error) {
	f, err := m.frameAt(n)
	if err != nil {
		return 0, err
	}
	if f.Type != FrameFloat {
		return 0, wrongFrame("message.FrameAsFloat8", n, f, FrameFloat, 8)
	}
	switch len(f.Data) {
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(f.Data))), nil
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(f.Data)), nil
	default:
		return 0, wrongFrame("message.FrameAsFloat8", n, f, FrameFloat, 8)
	}
}

// FrameAsTstamp8 interprets frame n as an 8-octet big-endian unsigned
// integer of epoch seconds.
func (m *Message) FrameAsTstamp8(n int) (uint64, error) {
	f, err := m.frameAt(n)
	if err != nil {
		return 0, err
	}
	if f.Type != FrameTstamp || len(f.Data) != 8 {
		return 0, wrongFrame("message.FrameAsTstamp8", n, f, FrameTstamp, 8)
	}
	return binary.BigEndian.Uint64(f.Data), nil
}

// FrameAsString interprets frame n as a STRING payload, returning its
// octets as a Go string (already an independent, immutable copy — there is
// no NUL-termination concept on the Go side of this accessor).
func (m *Message) FrameAsString(n int) (string, error) {
	f, err := m.frameAt(n)
	if err != nil {
		return "", err
	}
	if f.Type != FrameString {
		return "", wrongFrame("message.FrameAsString", n, f, FrameString, len(f.Data))
	}
	return string(f.Data), nil
}
