package message

import (
	"encoding/binary"

	"github.com/bizzaro-jhunt/tsdp-go/errors"
)

// Pack writes m's wire form: a 4-octet header followed by each frame's
// 2-octet header and payload, with the last frame's final-frame bit set
// and all prior frames' final-frame bits clear.
//
// Unlike the original C API (which separates a size-query pass from a
// write pass so a caller can size a fixed buffer ahead of time), Pack
// always returns a freshly allocated, fully sized buffer: Go slices make
// the two-phase size/write split unnecessary, and removes the "0 means
// failure vs 0 means an empty message" return-value ambiguity the original
// left as an open question — here, failure is a non-nil error, never a
// zero-length buffer.
//
// Pack fails only if a frame's declared length is inconsistent with its
// type (which Extend already prevents; this is a defense-in-depth check
// for messages assembled any other way) or if any frame's payload exceeds
// MaxFrameLength.
func Pack(m *Message) ([]byte, error) {
	size := 4
	for _, f := range m.frames {
		if !f.Type.valid() {
			return nil, errors.Newf("message.Pack", errors.KindInvalidFrame, "unknown frame type %d", f.Type)
		}
		if !lengthValid(f.Type, len(f.Data)) {
			return nil, errors.Newf("message.Pack", errors.KindInvalidFrame, "frame type %s has inconsistent length %d", f.Type, len(f.Data))
		}
		size += 2 + len(f.Data)
	}

	buf := make([]byte, size)
	buf[0] = (m.version&0x0f)<<4 | uint8(m.opcode)&0x0f
	buf[1] = m.flags
	binary.BigEndian.PutUint16(buf[2:4], uint16(m.payload))

	off := 4
	for i, f := range m.frames {
		final := i == len(m.frames)-1
		header := uint16(len(f.Data)) & 0x0fff
		header |= uint16(f.Type&0x07) << 12
		if final {
			header |= 0x8000
		}
		binary.BigEndian.PutUint16(buf[off:off+2], header)
		off += 2
		copy(buf[off:off+len(f.Data)], f.Data)
		off += len(f.Data)
	}

	return buf, nil
}
