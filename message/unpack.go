package message

import (
	"encoding/binary"

	"github.com/bizzaro-jhunt/tsdp-go/errors"
)

// Unpack reads one message from the front of buf. It returns the decoded
// message and the number of trailing octets in buf that were not consumed.
//
// At least 4 octets are required for the header; a shorter buffer is an
// error. Frames are then read greedily while at least 2 header octets plus
// the declared payload length remain. complete is set from the final-frame
// bit of the last frame successfully read; if buf runs out before a
// final-flagged frame is seen, complete is false. REPLAY is a
// special case: it carries no frames and is always complete, regardless of
// any trailing bytes (which are left unconsumed and reported via the
// remaining count, exactly as for any other opcode).
func Unpack(buf []byte, opts ...Option) (m *Message, remaining int, err error) {
	cfg := newConfig(opts)

	if len(buf) < 4 {
		cfg.debugf("message.Unpack: buffer shorter than header", "length", len(buf))
		return nil, len(buf), errors.Newf("message.Unpack", errors.KindInvalidFrame, "buffer of %d octets is shorter than the 4-octet header", len(buf))
	}

	msg := &Message{
		version: buf[0] >> 4,
		opcode:  Opcode(buf[0] & 0x0f),
		flags:   buf[1],
		payload: PayloadKind(binary.BigEndian.Uint16(buf[2:4])),
	}

	off := 4
	sawFinal := false

	if msg.opcode == Replay {
		msg.complete = true
		return msg, len(buf) - off, nil
	}

	for off+2 <= len(buf) {
		header := binary.BigEndian.Uint16(buf[off : off+2])
		final := header&0x8000 != 0
		ftype := FrameType((header >> 12) & 0x07)
		length := int(header & 0x0fff)

		if off+2+length > len(buf) {
			break
		}

		payload := make([]byte, length)
		copy(payload, buf[off+2:off+2+length])
		msg.frames = append(msg.frames, Frame{Type: ftype, Data: payload, final: final})
		off += 2 + length

		if final {
			sawFinal = true
			break
		}
	}

	msg.complete = sawFinal
	cfg.debugf("message.Unpack: decoded message", "opcode", msg.opcode.String(), "nframes", len(msg.frames), "complete", msg.complete)

	return msg, len(buf) - off, nil
}
