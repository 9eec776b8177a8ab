// Package message implements the TSDP binary framed message codec: packing
// and unpacking a fixed 4-octet header plus a sequence of typed, length-
// prefixed frames, and the per-opcode/payload semantic validation rules
// that decide whether a decoded message is well-formed.
//
// A Message is built incrementally with New and Extend, or produced by
// Unpack from a wire buffer. All multi-octet integer fields are big-endian,
// matching the wire format; Pack/Unpack are the only two functions that
// touch raw bytes.
package message

import "github.com/bizzaro-jhunt/tsdp-go/errors"

// Opcode identifies the kind of operation a message carries.
type Opcode uint8

const (
	Heartbeat Opcode = iota
	Submit
	Broadcast
	Forget
	Replay
	Subscribe
)

func (o Opcode) String() string {
	switch o {
	case Heartbeat:
		return "HEARTBEAT"
	case Submit:
		return "SUBMIT"
	case Broadcast:
		return "BROADCAST"
	case Forget:
		return "FORGET"
	case Replay:
		return "REPLAY"
	case Subscribe:
		return "SUBSCRIBE"
	default:
		return "UNKNOWN"
	}
}

func (o Opcode) valid() bool {
	return o <= Subscribe
}

// PayloadKind is a bitmask of payload-kind flags. The high 10 bits
// (ReservedPayloadMask) are always zero in a valid message.
type PayloadKind uint16

const (
	Sample PayloadKind = 1 << iota
	Tally
	Delta
	State
	Event
	Fact
)

// ReservedPayloadMask covers the 10 high bits of the 16-bit payload field
// that carry no defined meaning and must be zero.
const ReservedPayloadMask PayloadKind = 0xffc0

func (p PayloadKind) names() []string {
	var names []string
	for _, kind := range []struct {
		bit  PayloadKind
		name string
	}{
		{Sample, "SAMPLE"},
		{Tally, "TALLY"},
		{Delta, "DELTA"},
		{State, "STATE"},
		{Event, "EVENT"},
		{Fact, "FACT"},
	} {
		if p&kind.bit != 0 {
			names = append(names, kind.name)
		}
	}
	return names
}

// MaxFrameLength is the largest octet count a single frame's payload can
// declare: the wire format's length field is 12 bits wide.
const MaxFrameLength = 1<<12 - 1

// Message is a decoded or in-progress-constructed TSDP message.
type Message struct {
	version  uint8
	opcode   Opcode
	flags    uint8
	payload  PayloadKind
	complete bool
	frames   []Frame
}

// New constructs an empty message after boundary-checking every field:
// version must be 1, opcode must be a known opcode, flags must fit in a
// single octet, and payload must not set any reserved bit. Frames are added
// afterward with Extend.
func New(version, opcode, flags, payload int, opts ...Option) (*Message, error) {
	cfg := newConfig(opts)

	if version != 1 {
		cfg.debugf("message.New: rejected version", "version", version)
		return nil, errors.Newf("message.New", errors.KindInvalidVersion, "version %d is not 1", version)
	}
	op := Opcode(opcode)
	if opcode < 0 || !op.valid() {
		cfg.debugf("message.New: rejected opcode", "opcode", opcode)
		return nil, errors.Newf("message.New", errors.KindInvalidOpcode, "opcode %d is outside 0..5", opcode)
	}
	if flags < 0 || flags > 0xff {
		cfg.debugf("message.New: rejected flags", "flags", flags)
		return nil, errors.Newf("message.New", errors.KindInvalidFlag, "flags %d is outside 0..255", flags)
	}
	if payload < 0 || payload > 0xffff {
		cfg.debugf("message.New: rejected payload", "payload", payload)
		return nil, errors.Newf("message.New", errors.KindInvalidPayload, "payload %d is outside 0..65535", payload)
	}
	pk := PayloadKind(payload)
	if pk&ReservedPayloadMask != 0 {
		cfg.debugf("message.New: rejected reserved payload bits", "payload", payload)
		return nil, errors.Newf("message.New", errors.KindInvalidPayload, "payload 0x%04x sets a reserved bit", payload)
	}

	return &Message{
		version: 1,
		opcode:  op,
		flags:   uint8(flags),
		payload: pk &^ ReservedPayloadMask,
		// A message built in memory via New+Extend has no partial-
		// reception concept: it is complete as soon as the caller stops
		// calling Extend. Only Unpack, which reads frames off a wire
		// buffer that may be truncated, can produce complete=false.
		complete: true,
	}, nil
}

// Version returns the message's version field (always 1 for a valid message).
func (m *Message) Version() int { return int(m.version) }

// Opcode returns the message's opcode.
func (m *Message) Opcode() Opcode { return m.opcode }

// Flags returns the message's opcode-specific flags octet.
func (m *Message) Flags() uint8 { return m.flags }

// Payload returns the message's payload-kind bitmask.
func (m *Message) Payload() PayloadKind { return m.payload }

// NFrames returns the number of frames currently in the message.
func (m *Message) NFrames() int { return len(m.frames) }

// Complete reports whether the message was fully read by Unpack (or was
// freshly constructed and not yet truncated by a partial Unpack). REPLAY
// messages are always complete.
func (m *Message) Complete() bool { return m.complete }

// Frame returns the nth frame's type and raw payload bytes, or false if n
// is out of range.
func (m *Message) Frame(n int) (Frame, bool) {
	if n < 0 || n >= len(m.frames) {
		return Frame{}, false
	}
	return m.frames[n], true
}
