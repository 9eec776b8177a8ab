package message

import (
	"math/bits"
	"strconv"

	"github.com/bizzaro-jhunt/tsdp-go/errors"
)

// stateTransitionFlag is BROADCAST/STATE's flag bit (0x40) distinguishing a
// six-frame transition record (old value + new value) from the plain
// four-frame snapshot.
const stateTransitionFlag = 0x40

// forgettableMask is the set of payload kinds FORGET may name for removal.
const forgettableMask = Sample | Tally | Delta | State

// fieldSpec names one frame's required type and length within an opcode's
// schema. length < 0 means "any length" (STRING).
type fieldSpec struct {
	ftype  FrameType
	length int
}

func field(t FrameType, length int) fieldSpec { return fieldSpec{ftype: t, length: length} }

var (
	specString = field(FrameString, -1)
	specTstamp = field(FrameTstamp, 8)
	specUint4  = field(FrameUint, 4)
	specUint8  = field(FrameUint, 8)
	specFloat8 = field(FrameFloat, 8)
)

// Valid reports whether m is well-formed: complete, version 1, and
// conforming to its opcode/payload's arity and frame schema. On failure it
// returns false and an error describing which rule failed (INVALID_ARITY,
// INVALID_FRAME, INVALID_PAYLOAD, ...); Valid never mutates m, and calling
// it twice on the same message yields the same answer.
func Valid(m *Message, opts ...Option) (bool, error) {
	cfg := newConfig(opts)

	ok, err := valid(m)
	if !ok {
		cfg.debugf("message.Valid: rejected", "opcode", m.opcode.String(), "error", err.Error())
	}
	return ok, err
}

func valid(m *Message) (bool, error) {
	if !m.complete {
		return false, errors.New("message.Valid", errors.KindInvalidArity)
	}
	if m.version != 1 {
		return false, errors.Newf("message.Valid", errors.KindInvalidVersion, "version %d is not 1", m.version)
	}

	switch m.opcode {
	case Heartbeat:
		if m.payload != 0 {
			return false, errors.Newf("message.Valid", errors.KindInvalidPayload, "HEARTBEAT requires an empty payload mask, got 0x%04x", m.payload)
		}
		if len(m.frames) != 2 {
			return false, arityErr("HEARTBEAT", 2, len(m.frames), false)
		}
		return checkSchema(m, specTstamp, specUint8)

	case Submit:
		return validSubmit(m)

	case Broadcast:
		return validBroadcast(m)

	case Forget:
		if m.payload&^forgettableMask != 0 {
			return false, errors.Newf("message.Valid", errors.KindInvalidPayload, "FORGET payload 0x%04x is outside {SAMPLE,TALLY,DELTA,STATE}", m.payload)
		}
		if len(m.frames) != 1 {
			return false, arityErr("FORGET", 1, len(m.frames), false)
		}
		return checkSchema(m, specString)

	case Replay:
		if m.payload == 0 {
			return false, errors.New("message.Valid", errors.KindInvalidPayload)
		}
		if len(m.frames) != 0 {
			return false, errors.Newf("message.Valid", errors.KindInvalidArity, "REPLAY requires 0 frames, got %d", len(m.frames))
		}
		return true, nil

	case Subscribe:
		if m.payload == 0 {
			return false, errors.New("message.Valid", errors.KindInvalidPayload)
		}
		if len(m.frames) != 1 {
			return false, arityErr("SUBSCRIBE", 1, len(m.frames), false)
		}
		return checkSchema(m, specString)

	default:
		return false, errors.Newf("message.Valid", errors.KindInvalidOpcode, "opcode %d is outside 0..5", m.opcode)
	}
}

// singleKind returns the one payload-kind bit set in p, requiring p to be
// exactly that bit (no reserved bits, no second kind bit).
func singleKind(p PayloadKind) (PayloadKind, bool) {
	if bits.OnesCount16(uint16(p)) != 1 {
		return 0, false
	}
	switch p {
	case Sample, Tally, Delta, State, Event, Fact:
		return p, true
	default:
		return 0, false
	}
}

func validSubmit(m *Message) (bool, error) {
	kind, ok := singleKind(m.payload)
	if !ok {
		return false, errors.Newf("message.Valid", errors.KindInvalidPayload, "SUBMIT requires exactly one payload kind, got 0x%04x", m.payload)
	}

	switch kind {
	case Sample:
		if len(m.frames) < 3 {
			return false, arityErr("SUBMIT/SAMPLE", 3, len(m.frames), true)
		}
		if ok, err := checkSchema(m, specString, specTstamp); !ok {
			return false, err
		}
		return checkTail(m, 2, specFloat8)

	case Tally:
		if len(m.frames) != 2 && len(m.frames) != 3 {
			return false, errors.Newf("message.Valid", errors.KindInvalidArity, "SUBMIT/TALLY requires 2 or 3 frames, got %d", len(m.frames))
		}
		if ok, err := checkSchema(m, specString, specTstamp); !ok {
			return false, err
		}
		if len(m.frames) == 3 {
			return checkSchema(m, specString, specTstamp, specUint8)
		}
		return true, nil

	case Delta:
		if len(m.frames) != 3 {
			return false, arityErr("SUBMIT/DELTA", 3, len(m.frames), false)
		}
		return checkSchema(m, specString, specTstamp, specFloat8)

	case State:
		if len(m.frames) != 3 && len(m.frames) != 4 {
			return false, errors.Newf("message.Valid", errors.KindInvalidArity, "SUBMIT/STATE requires 3 or 4 frames, got %d", len(m.frames))
		}
		if ok, err := checkSchema(m, specString, specTstamp, specUint4); !ok {
			return false, err
		}
		if len(m.frames) == 4 {
			return checkSchema(m, specString, specTstamp, specUint4, specString)
		}
		return true, nil

	case Event:
		if len(m.frames) != 3 {
			return false, arityErr("SUBMIT/EVENT", 3, len(m.frames), false)
		}
		return checkSchema(m, specString, specTstamp, specString)

	case Fact:
		if len(m.frames) != 2 {
			return false, arityErr("SUBMIT/FACT", 2, len(m.frames), false)
		}
		return checkSchema(m, specString, specString)
	}

	return false, errors.New("message.Valid", errors.KindInvalidPayload)
}

func validBroadcast(m *Message) (bool, error) {
	kind, ok := singleKind(m.payload)
	if !ok {
		return false, errors.Newf("message.Valid", errors.KindInvalidPayload, "BROADCAST requires exactly one payload kind, got 0x%04x", m.payload)
	}

	switch kind {
	case Sample:
		if len(m.frames) < 4 {
			return false, arityErr("BROADCAST/SAMPLE", 4, len(m.frames), true)
		}
		if ok, err := checkSchema(m, specString, specTstamp, specUint4); !ok {
			return false, err
		}
		return checkTail(m, 3, specFloat8)

	case Tally:
		if len(m.frames) != 4 {
			return false, arityErr("BROADCAST/TALLY", 4, len(m.frames), false)
		}
		return checkSchema(m, specString, specTstamp, specUint4, specUint8)

	case Delta:
		if len(m.frames) != 4 {
			return false, arityErr("BROADCAST/DELTA", 4, len(m.frames), false)
		}
		return checkSchema(m, specString, specTstamp, specUint4, specFloat8)

	case State:
		if m.flags&stateTransitionFlag != 0 {
			if len(m.frames) != 6 {
				return false, arityErr("BROADCAST/STATE (transition)", 6, len(m.frames), false)
			}
			return checkSchema(m, specString, specUint4, specTstamp, specString, specTstamp, specString)
		}
		if len(m.frames) != 4 {
			return false, arityErr("BROADCAST/STATE", 4, len(m.frames), false)
		}
		return checkSchema(m, specString, specUint4, specTstamp, specString)

	case Event:
		if len(m.frames) != 3 {
			return false, arityErr("BROADCAST/EVENT", 3, len(m.frames), false)
		}
		return checkSchema(m, specString, specTstamp, specString)

	case Fact:
		if len(m.frames) != 2 {
			return false, arityErr("BROADCAST/FACT", 2, len(m.frames), false)
		}
		return checkSchema(m, specString, specString)
	}

	return false, errors.New("message.Valid", errors.KindInvalidPayload)
}

func arityErr(label string, want, got int, atLeast bool) error {
	if atLeast {
		return errors.Newf("message.Valid", errors.KindInvalidArity, "%s requires at least %d frames, got %d", label, want, got)
	}
	return errors.Newf("message.Valid", errors.KindInvalidArity, "%s requires exactly %d frames, got %d", label, want, got)
}

// checkSchema verifies that m's first len(specs) frames match specs in
// order.
func checkSchema(m *Message, specs ...fieldSpec) (bool, error) {
	for i, spec := range specs {
		f := m.frames[i]
		if f.Type != spec.ftype || (spec.length >= 0 && len(f.Data) != spec.length) {
			return false, errors.Newf("message.Valid", errors.KindInvalidFrame,
				"frame %d is %s/%d, want %s", i, f.Type, len(f.Data), schemaLabel(spec))
		}
	}
	return true, nil
}

// checkTail verifies that every frame from index start onward matches spec
// (used for the variable-length FLOAT/8 tail of SAMPLE messages).
func checkTail(m *Message, start int, spec fieldSpec) (bool, error) {
	for i := start; i < len(m.frames); i++ {
		f := m.frames[i]
		if f.Type != spec.ftype || (spec.length >= 0 && len(f.Data) != spec.length) {
			return false, errors.Newf("message.Valid", errors.KindInvalidFrame,
				"frame %d is %s/%d, want %s", i, f.Type, len(f.Data), schemaLabel(spec))
		}
	}
	return true, nil
}

func schemaLabel(spec fieldSpec) string {
	if spec.length < 0 {
		return spec.ftype.String()
	}
	return spec.ftype.String() + "/" + strconv.Itoa(spec.length)
}
