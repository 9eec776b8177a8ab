package message

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestFrameAsUintAccessors(t *testing.T) {
	m := mustNew(t, Heartbeat, 0)
	b2 := make([]byte, 2)
	binary.BigEndian.PutUint16(b2, 0xabcd)
	b4 := make([]byte, 4)
	binary.BigEndian.PutUint32(b4, 0x12345678)
	b8 := make([]byte, 8)
	binary.BigEndian.PutUint64(b8, 0x1122334455667788)

	if err := m.Extend(FrameUint, b2); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if err := m.Extend(FrameUint, b4); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if err := m.Extend(FrameUint, b8); err != nil {
		t.Fatalf("Extend error: %v", err)
	}

	if v, err := m.FrameAsUint2(0); err != nil || v != 0xabcd {
		t.Errorf("FrameAsUint2(0) = %x, %v, want abcd, nil", v, err)
	}
	if v, err := m.FrameAsUint4(1); err != nil || v != 0x12345678 {
		t.Errorf("FrameAsUint4(1) = %x, %v, want 12345678, nil", v, err)
	}
	if v, err := m.FrameAsUint8(2); err != nil || v != 0x1122334455667788 {
		t.Errorf("FrameAsUint8(2) = %x, %v, want 1122334455667788, nil", v, err)
	}

	if _, err := m.FrameAsUint4(0); err == nil {
		t.Errorf("FrameAsUint4(0) on a 2-octet frame expected an error")
	}
	if _, err := m.FrameAsUint2(99); err == nil {
		t.Errorf("FrameAsUint2(99) out of range expected an error")
	}
}

func TestFrameAsFloat8WidensFloat32(t *testing.T) {
	m := mustNew(t, Heartbeat, 0)
	b4 := make([]byte, 4)
	binary.BigEndian.PutUint32(b4, math.Float32bits(3.5))
	if err := m.Extend(FrameFloat, b4); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	v, err := m.FrameAsFloat8(0)
	if err != nil {
		t.Fatalf("FrameAsFloat8 error: %v", err)
	}
	if v != 3.5 {
		t.Errorf("FrameAsFloat8 = %v, want 3.5", v)
	}
}

func TestFrameAsFloat8DecodesFloat64(t *testing.T) {
	m := mustNew(t, Heartbeat, 0)
	b8 := make([]byte, 8)
	binary.BigEndian.PutUint64(b8, math.Float64bits(2.718281828459045))
	if err := m.Extend(FrameFloat, b8); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	v, err := m.FrameAsFloat8(0)
	if err != nil {
		t.Fatalf("FrameAsFloat8 error: %v", err)
	}
	if v != 2.718281828459045 {
		t.Errorf("FrameAsFloat8 = %v, want e", v)
	}
}

func TestFrameAsTstamp8(t *testing.T) {
	m := mustNew(t, Heartbeat, 0)
	b8 := make([]byte, 8)
	binary.BigEndian.PutUint64(b8, 1700000000)
	if err := m.Extend(FrameTstamp, b8); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	v, err := m.FrameAsTstamp8(0)
	if err != nil || v != 1700000000 {
		t.Errorf("FrameAsTstamp8 = %v, %v, want 1700000000, nil", v, err)
	}
}

func TestFrameAsString(t *testing.T) {
	m := mustNew(t, Heartbeat, 0)
	if err := m.Extend(FrameString, []byte("cpu.load")); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	v, err := m.FrameAsString(0)
	if err != nil || v != "cpu.load" {
		t.Errorf("FrameAsString = %q, %v, want cpu.load, nil", v, err)
	}
}

func TestFrameAsWrongTypeError(t *testing.T) {
	m := mustNew(t, Heartbeat, 0)
	if err := m.Extend(FrameString, []byte("x")); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if _, err := m.FrameAsUint2(0); err == nil {
		t.Errorf("FrameAsUint2 on a STRING frame expected an error")
	}
	if _, err := m.FrameAsFloat8(0); err == nil {
		t.Errorf("FrameAsFloat8 on a STRING frame expected an error")
	}
	if _, err := m.FrameAsTstamp8(0); err == nil {
		t.Errorf("FrameAsTstamp8 on a STRING frame expected an error")
	}
}
