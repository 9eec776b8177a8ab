package message

import (
	"encoding/binary"
	"testing"
)

func TestPackHeader(t *testing.T) {
	m := mustNew(t, Submit, int(Fact))
	if err := m.Extend(FrameString, []byte("host")); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if err := m.Extend(FrameString, []byte("web01")); err != nil {
		t.Fatalf("Extend error: %v", err)
	}

	buf, err := Pack(m)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	if len(buf) < 4 {
		t.Fatalf("Pack produced %d octets, want at least 4", len(buf))
	}
	if buf[0]>>4 != 1 {
		t.Errorf("version nibble = %d, want 1", buf[0]>>4)
	}
	if Opcode(buf[0]&0x0f) != Submit {
		t.Errorf("opcode nibble = %d, want SUBMIT", buf[0]&0x0f)
	}
	if PayloadKind(binary.BigEndian.Uint16(buf[2:4])) != Fact {
		t.Errorf("payload = %x, want FACT", binary.BigEndian.Uint16(buf[2:4]))
	}
}

func TestPackHeartbeatWorkedScenario(t *testing.T) {
	// spec scenario 3: a HEARTBEAT carrying a TSTAMP/8 and a UINT/8.
	m := mustNew(t, Heartbeat, 0)
	b8 := make([]byte, 8)
	binary.BigEndian.PutUint64(b8, 1700000000)
	if err := m.Extend(FrameTstamp, b8); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	u8 := make([]byte, 8)
	binary.BigEndian.PutUint64(u8, 42)
	if err := m.Extend(FrameUint, u8); err != nil {
		t.Fatalf("Extend error: %v", err)
	}

	buf, err := Pack(m)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	// header(4) + frame(2+8) + frame(2+8) = 24
	if len(buf) != 24 {
		t.Errorf("len(buf) = %d, want 24", len(buf))
	}

	ok, err := Valid(m)
	if !ok {
		t.Errorf("Valid(HEARTBEAT) = false, %v, want true", err)
	}
}

func TestPackLastFrameFinalBit(t *testing.T) {
	m := mustNew(t, Submit, int(Fact))
	if err := m.Extend(FrameString, []byte("a")); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if err := m.Extend(FrameString, []byte("b")); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	buf, err := Pack(m)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}

	off := 4
	h0 := binary.BigEndian.Uint16(buf[off : off+2])
	if h0&0x8000 != 0 {
		t.Errorf("frame 0 has final bit set, want clear")
	}
	off += 2 + int(h0&0x0fff)
	h1 := binary.BigEndian.Uint16(buf[off : off+2])
	if h1&0x8000 == 0 {
		t.Errorf("last frame has final bit clear, want set")
	}
}

func TestPackEmptyMessage(t *testing.T) {
	m := mustNew(t, Replay, int(Sample))
	buf, err := Pack(m)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	if len(buf) != 4 {
		t.Errorf("len(buf) = %d, want 4 (header only)", len(buf))
	}
}
