package message

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// maxPreviewLen bounds how many octets of a STRING frame's preview Dump
// renders before truncating with "...".
const maxPreviewLen = 124

// Dump writes a human-readable rendering of m to w: its version, opcode,
// flags, payload mask, and a line per frame giving its type, length, and a
// decoded value preview.
//
// This has no wire meaning of its own (Pack/Unpack never call it); it
// exists purely as an operator/debugging aid, the Go analogue of the
// original's fdump() trace helper.
func Dump(w io.Writer, m *Message) error {
	if _, err := fmt.Fprintf(w, "TSDP message: version=%d opcode=%d(%s) flags=0x%02x (%08b)\n",
		m.version, m.opcode, m.opcode.String(), m.flags, m.flags); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  payload=0x%04x (%016b) kinds=[%s] complete=%v frames=%d\n",
		uint16(m.payload), uint16(m.payload), strings.Join(m.payload.names(), ","), m.complete, len(m.frames)); err != nil {
		return err
	}

	for i, f := range m.frames {
		preview := framePreview(f)
		if _, err := fmt.Fprintf(w, "  [%d] %s/%d %s\n", i, f.Type.String(), len(f.Data), preview); err != nil {
			return err
		}
	}

	return nil
}

func framePreview(f Frame) string {
	switch f.Type {
	case FrameString:
		return quotePreview(f.Data)

	case FrameUint:
		switch len(f.Data) {
		case 2, 4, 8:
			return fmt.Sprintf("= %d", beUint(f.Data))
		default:
			return "<malformed>"
		}

	case FrameFloat:
		v, ok := beFloat(f.Data)
		if !ok {
			return "<malformed>"
		}
		return fmt.Sprintf("= %g", v)

	case FrameTstamp:
		if len(f.Data) != 8 {
			return "<malformed>"
		}
		sec := beUint(f.Data)
		return fmt.Sprintf("= %d (%s)", sec, time.Unix(int64(sec), 0).UTC().Format(time.RFC3339))

	case FrameNil:
		return ""

	default:
		return "<reserved>"
	}
}

// quotePreview renders data as a double-quoted, escaped string preview,
// truncating long values. Non-printable octets are rendered as \xHH rather
// than passed through verbatim, since a STRING frame's payload is
// arbitrary octets, not guaranteed UTF-8.
func quotePreview(data []byte) string {
	truncated := false
	if len(data) > maxPreviewLen {
		data = data[:maxPreviewLen]
		truncated = true
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range data {
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "\\x%02x", c)
		}
	}
	b.WriteByte('"')
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}

func beUint(data []byte) uint64 {
	var v uint64
	for _, c := range data {
		v = v<<8 | uint64(c)
	}
	return v
}

func beFloat(data []byte) (float64, bool) {
	switch len(data) {
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(data))), true
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(data)), true
	default:
		return 0, false
	}
}
