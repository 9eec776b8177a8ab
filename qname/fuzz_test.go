package qname

import "testing"

// FuzzParse restates the original library's t/fuzz/r/qname.c harness: feed
// arbitrary bytes to the parser and require that it either returns a usable
// QName or a non-nil error, and never panics.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"cpu host=a,core=1",
		"a=1,b=2",
		"foo",
		"cpu *",
		"cpu host=*,*",
		"",
		"a=",
		"a*b=1",
		`a=\*`,
		"* host=a",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		q, err := Parse(s)
		if err != nil {
			if q != nil {
				t.Fatalf("Parse(%q) returned both a non-nil QName and an error", s)
			}
			return
		}
		if q == nil {
			t.Fatalf("Parse(%q) returned a nil QName with no error", s)
		}

		// Round-tripping a successfully parsed qname through String must
		// never panic and must re-parse cleanly.
		canon := q.String()
		q2, err := Parse(canon)
		if err != nil {
			t.Fatalf("Parse(%q) succeeded but its canonical form %q failed to re-parse: %v", s, canon, err)
		}
		if !Equal(q, q2) {
			t.Fatalf("Parse(%q) round-trip through %q produced a different qname", s, canon)
		}
	})
}
