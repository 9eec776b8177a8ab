package qname

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		qn, pattern string
		want        bool
	}{
		{name: "exact match", qn: "cpu host=a,core=1", pattern: "cpu host=a,core=1", want: true},
		{name: "pattern subset of qn's tags requires trailing wild", qn: "cpu host=a,core=1,env=prod", pattern: "cpu host=a,*", want: true},
		{name: "pattern without trailing wild rejects extra qn tags", qn: "cpu host=a,core=1,env=prod", pattern: "cpu host=a", want: false},
		{name: "wildcard value matches any literal", qn: "cpu host=a", pattern: "cpu host=*", want: true},
		{name: "wildcard value matches absent value", qn: "cpu host", pattern: "cpu host=*", want: true},
		{name: "wildcard metric matches any metric", qn: "cpu host=a", pattern: "* host=a", want: true},
		{name: "missing key in qn fails", qn: "cpu core=1", pattern: "cpu host=a", want: false},
		{name: "mismatched metric fails", qn: "mem host=a", pattern: "cpu host=a", want: false},
		{name: "mismatched literal value fails", qn: "cpu host=a", pattern: "cpu host=b", want: false},
		{name: "qn's own wildcard value doesn't satisfy pattern's literal", qn: "cpu host=*", pattern: "cpu host=a", want: false},
		{name: "value present in pattern, absent in qn fails", qn: "cpu host", pattern: "cpu host=a", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qn := mustParse(t, tt.qn)
			pattern := mustParse(t, tt.pattern)
			if got := Match(qn, pattern); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.qn, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchNilNeverMatches(t *testing.T) {
	q := mustParse(t, "cpu host=a")
	if Match(nil, q) || Match(q, nil) || Match(nil, nil) {
		t.Errorf("Match with a nil operand returned true")
	}
}

func TestMatchSelfWithNoWildcards(t *testing.T) {
	for _, s := range []string{"cpu host=a,core=1", "a=1", "foo"} {
		q := mustParse(t, s)
		if !Match(q, q) {
			t.Errorf("Match(q, q) = false for %q", s)
		}
	}
}
