package qname

import "strings"

// String renders q in canonical form: metric (if present) followed by a
// space, then pairs sorted by key and joined with ',', then a trailing ",*"
// (or a bare "*" if there were no pairs) if q is wildcarded. A nil q renders
// as the empty string.
//
// Re-parsing the output of String always yields a QName equal to q
// (Parse(q.String()) is idempotent on an already-canonical qname).
func (q *QName) String() string {
	if q == nil {
		return ""
	}

	var b strings.Builder

	if q.hasMetric {
		if q.metricWildcard {
			b.WriteByte('*')
		} else {
			b.WriteString(q.metric)
		}
		if len(q.pairs) > 0 || q.wild {
			b.WriteByte(' ')
		}
	}

	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeEscaped(&b, p.key)
		if p.hasValue {
			b.WriteByte('=')
			if p.wildcard {
				b.WriteByte('*')
			} else {
				writeEscaped(&b, p.value)
			}
		}
	}

	if q.wild {
		if len(q.pairs) > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('*')
	}

	return b.String()
}

// writeEscaped writes s to b, backslash-escaping the four grammar bytes
// that would otherwise be reinterpreted as syntax on re-parse: ',' '=' '\\'
// and '*'. A key or value can only contain these bytes literally if they
// arrived via an escape sequence during Parse, since the grammar's
// character class excludes all four from the unescaped byte set.
func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ',', '=', '\\', '*':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
}
