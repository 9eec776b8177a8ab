package qname

// Equal reports whether a and b have the same metric (presence, wildcard
// state, and text), the same wild flag, and the same sorted pair list
// (matching keys, matching value presence, and byte-identical values — a
// wildcard-valued pair is equal only to another wildcard-valued pair at the
// same key, never to a literal value, even the literal string "*").
//
// A nil QName (the invalid sentinel) is never equal to anything, including
// another nil.
func Equal(a, b *QName) bool {
	if a == nil || b == nil {
		return false
	}
	if a.wild != b.wild {
		return false
	}
	if a.hasMetric != b.hasMetric {
		return false
	}
	if a.hasMetric {
		if a.metricWildcard != b.metricWildcard {
			return false
		}
		if !a.metricWildcard && a.metric != b.metric {
			return false
		}
	}
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for i := range a.pairs {
		pa, pb := a.pairs[i], b.pairs[i]
		if pa.key != pb.key {
			return false
		}
		if pa.hasValue != pb.hasValue {
			return false
		}
		if pa.hasValue {
			if pa.wildcard != pb.wildcard {
				return false
			}
			if !pa.wildcard && pa.value != pb.value {
				return false
			}
		}
	}
	return true
}
