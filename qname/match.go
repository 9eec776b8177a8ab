package qname

// Match reports whether qn satisfies pattern: pattern's metric (when
// pattern has one, and it isn't the wildcard) must byte-match qn's, and for
// every key/value term in pattern, qn must carry that key with either a
// matching value or absence, where pattern's term being the wildcard
// sentinel matches any value at that key (including a key-only, absent
// value). Unless pattern carries a trailing wildcard, qn must also have
// exactly as many pairs as pattern — pattern can't be satisfied by a qn
// that carries extra tags it never asked about.
//
// A nil qn or pattern never matches.
func Match(qn, pattern *QName) bool {
	if qn == nil || pattern == nil {
		return false
	}

	if pattern.hasMetric && !pattern.metricWildcard {
		if !qn.hasMetric || qn.metric != pattern.metric {
			return false
		}
	}

	for _, pp := range pattern.pairs {
		idx, found := qn.indexOf(pp.key)
		if !found {
			return false
		}
		qv := qn.pairs[idx]

		if pp.hasValue && pp.wildcard {
			continue
		}

		if pp.hasValue != qv.hasValue {
			return false
		}
		if pp.hasValue {
			if qv.wildcard {
				return false
			}
			if qv.value != pp.value {
				return false
			}
		}
	}

	if !pattern.wild && len(qn.pairs) != len(pattern.pairs) {
		return false
	}

	return true
}
