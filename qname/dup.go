package qname

// Dup returns an independent copy of q: mutating the copy's tag set via
// Set/Unset/Merge never affects q, and vice versa. Dup(nil) is nil.
func (q *QName) Dup() *QName {
	if q == nil {
		return nil
	}
	dup := &QName{
		metric:         q.metric,
		hasMetric:      q.hasMetric,
		metricWildcard: q.metricWildcard,
		wild:           q.wild,
		pairs:          make([]pair, len(q.pairs)),
	}
	copy(dup.pairs, q.pairs)
	return dup
}

// Metric returns the qname's metric text, whether a metric is present at
// all, and whether the metric is the wildcard sentinel.
func (q *QName) Metric() (value string, present, wildcard bool) {
	if q == nil {
		return "", false, false
	}
	return q.metric, q.hasMetric, q.metricWildcard
}

// Wild reports whether q carries a trailing bare wildcard term.
func (q *QName) Wild() bool {
	if q == nil {
		return false
	}
	return q.wild
}

// Len returns the number of key/value pairs in q.
func (q *QName) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pairs)
}
