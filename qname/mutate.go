package qname

import "github.com/bizzaro-jhunt/tsdp-go/errors"

// Set assigns key the value value, inserting a new pair if key is not
// already present. A value of "*" stores the wildcard sentinel rather than
// the literal one-byte string. Set fails with a capacity error if inserting
// a new key would exceed MaxPairs.
func (q *QName) Set(key, value string) error {
	if q == nil {
		return errors.New("qname.Set", errors.KindInvalidArgument)
	}
	return q.setPair(key, true, value == "*", value)
}

// SetKeyOnly assigns key with no value component (as a bare "host" tag
// parses), inserting a new pair if key is not already present.
func (q *QName) SetKeyOnly(key string) error {
	if q == nil {
		return errors.New("qname.Set", errors.KindInvalidArgument)
	}
	return q.setPair(key, false, false, "")
}

func (q *QName) setPair(key string, hasValue, wildcard bool, value string) error {
	i, found := q.indexOf(key)
	if found {
		q.pairs[i].hasValue = hasValue
		q.pairs[i].wildcard = wildcard
		q.pairs[i].value = value
		return nil
	}
	if len(q.pairs) >= MaxPairs {
		return errors.NewCapacity("qname.Set", "pair count exceeds MaxPairs")
	}
	q.pairs = append(q.pairs, pair{})
	copy(q.pairs[i+1:], q.pairs[i:])
	q.pairs[i] = pair{key: key, hasValue: hasValue, wildcard: wildcard, value: value}
	return nil
}

// Unset removes key from q, if present. Unsetting an absent key is not an
// error.
func (q *QName) Unset(key string) {
	if q == nil {
		return
	}
	i, found := q.indexOf(key)
	if !found {
		return
	}
	q.pairs = append(q.pairs[:i], q.pairs[i+1:]...)
}

// Get returns the value stored at key, and whether key is present at all.
func (q *QName) Get(key string) (Value, bool) {
	if q == nil {
		return Value{}, false
	}
	i, found := q.indexOf(key)
	if !found {
		return Value{}, false
	}
	p := q.pairs[i]
	return Value{HasValue: p.hasValue, Wildcard: p.wildcard, Literal: p.value}, true
}

// Merge applies Set (or SetKeyOnly) to a for every pair in b, so that keys
// unique to a are retained and keys present in both are overwritten with
// b's value. Merge stops at the first capacity error.
func Merge(a, b *QName) error {
	if a == nil || b == nil {
		return errors.New("qname.Merge", errors.KindInvalidArgument)
	}
	for _, p := range b.pairs {
		if err := a.setPair(p.key, p.hasValue, p.wildcard, p.value); err != nil {
			return err
		}
	}
	return nil
}
