package qname

import (
	"strings"

	"github.com/bizzaro-jhunt/tsdp-go/errors"
)

// fsmState is one of the five parser states from the qname grammar: K1/K2
// scan a key, V1/V2 scan a value, M follows a bare wildcard byte.
type fsmState int

const (
	stateK1 fsmState = iota
	stateK2
	stateV1
	stateV2
	stateM
)

// Parse parses s into a canonical QName, or returns an error describing why
// s is not a well-formed qname.
//
// s is first checked against MaxInput. Leading spaces are skipped, then the
// bytes up to the first space, '=', ',', or end of input are inspected: if a
// space is reached first and the next non-space byte after it is not '=' or
// ',', the bytes before it are the metric and parsing of the key/value pair
// list resumes after the space; otherwise there is no metric and the whole
// of s is fed to the pair-list grammar. The pair list
// is then parsed by a small state machine (K1/K2 for keys, V1/V2 for values,
// M after a bare wildcard byte), trimmed, and sorted by key.
func Parse(s string, opts ...Option) (*QName, error) {
	cfg := newConfig(opts)

	if len(s) > MaxInput {
		cfg.debugf("qname: input exceeds MaxInput", "length", len(s), "max", MaxInput)
		return nil, errors.NewCapacity("qname.Parse", "input length exceeds MaxInput")
	}

	trimmed := strings.TrimLeft(s, " ")
	metric, hasMetric, metricWild, body := splitMetric(trimmed)

	pairs, wild, err := parsePairList(body)
	if err != nil {
		cfg.debugf("qname: pair list rejected", "error", err.Error())
		return nil, err
	}

	if err := trimAndValidatePairs(pairs); err != nil {
		cfg.debugf("qname: empty key after trim", "error", err.Error())
		return nil, err
	}

	sortPairs(pairs)

	return &QName{
		metric:         metric,
		hasMetric:      hasMetric,
		metricWildcard: metricWild,
		wild:           wild,
		pairs:          pairs,
	}, nil
}

// splitMetric separates a leading "metric " token from the rest of the
// input. If the first of a space/'='/',' encountered from byte zero is a
// space, and the first non-space byte after it is not '=' or ',',
// everything before it is the metric and rest begins after the space.
// Otherwise there is no metric and rest is the entire input.
func splitMetric(s string) (metric string, hasMetric, metricWild bool, rest string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			j := i
			for j < len(s) && s[j] == ' ' {
				j++
			}
			if j < len(s) && (s[j] == '=' || s[j] == ',') {
				// the spaces trail a key, as in "host = a"
				return "", false, false, s
			}
			metric = s[:i]
			return metric, true, metric == "*", s[i+1:]
		case '=', ',':
			return "", false, false, s
		}
	}
	return "", false, false, s
}

// parsePairList runs the K1..M state machine over body, producing the pair
// list and whether a bare wildcard byte (at key position) was seen.
func parsePairList(body string) ([]pair, bool, error) {
	var pairs []pair
	state := stateK1
	escaped := false
	wild := false

	var key, val []byte
	var pairOpen, hasValue, wildcardValue bool

	finish := func() error {
		if pairOpen {
			if len(pairs) >= MaxPairs {
				return errors.NewCapacity("qname.Parse", "pair count exceeds MaxPairs")
			}
			pairs = append(pairs, pair{
				key:      string(key),
				hasValue: hasValue,
				wildcard: wildcardValue,
				value:    string(val),
			})
		}
		key, val = nil, nil
		pairOpen, hasValue, wildcardValue = false, false, false
		return nil
	}

	fail := func() error {
		return newInvalidQnameError("qname.Parse", "malformed key/value pair syntax")
	}

	for i := 0; i < len(body); i++ {
		c := body[i]

		if escaped {
			escaped = false
			switch state {
			case stateK1:
				pairOpen = true
				key = append(key, c)
				state = stateK2
			case stateK2:
				key = append(key, c)
			case stateV1:
				hasValue = true
				val = append(val, c)
				state = stateV2
			case stateV2:
				val = append(val, c)
			default: // stateM
				return nil, false, fail()
			}
			continue
		}

		if c == '\\' {
			escaped = true
			continue
		}

		switch state {
		case stateK1:
			switch {
			case c == ' ':
				// leading whitespace before a key is skipped
			case c == '*':
				wild = true
				state = stateM
			case isQnameChar(c):
				pairOpen = true
				key = append(key, c)
				state = stateK2
			default:
				return nil, false, fail()
			}

		case stateK2:
			switch c {
			case '=':
				state = stateV1
			case ',':
				if err := finish(); err != nil {
					return nil, false, err
				}
				state = stateK1
			default:
				if isQnameChar(c) || c == ' ' {
					key = append(key, c)
				} else {
					return nil, false, fail()
				}
			}

		case stateV1:
			switch {
			case c == ' ':
				// leading whitespace before a value is skipped
			case c == '*':
				hasValue = true
				wildcardValue = true
				state = stateM
			case c == ',':
				hasValue = true
				if err := finish(); err != nil {
					return nil, false, err
				}
				state = stateK1
			case isQnameChar(c):
				hasValue = true
				val = append(val, c)
				state = stateV2
			default:
				return nil, false, fail()
			}

		case stateV2:
			switch c {
			case ',':
				if err := finish(); err != nil {
					return nil, false, err
				}
				state = stateK1
			default:
				if isQnameChar(c) || c == ' ' {
					val = append(val, c)
				} else {
					return nil, false, fail()
				}
			}

		case stateM:
			if c == ',' {
				if err := finish(); err != nil {
					return nil, false, err
				}
				state = stateK1
			} else {
				return nil, false, fail()
			}
		}
	}

	if escaped {
		return nil, false, fail()
	}

	switch state {
	case stateV1:
		// An '=' was already consumed to reach V1, so end-of-input here
		// closes the pair with a present-but-empty value, not an absent
		// one (unlike a comma reached directly from K2, where no '='
		// was ever seen).
		hasValue = true
		if err := finish(); err != nil {
			return nil, false, err
		}
	case stateK2, stateV2, stateM:
		if err := finish(); err != nil {
			return nil, false, err
		}
	default: // stateK1: either empty body, or a trailing comma with nothing after
		return nil, false, newInvalidQnameError("qname.Parse", "unexpected end of input")
	}

	return pairs, wild, nil
}

// trimAndValidatePairs trims leading/trailing space bytes from each key and
// (non-wildcard) value in place, and rejects any pair whose key is empty
// after trimming.
func trimAndValidatePairs(pairs []pair) error {
	for i := range pairs {
		pairs[i].key = trimSpaceBytes(pairs[i].key)
		if pairs[i].key == "" {
			return newInvalidQnameError("qname.Parse", "key is empty after trimming whitespace")
		}
		if pairs[i].hasValue && !pairs[i].wildcard {
			pairs[i].value = trimSpaceBytes(pairs[i].value)
		}
	}
	return nil
}

// trimSpaceBytes trims only the literal space byte (0x20) from both ends,
// matching the grammar's notion of whitespace (it does not treat tabs or
// newlines specially; those bytes require escaping like any other non-class
// byte).
func trimSpaceBytes(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	j := len(s)
	for j > i && s[j-1] == ' ' {
		j--
	}
	return s[i:j]
}

func sortPairs(pairs []pair) {
	// insertion sort: pair lists are small (<= MaxPairs) and usually
	// already close to sorted input order, and this keeps the sort
	// stable with respect to duplicate keys.
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j].key < pairs[j-1].key; j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
}
