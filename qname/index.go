package qname

import "sort"

// indexOf returns the position of key in q's sorted pair list, and whether
// it was found. When not found, the returned index is where key would need
// to be inserted to keep the list sorted.
func (q *QName) indexOf(key string) (int, bool) {
	i := sort.Search(len(q.pairs), func(i int) bool { return q.pairs[i].key >= key })
	if i < len(q.pairs) && q.pairs[i].key == key {
		return i, true
	}
	return i, false
}
