package options

import (
	"sort"

	"github.com/bearlytools/iobuf/bufio"
)

// Select walks the trie against src, requesting more bytes from the
// underlying source as needed without consuming them. It returns the
// matched alternative's index and then consumes its bytes from src, or
// returns -1 and consumes nothing if no alternative matches.
func (o *Options) Select(src *bufio.BufferedSource) (int, error) {
	idx, length, err := walk(o.root, src, 0)
	if err != nil {
		return -1, err
	}
	if idx < 0 {
		return -1, nil
	}
	if err := src.Buffer().Discard(int64(length)); err != nil {
		return -1, err
	}
	return idx, nil
}

// walk attempts to extend the match as deep as possible from n before
// falling back to n's own terminal match (the shorter alternative wins
// only when no longer alternative actually matches what follows).
func walk(n *node, src *bufio.BufferedSource, depth int) (idx int, length int, err error) {
	switch {
	case len(n.scan) > 0:
		ok, err := src.Request(int64(depth + len(n.scan)))
		if err != nil {
			return -1, 0, err
		}
		if ok {
			matched := true
			for i, want := range n.scan {
				got, _ := src.Buffer().Get(int64(depth + i))
				if got != want {
					matched = false
					break
				}
			}
			if matched {
				newDepth := depth + len(n.scan)
				if n.child != nil {
					if ci, cl, cerr := walk(n.child, src, newDepth); cerr != nil {
						return -1, 0, cerr
					} else if ci >= 0 {
						return ci, cl, nil
					}
				}
				// The scan matched but nothing longer did. The node's own
				// terminal alternative ends at this node's entry depth, so
				// only that many bytes belong to it.
				if n.matchIndex >= 0 {
					return n.matchIndex, depth, nil
				}
				return -1, 0, nil
			}
		}

	case len(n.selectBytes) > 0:
		ok, err := src.Request(int64(depth + 1))
		if err != nil {
			return -1, 0, err
		}
		if ok {
			b, _ := src.Buffer().Get(int64(depth))
			i := sort.Search(len(n.selectBytes), func(k int) bool { return n.selectBytes[k] >= b })
			if i < len(n.selectBytes) && n.selectBytes[i] == b {
				if n.selectChildren[i] != nil {
					if ci, cl, cerr := walk(n.selectChildren[i], src, depth+1); cerr != nil {
						return -1, 0, cerr
					} else if ci >= 0 {
						return ci, cl, nil
					}
				} else if n.selectMatch[i] >= 0 {
					return n.selectMatch[i], depth + 1, nil
				}
			}
		}
	}

	if n.matchIndex >= 0 {
		return n.matchIndex, depth, nil
	}
	return -1, 0, nil
}
