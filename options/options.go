// Package options implements a compact integer-array trie for fast
// prefix-matching selection among a fixed set of byte-string
// alternatives, matched against a bufio.BufferedSource.
package options

import (
	"sort"

	"github.com/bearlytools/iobuf/bytestring"
	"github.com/bearlytools/iobuf/ioerr"
)

// Options is a precompiled trie over a fixed, ordered set of
// alternatives, built once and matched many times.
type Options struct {
	alternatives [][]byte
	root         *node
}

// node is one trie node. A scan node holds a literal byte run that must
// match exactly, followed by either a child node or (if matchIndex >=
// 0) a terminal match. A select node instead branches on the very next
// byte via a sorted table of children.
type node struct {
	scan       []byte
	matchIndex int // -1 unless an alternative ends where this node is entered (before its scan bytes)

	// Populated only for scan nodes: the node reached after the scan bytes.
	child *node

	// Select-node fields: selectBytes is sorted in parallel with
	// selectChildren; selectMatch holds the match index for each byte, or
	// -1 if that branch continues into selectChildren.
	selectBytes    []byte
	selectChildren []*node
	selectMatch    []int
}

// New builds a trie over alternatives, in insertion order. Duplicate or
// empty alternatives are rejected; the list itself must be non-empty.
func New(alternatives []bytestring.ByteString) (*Options, error) {
	if len(alternatives) == 0 {
		return nil, ioerr.E(ioerr.TypeArgument, "options: alternatives must be non-empty")
	}

	raw := make([][]byte, len(alternatives))
	seen := make(map[string]bool, len(alternatives))
	for i, a := range alternatives {
		if a.Len() == 0 {
			return nil, ioerr.E(ioerr.TypeArgument, "options: empty alternative not allowed")
		}
		b := a.Bytes()
		key := string(b)
		if seen[key] {
			return nil, ioerr.Ef(ioerr.TypeArgument, "options: duplicate alternative %q", key)
		}
		seen[key] = true
		raw[i] = b
	}

	indices := make([]int, len(raw))
	for i := range indices {
		indices[i] = i
	}
	root := build(raw, indices, 0)
	return &Options{alternatives: raw, root: root}, nil
}

// build constructs the subtrie for the alternatives named by indices,
// all of which already agree on their first depth bytes. indices is in
// original insertion order, which is how ties resolve.
func build(raw [][]byte, indices []int, depth int) *node {
	// Alternatives that end exactly at depth: the shortest (earliest
	// inserted, since indices preserves order) terminates here.
	matchIndex := -1
	var remaining []int
	for _, idx := range indices {
		if len(raw[idx]) == depth {
			if matchIndex == -1 {
				matchIndex = idx
			}
			continue
		}
		remaining = append(remaining, idx)
	}

	if len(remaining) == 0 {
		return &node{matchIndex: matchIndex}
	}

	// Find the longest prefix (starting at depth) every remaining
	// alternative shares, without reading past any alternative's own
	// end — one ending exactly at depth+k stops the common prefix at k.
	maxExtend := len(raw[remaining[0]]) - depth
	for _, idx := range remaining[1:] {
		if l := len(raw[idx]) - depth; l < maxExtend {
			maxExtend = l
		}
	}
	commonLen := 0
	for commonLen < maxExtend {
		b := raw[remaining[0]][depth+commonLen]
		agree := true
		for _, idx := range remaining[1:] {
			if raw[idx][depth+commonLen] != b {
				agree = false
				break
			}
		}
		if !agree {
			break
		}
		commonLen++
	}

	if commonLen >= 1 {
		scan := make([]byte, commonLen)
		copy(scan, raw[remaining[0]][depth:depth+commonLen])
		child := build(raw, remaining, depth+commonLen)
		return &node{matchIndex: matchIndex, scan: scan, child: child}
	}

	// Select node: group remaining by next byte.
	groups := map[byte][]int{}
	var bytesOrder []byte
	for _, idx := range remaining {
		b := raw[idx][depth]
		if _, ok := groups[b]; !ok {
			bytesOrder = append(bytesOrder, b)
		}
		groups[b] = append(groups[b], idx)
	}
	sort.Slice(bytesOrder, func(i, j int) bool { return bytesOrder[i] < bytesOrder[j] })

	n := &node{matchIndex: matchIndex}
	for _, b := range bytesOrder {
		group := groups[b]
		child := build(raw, group, depth+1)
		if child.scan == nil && child.child == nil && child.selectBytes == nil {
			n.selectBytes = append(n.selectBytes, b)
			n.selectMatch = append(n.selectMatch, child.matchIndex)
			n.selectChildren = append(n.selectChildren, nil)
		} else {
			n.selectBytes = append(n.selectBytes, b)
			n.selectMatch = append(n.selectMatch, -1)
			n.selectChildren = append(n.selectChildren, child)
		}
	}
	return n
}
