package llrb

import "github.com/bnclabs/gosymtab/api"

// Range from lkey to hkey, incl can be "both", "low", "high", "none".
// Entries are supplied to callb in ascending order of key, or in
// descending order if reverse is true. Range stops the walk if callb
// returns false. A zero length lkey or hkey is treated as an
// unbounded side of the range.
func (llrb *LLRB) Range(
	lkey, hkey []byte, incl string, reverse bool, callb api.NodeCallb) {

	llrb.assertnotdead("Range")

	lkey, hkey, incl, skip := fixrangeargs(lkey, hkey, incl)
	if skip {
		return
	}

	if reverse {
		switch incl {
		case "both":
			llrb.rvrslehe(llrb.getroot(), lkey, hkey, callb)
		case "high":
			llrb.rvrsleht(llrb.getroot(), lkey, hkey, callb)
		case "low":
			llrb.rvrslthe(llrb.getroot(), lkey, hkey, callb)
		default:
			llrb.rvrsltht(llrb.getroot(), lkey, hkey, callb)
		}
	} else {
		switch incl {
		case "both":
			llrb.rangehele(llrb.getroot(), lkey, hkey, callb)
		case "low":
			llrb.rangehelt(llrb.getroot(), lkey, hkey, callb)
		case "high":
			llrb.rangehtle(llrb.getroot(), lkey, hkey, callb)
		default:
			llrb.rangehtlt(llrb.getroot(), lkey, hkey, callb)
		}
	}
	llrb.n_ranges++
}

// Keys return all keys in the index in sort order. Keys are appended
// to the keys argument, pass a preallocated slice to avoid garbage.
func (llrb *LLRB) Keys(keys [][]byte) [][]byte {
	llrb.assertnotdead("Keys")

	llrb.rangehele(llrb.getroot(), nil, nil, func(key, _ []byte) bool {
		k := make([]byte, len(key))
		copy(k, key)
		keys = append(keys, k)
		return true
	})
	llrb.n_ranges++
	return keys
}

// Rangecount return the number of entries that fall within lkey to
// hkey, incl can be "both", "low", "high", "none". Count is computed
// from the subtree sizes, cost is proportional to the height of the
// tree.
func (llrb *LLRB) Rangecount(lkey, hkey []byte, incl string) (int64, error) {
	llrb.assertnotdead("Rangecount")

	if len(lkey) == 0 || len(hkey) == 0 {
		return 0, api.ErrorNilKey
	}
	if api.Binarycmp(lkey, hkey, false) == 1 {
		return 0, nil
	}

	root := llrb.getroot()
	count := llrb.rankof(root, hkey) - llrb.rankof(root, lkey)
	_, haslk := llrb.getkey(root, lkey)
	_, hashk := llrb.getkey(root, hkey)
	switch incl {
	case "both":
		if hashk {
			count++
		}
	case "high":
		if hashk {
			count++
		}
		if haslk {
			count--
		}
	case "none":
		if haslk {
			count--
		}
	}
	if count < 0 {
		count = 0
	}
	llrb.n_ranges++
	return count, nil
}

// Height return the height of the tree, the number of links on the
// longest path from root to a leaf node. An empty index has height
// -1 and an index with single entry has height zero.
func (llrb *LLRB) Height() int64 {
	llrb.assertnotdead("Height")
	return llrb.treeheight(llrb.getroot())
}

func (llrb *LLRB) treeheight(nd *Llrbnode) int64 {
	if nd == nil {
		return -1
	}
	lh, rh := llrb.treeheight(nd.left), llrb.treeheight(nd.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Levelorder return keys level by level starting from root, within
// a level keys are listed from left to right.
func (llrb *LLRB) Levelorder() [][][]byte {
	llrb.assertnotdead("Levelorder")

	levels := make([][][]byte, 0)
	if llrb.getroot() == nil {
		return levels
	}
	queue := []*Llrbnode{llrb.getroot()}
	for len(queue) > 0 {
		level, next := make([][]byte, 0, len(queue)), []*Llrbnode{}
		for _, nd := range queue {
			key := make([]byte, len(nd.getkey()))
			copy(key, nd.getkey())
			level = append(level, key)
			if nd.left != nil {
				next = append(next, nd.left)
			}
			if nd.right != nil {
				next = append(next, nd.right)
			}
		}
		levels, queue = append(levels, level), next
	}
	llrb.n_ranges++
	return levels
}

// normalize range bounds, zero length keys mean unbounded. skip is
// true when the range cannot hold any key.
func fixrangeargs(lk, hk []byte, incl string) ([]byte, []byte, string, bool) {
	if len(lk) == 0 {
		lk = nil
	}
	if len(hk) == 0 {
		hk = nil
	}
	if lk != nil && hk != nil {
		if cmp := api.Binarycmp(lk, hk, false); cmp == 1 {
			return lk, hk, incl, true
		} else if cmp == 0 && incl != "both" {
			return lk, hk, incl, true
		}
	}
	return lk, hk, incl, false
}

// low <= (keys) <= high
func (llrb *LLRB) rangehele(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if hk != nil && nd.gtkey(hk, true) {
		return llrb.rangehele(nd.left, lk, hk, callb)
	}
	if lk != nil && nd.ltkey(lk, true) {
		return llrb.rangehele(nd.right, lk, hk, callb)
	}
	if !llrb.rangehele(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rangehele(nd.right, lk, hk, callb)
}

// low <= (keys) < hk
func (llrb *LLRB) rangehelt(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if hk != nil && nd.gekey(hk, true) {
		return llrb.rangehelt(nd.left, lk, hk, callb)
	}
	if lk != nil && nd.ltkey(lk, true) {
		return llrb.rangehelt(nd.right, lk, hk, callb)
	}
	if !llrb.rangehelt(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rangehelt(nd.right, lk, hk, callb)
}

// low < (keys) <= hk
func (llrb *LLRB) rangehtle(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if hk != nil && nd.gtkey(hk, true) {
		return llrb.rangehtle(nd.left, lk, hk, callb)
	}
	if lk != nil && nd.lekey(lk, true) {
		return llrb.rangehtle(nd.right, lk, hk, callb)
	}
	if !llrb.rangehtle(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rangehtle(nd.right, lk, hk, callb)
}

// low < (keys) < hk
func (llrb *LLRB) rangehtlt(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if hk != nil && nd.gekey(hk, true) {
		return llrb.rangehtlt(nd.left, lk, hk, callb)
	}
	if lk != nil && nd.lekey(lk, true) {
		return llrb.rangehtlt(nd.right, lk, hk, callb)
	}
	if !llrb.rangehtlt(nd.left, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rangehtlt(nd.right, lk, hk, callb)
}

// high >= (keys) >= low
func (llrb *LLRB) rvrslehe(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if lk != nil && nd.ltkey(lk, true) {
		return llrb.rvrslehe(nd.right, lk, hk, callb)
	}
	if hk != nil && nd.gtkey(hk, true) {
		return llrb.rvrslehe(nd.left, lk, hk, callb)
	}
	if !llrb.rvrslehe(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rvrslehe(nd.left, lk, hk, callb)
}

// high >= (keys) > low
func (llrb *LLRB) rvrsleht(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if lk != nil && nd.lekey(lk, true) {
		return llrb.rvrsleht(nd.right, lk, hk, callb)
	}
	if hk != nil && nd.gtkey(hk, true) {
		return llrb.rvrsleht(nd.left, lk, hk, callb)
	}
	if !llrb.rvrsleht(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rvrsleht(nd.left, lk, hk, callb)
}

// high > (keys) >= low
func (llrb *LLRB) rvrslthe(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if lk != nil && nd.ltkey(lk, true) {
		return llrb.rvrslthe(nd.right, lk, hk, callb)
	}
	if hk != nil && nd.gekey(hk, true) {
		return llrb.rvrslthe(nd.left, lk, hk, callb)
	}
	if !llrb.rvrslthe(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rvrslthe(nd.left, lk, hk, callb)
}

// high > (keys) > low
func (llrb *LLRB) rvrsltht(nd *Llrbnode, lk, hk []byte, callb api.NodeCallb) bool {
	if nd == nil {
		return true
	}
	if lk != nil && nd.lekey(lk, true) {
		return llrb.rvrsltht(nd.right, lk, hk, callb)
	}
	if hk != nil && nd.gekey(hk, true) {
		return llrb.rvrsltht(nd.left, lk, hk, callb)
	}
	if !llrb.rvrsltht(nd.right, lk, hk, callb) {
		return false
	}
	if callb != nil && !callb(nd.getkey(), nd.getvalue()) {
		return false
	}
	return llrb.rvrsltht(nd.left, lk, hk, callb)
}

func (llrb *LLRB) walktree(nd *Llrbnode, callb func(*Llrbnode) bool) bool {
	if nd == nil {
		return true
	}
	if !llrb.walktree(nd.left, callb) {
		return false
	}
	if !callb(nd) {
		return false
	}
	return llrb.walktree(nd.right, callb)
}
