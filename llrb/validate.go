package llrb

import "fmt"
import "math"
import "bytes"
import "errors"

import "github.com/bnclabs/gosymtab/lib"

// height of the tree cannot exceed a certain limit. For example if the tree
// holds 1-million entries, a fully balanced tree shall have a height of 20
// levels. maxheight provide some breathing space on top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate data structure. This is a costly operation, walks through
// the entire tree and panics if any of the following expectations
// are not met.
//
// * Tree shall be in sort order of its keys.
// * Subtree size cached at each node shall match its population.
// * Rank and select operations shall agree with each other.
// * No right leaning red link, and no node with two red links, as
//   in a 2-3 tree.
// * Number of black-links from root to every leaf shall be equal.
// * Height of the tree shall not exceed a factor of log2(entries).
// * Operational statistics shall tally.
func (llrb *LLRB) Validate() {
	llrb.assertnotdead("Validate")

	root := llrb.getroot()
	if llrb.isbst(root, nil, nil) == false {
		panic("Validate(): not in sort order, call the programmer")
	} else if llrb.iscount(root) == false {
		panic("Validate(): subtree sizes don't tally, call the programmer")
	} else if llrb.isrank(root) == false {
		panic("Validate(): rank and select mismatch, call the programmer")
	} else if llrb.is23(root) == false {
		panic("Validate(): not a 2-3 tree, call the programmer")
	} else if llrb.isbalanced(root) == false {
		panic("Validate(): not black balanced, call the programmer")
	}

	h := lib.NewhistorgramInt64(1, 256, 1)
	blacks, depth, fromred := int64(0), int64(1), root.isred()
	_, km, vm := llrb.validatetree(root, fromred, blacks, depth, h)
	if km != llrb.keymemory {
		fmsg := "validate(): keymemory:%v != actual:%v"
		panic(fmt.Errorf(fmsg, llrb.keymemory, km))
	} else if vm != llrb.valmemory {
		fmsg := "validate(): valmemory:%v != actual:%v"
		panic(fmt.Errorf(fmsg, llrb.valmemory, vm))
	}
	if samples := h.Samples(); samples != llrb.Count() {
		fmsg := "expected h_height.samples:%v to be same as Count():%v"
		panic(fmt.Errorf(fmsg, samples, llrb.Count()))
	}
	// `h_height`.max should not exceed certain limit, maxheight
	// gives some breathing room.
	if h.Samples() > 8 {
		if float64(h.Max()) > maxheight(llrb.Count()) {
			fmsg := "validate(): max height %v exceeds log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), llrb.Count()))
		}
	}
	llrb.validatestats(llrb.stats())
}

// keys in the subtree rooted at nd shall fall within {lo, hi},
// nil bound means unbounded.
func (llrb *LLRB) isbst(nd *Llrbnode, lo, hi []byte) bool {
	if nd == nil {
		return true
	}
	if lo != nil && nd.gtkey(lo, false) == false {
		return false
	}
	if hi != nil && nd.ltkey(hi, false) == false {
		return false
	}
	key := nd.getkey()
	return llrb.isbst(nd.left, lo, key) && llrb.isbst(nd.right, key, hi)
}

// subtree size cached at each node shall match its population.
func (llrb *LLRB) iscount(nd *Llrbnode) bool {
	if nd == nil {
		return true
	}
	if nd.size != (1 + nd.left.sizeof() + nd.right.sizeof()) {
		return false
	}
	return llrb.iscount(nd.left) && llrb.iscount(nd.right)
}

// for every rank r, rank(select(r)) == r and for every key,
// select(rank(key)) == key.
func (llrb *LLRB) isrank(root *Llrbnode) bool {
	for r := int64(0); r < root.sizeof(); r++ {
		nd := llrb.selectat(root, r)
		if nd == nil || llrb.rankof(root, nd.getkey()) != r {
			return false
		}
	}
	ok := true
	llrb.walktree(root, func(nd *Llrbnode) bool {
		key := nd.getkey()
		snd := llrb.selectat(root, llrb.rankof(root, key))
		if snd == nil || bytes.Compare(snd.getkey(), key) != 0 {
			ok = false
		}
		return ok
	})
	return ok
}

// no right leaning red link, and no node with two red links
// connected to it.
func (llrb *LLRB) is23(nd *Llrbnode) bool {
	if nd == nil {
		return true
	}
	if nd.right.isred() {
		return false
	}
	if nd != llrb.getroot() && nd.isred() && nd.left.isred() {
		return false
	}
	return llrb.is23(nd.left) && llrb.is23(nd.right)
}

// all paths from root to leaf shall have the same number of
// black links.
func (llrb *LLRB) isbalanced(root *Llrbnode) bool {
	blacks := int64(0) // number of black links from root to min
	for nd := root; nd != nil; nd = nd.left {
		if nd.isred() == false {
			blacks++
		}
	}
	return llrb.blacksok(root, blacks)
}

func (llrb *LLRB) blacksok(nd *Llrbnode, blacks int64) bool {
	if nd == nil {
		return blacks == 0
	}
	if nd.isred() == false {
		blacks--
	}
	return llrb.blacksok(nd.left, blacks) && llrb.blacksok(nd.right, blacks)
}

/*
following expectations on the tree should be met.
* If current node is red, parent node should be black.
* At each level, number of black-links on the left subtree should be
  equal to number of black-links on the right subtree.
* Make sure that the tree is in sort order.
* Return number of blacks, cummulative memory consumed by keys,
  cummulative memory consumed by values.
*/
func (llrb *LLRB) validatetree(
	nd *Llrbnode, fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, keymem, valmem int64) {

	if nd == nil {
		return blacks, 0, 0
	}

	h.Add(depth)
	if fromred && nd.isred() {
		panic(redafterred)
	}
	if !nd.isred() {
		blacks++
	}

	lblacks, lkm, lvm := llrb.validatetree(
		nd.left, nd.isred(), blacks, depth+1, h)
	rblacks, rkm, rvm := llrb.validatetree(
		nd.right, nd.isred(), blacks, depth+1, h)

	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}

	key := nd.getkey()
	if nd.left != nil && bytes.Compare(nd.left.getkey(), key) >= 0 {
		fmsg := "validate(): sort order, left node %v is >= node %v"
		panic(fmt.Errorf(fmsg, nd.left.getkey(), key))
	}
	if nd.right != nil && bytes.Compare(nd.right.getkey(), key) <= 0 {
		fmsg := "validate(): sort order, node %v is >= right node %v"
		panic(fmt.Errorf(fmsg, key, nd.right.getkey()))
	}

	keymem = lkm + rkm + int64(len(nd.getkey()))
	valmem = lvm + rvm + int64(len(nd.getvalue()))
	return lblacks, keymem, valmem
}

func (llrb *LLRB) heightStats(nd *Llrbnode, depth int64, h *lib.HistogramInt64) {
	if nd == nil {
		return
	}
	h.Add(depth)
	llrb.heightStats(nd.left, depth+1, h)
	llrb.heightStats(nd.right, depth+1, h)
}

func (llrb *LLRB) countblacks(nd *Llrbnode, count int) int {
	if nd != nil {
		if nd.isred() == false {
			count++
		}
		x := llrb.countblacks(nd.left, count)
		y := llrb.countblacks(nd.right, count)
		if x != y {
			fmsg := "countblacks(): no. of blacks {left,right} : {%v,%v}"
			panic(fmt.Errorf(fmsg, x, y))
		}
		return x
	}
	return count
}
