package llrb

import "io"
import "fmt"
import "strings"

import "github.com/bnclabs/gosymtab/api"
import "github.com/bnclabs/gosymtab/lib"

// Llrbnode defines a node in LLRB tree. Fresh nodes come up as red
// links with a subtree population of one.
type Llrbnode struct {
	left  *Llrbnode
	right *Llrbnode
	size  int64 // population of the subtree rooted here, including this node
	black bool
	key   []byte
	value []byte
}

func newnode(key, value []byte) *Llrbnode {
	nd := &Llrbnode{size: 1}
	nd.key = lib.Fixbuffer(nd.key, int64(len(key)))
	copy(nd.key, key)
	nd.setvalue(value)
	return nd
}

func (nd *Llrbnode) setvalue(value []byte) *Llrbnode {
	nd.value = lib.Fixbuffer(nd.value, int64(len(value)))
	copy(nd.value, value)
	return nd
}

func (nd *Llrbnode) getkey() []byte {
	return nd.key
}

func (nd *Llrbnode) getvalue() []byte {
	return nd.value
}

//---- size field

func (nd *Llrbnode) sizeof() int64 {
	if nd == nil {
		return 0
	}
	return nd.size
}

func (nd *Llrbnode) fixsize() *Llrbnode {
	nd.size = 1 + nd.left.sizeof() + nd.right.sizeof()
	return nd
}

//---- color flag

func (nd *Llrbnode) isblack() bool {
	if nd == nil {
		return true
	}
	return nd.black
}

func (nd *Llrbnode) isred() bool {
	if nd == nil {
		return false
	}
	return !nd.black
}

func (nd *Llrbnode) setblack() *Llrbnode {
	nd.black = true
	return nd
}

func (nd *Llrbnode) setred() *Llrbnode {
	nd.black = false
	return nd
}

func (nd *Llrbnode) togglelink() *Llrbnode {
	nd.black = !nd.black
	return nd
}

//---- maintanence methods.

func (nd *Llrbnode) repr() string {
	return fmt.Sprintf("%q %v %v %v", nd.key, nd.size, nd.isblack(), nd.value)
}

func (nd *Llrbnode) pprint(prefix string) {
	if nd == nil {
		fmt.Printf("%v\n", nd)
		return
	}
	fmt.Printf("%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Printf("%vleft: ", prefix)
	nd.left.pprint(prefix)
	fmt.Printf("%vright: ", prefix)
	nd.right.pprint(prefix)
}

func (nd *Llrbnode) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *Llrbnode) string {
		if childnd.isred() {
			return "red"
		}
		return "black"
	}

	key := nd.key
	lines := []string{
		fmt.Sprintf("  %s [label=\"{%s|%d}\"];\n", key, key, nd.size),
	}
	fmsg := "  %s -> %s [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, nd.left.key, whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, nd.right.key, whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}

//---- indexer api

func (nd *Llrbnode) ltkey(other []byte, partial bool) bool {
	return api.Binarycmp(nd.key, other, partial) == -1
}

func (nd *Llrbnode) lekey(other []byte, partial bool) bool {
	cmp := api.Binarycmp(nd.key, other, partial)
	return cmp == -1 || cmp == 0
}

func (nd *Llrbnode) gtkey(other []byte, partial bool) bool {
	return api.Binarycmp(nd.key, other, partial) == 1
}

func (nd *Llrbnode) gekey(other []byte, partial bool) bool {
	cmp := api.Binarycmp(nd.key, other, partial)
	return cmp == 0 || cmp == 1
}
