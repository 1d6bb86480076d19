package llrb

import "io"
import "fmt"
import "strings"

import "github.com/bnclabs/gosymtab/api"
import "github.com/bnclabs/gosymtab/lib"
import s "github.com/bnclabs/gosettings"

// LLRB manage a single instance of in-memory sorted index using
// left-leaning-red-black tree. Entries are stored in sort order of
// their key. LLRB instances are not safe for concurrent access,
// all methods of an instance shall be called from the same
// goroutine.
type LLRB struct {
	llrbstats
	h_upsertdepth *lib.HistogramInt64

	name string
	root *Llrbnode
	dead bool

	// settings
	minkeysize  int64
	maxkeysize  int64
	minvalsize  int64
	maxvalsize  int64
	keycapacity int64
	valcapacity int64
	allocator   string
	setts       s.Settings
	logprefix   string
}

// NewLLRB a new instance of in-memory sorted index.
func NewLLRB(name string, setts s.Settings) *LLRB {
	llrb := &LLRB{name: name}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.setts = setts

	// statistics
	llrb.h_upsertdepth = lib.NewhistorgramInt64(1, 256, 1)

	infof("%v started ...\n", llrb.logprefix)
	return llrb
}

func (llrb *LLRB) readsettings(setts s.Settings) *LLRB {
	llrb.minkeysize = setts.Int64("minkeysize")
	llrb.maxkeysize = setts.Int64("maxkeysize")
	llrb.minvalsize = setts.Int64("minvalsize")
	llrb.maxvalsize = setts.Int64("maxvalsize")
	llrb.keycapacity = setts.Int64("keycapacity")
	llrb.valcapacity = setts.Int64("valcapacity")
	llrb.allocator = setts.String("allocator")
	return llrb
}

func (llrb *LLRB) getroot() *Llrbnode {
	return llrb.root
}

func (llrb *LLRB) setroot(root *Llrbnode) {
	llrb.root = root
}

func (llrb *LLRB) assertnotdead(opname string) {
	if llrb.dead {
		fmsg := "%v(): using a destroyed index, call the programmer"
		panic(fmt.Errorf(fmsg, opname))
	}
}

//---- Exported Control methods

// ID is same as the name supplied while creating the LLRB instance.
func (llrb *LLRB) ID() string {
	return llrb.name
}

// Count return the number of items indexed.
func (llrb *LLRB) Count() int64 {
	return llrb.n_count
}

// Isempty return true if index has no entries.
func (llrb *LLRB) Isempty() bool {
	return llrb.Count() == 0
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (llrb *LLRB) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	llrb.getroot().dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// Clone llrb instance and return the clone. Clone walks the entire
// tree and copies every node, cost is proportional to the number of
// entries in the index.
func (llrb *LLRB) Clone(name string) *LLRB {
	llrb.assertnotdead("Clone")

	newllrb := NewLLRB(name, llrb.setts)
	newllrb.setroot(newllrb.clonetree(llrb.getroot()))
	newllrb.clonestats(&llrb.llrbstats)
	return newllrb
}

// Destroy releases all resources held by the tree. No other
// method call are allowed after Destroy.
func (llrb *LLRB) Destroy() {
	llrb.assertnotdead("Destroy")

	llrb.setroot(nil)
	llrb.setts, llrb.h_upsertdepth = nil, nil
	llrb.dead = true
	infof("%v destroyed\n", llrb.logprefix)
}

//---- Exported Write methods

// Set a key, value pair in the index, if key is already present,
// its value will be over-written. Make sure key is not nil. Return
// old value if oldvalue points to a valid buffer.
func (llrb *LLRB) Set(key, value, oldvalue []byte) ([]byte, error) {
	llrb.assertnotdead("Set")

	if len(key) == 0 {
		return oldvalue, api.ErrorNilKey
	} else if kln := int64(len(key)); kln < llrb.minkeysize {
		return oldvalue, api.ErrorKeySize
	} else if kln > llrb.maxkeysize {
		return oldvalue, api.ErrorKeySize
	} else if vln := int64(len(value)); vln < llrb.minvalsize {
		return oldvalue, api.ErrorValSize
	} else if vln > llrb.maxvalsize {
		return oldvalue, api.ErrorValSize
	}
	if (llrb.keymemory + int64(len(key))) > llrb.keycapacity {
		return oldvalue, api.ErrorOutofMemory
	} else if (llrb.valmemory + int64(len(value))) > llrb.valcapacity {
		return oldvalue, api.ErrorOutofMemory
	}

	root, _, oldnd := llrb.upsert(llrb.getroot(), 1 /*depth*/, key, value)
	root.setblack()
	llrb.setroot(root)
	llrb.upsertcounts(key, value, oldnd)

	if oldvalue != nil {
		var val []byte
		if oldnd != nil {
			val = oldnd.getvalue()
		}
		oldvalue = lib.Fixbuffer(oldvalue, int64(len(val)))
		copy(oldvalue, val)
	}
	llrb.freenode(oldnd)
	return oldvalue, nil
}

// returns root, newnd, oldnd
func (llrb *LLRB) upsert(
	nd *Llrbnode, depth int64,
	key, value []byte) (*Llrbnode, *Llrbnode, *Llrbnode) {

	var oldnd, newnd *Llrbnode

	if nd == nil {
		newnd := llrb.newnode(key, value)
		llrb.h_upsertdepth.Add(depth)
		return newnd, newnd, nil
	}

	nd = llrb.walkdownrot23(nd)

	if nd.gtkey(key, false) {
		nd.left, newnd, oldnd = llrb.upsert(nd.left, depth+1, key, value)
	} else if nd.ltkey(key, false) {
		nd.right, newnd, oldnd = llrb.upsert(nd.right, depth+1, key, value)
	} else {
		oldnd = llrb.clonenode(nd)
		nd.setvalue(value)
		newnd = nd
		llrb.h_upsertdepth.Add(depth)
	}

	nd = llrb.walkuprot23(nd)
	return nd, newnd, oldnd
}

// Delete key from index. If key is present its entry is removed and
// ok is true, deleted value is copied into oldvalue if oldvalue
// points to a valid buffer. If key is missing from the index the
// call is a no-op and ok is false.
func (llrb *LLRB) Delete(key, oldvalue []byte) ([]byte, bool, error) {
	llrb.assertnotdead("Delete")

	if len(key) == 0 {
		return oldvalue, false, api.ErrorNilKey
	}
	if _, ok := llrb.getkey(llrb.getroot(), key); ok == false {
		if oldvalue != nil {
			oldvalue = lib.Fixbuffer(oldvalue, 0)
		}
		return oldvalue, false, nil
	}

	root, deleted := llrb.delete(llrb.getroot(), key)
	if root != nil {
		root.setblack()
	}
	llrb.setroot(root)
	llrb.delcounts(deleted)

	if deleted == nil {
		panic("Delete(): fatal logic, call the programmer")
	}
	if oldvalue != nil {
		val := deleted.getvalue()
		oldvalue = lib.Fixbuffer(oldvalue, int64(len(val)))
		copy(oldvalue, val)
	}
	llrb.freenode(deleted)
	return oldvalue, true, nil
}

func (llrb *LLRB) delete(nd *Llrbnode, key []byte) (newnd, deleted *Llrbnode) {
	if nd == nil {
		return nil, nil
	}

	if nd.gtkey(key, false) {
		if nd.left == nil { // key not present. Nothing to delete
			return nd, nil
		}
		if !nd.left.isred() && !nd.left.left.isred() {
			nd = llrb.moveredleft(nd)
		}
		nd.left, deleted = llrb.delete(nd.left, key)

	} else {
		if nd.left.isred() {
			nd = llrb.rotateright(nd)
		}
		// If @key equals @h.Item and no right children at @h
		if !nd.ltkey(key, false) && nd.right == nil {
			return nil, nd
		}
		if nd.right != nil && !nd.right.isred() && !nd.right.left.isred() {
			nd = llrb.moveredright(nd)
		}
		// If @key equals @h.Item, and (from above) 'h.Right != nil'
		if !nd.ltkey(key, false) {
			var subdeleted *Llrbnode
			nd.right, subdeleted = llrb.deletemin(nd.right)
			if subdeleted == nil {
				panic("delete(): fatal logic, call the programmer")
			}
			subdeleted.left, subdeleted.right = nd.left, nd.right
			if nd.isblack() {
				subdeleted.setblack()
			} else {
				subdeleted.setred()
			}
			deleted, nd = nd, subdeleted
		} else { // Else, @key is bigger than @nd
			nd.right, deleted = llrb.delete(nd.right, key)
		}
	}
	return llrb.fixup(nd), deleted
}

// Deletemin delete the entry with lowest key from index. Deleted
// entry is copied into keybuf and valbuf.
func (llrb *LLRB) Deletemin(keybuf, valbuf []byte) ([]byte, []byte, error) {
	llrb.assertnotdead("Deletemin")

	root, deleted := llrb.deletemin(llrb.getroot())
	if deleted == nil {
		return keybuf, valbuf, api.ErrorUnderflow
	}
	if root != nil {
		root.setblack()
	}
	llrb.setroot(root)
	llrb.delcounts(deleted)

	key, val := deleted.getkey(), deleted.getvalue()
	keybuf = lib.Fixbuffer(keybuf, int64(len(key)))
	copy(keybuf, key)
	valbuf = lib.Fixbuffer(valbuf, int64(len(val)))
	copy(valbuf, val)
	llrb.freenode(deleted)
	return keybuf, valbuf, nil
}

// using 2-3 trees, returns root, deleted
func (llrb *LLRB) deletemin(nd *Llrbnode) (newnd, deleted *Llrbnode) {
	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !nd.left.isred() && !nd.left.left.isred() {
		nd = llrb.moveredleft(nd)
	}
	nd.left, deleted = llrb.deletemin(nd.left)
	return llrb.fixup(nd), deleted
}

// Deletemax delete the entry with highest key from index. Deleted
// entry is copied into keybuf and valbuf.
func (llrb *LLRB) Deletemax(keybuf, valbuf []byte) ([]byte, []byte, error) {
	llrb.assertnotdead("Deletemax")

	root, deleted := llrb.deletemax(llrb.getroot())
	if deleted == nil {
		return keybuf, valbuf, api.ErrorUnderflow
	}
	if root != nil {
		root.setblack()
	}
	llrb.setroot(root)
	llrb.delcounts(deleted)

	key, val := deleted.getkey(), deleted.getvalue()
	keybuf = lib.Fixbuffer(keybuf, int64(len(key)))
	copy(keybuf, key)
	valbuf = lib.Fixbuffer(valbuf, int64(len(val)))
	copy(valbuf, val)
	llrb.freenode(deleted)
	return keybuf, valbuf, nil
}

// using 2-3 trees, returns root, deleted
func (llrb *LLRB) deletemax(nd *Llrbnode) (newnd, deleted *Llrbnode) {
	if nd == nil {
		return nil, nil
	}
	if nd.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !nd.right.isred() && !nd.right.left.isred() {
		nd = llrb.moveredright(nd)
	}
	nd.right, deleted = llrb.deletemax(nd.right)
	return llrb.fixup(nd), deleted
}

//---- Exported Read methods

// Get value for key, if value argument points to a valid buffer it
// will be used to copy the entry's value. Also return whether key is
// present in the index.
func (llrb *LLRB) Get(key, value []byte) ([]byte, bool, error) {
	llrb.assertnotdead("Get")

	if len(key) == 0 {
		return value, false, api.ErrorNilKey
	}
	nd, ok := llrb.getkey(llrb.getroot(), key)
	if ok {
		if value != nil {
			val := nd.getvalue()
			value = lib.Fixbuffer(value, int64(len(val)))
			copy(value, val)
		}
	} else if value != nil {
		value = lib.Fixbuffer(value, 0)
	}
	llrb.n_lookups++
	return value, ok, nil
}

// Has return whether key is present in the index.
func (llrb *LLRB) Has(key []byte) (bool, error) {
	llrb.assertnotdead("Has")

	if len(key) == 0 {
		return false, api.ErrorNilKey
	}
	_, ok := llrb.getkey(llrb.getroot(), key)
	llrb.n_lookups++
	return ok, nil
}

func (llrb *LLRB) getkey(nd *Llrbnode, k []byte) (*Llrbnode, bool) {
	for nd != nil {
		if nd.gtkey(k, false) {
			nd = nd.left
		} else if nd.ltkey(k, false) {
			nd = nd.right
		} else {
			return nd, true
		}
	}
	return nil, false
}

// Min return the entry with lowest key in the index. Entry is copied
// into keybuf and valbuf.
func (llrb *LLRB) Min(keybuf, valbuf []byte) ([]byte, []byte, error) {
	llrb.assertnotdead("Min")

	nd := llrb.getmin(llrb.getroot())
	if nd == nil {
		return keybuf, valbuf, api.ErrorUnderflow
	}
	key, val := nd.getkey(), nd.getvalue()
	keybuf = lib.Fixbuffer(keybuf, int64(len(key)))
	copy(keybuf, key)
	valbuf = lib.Fixbuffer(valbuf, int64(len(val)))
	copy(valbuf, val)
	llrb.n_lookups++
	return keybuf, valbuf, nil
}

func (llrb *LLRB) getmin(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

// Max return the entry with highest key in the index. Entry is
// copied into keybuf and valbuf.
func (llrb *LLRB) Max(keybuf, valbuf []byte) ([]byte, []byte, error) {
	llrb.assertnotdead("Max")

	nd := llrb.getmax(llrb.getroot())
	if nd == nil {
		return keybuf, valbuf, api.ErrorUnderflow
	}
	key, val := nd.getkey(), nd.getvalue()
	keybuf = lib.Fixbuffer(keybuf, int64(len(key)))
	copy(keybuf, key)
	valbuf = lib.Fixbuffer(valbuf, int64(len(val)))
	copy(valbuf, val)
	llrb.n_lookups++
	return keybuf, valbuf, nil
}

func (llrb *LLRB) getmax(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd
}

// Floor return the highest key in the index lesser than or equal to
// key. Key does not have to be present. Floor key is copied into
// keybuf.
func (llrb *LLRB) Floor(key, keybuf []byte) ([]byte, error) {
	llrb.assertnotdead("Floor")

	if len(key) == 0 {
		return keybuf, api.ErrorNilKey
	} else if llrb.Isempty() {
		return keybuf, api.ErrorUnderflow
	}
	nd := llrb.floor(llrb.getroot(), key)
	if nd == nil {
		return keybuf, api.ErrorNoFloor
	}
	fkey := nd.getkey()
	keybuf = lib.Fixbuffer(keybuf, int64(len(fkey)))
	copy(keybuf, fkey)
	llrb.n_lookups++
	return keybuf, nil
}

func (llrb *LLRB) floor(nd *Llrbnode, key []byte) *Llrbnode {
	if nd == nil {
		return nil
	}
	if nd.gtkey(key, false) {
		return llrb.floor(nd.left, key)
	} else if nd.ltkey(key, false) {
		if better := llrb.floor(nd.right, key); better != nil {
			return better
		}
		return nd
	}
	return nd
}

// Ceil return the lowest key in the index greater than or equal to
// key. Key does not have to be present. Ceil key is copied into
// keybuf.
func (llrb *LLRB) Ceil(key, keybuf []byte) ([]byte, error) {
	llrb.assertnotdead("Ceil")

	if len(key) == 0 {
		return keybuf, api.ErrorNilKey
	} else if llrb.Isempty() {
		return keybuf, api.ErrorUnderflow
	}
	nd := llrb.ceil(llrb.getroot(), key)
	if nd == nil {
		return keybuf, api.ErrorNoCeil
	}
	ckey := nd.getkey()
	keybuf = lib.Fixbuffer(keybuf, int64(len(ckey)))
	copy(keybuf, ckey)
	llrb.n_lookups++
	return keybuf, nil
}

func (llrb *LLRB) ceil(nd *Llrbnode, key []byte) *Llrbnode {
	if nd == nil {
		return nil
	}
	if nd.ltkey(key, false) {
		return llrb.ceil(nd.right, key)
	} else if nd.gtkey(key, false) {
		if better := llrb.ceil(nd.left, key); better != nil {
			return better
		}
		return nd
	}
	return nd
}

// Rank return the number of keys in the index strictly lesser than
// key. Key does not have to be present in the index.
func (llrb *LLRB) Rank(key []byte) (int64, error) {
	llrb.assertnotdead("Rank")

	if len(key) == 0 {
		return 0, api.ErrorNilKey
	}
	rank := llrb.rankof(llrb.getroot(), key)
	llrb.n_lookups++
	return rank, nil
}

func (llrb *LLRB) rankof(nd *Llrbnode, key []byte) (rank int64) {
	for nd != nil {
		if nd.gtkey(key, false) {
			nd = nd.left
		} else if nd.ltkey(key, false) {
			rank += 1 + nd.left.sizeof()
			nd = nd.right
		} else {
			return rank + nd.left.sizeof()
		}
	}
	return rank
}

// Select return the key with exactly rank number of keys lesser than
// it, rank counts from zero. Selected key is copied into keybuf.
func (llrb *LLRB) Select(rank int64, keybuf []byte) ([]byte, error) {
	llrb.assertnotdead("Select")

	if llrb.Isempty() {
		return keybuf, api.ErrorUnderflow
	} else if rank < 0 || rank >= llrb.Count() {
		return keybuf, api.ErrorOutofRange
	}
	nd := llrb.selectat(llrb.getroot(), rank)
	if nd == nil {
		panic("Select(): fatal logic, call the programmer")
	}
	key := nd.getkey()
	keybuf = lib.Fixbuffer(keybuf, int64(len(key)))
	copy(keybuf, key)
	llrb.n_lookups++
	return keybuf, nil
}

func (llrb *LLRB) selectat(nd *Llrbnode, rank int64) *Llrbnode {
	for nd != nil {
		leftsize := nd.left.sizeof()
		if rank < leftsize {
			nd = nd.left
		} else if rank > leftsize {
			rank -= leftsize + 1
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

//---- local functions

func (llrb *LLRB) newnode(k, v []byte) *Llrbnode {
	nd := newnode(k, v)
	llrb.n_nodes++
	return nd
}

func (llrb *LLRB) freenode(nd *Llrbnode) {
	if nd != nil {
		nd.left, nd.right = nil, nil
		llrb.n_frees++
	}
}

func (llrb *LLRB) clonenode(nd *Llrbnode) (newnd *Llrbnode) {
	newnd = newnode(nd.getkey(), nd.getvalue())
	newnd.left, newnd.right = nd.left, nd.right
	newnd.size, newnd.black = nd.size, nd.black
	llrb.n_clones++
	return
}

func (llrb *LLRB) clonetree(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}

	newnd := llrb.clonenode(nd)
	llrb.n_clones--

	newnd.left = llrb.clonetree(nd.left)
	newnd.right = llrb.clonetree(nd.right)
	return newnd
}

func (llrb *LLRB) clonestats(stats *llrbstats) {
	llrb.llrbstats = *stats
}

func (llrb *LLRB) upsertcounts(key, value []byte, oldnd *Llrbnode) {
	llrb.keymemory += int64(len(key))
	llrb.valmemory += int64(len(value))
	if oldnd == nil {
		llrb.n_count++
		llrb.n_inserts++
		return
	}
	llrb.n_updates++
	llrb.keymemory -= int64(len(oldnd.getkey()))
	llrb.valmemory -= int64(len(oldnd.getvalue()))
}

func (llrb *LLRB) delcounts(nd *Llrbnode) {
	if nd != nil {
		llrb.keymemory -= int64(len(nd.getkey()))
		llrb.valmemory -= int64(len(nd.getvalue()))
		llrb.n_count--
		llrb.n_deletes++
	}
}

// rotation routines for 2-3 algorithm

func (llrb *LLRB) walkdownrot23(nd *Llrbnode) *Llrbnode {
	return nd
}

func (llrb *LLRB) walkuprot23(nd *Llrbnode) *Llrbnode {
	if nd.right.isred() && !nd.left.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	nd.fixsize()
	return nd
}

func (llrb *LLRB) rotateleft(nd *Llrbnode) *Llrbnode {
	y := nd.right
	if y.isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	if nd.isblack() {
		y.setblack()
	} else {
		y.setred()
	}
	nd.setred()
	y.size = nd.size
	nd.fixsize()
	return y
}

func (llrb *LLRB) rotateright(nd *Llrbnode) *Llrbnode {
	x := nd.left
	if x.isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	if nd.isblack() {
		x.setblack()
	} else {
		x.setred()
	}
	nd.setred()
	x.size = nd.size
	nd.fixsize()
	return x
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB) flip(nd *Llrbnode) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB) moveredleft(nd *Llrbnode) *Llrbnode {
	llrb.flip(nd)
	if nd.right.left.isred() {
		nd.right = llrb.rotateright(nd.right)
		nd = llrb.rotateleft(nd)
		llrb.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB) moveredright(nd *Llrbnode) *Llrbnode {
	llrb.flip(nd)
	if nd.left.left.isred() {
		nd = llrb.rotateright(nd)
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB) fixup(nd *Llrbnode) *Llrbnode {
	if nd.right.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	nd.fixsize()
	return nd
}
