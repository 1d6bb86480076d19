// Package dict implement a dictionary of key,value pairs based on
// golang map. Primarily meant as reference for validating more useful
// index implementations.
package dict

import "fmt"
import "sort"
import "bytes"
import "hash/crc64"

import "github.com/bnclabs/gosymtab/api"
import "github.com/bnclabs/gosymtab/lib"

var crcisotab = crc64.MakeTable(crc64.ISO)

// Dict is a reference index, for validation purpose.
type Dict struct {
	id       string
	dict     map[uint64]*dictnode
	sortkeys []string
	hashks   []uint64
	dead     bool
}

// NewDict create a new golang map for indexing key,value entries.
func NewDict(id string) *Dict {
	return &Dict{
		id:       id,
		dict:     make(map[uint64]*dictnode),
		sortkeys: make([]string, 0, 1024),
	}
}

//---- api.Index{} interface.

// ID implement api.Index{} interface.
func (d *Dict) ID() string {
	return d.id
}

// Count implement api.Index{} interface.
func (d *Dict) Count() int64 {
	return int64(len(d.dict))
}

// Isempty implement api.Index{} interface.
func (d *Dict) Isempty() bool {
	return len(d.dict) == 0
}

// Set implement api.Index{} interface.
func (d *Dict) Set(key, value, oldvalue []byte) ([]byte, error) {
	if len(key) == 0 {
		return oldvalue, api.ErrorNilKey
	}
	hashv := crc64.Checksum(key, crcisotab)
	oldnd, ok := d.dict[hashv]
	if oldvalue != nil {
		var val []byte
		if ok {
			val = oldnd.value
		}
		oldvalue = lib.Fixbuffer(oldvalue, int64(len(val)))
		copy(oldvalue, val)
	}
	d.dict[hashv] = newdictnode(key, value)
	return oldvalue, nil
}

// Get implement api.Index{} interface.
func (d *Dict) Get(key, value []byte) ([]byte, bool, error) {
	if len(key) == 0 {
		return value, false, api.ErrorNilKey
	}
	nd, ok := d.dict[crc64.Checksum(key, crcisotab)]
	if ok {
		if value != nil {
			value = lib.Fixbuffer(value, int64(len(nd.value)))
			copy(value, nd.value)
		}
	} else if value != nil {
		value = lib.Fixbuffer(value, 0)
	}
	return value, ok, nil
}

// Has implement api.Index{} interface.
func (d *Dict) Has(key []byte) (bool, error) {
	if len(key) == 0 {
		return false, api.ErrorNilKey
	}
	_, ok := d.dict[crc64.Checksum(key, crcisotab)]
	return ok, nil
}

// Delete implement api.Index{} interface.
func (d *Dict) Delete(key, oldvalue []byte) ([]byte, bool, error) {
	if len(key) == 0 {
		return oldvalue, false, api.ErrorNilKey
	}
	hashv := crc64.Checksum(key, crcisotab)
	deleted, ok := d.dict[hashv]
	if ok == false {
		if oldvalue != nil {
			oldvalue = lib.Fixbuffer(oldvalue, 0)
		}
		return oldvalue, false, nil
	}
	if oldvalue != nil {
		oldvalue = lib.Fixbuffer(oldvalue, int64(len(deleted.value)))
		copy(oldvalue, deleted.value)
	}
	delete(d.dict, hashv)
	return oldvalue, true, nil
}

// Min implement api.Index{} interface.
func (d *Dict) Min(keybuf, valbuf []byte) ([]byte, []byte, error) {
	if d.Isempty() {
		return keybuf, valbuf, api.ErrorUnderflow
	}
	hashks := d.sorted()
	nd := d.dict[hashks[0]]
	keybuf = lib.Fixbuffer(keybuf, int64(len(nd.key)))
	copy(keybuf, nd.key)
	valbuf = lib.Fixbuffer(valbuf, int64(len(nd.value)))
	copy(valbuf, nd.value)
	return keybuf, valbuf, nil
}

// Max implement api.Index{} interface.
func (d *Dict) Max(keybuf, valbuf []byte) ([]byte, []byte, error) {
	if d.Isempty() {
		return keybuf, valbuf, api.ErrorUnderflow
	}
	hashks := d.sorted()
	nd := d.dict[hashks[len(hashks)-1]]
	keybuf = lib.Fixbuffer(keybuf, int64(len(nd.key)))
	copy(keybuf, nd.key)
	valbuf = lib.Fixbuffer(valbuf, int64(len(nd.value)))
	copy(valbuf, nd.value)
	return keybuf, valbuf, nil
}

// Deletemin implement api.Index{} interface.
func (d *Dict) Deletemin(keybuf, valbuf []byte) ([]byte, []byte, error) {
	keybuf, valbuf, err := d.Min(keybuf, valbuf)
	if err != nil {
		return keybuf, valbuf, err
	}
	d.Delete(keybuf, nil)
	return keybuf, valbuf, nil
}

// Deletemax implement api.Index{} interface.
func (d *Dict) Deletemax(keybuf, valbuf []byte) ([]byte, []byte, error) {
	keybuf, valbuf, err := d.Max(keybuf, valbuf)
	if err != nil {
		return keybuf, valbuf, err
	}
	d.Delete(keybuf, nil)
	return keybuf, valbuf, nil
}

// Floor implement api.Index{} interface.
func (d *Dict) Floor(key, keybuf []byte) ([]byte, error) {
	if len(key) == 0 {
		return keybuf, api.ErrorNilKey
	} else if d.Isempty() {
		return keybuf, api.ErrorUnderflow
	}
	d.sorted()
	// index of the first key greater than the argument.
	idx := sort.Search(len(d.sortkeys), func(i int) bool {
		return d.sortkeys[i] > string(key)
	})
	if idx == 0 {
		return keybuf, api.ErrorNoFloor
	}
	fkey := d.sortkeys[idx-1]
	keybuf = lib.Fixbuffer(keybuf, int64(len(fkey)))
	copy(keybuf, fkey)
	return keybuf, nil
}

// Ceil implement api.Index{} interface.
func (d *Dict) Ceil(key, keybuf []byte) ([]byte, error) {
	if len(key) == 0 {
		return keybuf, api.ErrorNilKey
	} else if d.Isempty() {
		return keybuf, api.ErrorUnderflow
	}
	d.sorted()
	idx := sort.SearchStrings(d.sortkeys, string(key))
	if idx == len(d.sortkeys) {
		return keybuf, api.ErrorNoCeil
	}
	ckey := d.sortkeys[idx]
	keybuf = lib.Fixbuffer(keybuf, int64(len(ckey)))
	copy(keybuf, ckey)
	return keybuf, nil
}

// Rank implement api.Index{} interface.
func (d *Dict) Rank(key []byte) (int64, error) {
	if len(key) == 0 {
		return 0, api.ErrorNilKey
	}
	d.sorted()
	idx := sort.SearchStrings(d.sortkeys, string(key))
	return int64(idx), nil
}

// Select implement api.Index{} interface.
func (d *Dict) Select(rank int64, keybuf []byte) ([]byte, error) {
	if d.Isempty() {
		return keybuf, api.ErrorUnderflow
	} else if rank < 0 || rank >= d.Count() {
		return keybuf, api.ErrorOutofRange
	}
	d.sorted()
	key := d.sortkeys[rank]
	keybuf = lib.Fixbuffer(keybuf, int64(len(key)))
	copy(keybuf, key)
	return keybuf, nil
}

// Range implement api.Index{} interface.
func (d *Dict) Range(lk, hk []byte, incl string, reverse bool, callb api.NodeCallb) {
	lk, hk, incl, skip := fixrangeargs(lk, hk, incl)
	if skip {
		return
	}
	d.sorted()
	if reverse {
		d.rangebackward(lk, hk, incl, callb)
		return
	}
	d.rangeforward(lk, hk, incl, callb)
}

func (d *Dict) rangeforward(lk, hk []byte, incl string, callb api.NodeCallb) {
	hashks := d.hashks
	if len(hashks) == 0 {
		return
	}

	start, cmp := 0, 1
	if lk != nil {
		if incl == "low" || incl == "both" {
			cmp = 0
		}
		for start = 0; start < len(hashks); start++ {
			nd := d.dict[hashks[start]]
			if api.Binarycmp(nd.key, lk, cmp == 1) >= cmp {
				break
			}
		}
	}

	cmp = 0
	if incl == "high" || incl == "both" {
		cmp = 1
	}
	for ; start < len(hashks); start++ {
		nd := d.dict[hashks[start]]
		if hk == nil || (api.Binarycmp(nd.key, hk, cmp == 1) < cmp) {
			if callb != nil && callb(nd.key, nd.value) == false {
				break
			}
			continue
		}
		break
	}
}

func (d *Dict) rangebackward(lk, hk []byte, incl string, callb api.NodeCallb) {
	hashks := d.hashks
	if len(hashks) == 0 {
		return
	}

	start, cmp := len(hashks)-1, -1
	if hk != nil {
		if incl == "high" || incl == "both" {
			cmp = 0
		}
		for start = len(hashks) - 1; start >= 0; start-- {
			nd := d.dict[hashks[start]]
			if api.Binarycmp(nd.key, hk, cmp == 0) <= cmp {
				break
			}
		}
	}

	cmp = 0
	if incl == "low" || incl == "both" {
		cmp = -1
	}
	for ; start >= 0; start-- {
		nd := d.dict[hashks[start]]
		if lk == nil || (api.Binarycmp(nd.key, lk, cmp == 0) > cmp) {
			if callb != nil && callb(nd.key, nd.value) == false {
				break
			}
			continue
		}
		break
	}
}

// Validate implement api.Index{} interface. Sorted view shall be in
// strict ascending order of keys.
func (d *Dict) Validate() {
	hashks := d.sorted()
	for i := 1; i < len(hashks); i++ {
		k0, k1 := d.dict[hashks[i-1]].key, d.dict[hashks[i]].key
		if bytes.Compare(k0, k1) != -1 {
			panic(fmt.Errorf("validate(): %s not lesser than %s", k0, k1))
		}
	}
}

// Destroy implement api.Index{} interface.
func (d *Dict) Destroy() {
	d.dict, d.sortkeys, d.hashks = nil, nil, nil
	d.dead = true
}

func (d *Dict) sorted() []uint64 {
	d.sortkeys, d.hashks = d.sortkeys[:0], d.hashks[:0]
	for _, nd := range d.dict {
		d.sortkeys = append(d.sortkeys, string(nd.key))
	}
	if len(d.sortkeys) > 0 {
		sort.Strings(d.sortkeys)
	}
	for _, key := range d.sortkeys {
		hashk := crc64.Checksum(lib.Str2bytes(key), crcisotab)
		d.hashks = append(d.hashks, hashk)
	}
	return d.hashks
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
