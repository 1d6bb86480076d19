// Package api define types and interfaces common to ordered symbol
// table implementations in this module.
package api

// NodeCallb callback from Range API. Entries are supplied in iteration
// order, one callback for each entry. Returning false stops the range.
// Key and value slices are read-only and valid until the callback
// returns.
type NodeCallb func(key, value []byte) bool

// Index interface over ordered symbol tables, implemented by llrb.LLRB
// and dict.Dict. Tools and differential tests drive implementations
// through this interface.
type Index interface {
	// ID return index name supplied during construction.
	ID() string

	// Count return number of entries indexed.
	Count() int64

	// Isempty return true iff index has no entries.
	Isempty() bool

	// Set a key, value pair in the index, if key is already present
	// update its value. Old value, if any, is copied into oldvalue
	// and returned.
	Set(key, value, oldvalue []byte) (ov []byte, err error)

	// Get value for key, if present. Value is copied into value
	// buffer and returned.
	Get(key, value []byte) (v []byte, ok bool, err error)

	// Has return whether key is present in the index.
	Has(key []byte) (ok bool, err error)

	// Delete key from index. Deleting a missing key is a no-op and
	// returns ok as false. Deleted entry's value is copied into
	// oldvalue and returned.
	Delete(key, oldvalue []byte) (ov []byte, ok bool, err error)

	// Min return the entry with the smallest key.
	Min(keybuf, valbuf []byte) (key, value []byte, err error)

	// Max return the entry with the largest key.
	Max(keybuf, valbuf []byte) (key, value []byte, err error)

	// Deletemin remove the entry with the smallest key and return it.
	Deletemin(keybuf, valbuf []byte) (key, value []byte, err error)

	// Deletemax remove the entry with the largest key and return it.
	Deletemax(keybuf, valbuf []byte) (key, value []byte, err error)

	// Floor return the largest indexed key less than or equal to key.
	Floor(key, keybuf []byte) (fkey []byte, err error)

	// Ceil return the smallest indexed key greater than or equal to
	// key.
	Ceil(key, keybuf []byte) (ckey []byte, err error)

	// Rank return the number of indexed keys strictly less than key,
	// whether or not key itself is present.
	Rank(key []byte) (rank int64, err error)

	// Select return the key with exactly rank smaller keys, for rank
	// in [0, Count()).
	Select(rank int64, keybuf []byte) (key []byte, err error)

	// Range iterate over entries between lkey and hkey, in ascending
	// order, or descending when reverse. incl can be "both", "low",
	// "high" or "none". Nil bounds mean open ended.
	Range(lkey, hkey []byte, incl string, reverse bool, callb NodeCallb)

	// Validate check index invariants, panic on violation.
	Validate()

	// Destroy release the index, it shall not be used afterwards.
	Destroy()
}
