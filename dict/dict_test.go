package dict

import "fmt"
import "bytes"
import "testing"
import "math/rand"

import "github.com/bnclabs/gosymtab/api"
import "github.com/bnclabs/gosymtab/llrb"

func TestDict(t *testing.T) {
	d := NewDict("dict")
	defer d.Destroy()

	if d.ID() != "dict" {
		t.Errorf("unexpected %v", d.ID())
	}
	if d.Count() != 0 {
		t.Errorf("unexpected %v", d.Count())
	} else if d.Isempty() == false {
		t.Errorf("expected true")
	}

	// load data
	keys := []string{"L", "P", "M", "X", "H", "C", "R", "A", "E", "S"}
	vals := []string{"11", "10", "9", "7", "5", "4", "3", "8", "12", "0"}
	oldvalue := make([]byte, 1024)
	for i, key := range keys {
		var err error
		k, v := []byte(key), []byte(vals[i])
		if oldvalue, err = d.Set(k, v, oldvalue); err != nil {
			t.Error(err)
		} else if len(oldvalue) > 0 {
			t.Errorf("unexpected %s", oldvalue)
		}
	}
	d.Validate()

	value := make([]byte, 1024)
	for i, key := range keys {
		if value, ok, _ := d.Get([]byte(key), value); !ok {
			t.Errorf("expected key %s", key)
		} else if string(value) != vals[i] {
			t.Errorf("expected %s, got %s, key %s", vals[i], value, key)
		}
	}
	if ok, _ := d.Has([]byte("E")); ok == false {
		t.Errorf("expected true")
	}
	if _, ok, _ := d.Get([]byte("missing"), value); ok == true {
		t.Errorf("unexpected true")
	}

	// update
	var err error
	if oldvalue, err = d.Set([]byte("A"), []byte("88"), oldvalue); err != nil {
		t.Error(err)
	} else if string(oldvalue) != "8" {
		t.Errorf("unexpected %s", oldvalue)
	}
	if d.Count() != int64(len(keys)) {
		t.Errorf("unexpected %v", d.Count())
	}

	// delete
	var ok bool
	if oldvalue, ok, err = d.Delete([]byte("E"), oldvalue); err != nil {
		t.Error(err)
	} else if ok == false {
		t.Errorf("expected true")
	} else if string(oldvalue) != "12" {
		t.Errorf("unexpected %s", oldvalue)
	}
	if oldvalue, ok, err = d.Delete([]byte("missing"), oldvalue); err != nil {
		t.Error(err)
	} else if ok == true {
		t.Errorf("unexpected true")
	} else if len(oldvalue) > 0 {
		t.Errorf("unexpected %s", oldvalue)
	}
	d.Validate()

	// order statistics
	keybuf, valbuf := make([]byte, 1024), make([]byte, 1024)
	if keybuf, valbuf, err = d.Min(keybuf, valbuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "A" || string(valbuf) != "88" {
		t.Errorf("unexpected %s,%s", keybuf, valbuf)
	}
	if keybuf, valbuf, err = d.Max(keybuf, valbuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "X" || string(valbuf) != "7" {
		t.Errorf("unexpected %s,%s", keybuf, valbuf)
	}
	if rank, _ := d.Rank([]byte("M")); rank != 4 {
		t.Errorf("unexpected %v", rank)
	}
	if rank, _ := d.Rank([]byte("D")); rank != 2 {
		t.Errorf("unexpected %v", rank)
	}
	if keybuf, err = d.Select(4, keybuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "M" {
		t.Errorf("unexpected %s", keybuf)
	}
	if _, err = d.Select(d.Count(), keybuf); err != api.ErrorOutofRange {
		t.Errorf("unexpected %v", err)
	}
	if keybuf, err = d.Floor([]byte("D"), keybuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "C" {
		t.Errorf("unexpected %s", keybuf)
	}
	if keybuf, err = d.Ceil([]byte("D"), keybuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "H" {
		t.Errorf("unexpected %s", keybuf)
	}
	if _, err = d.Floor([]byte("@"), keybuf); err != api.ErrorNoFloor {
		t.Errorf("unexpected %v", err)
	}
	if _, err = d.Ceil([]byte("Z"), keybuf); err != api.ErrorNoCeil {
		t.Errorf("unexpected %v", err)
	}

	// delete minimum and maximum
	if keybuf, valbuf, err = d.Deletemin(keybuf, valbuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "A" {
		t.Errorf("unexpected %s", keybuf)
	}
	if keybuf, valbuf, err = d.Deletemax(keybuf, valbuf); err != nil {
		t.Error(err)
	} else if string(keybuf) != "X" {
		t.Errorf("unexpected %s", keybuf)
	}
	if d.Count() != 7 {
		t.Errorf("unexpected %v", d.Count())
	}
	d.Validate()
}

func TestDictNilKey(t *testing.T) {
	d := NewDict("dict")
	defer d.Destroy()

	if _, err := d.Set(nil, []byte("val"), nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := d.Get(nil, nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}
	if _, err := d.Has(nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := d.Delete(nil, nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}
	if _, err := d.Floor(nil, nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}
	if _, err := d.Ceil(nil, nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}
	if _, err := d.Rank(nil); err != api.ErrorNilKey {
		t.Errorf("unexpected %v", err)
	}

	if _, _, err := d.Min(nil, nil); err != api.ErrorUnderflow {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := d.Max(nil, nil); err != api.ErrorUnderflow {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := d.Deletemin(nil, nil); err != api.ErrorUnderflow {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := d.Deletemax(nil, nil); err != api.ErrorUnderflow {
		t.Errorf("unexpected %v", err)
	}
	if _, err := d.Select(0, nil); err != api.ErrorUnderflow {
		t.Errorf("unexpected %v", err)
	}
}

func TestDictRange(t *testing.T) {
	d := NewDict("dict")
	defer d.Destroy()

	n := 100
	for i := 0; i < n; i++ {
		k := []byte(fmt.Sprintf("key%05v", i))
		v := []byte(fmt.Sprintf("val%05v", i))
		d.Set(k, v, nil)
	}
	d.Validate()

	// forward, both inclusive
	outs := []string{}
	d.Range(
		[]byte("key00010"), []byte("key00020"), "both", false,
		func(key, value []byte) bool {
			if exp := "val" + string(key[3:]); string(value) != exp {
				t.Errorf("expected %s, got %s", exp, value)
			}
			outs = append(outs, string(key))
			return true
		})
	if len(outs) != 11 {
		t.Errorf("expected %v, got %v", 11, len(outs))
	} else if outs[0] != "key00010" || outs[10] != "key00020" {
		t.Errorf("unexpected %v", outs)
	}
	// reverse, exclusive bounds
	outs = []string{}
	d.Range(
		[]byte("key00010"), []byte("key00020"), "none", true,
		func(key, _ []byte) bool {
			outs = append(outs, string(key))
			return true
		})
	if len(outs) != 9 {
		t.Errorf("expected %v, got %v", 9, len(outs))
	} else if outs[0] != "key00019" || outs[8] != "key00011" {
		t.Errorf("unexpected %v", outs)
	}
	// unbounded walk
	count := 0
	d.Range(nil, nil, "both", false, func(_, _ []byte) bool {
		count++
		return true
	})
	if count != n {
		t.Errorf("expected %v, got %v", n, count)
	}
	// equal bounds yield a key only when both inclusive
	for _, incl := range []string{"low", "high", "none"} {
		count = 0
		d.Range(
			[]byte("key00010"), []byte("key00010"), incl, false,
			func(_, _ []byte) bool {
				count++
				return true
			})
		if count != 0 {
			t.Errorf("%v expected %v, got %v", incl, 0, count)
		}
	}
	count = 0
	d.Range(
		[]byte("key00010"), []byte("key00010"), "both", false,
		func(_, _ []byte) bool {
			count++
			return true
		})
	if count != 1 {
		t.Errorf("expected %v, got %v", 1, count)
	}
	// stop the walk when callback returns false
	outs = []string{}
	d.Range(nil, nil, "both", true, func(key, _ []byte) bool {
		outs = append(outs, string(key))
		return len(outs) < 3
	})
	if len(outs) != 3 {
		t.Errorf("expected %v, got %v", 3, len(outs))
	} else if outs[0] != "key00099" {
		t.Errorf("unexpected %v", outs[0])
	}
}

// drive llrb and dict through the same operations and expect
// identical behaviour from both.
func TestDictAgainstLLRB(t *testing.T) {
	d := NewDict("refdict")
	defer d.Destroy()
	index := llrb.NewLLRB("refllrb", llrb.Defaultsettings())
	defer index.Destroy()

	rnd := rand.New(rand.NewSource(42))
	randkey := func() []byte {
		return []byte(fmt.Sprintf("key%04v", rnd.Intn(512)))
	}

	verifyops(t, d, index)
	dbuf, lbuf := make([]byte, 16), make([]byte, 16)
	dval, lval := make([]byte, 16), make([]byte, 16)
	for i := 0; i < 5000; i++ {
		var derr, lerr error
		var dok, lok bool

		switch op := rnd.Intn(10); op {
		case 0, 1, 2, 3, 4, 5: // upsert
			key := randkey()
			val := []byte(fmt.Sprintf("val%v", rnd.Intn(10000)))
			dbuf, derr = d.Set(key, val, dbuf)
			lbuf, lerr = index.Set(key, val, lbuf)
			if derr != lerr {
				t.Fatalf("Set %s expected %v, got %v", key, lerr, derr)
			} else if bytes.Compare(dbuf, lbuf) != 0 {
				t.Fatalf("Set %s expected %s, got %s", key, lbuf, dbuf)
			}

		case 6, 7: // delete
			key := randkey()
			dbuf, dok, derr = d.Delete(key, dbuf)
			lbuf, lok, lerr = index.Delete(key, lbuf)
			if derr != lerr {
				t.Fatalf("Delete %s expected %v, got %v", key, lerr, derr)
			} else if dok != lok {
				t.Fatalf("Delete %s expected %v, got %v", key, lok, dok)
			} else if bytes.Compare(dbuf, lbuf) != 0 {
				t.Fatalf("Delete %s expected %s, got %s", key, lbuf, dbuf)
			}

		case 8: // delete minimum
			dbuf, dval, derr = d.Deletemin(dbuf, dval)
			lbuf, lval, lerr = index.Deletemin(lbuf, lval)
			if derr != lerr {
				t.Fatalf("Deletemin expected %v, got %v", lerr, derr)
			} else if derr == nil && bytes.Compare(dbuf, lbuf) != 0 {
				t.Fatalf("Deletemin expected %s, got %s", lbuf, dbuf)
			} else if derr == nil && bytes.Compare(dval, lval) != 0 {
				t.Fatalf("Deletemin expected %s, got %s", lval, dval)
			}

		case 9: // delete maximum
			dbuf, dval, derr = d.Deletemax(dbuf, dval)
			lbuf, lval, lerr = index.Deletemax(lbuf, lval)
			if derr != lerr {
				t.Fatalf("Deletemax expected %v, got %v", lerr, derr)
			} else if derr == nil && bytes.Compare(dbuf, lbuf) != 0 {
				t.Fatalf("Deletemax expected %s, got %s", lbuf, dbuf)
			} else if derr == nil && bytes.Compare(dval, lval) != 0 {
				t.Fatalf("Deletemax expected %s, got %s", lval, dval)
			}
		}

		if d.Count() != index.Count() {
			t.Fatalf("expected %v, got %v", index.Count(), d.Count())
		}
		key := randkey()
		dval, dok, derr = d.Get(key, dval)
		lval, lok, lerr = index.Get(key, lval)
		if derr != lerr || dok != lok || bytes.Compare(dval, lval) != 0 {
			t.Fatalf("Get %s mismatch", key)
		}
		drank, _ := d.Rank(key)
		lrank, _ := index.Rank(key)
		if drank != lrank {
			t.Fatalf("Rank %s expected %v, got %v", key, lrank, drank)
		}

		if i%512 == 0 {
			verifyops(t, d, index)
			index.Validate()
			d.Validate()
		}
	}
	verifyops(t, d, index)
	index.Validate()
	d.Validate()

	// drain the remaining entries from both ends and expect underflow
	// once both implementations are empty.
	for i := 0; d.Count() > 0; i++ {
		var derr, lerr error
		if i%2 == 0 {
			dbuf, dval, derr = d.Deletemin(dbuf, dval)
			lbuf, lval, lerr = index.Deletemin(lbuf, lval)
		} else {
			dbuf, dval, derr = d.Deletemax(dbuf, dval)
			lbuf, lval, lerr = index.Deletemax(lbuf, lval)
		}
		if derr != nil || lerr != nil {
			t.Fatalf("drain %v unexpected %v, %v", i, derr, lerr)
		} else if bytes.Compare(dbuf, lbuf) != 0 {
			t.Fatalf("drain %v expected %s, got %s", i, lbuf, dbuf)
		} else if bytes.Compare(dval, lval) != 0 {
			t.Fatalf("drain %v expected %s, got %s", i, lval, dval)
		}
		index.Validate()
	}
	if index.Count() != 0 {
		t.Errorf("expected %v, got %v", 0, index.Count())
	}
	if _, _, err := d.Deletemin(nil, nil); err != api.ErrorUnderflow {
		t.Errorf("expected %v, got %v", api.ErrorUnderflow, err)
	}
	if _, _, err := index.Deletemax(nil, nil); err != api.ErrorUnderflow {
		t.Errorf("expected %v, got %v", api.ErrorUnderflow, err)
	}
}

func verifyops(t *testing.T, d *Dict, index api.Index) {
	// entries shall come out in the same order with the same content
	refs := [][2]string{}
	d.Range(nil, nil, "both", false, func(key, value []byte) bool {
		refs = append(refs, [2]string{string(key), string(value)})
		return true
	})
	outs := [][2]string{}
	index.Range(nil, nil, "both", false, func(key, value []byte) bool {
		outs = append(outs, [2]string{string(key), string(value)})
		return true
	})
	if len(refs) != len(outs) {
		t.Fatalf("expected %v entries, got %v", len(refs), len(outs))
	}
	for i, ref := range refs {
		if ref != outs[i] {
			t.Fatalf("expected %v, got %v", ref, outs[i])
		}
	}
	// and in the reverse direction
	outs = outs[:0]
	index.Range(nil, nil, "both", true, func(key, value []byte) bool {
		outs = append(outs, [2]string{string(key), string(value)})
		return true
	})
	for i, ref := range refs {
		if out := outs[len(outs)-1-i]; ref != out {
			t.Fatalf("expected %v, got %v", ref, out)
		}
	}

	dkey, dval := make([]byte, 16), make([]byte, 16)
	lkey, lval := make([]byte, 16), make([]byte, 16)
	dkey, dval, derr := d.Min(dkey, dval)
	lkey, lval, lerr := index.Min(lkey, lval)
	if derr != lerr {
		t.Fatalf("Min expected %v, got %v", lerr, derr)
	} else if derr == nil {
		if bytes.Compare(dkey, lkey) != 0 || bytes.Compare(dval, lval) != 0 {
			t.Fatalf("Min expected %s,%s got %s,%s", lkey, lval, dkey, dval)
		}
	}
	dkey, dval, derr = d.Max(dkey, dval)
	lkey, lval, lerr = index.Max(lkey, lval)
	if derr != lerr {
		t.Fatalf("Max expected %v, got %v", lerr, derr)
	} else if derr == nil {
		if bytes.Compare(dkey, lkey) != 0 || bytes.Compare(dval, lval) != 0 {
			t.Fatalf("Max expected %s,%s got %s,%s", lkey, lval, dkey, dval)
		}
	}

	// rank, select, floor and ceil shall agree between implementations
	for r := int64(0); r < d.Count(); r++ {
		var derr, lerr error
		dkey, derr = d.Select(r, dkey)
		lkey, lerr = index.Select(r, lkey)
		if derr != nil || lerr != nil {
			t.Fatalf("Select %v unexpected %v, %v", r, derr, lerr)
		} else if bytes.Compare(dkey, lkey) != 0 {
			t.Fatalf("Select %v expected %s, got %s", r, lkey, dkey)
		}
		key := string(dkey)
		if drank, _ := d.Rank(dkey); drank != r {
			t.Fatalf("Rank %s expected %v, got %v", key, r, drank)
		} else if lrank, _ := index.Rank(dkey); lrank != r {
			t.Fatalf("Rank %s expected %v, got %v", key, r, lrank)
		}
		dkey, derr = d.Floor(dkey, dkey)
		if derr != nil || string(dkey) != key {
			t.Fatalf("Floor %s got %s, %v", key, dkey, derr)
		}
		lkey, lerr = index.Ceil(lkey, lkey)
		if lerr != nil || string(lkey) != key {
			t.Fatalf("Ceil %s got %s, %v", key, lkey, lerr)
		}
	}
}
