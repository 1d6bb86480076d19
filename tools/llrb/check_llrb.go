package main

import "bytes"
import "fmt"
import "reflect"
import "strconv"
import "time"

import "github.com/bnclabs/gosymtab/dict"
import "github.com/bnclabs/gosymtab/llrb"

// each op applies one generated command on dict and llrb, panics
// on the first difference between the two and accounts the op in
// genstats.

func opGet(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	key := []byte(strconv.Itoa(int(cmd[1].(float64))))

	refval, refok, referr := d.Get(key, nil)
	val, ok, err := index.Get(key, nil)
	if refok != ok || referr != err {
		fmsg := "get %q: dict {%v,%v}, llrb {%v,%v}"
		panic(fmt.Errorf(fmsg, key, refok, referr, ok, err))
	} else if bytes.Compare(refval, val) != 0 {
		fmsg := "get %q: dict %q, llrb %q"
		panic(fmt.Errorf(fmsg, key, refval, val))
	}

	stats["total"] += 1
	if ok {
		stats["get.ok"] += 1
	} else {
		stats["get.na"] += 1
	}
	return stats
}

func opMin(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	refkey, refval, referr := d.Min(nil, nil)
	key, val, err := index.Min(nil, nil)
	if referr != err {
		panic(fmt.Errorf("min: dict err %v, llrb err %v", referr, err))
	} else if bytes.Compare(refkey, key) != 0 {
		panic(fmt.Errorf("min: dict key %q, llrb key %q", refkey, key))
	} else if bytes.Compare(refval, val) != 0 {
		panic(fmt.Errorf("min: dict value %q, llrb value %q", refval, val))
	}

	stats["total"] += 1
	if err == nil {
		stats["min.ok"] += 1
	} else {
		stats["min.na"] += 1
	}
	return stats
}

func opMax(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	refkey, refval, referr := d.Max(nil, nil)
	key, val, err := index.Max(nil, nil)
	if referr != err {
		panic(fmt.Errorf("max: dict err %v, llrb err %v", referr, err))
	} else if bytes.Compare(refkey, key) != 0 {
		panic(fmt.Errorf("max: dict key %q, llrb key %q", refkey, key))
	} else if bytes.Compare(refval, val) != 0 {
		panic(fmt.Errorf("max: dict value %q, llrb value %q", refval, val))
	}

	stats["total"] += 1
	if err == nil {
		stats["max.ok"] += 1
	} else {
		stats["max.na"] += 1
	}
	return stats
}

func opDelmin(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	refkey, refval, referr := d.Deletemin(nil, nil)
	key, val, err := index.Deletemin(nil, nil)
	if referr != err {
		panic(fmt.Errorf("delmin: dict err %v, llrb err %v", referr, err))
	} else if bytes.Compare(refkey, key) != 0 {
		panic(fmt.Errorf("delmin: dict key %q, llrb key %q", refkey, key))
	} else if bytes.Compare(refval, val) != 0 {
		panic(fmt.Errorf("delmin: dict value %q, llrb value %q", refval, val))
	}

	stats["total"] += 1
	if err == nil {
		stats["delmin.ok"] += 1
	} else {
		stats["delmin.na"] += 1
	}
	return stats
}

func opDelmax(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	refkey, refval, referr := d.Deletemax(nil, nil)
	key, val, err := index.Deletemax(nil, nil)
	if referr != err {
		panic(fmt.Errorf("delmax: dict err %v, llrb err %v", referr, err))
	} else if bytes.Compare(refkey, key) != 0 {
		panic(fmt.Errorf("delmax: dict key %q, llrb key %q", refkey, key))
	} else if bytes.Compare(refval, val) != 0 {
		panic(fmt.Errorf("delmax: dict value %q, llrb value %q", refval, val))
	}

	stats["total"] += 1
	if err == nil {
		stats["delmax.ok"] += 1
	} else {
		stats["delmax.na"] += 1
	}
	return stats
}

func opUpsert(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	key := []byte(strconv.Itoa(int(cmd[1].(float64))))
	value := []byte(strconv.Itoa(int(time.Now().UnixNano())))

	refok, referr := d.Has(key)
	ok, err := index.Has(key)
	if refok != ok || referr != err {
		fmsg := "upsert-has %q: dict {%v,%v}, llrb {%v,%v}"
		panic(fmt.Errorf(fmsg, key, refok, referr, ok, err))
	}

	refold, referr := d.Set(key, value, nil)
	oldvalue, err := index.Set(key, value, nil)
	if referr != err {
		fmsg := "upsert %q: dict err %v, llrb err %v"
		panic(fmt.Errorf(fmsg, key, referr, err))
	} else if bytes.Compare(refold, oldvalue) != 0 {
		fmsg := "upsert %q: dict old %q, llrb old %q"
		panic(fmt.Errorf(fmsg, key, refold, oldvalue))
	}

	stats["total"] += 1
	if ok {
		stats["upsert"] += 1
	} else {
		stats["insert"] += 1
	}
	return stats
}

func opDelete(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	key := []byte(strconv.Itoa(int(cmd[1].(float64))))

	refold, refok, referr := d.Delete(key, nil)
	oldvalue, ok, err := index.Delete(key, nil)
	if refok != ok || referr != err {
		fmsg := "delete %q: dict {%v,%v}, llrb {%v,%v}"
		panic(fmt.Errorf(fmsg, key, refok, referr, ok, err))
	} else if bytes.Compare(refold, oldvalue) != 0 {
		fmsg := "delete %q: dict old %q, llrb old %q"
		panic(fmt.Errorf(fmsg, key, refold, oldvalue))
	}

	stats["total"] += 1
	if ok {
		stats["delete.ok"] += 1
	} else {
		stats["delete.na"] += 1
	}
	return stats
}

func opRank(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	key := []byte(strconv.Itoa(int(cmd[1].(float64))))

	refrank, referr := d.Rank(key)
	rank, err := index.Rank(key)
	if referr != err {
		panic(fmt.Errorf("rank %q: dict err %v, llrb err %v", key, referr, err))
	} else if refrank != rank {
		panic(fmt.Errorf("rank %q: dict %v, llrb %v", key, refrank, rank))
	}

	stats["total"] += 1
	stats["rank"] += 1
	return stats
}

func opSelect(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	rank := int64(cmd[1].(float64))

	refkey, referr := d.Select(rank, nil)
	key, err := index.Select(rank, nil)
	if referr != err {
		fmsg := "select %v: dict err %v, llrb err %v"
		panic(fmt.Errorf(fmsg, rank, referr, err))
	} else if bytes.Compare(refkey, key) != 0 {
		panic(fmt.Errorf("select %v: dict %q, llrb %q", rank, refkey, key))
	}

	stats["total"] += 1
	if err == nil {
		stats["select.ok"] += 1
	} else {
		stats["select.na"] += 1
	}
	return stats
}

func opFloor(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	key := []byte(strconv.Itoa(int(cmd[1].(float64))))

	refkey, referr := d.Floor(key, nil)
	fkey, err := index.Floor(key, nil)
	if referr != err {
		fmsg := "floor %q: dict err %v, llrb err %v"
		panic(fmt.Errorf(fmsg, key, referr, err))
	} else if bytes.Compare(refkey, fkey) != 0 {
		panic(fmt.Errorf("floor %q: dict %q, llrb %q", key, refkey, fkey))
	}

	stats["total"] += 1
	if err == nil {
		stats["floor.ok"] += 1
	} else {
		stats["floor.na"] += 1
	}
	return stats
}

func opCeil(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	key := []byte(strconv.Itoa(int(cmd[1].(float64))))

	refkey, referr := d.Ceil(key, nil)
	ckey, err := index.Ceil(key, nil)
	if referr != err {
		fmsg := "ceil %q: dict err %v, llrb err %v"
		panic(fmt.Errorf(fmsg, key, referr, err))
	} else if bytes.Compare(refkey, ckey) != 0 {
		panic(fmt.Errorf("ceil %q: dict %q, llrb %q", key, refkey, ckey))
	}

	stats["total"] += 1
	if err == nil {
		stats["ceil.ok"] += 1
	} else {
		stats["ceil.na"] += 1
	}
	return stats
}

func opRange(
	d *dict.Dict, index *llrb.LLRB,
	cmd []interface{}, stats map[string]int) map[string]int {

	lkey := []byte(strconv.Itoa(int(cmd[1].(float64))))
	hkey := []byte(strconv.Itoa(int(cmd[2].(float64))))
	incl := cmd[3].(string)

	for _, reverse := range []bool{false, true} {
		refkeys, refvals := make([][]byte, 0), make([][]byte, 0)
		d.Range(lkey, hkey, incl, reverse, func(k, v []byte) bool {
			refkeys, refvals = append(refkeys, k), append(refvals, v)
			return true
		})
		keys, vals := make([][]byte, 0), make([][]byte, 0)
		index.Range(lkey, hkey, incl, reverse, func(k, v []byte) bool {
			keys, vals = append(keys, k), append(vals, v)
			return true
		})
		if reflect.DeepEqual(refkeys, keys) == false {
			fmsg := "range {%s,%s,%s,%v}: keys mismatch"
			panic(fmt.Errorf(fmsg, lkey, hkey, incl, reverse))
		} else if reflect.DeepEqual(refvals, vals) == false {
			fmsg := "range {%s,%s,%s,%v}: values mismatch"
			panic(fmt.Errorf(fmsg, lkey, hkey, incl, reverse))
		}
	}

	// Rangecount treats bounds as whole keys, unlike the range walk
	// where bounds compare as key prefixes. Verify against the rank
	// arithmetic replayed over dict entries.
	refcount := int64(0)
	d.Range(nil, nil, "both", false, func(k, _ []byte) bool {
		cl, ch := bytes.Compare(k, lkey), bytes.Compare(k, hkey)
		switch incl {
		case "both":
			if cl >= 0 && ch <= 0 {
				refcount++
			}
		case "low":
			if cl >= 0 && ch < 0 {
				refcount++
			}
		case "high":
			if cl > 0 && ch <= 0 {
				refcount++
			}
		default:
			if cl > 0 && ch < 0 {
				refcount++
			}
		}
		return true
	})
	count, err := index.Rangecount(lkey, hkey, incl)
	if err != nil {
		panic(fmt.Errorf("rangecount {%s,%s,%s}: %v", lkey, hkey, incl, err))
	} else if count != refcount {
		fmsg := "rangecount {%s,%s,%s}: expected %v, got %v"
		panic(fmt.Errorf(fmsg, lkey, hkey, incl, refcount, count))
	}

	stats["total"] += 1
	stats["range"] += 1
	return stats
}

func opValidate(
	d *dict.Dict, index *llrb.LLRB, stats map[string]int, dolog bool) {

	validateEqual(d, index, dolog)
	validateStats(d, index, stats, dolog)
	d.Validate()
	index.Validate()
	stats["total"] += 1
	stats["validate"] += 1
}

func validateEqual(d *dict.Dict, index *llrb.LLRB, dolog bool) bool {
	dictn, llrbn := d.Count(), index.Count()
	if dictn != llrbn {
		panic(fmt.Errorf("count expected dict:%v, got llrb:%v", dictn, llrbn))
	}

	refkeys, refvals := make([][]byte, 0), make([][]byte, 0)
	d.Range(nil, nil, "both", false, func(k, v []byte) bool {
		refkeys, refvals = append(refkeys, k), append(refvals, v)
		return true
	})
	keys, vals := make([][]byte, 0), make([][]byte, 0)
	index.Range(nil, nil, "both", false, func(k, v []byte) bool {
		keys, vals = append(keys, k), append(vals, v)
		return true
	})
	if reflect.DeepEqual(refkeys, keys) == false {
		panic(fmt.Errorf("final dict keys and llrb keys mismatch"))
	} else if reflect.DeepEqual(refvals, vals) == false {
		panic(fmt.Errorf("final dict values and llrb values mismatch"))
	}
	ks := index.Keys(make([][]byte, 0, llrbn))
	if reflect.DeepEqual(ks, keys) == false {
		panic(fmt.Errorf("llrb Keys and Range keys mismatch"))
	}

	if dolog {
		fmt.Printf("validateEqual: ok\n")
		fmt.Printf("  number of elements {dict: %v, llrb:%v}\n", dictn, llrbn)
	}
	return true
}

func validateStats(
	d *dict.Dict, index *llrb.LLRB,
	stats map[string]int, dolog bool) bool {

	insert, upsert := stats["insert"], stats["upsert"]
	validates := stats["validate"]

	dels := [2]int{stats["delete.ok"], stats["delete.na"]}
	dmax := [2]int{stats["delmax.ok"], stats["delmax.na"]}
	dmin := [2]int{stats["delmin.ok"], stats["delmin.na"]}
	gets := [2]int{stats["get.ok"], stats["get.na"]}
	maxs := [2]int{stats["max.ok"], stats["max.na"]}
	mins := [2]int{stats["min.ok"], stats["min.na"]}
	sels := [2]int{stats["select.ok"], stats["select.na"]}
	flrs := [2]int{stats["floor.ok"], stats["floor.na"]}
	ceis := [2]int{stats["ceil.ok"], stats["ceil.na"]}
	total := insert + upsert + dels[0] + dels[1]
	total += dmax[0] + dmax[1] + dmin[0] + dmin[1]
	total += gets[0] + gets[1] + maxs[0] + maxs[1] + mins[0] + mins[1]
	total += sels[0] + sels[1] + flrs[0] + flrs[1] + ceis[0] + ceis[1]
	total += stats["rank"] + stats["range"] + validates

	if total != stats["total"] {
		panic(fmt.Errorf("total expected %v, got %v", total, stats["total"]))
	}
	dictn, cnt := d.Count(), int64(insert-(dels[0]+dmin[0]+dmax[0]))
	if dictn != cnt {
		panic(fmt.Errorf("expected counts: %v, stats: %v", dictn, cnt))
	}

	if dolog {
		fmt.Printf("validateStats:  ok\n")
		fmt.Printf("  total operations : %v\n", total)
		fmt.Printf("  inserts/upserts  : {%v,%v}\n", insert, upsert)
		fmsg := "  ds/dn/dx {ok/na} : {%v,%v} {%v,%v} {%v,%v}\n"
		fmt.Printf(fmsg, dels[0], dels[1], dmin[0], dmin[1], dmax[0], dmax[1])
		fmsg = "  gt/mn/mx {ok/na} : {%v,%v} {%v,%v} {%v,%v}\n"
		fmt.Printf(fmsg, gets[0], gets[1], mins[0], mins[1], maxs[0], maxs[1])
		fmsg = "  sl/fl/cl {ok/na} : {%v,%v} {%v,%v} {%v,%v}\n"
		fmt.Printf(fmsg, sels[0], sels[1], flrs[0], flrs[1], ceis[0], ceis[1])
		fmsg = "  rank/range/vals  : {%v,%v,%v}\n"
		fmt.Printf(fmsg, stats["rank"], stats["range"], validates)
	}
	return true
}
