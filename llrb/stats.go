package llrb

import "fmt"

import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/gosymtab/lib"

// statistics for a LLRB instance, updated in place by write and
// read operations.
type llrbstats struct {
	n_count   int64 // number of entries in the tree
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_nodes   int64
	n_frees   int64
	n_clones  int64
	n_lookups int64
	n_ranges  int64
	keymemory int64 // memory used by all keys
	valmemory int64 // memory used by all values
}

// Stats return a map of data-structure statistics and operational
// statistics.
func (llrb *LLRB) Stats() map[string]interface{} {
	llrb.assertnotdead("Stats")
	return llrb.stats()
}

func (llrb *LLRB) stats() map[string]interface{} {
	m := make(map[string]interface{})
	m["n_count"] = llrb.n_count
	m["n_inserts"] = llrb.n_inserts
	m["n_updates"] = llrb.n_updates
	m["n_deletes"] = llrb.n_deletes
	m["n_nodes"] = llrb.n_nodes
	m["n_frees"] = llrb.n_frees
	m["n_clones"] = llrb.n_clones
	m["n_lookups"] = llrb.n_lookups
	m["n_ranges"] = llrb.n_ranges
	m["keymemory"] = llrb.keymemory
	m["valmemory"] = llrb.valmemory
	m["h_upsertdepth"] = llrb.h_upsertdepth.Fullstats()
	return m
}

// Fullstats return an involved set of statistics, this is a costly
// operation and walks through the entire tree.
func (llrb *LLRB) Fullstats() map[string]interface{} {
	llrb.assertnotdead("Fullstats")

	stats := llrb.stats()

	h_height := lib.NewhistorgramInt64(1, 256, 1)
	llrb.heightStats(llrb.getroot(), 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = llrb.countblacks(llrb.getroot(), 0)

	hstat := stats["h_height"].(map[string]interface{})
	if x := hstat["samples"].(int64); x != llrb.Count() {
		fmsg := "expected h_height.samples:%v to be same as Count():%v"
		panic(fmt.Errorf(fmsg, x, llrb.Count()))
	}
	return stats
}

func (llrb *LLRB) validatestats(stats map[string]interface{}) {
	// n_count should match (n_inserts - n_deletes)
	n_count := stats["n_count"].(int64)
	n_inserts := stats["n_inserts"].(int64)
	n_deletes := stats["n_deletes"].(int64)
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		panic(fmt.Errorf(fmsg, n_count, n_inserts, n_deletes))
	}
	// n_nodes should match n_inserts
	n_nodes := stats["n_nodes"].(int64)
	if n_inserts != n_nodes {
		fmsg := "validatestats(): n_inserts:%v != n_nodes:%v"
		panic(fmt.Errorf(fmsg, n_inserts, n_nodes))
	}
	// n_frees should match (n_deletes + n_clones)
	n_frees := stats["n_frees"].(int64)
	n_clones := stats["n_clones"].(int64)
	if n_frees != (n_deletes + n_clones) {
		fmsg := "validatestats(): n_frees:%v != (n_deletes:%v + n_clones:%v)"
		panic(fmt.Errorf(fmsg, n_frees, n_deletes, n_clones))
	}
}

// Log vital information.
func (llrb *LLRB) Log() {
	llrb.assertnotdead("Log")

	lprefix, stats := llrb.logprefix, llrb.stats()

	kmem := humanize.Bytes(uint64(stats["keymemory"].(int64)))
	vmem := humanize.Bytes(uint64(stats["valmemory"].(int64)))
	infof("%v keymem(%v) valmem(%v)\n", lprefix, kmem, vmem)

	infof("%v count: %10v\n", lprefix, humanize.Comma(llrb.Count()))

	a, b, c := stats["n_inserts"], stats["n_updates"], stats["n_deletes"]
	infof("%v write: %10d(ins) %10d(ups) %10d(del)\n", lprefix, a, b, c)

	a, b, c = stats["n_nodes"], stats["n_frees"], stats["n_clones"]
	infof("%v nodes: %10d(nds) %10d(fre) %10d(cln)\n", lprefix, a, b, c)

	a, b = stats["n_lookups"], stats["n_ranges"]
	infof("%v reads: %10d(gts) %10d(rns)\n", lprefix, a, b)

	infof("%v stats %v\n", lprefix, lib.Prettystats(stats, false))
}
