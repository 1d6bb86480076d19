package main

import "bytes"
import "flag"
import "fmt"
import "io/ioutil"
import "math/rand"
import "os"
import "runtime"
import "runtime/pprof"
import "strconv"
import "strings"
import "time"

import "github.com/bnclabs/gosymtab/api"
import "github.com/bnclabs/gosymtab/dict"
import "github.com/bnclabs/gosymtab/lib"
import "github.com/bnclabs/gosymtab/llrb"
import hm "github.com/dustin/go-humanize"
import "github.com/google/btree"

var loadopts struct {
	index   string
	n       int
	ncpu    int
	seed    int
	klen    [2]int // min-klen, max-klen
	vlen    [2]int // min-vlen, max-vlen
	mprof   string
	pprof   string
	dotfile string
	args    []string
}

func parseLoadopts(args []string) {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	var klen, vlen string

	seed := time.Now().UTC().Second()
	f.StringVar(&loadopts.index, "index", "llrb",
		"load one of llrb, dict or btree index")
	f.IntVar(&loadopts.n, "n", 1000,
		"number of items to generate and insert")
	f.IntVar(&loadopts.ncpu, "ncpu", runtime.NumCPU(),
		"set number cores to use.")
	f.IntVar(&loadopts.seed, "seed", seed,
		"seed value for generating keys and values")
	f.StringVar(&klen, "klen", "",
		"minklen, maxklen - generate keys between [minklen,maxklen)")
	f.StringVar(&vlen, "vlen", "",
		"minvlen, maxvlen - generate values between [minvlen,maxvlen)")
	f.StringVar(&loadopts.mprof, "mprof", "",
		"dump mem-profile to file")
	f.StringVar(&loadopts.pprof, "pprof", "",
		"dump cpu-profile to file")
	f.StringVar(&loadopts.dotfile, "dotfile", "",
		"dump dot file output of the LLRB tree")
	f.Parse(args)

	loadopts.args = f.Args()

	loadopts.klen = [2]int{16, 32}
	if klen != "" {
		for i, s := range strings.Split(klen, ",") {
			ln, _ := strconv.Atoi(s)
			loadopts.klen[i] = ln
		}
	}
	loadopts.vlen = [2]int{16, 32}
	if vlen != "" {
		for i, s := range strings.Split(vlen, ",") {
			ln, _ := strconv.Atoi(s)
			loadopts.vlen[i] = ln
		}
	}

	setCPU(loadopts.ncpu)
}

func doLoad(args []string) {
	parseLoadopts(args)

	fmt.Printf("Seed: %v\n", loadopts.seed)

	if loadopts.pprof != "" {
		fd, err := os.Create(loadopts.pprof)
		if err != nil {
			fmt.Printf("unable to create %q: %v\n", loadopts.pprof, err)
		}
		defer fd.Close()

		pprof.StartCPUProfile(fd)
		defer pprof.StopCPUProfile()
	}

	switch loadopts.index {
	case "llrb":
		loadLLRB()
	case "dict":
		index := dict.NewDict("load")
		loadIndex(index)
		index.Validate()
		index.Destroy()
	case "btree":
		loadBtree()
	default:
		fmt.Printf("unknown index %q\n", loadopts.index)
		os.Exit(1)
	}

	if takeMEMProfile(loadopts.mprof) {
		fmt.Printf("dumped mem-profile to %v\n", loadopts.mprof)
	}
}

func loadLLRB() {
	index := llrb.NewLLRB("load", llrb.Defaultsettings())
	loadIndex(index)
	index.Validate()

	llrb.LogComponents("self")
	index.Log()

	if len(loadopts.dotfile) > 0 {
		buffer := bytes.NewBuffer(nil)
		index.Dotdump(buffer)
		ioutil.WriteFile(loadopts.dotfile, buffer.Bytes(), 0666)
	}
	index.Destroy()
}

func loadIndex(index api.Index) {
	rnd := rand.New(rand.NewSource(int64(loadopts.seed)))
	key := make([]byte, loadopts.klen[1])
	value := make([]byte, loadopts.vlen[1])
	oldvalue := make([]byte, loadopts.vlen[1])

	var av lib.AverageInt64
	var err error

	now := time.Now()
	for i := 0; i < loadopts.n; i++ {
		k := makekey(rnd, key, loadopts.klen[0], loadopts.klen[1])
		v := makeval(rnd, value, loadopts.vlen[0], loadopts.vlen[1])
		start := time.Now()
		if oldvalue, err = index.Set(k, v, oldvalue); err != nil {
			panic(err)
		}
		av.Add(int64(time.Since(start)))
	}
	reportcost(index.Count(), time.Since(now), &av)
}

// btree index from github.com/google/btree, loaded with the same
// item stream, as a rough comparison point for llrb costs.

type loaditem struct {
	key   []byte
	value []byte
}

func loadBtree() {
	rnd := rand.New(rand.NewSource(int64(loadopts.seed)))
	index := btree.NewG[*loaditem](32, func(a, b *loaditem) bool {
		return bytes.Compare(a.key, b.key) < 0
	})

	var av lib.AverageInt64

	now := time.Now()
	for i := 0; i < loadopts.n; i++ {
		itm := &loaditem{
			key:   make([]byte, loadopts.klen[1]),
			value: make([]byte, loadopts.vlen[1]),
		}
		itm.key = makekey(rnd, itm.key, loadopts.klen[0], loadopts.klen[1])
		itm.value = makeval(rnd, itm.value, loadopts.vlen[0], loadopts.vlen[1])
		start := time.Now()
		index.ReplaceOrInsert(itm)
		av.Add(int64(time.Since(start)))
	}
	reportcost(int64(index.Len()), time.Since(now), &av)
}

func reportcost(count int64, took time.Duration, av *lib.AverageInt64) {
	rate := (float64(count) / float64(took)) * float64(time.Second)
	fmt.Printf("Took %v to insert %v items, %v items/sec\n",
		took, hm.Comma(count), hm.Comma(int64(rate)))
	fmsg := "latency (ns) min:%v mean:%v max:%v sd:%.2f\n"
	fmt.Printf(fmsg, av.Min(), av.Mean(), av.Max(), av.SD())
}
