package main

import "flag"
import "fmt"
import "log"
import "time"

import "github.com/bnclabs/gosymtab/dict"
import "github.com/bnclabs/gosymtab/lib"
import "github.com/bnclabs/gosymtab/llrb"

var checkopts struct {
	repeat   int
	seed     int
	vtick    time.Duration
	bagdir   string
	prodfile string
	ops      map[string]bool
	opdump   bool
	args     []string
}

func parseCheckopts(args []string) {
	f := flag.NewFlagSet("check", flag.ExitOnError)

	var vtick int
	var ops string

	seed := time.Now().UTC().Second()
	f.IntVar(&checkopts.repeat, "repeat", 1000,
		"number of times to repeat the generator")
	f.IntVar(&checkopts.seed, "seed", seed,
		"seed value for generating inputs")
	f.IntVar(&vtick, "vtick", 1000,
		"validate tick, in milliseconds")
	f.StringVar(&checkopts.bagdir, "bagdir", "./",
		"bagdir for monster")
	f.StringVar(&checkopts.prodfile, "prodfile", "./llrb.prod",
		"production file for monster")
	f.StringVar(&ops, "ops", "",
		"comma separated list of ops to exercise, default all")
	f.BoolVar(&checkopts.opdump, "opdump", false,
		"dump monster generated ops")
	f.Parse(args)

	checkopts.args = f.Args()

	checkopts.ops = map[string]bool{}
	for _, op := range lib.Parsecsv(ops) {
		checkopts.ops[op] = true
	}

	checkopts.vtick = time.Duration(vtick) * time.Millisecond
}

func doCheck(args []string) {
	parseCheckopts(args)

	fmt.Printf("Seed: %v\n", checkopts.seed)

	opch := make(chan [][]interface{}, 10000)
	go generate(checkopts.repeat, checkopts.prodfile, opch)
	go validateTick(checkopts.vtick, opch)

	checkLLRB(uint64(checkopts.repeat), opch)
}

func checkLLRB(count uint64, opch chan [][]interface{}) {
	genstats := newgenstats()

	d := dict.NewDict("check")
	index := llrb.NewLLRB("check", llrb.Defaultsettings())

	seqno := uint64(0)
	for seqno < count {
		seqno++
		cmds := <-opch
		for _, cmd := range cmds {
			name := cmd[0].(string)
			if len(checkopts.ops) > 0 && checkopts.ops[name] == false {
				continue
			}
			if checkopts.opdump {
				fmt.Printf("cmd %v\n", cmd)
			}
			switch name {
			case "get":
				genstats = opGet(d, index, cmd, genstats)
			case "min":
				genstats = opMin(d, index, cmd, genstats)
			case "max":
				genstats = opMax(d, index, cmd, genstats)
			case "delmin":
				genstats = opDelmin(d, index, cmd, genstats)
			case "delmax":
				genstats = opDelmax(d, index, cmd, genstats)
			case "upsert":
				genstats = opUpsert(d, index, cmd, genstats)
			case "delete":
				genstats = opDelete(d, index, cmd, genstats)
			case "rank":
				genstats = opRank(d, index, cmd, genstats)
			case "select":
				genstats = opSelect(d, index, cmd, genstats)
			case "floor":
				genstats = opFloor(d, index, cmd, genstats)
			case "ceil":
				genstats = opCeil(d, index, cmd, genstats)
			case "range":
				genstats = opRange(d, index, cmd, genstats)
			case "validate":
				opValidate(d, index, genstats, false)
			default:
				log.Fatalf("unknown command %v\n", cmd)
			}
		}
	}
	opValidate(d, index, genstats, true)

	llrb.LogComponents("self")
	index.Log()
	index.Destroy()
	d.Destroy()
}

func validateTick(tick time.Duration, opch chan [][]interface{}) {
	tm := time.NewTicker(tick)
	for {
		<-tm.C
		opch <- [][]interface{}{[]interface{}{"validate"}}
	}
}
