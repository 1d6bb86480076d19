package main

import "fmt"
import "math/rand"
import "os"
import "runtime"
import "runtime/pprof"

var usetext = `usage: llrb <command> [options]

commands:

  load      load llrb, dict or btree index with generated items
            and report the cost of building the index.
  check     cross verify llrb against dict with generated commands,
            panic on the first mismatch.

use llrb <command> -h, to know more about command options.
`

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "load":
		doLoad(args)
	case "check":
		doCheck(args)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", usetext)
}

func setCPU(ncpu int) {
	fmt.Printf("Setting number of cpus to %v\n", ncpu)
	runtime.GOMAXPROCS(ncpu)
}

func takeMEMProfile(filename string) bool {
	if filename == "" {
		return false
	}
	fd, err := os.Create(filename)
	if err != nil {
		fmt.Printf("unable to create %q: %v\n", filename, err)
		return false
	}
	defer fd.Close()

	pprof.WriteHeapProfile(fd)
	return true
}

func makekey(rnd *rand.Rand, key []byte, min, max int) []byte {
	key = key[:rnd.Intn(max-min)+min]
	for i := range key {
		key[i] = byte(97 + rnd.Intn(26))
	}
	return key
}

func makeval(rnd *rand.Rand, value []byte, min, max int) []byte {
	value = value[:rnd.Intn(max-min)+min]
	for i := range value {
		value[i] = byte(97 + rnd.Intn(26))
	}
	return value
}
