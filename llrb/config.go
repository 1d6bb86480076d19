package llrb

import "github.com/bnclabs/gosymtab/api"
import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for llrb instance.
//
// "minkeysize" (int64, default: <api.MinKeysize>),
//		Minimum size allowed for key.
//
// "maxkeysize" (int64, default: <api.MaxKeysize>),
//		Maximum size allowed for key.
//
// "minvalsize" (int64, default: <api.MinValsize>),
//		Minimum size allowed for value.
//
// "maxvalsize" (int64, default: <api.MaxValsize>),
//		Maximum size allowed for value.
//
// "keycapacity" (int64)
//		Memory capacity required for keys. Default will be
//		(avgkeysize / (avgkeysize+avgvalsize)) * freeRAM
//
// "valcapacity" (int64)
//		Memory capacity required for values. Default will be
//		(avgvalsize / (avgkeysize+avgvalsize)) * freeRAM
//
// "allocator" (string, default: "gc")
//		Type of allocator to use for nodes. Only "gc", relying on
//		golang's runtime allocator, is supported.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	avgksize := float64(api.MinKeysize + (api.MaxKeysize-api.MinKeysize)/2)
	avgvsize := float64(api.MinValsize + (api.MaxValsize-api.MinValsize)/2)
	keycapacity := (avgksize / (avgksize + avgvsize)) * float64(free)
	valcapacity := (avgvsize / (avgksize + avgvsize)) * float64(free)
	setts := s.Settings{
		"minkeysize":  api.MinKeysize,
		"maxkeysize":  api.MaxKeysize,
		"minvalsize":  api.MinValsize,
		"maxvalsize":  api.MaxValsize,
		"keycapacity": int64(keycapacity),
		"valcapacity": int64(valcapacity),
		"allocator":   "gc",
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
