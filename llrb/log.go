package llrb

import "sync/atomic"

import "github.com/bnclabs/golog"

var logok int64

// LogComponents enable logging causation for the named components,
// "self" to enable logging for this package, "all" to enable logging
// for all components.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "all", "self", "llrb":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func debugf(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Debugf(format, args...)
	}
}

func errorf(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Errorf(format, args...)
	}
}

func fatalf(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Fatalf(format, args...)
	}
}

func infof(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Infof(format, args...)
	}
}

func tracef(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Tracef(format, args...)
	}
}

func verbosef(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Verbosef(format, args...)
	}
}

func warnf(format string, args ...interface{}) {
	if atomic.LoadInt64(&logok) == 1 {
		log.Warnf(format, args...)
	}
}
