package api

import "errors"

// ErrorNilKey operation cannot succeed because supplied key is nil
// or zero length.
var ErrorNilKey = errors.New("nilKey")

// ErrorKeySize operation cannot succeed because supplied key is
// longer than configured "maxkeysize".
var ErrorKeySize = errors.New("keySize")

// ErrorValSize operation cannot succeed because supplied value is
// longer than configured "maxvalsize".
var ErrorValSize = errors.New("valSize")

// ErrorUnderflow operation cannot succeed because index is empty.
var ErrorUnderflow = errors.New("underflow")

// ErrorOutofRange operation cannot succeed because supplied rank is
// outside the index population.
var ErrorOutofRange = errors.New("outofRange")

// ErrorNoFloor operation cannot succeed because every indexed key is
// greater than the supplied key.
var ErrorNoFloor = errors.New("noFloor")

// ErrorNoCeil operation cannot succeed because every indexed key is
// less than the supplied key.
var ErrorNoCeil = errors.New("noCeil")

// ErrorOutofMemory operation cannot succeed because index has used up
// its configured "keycapacity" or "valcapacity".
var ErrorOutofMemory = errors.New("outofMemory")

// MinKeysize minimum key size.
const MinKeysize = int64(1)

// MaxKeysize maximum key size.
const MaxKeysize = int64(4096)

// MinValsize minimum value size.
const MinValsize = int64(0)

// MaxValsize maximum value size.
const MaxValsize = int64(10 * 1024 * 1024)
