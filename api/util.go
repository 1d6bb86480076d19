package api

import "bytes"

// Binarycmp compare byte keys and return -1, 0 or +1. When partial is
// true and limit is shorter than key, only the limit's length worth of
// bytes are compared, treating limit as a key prefix.
func Binarycmp(key, limit []byte, partial bool) int {
	if ln := len(limit); partial && ln < len(key) {
		return bytes.Compare(key[:ln], limit[:ln])
	}
	return bytes.Compare(key, limit)
}
