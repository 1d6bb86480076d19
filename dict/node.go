package dict

// node definition for dict, owns a copy of both key and value.
type dictnode struct {
	key   []byte
	value []byte
}

func newdictnode(key, value []byte) *dictnode {
	nd := &dictnode{
		key:   make([]byte, len(key)),
		value: make([]byte, len(value)),
	}
	copy(nd.key, key)
	copy(nd.value, value)
	return nd
}
