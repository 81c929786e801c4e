package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, stable within a process.
// Nodes for which Compare returns 0 have the same hash.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case FloatType:
		h.WriteString(floatText(n))
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for i, field := range n.Fields {
			h.WriteString(field)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
