package Trees

import (
	"math/bits"
)

// bitArray of fixed length, used to mark arena slots.
type bitArray struct {
	bits []uint
}

func newBitArray(size int) bitArray {
	return bitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

func (u bitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u bitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}
