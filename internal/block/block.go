package block

import "math/bits"

const (
	// Bits is the number of identifier bits addressed inside a block.
	// 16 bits = 65536 flags per block.
	Bits = 16

	// Size is the number of presence flags in a block. It doubles as the
	// "not found" sentinel returned by NextSet.
	Size = 1 << Bits

	// Mask extracts the in-block offset from an identifier.
	Mask = Size - 1

	wordBits  = 32
	wordShift = 5 // log2(wordBits)
	wordMask  = wordBits - 1

	// wordsPerBlock is the number of uint32 words in a block.
	// 65536 bits / 32 bits/word = 2048 words.
	wordsPerBlock = Size / wordBits
)

// Block is a fixed-size bitmap of Size presence flags packed into uint32 words.
//
// The zero value is an empty block. Block is not safe for concurrent use.
type Block struct {
	words [wordsPerBlock]uint32
}

// New returns an empty block.
func New() *Block {
	return &Block{}
}

// Get reports whether the flag at offset is set.
// Only the low Bits bits of offset are used.
func (b *Block) Get(offset uint32) bool {
	offset &= Mask
	return b.words[offset>>wordShift]&(1<<(offset&wordMask)) != 0
}

// Set sets or clears the flag at offset.
// Only the low Bits bits of offset are used.
func (b *Block) Set(offset uint32, value bool) {
	offset &= Mask
	w := &b.words[offset>>wordShift]
	mask := uint32(1) << (offset & wordMask)
	if value {
		*w |= mask
	} else {
		*w &^= mask
	}
}

// NextSet returns the offset of the first set flag at or after start.
// Returns Size if no flag is set in [start, Size).
//
// Zero words are skipped whole; only the first nonzero word is resolved
// down to the bit.
func (b *Block) NextSet(start int) int {
	if start < 0 {
		start = 0
	}
	if start >= Size {
		return Size
	}

	wordIdx := start >> wordShift

	// Mask out bits before start in the first word.
	if val := b.words[wordIdx] &^ (1<<(uint(start)&wordMask) - 1); val != 0 {
		return wordIdx<<wordShift + bits.TrailingZeros32(val)
	}

	for w := wordIdx + 1; w < wordsPerBlock; w++ {
		if val := b.words[w]; val != 0 {
			return w<<wordShift + bits.TrailingZeros32(val)
		}
	}

	return Size
}

// Empty reports whether no flag is set.
func (b *Block) Empty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set flags.
func (b *Block) Count() int {
	count := 0
	for _, w := range b.words {
		if w != 0 {
			count += bits.OnesCount32(w)
		}
	}
	return count
}
