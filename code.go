package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code a Code can hold.  BuildTree refuses
// frequency tables that would need longer codes.
const MaxCodeSize = 64

// Code represents a sequence of bits: the path from the root of a Tree to
// one of its leaves, where 0 means left and 1 means right.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a path written as '0' and '1' characters, first bit first.
func ParseCode(path string) (Code, error) {
	if len(path) > MaxCodeSize {
		return Code{}, fmt.Errorf("huffman: code %q is longer than %d bits", path, MaxCodeSize)
	}
	var hc Code
	for index := 0; index < len(path); index++ {
		switch path[index] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, InvalidBitError{Offset: index, Value: path[index]}
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code, counting from the first.
func (hc Code) Bit(i byte) byte {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return byte(hc.Bits>>i) & 1
}

// Append returns the code extended by one bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code %s cannot grow past %d bits", hc, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits | uint64(bit&1)<<hc.Size}
}

// HasPrefix reports whether prefix is a prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits&lowMask(prefix.Size) == prefix.Bits
}

// Path returns the bits of the code as '0' and '1' characters, first bit
// first.
func (hc Code) Path() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Path())
}

// GoString returns a Go expression that reconstructs this Code.
func (hc Code) GoString() string {
	return fmt.Sprintf("huffman.MakeCode(%d, %#x)", hc.Size, hc.Bits)
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	if hc.Size == 0 {
		return hc
	}
	return Code{Size: hc.Size, Bits: mathbits.Reverse64(hc.Bits) >> (64 - hc.Size)}
}

func lowMask(size byte) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}

var (
	_ fmt.Stringer   = Code{}
	_ fmt.GoStringer = Code{}
)
