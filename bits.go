package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BitSequence is an encoded stream with one ASCII '0' or '1' per bit.  It is
// easy to read and to corrupt; PackedBits is the compact form.
type BitSequence []byte

// ParseBitSequence converts a string of '0' and '1' characters.  No
// validation is done here; invalid characters are reported by the decoder.
func ParseBitSequence(s string) BitSequence {
	return BitSequence(s)
}

// Len returns the number of bits.
func (bs BitSequence) Len() int {
	return len(bs)
}

// String returns the bits as text.
func (bs BitSequence) String() string {
	return string(bs)
}

// Pack converts the sequence to PackedBits.  It fails with InvalidBitError
// if any element is not '0' or '1'.
func (bs BitSequence) Pack() (PackedBits, error) {
	var bw bitWriter
	bw.grow(len(bs))
	for index, ch := range bs {
		switch ch {
		case '0':
			bw.writeBit(0)
		case '1':
			bw.writeBit(1)
		default:
			return PackedBits{}, InvalidBitError{Offset: index, Value: ch}
		}
	}
	return bw.finish(), nil
}

// PackedBits is an encoded stream stored eight bits per byte, most
// significant bit first.  Bits past Len in the last byte are zero.
type PackedBits struct {
	Data []byte
	Len  int
}

// MakePackedBits wraps already-packed data holding numBits bits.
func MakePackedBits(data []byte, numBits int) (PackedBits, error) {
	if numBits < 0 || numBits > 8*len(data) {
		return PackedBits{}, fmt.Errorf("huffman: %d bits do not fit in %d bytes", numBits, len(data))
	}
	return PackedBits{Data: data, Len: numBits}, nil
}

// Bit returns the i'th bit, 0 or 1.
func (pb PackedBits) Bit(i int) byte {
	assert.Assertf(i >= 0 && i < pb.Len, "bit index %d out of range [0, %d)", i, pb.Len)
	return (pb.Data[i>>3] >> (7 - uint(i&7))) & 1
}

// Unpack converts to a BitSequence.
func (pb PackedBits) Unpack() BitSequence {
	out := make(BitSequence, pb.Len)
	for i := range out {
		out[i] = '0' + pb.Bit(i)
	}
	return out
}

// String returns the bits as text.
func (pb PackedBits) String() string {
	return string(pb.Unpack())
}

// bitWriter accumulates bits most significant first.  Codes arrive with
// their first bit in the least significant position, so they are reversed
// before being shifted in.
type bitWriter struct {
	buf   []byte
	accum uint64
	nbits uint
	total int
}

func (bw *bitWriter) grow(numBits int) {
	if need := (numBits + 7) / 8; cap(bw.buf)-len(bw.buf) < need {
		buf := make([]byte, len(bw.buf), len(bw.buf)+need)
		copy(buf, bw.buf)
		bw.buf = buf
	}
}

func (bw *bitWriter) writeBit(bit byte) {
	bw.accum = bw.accum<<1 | uint64(bit&1)
	bw.nbits++
	bw.total++
	if bw.nbits == 8 {
		bw.buf = append(bw.buf, byte(bw.accum))
		bw.accum = 0
		bw.nbits = 0
	}
}

func (bw *bitWriter) writeCode(hc Code) {
	rev := hc.Reversed().Bits
	for remaining := uint(hc.Size); remaining > 0; {
		n := 8 - bw.nbits
		if n > remaining {
			n = remaining
		}
		remaining -= n
		chunk := (rev >> remaining) & lowMask(byte(n))
		bw.accum = bw.accum<<n | chunk
		bw.nbits += n
		bw.total += int(n)
		if bw.nbits == 8 {
			bw.buf = append(bw.buf, byte(bw.accum))
			bw.accum = 0
			bw.nbits = 0
		}
	}
}

func (bw *bitWriter) finish() PackedBits {
	if bw.nbits > 0 {
		bw.buf = append(bw.buf, byte(bw.accum<<(8-bw.nbits)))
		bw.accum = 0
		bw.nbits = 0
	}
	return PackedBits{Data: bw.buf, Len: bw.total}
}
