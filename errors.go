package huffman

import (
	"errors"
	"fmt"
)

// Sentinels for use with errors.Is.  Each error type below reports itself as
// matching its sentinel.
var (
	ErrEmptyInput      = errors.New("huffman: empty input")
	ErrUnknownSymbol   = errors.New("huffman: unknown symbol")
	ErrInvalidBit      = errors.New("huffman: invalid bit")
	ErrTruncatedStream = errors.New("huffman: truncated stream")
	ErrNullTree        = errors.New("huffman: null tree")
)

// ErrCodeTooLong is returned by BuildTree when some symbol would need a code
// longer than MaxCodeSize bits.
var ErrCodeTooLong = errors.New("huffman: invalid bit length while constructing Huffman tree")

// EmptyInputError is returned by BuildTree when the frequency table has no
// entries.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "huffman: cannot build a tree from an empty frequency table"
}

func (EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// UnknownSymbolError is returned by the encoder when an input byte has no
// code in the table.
type UnknownSymbolError struct {
	// Symbol is the byte without a code.
	Symbol Symbol

	// Offset is the index of Symbol in the input, or -1 if the miss was
	// not tied to a position.
	Offset int
}

func (err UnknownSymbolError) Error() string {
	if err.Offset < 0 {
		return fmt.Sprintf("huffman: no code for symbol %v", err.Symbol)
	}
	return fmt.Sprintf("huffman: no code for symbol %v at input offset %d", err.Symbol, err.Offset)
}

func (UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// InvalidBitError is returned by the decoder when the stream contains a value
// that is not a bit, or a bit that leads nowhere in the tree.
type InvalidBitError struct {
	// Offset is the bit index within the stream.
	Offset int

	// Value is the offending byte.  For a packed stream it is 0 or 1.
	Value byte
}

func (err InvalidBitError) Error() string {
	if isBitValue(err.Value) {
		return fmt.Sprintf("huffman: bit %q at offset %d has no branch in the tree", bitChar(err.Value), err.Offset)
	}
	return fmt.Sprintf("huffman: invalid bit value %q at offset %d", rune(err.Value), err.Offset)
}

func (InvalidBitError) Is(target error) bool {
	return target == ErrInvalidBit
}

// TruncatedStreamError is returned by the decoder when the stream ends in
// the middle of a code.
type TruncatedStreamError struct {
	// Offset is the bit index at which the incomplete code started.
	Offset int

	// Pending is the number of bits of the incomplete code that were read.
	Pending int
}

func (err TruncatedStreamError) Error() string {
	return fmt.Sprintf("huffman: stream ends inside a code: %d trailing bits starting at offset %d", err.Pending, err.Offset)
}

func (TruncatedStreamError) Is(target error) bool {
	return target == ErrTruncatedStream
}

// NullTreeError is returned when decoding is attempted without a tree.
type NullTreeError struct{}

func (NullTreeError) Error() string {
	return "huffman: decode requires a non-empty tree"
}

func (NullTreeError) Is(target error) bool {
	return target == ErrNullTree
}

func isBitValue(v byte) bool {
	return v <= 1 || v == '0' || v == '1'
}

func bitChar(v byte) byte {
	switch v {
	case 0:
		return '0'
	case 1:
		return '1'
	}
	return v
}

var (
	_ error = EmptyInputError{}
	_ error = UnknownSymbolError{}
	_ error = InvalidBitError{}
	_ error = TruncatedStreamError{}
	_ error = NullTreeError{}
)
