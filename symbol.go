package huffman

import (
	"strconv"
)

// Symbol represents one byte of input.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// String returns a Go-quoted form of the symbol, e.g. 'a' or '\x00'.
func (s Symbol) String() string {
	return strconv.QuoteRune(rune(s))
}
