package huffman

import (
	"fmt"
)

// Encoder maps bytes to their codes under a fixed CodeTable.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder with the given table.
func (e *Encoder) Init(table CodeTable) {
	*e = Encoder{table: table}
}

// Table returns the table this Encoder was initialized with.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Encode returns the concatenated codes of data in '0'/'1' form.  It fails
// with UnknownSymbolError at the first byte that has no code.
func (e Encoder) Encode(data []byte) (BitSequence, error) {
	out := make(BitSequence, 0, e.sizeHint(data))
	for index, b := range data {
		hc, found := e.table.Lookup(Symbol(b))
		if !found {
			return nil, UnknownSymbolError{Symbol: Symbol(b), Offset: index}
		}
		for i := byte(0); i < hc.Size; i++ {
			out = append(out, '0'+hc.Bit(i))
		}
	}
	return out, nil
}

// EncodePacked is like Encode but returns the compact form.
func (e Encoder) EncodePacked(data []byte) (PackedBits, error) {
	var bw bitWriter
	bw.grow(e.sizeHint(data))
	for index, b := range data {
		hc, found := e.table.Lookup(Symbol(b))
		if !found {
			return PackedBits{}, UnknownSymbolError{Symbol: Symbol(b), Offset: index}
		}
		bw.writeCode(hc)
	}
	return bw.finish(), nil
}

// String returns a short description of this Encoder.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", e.table.Len(), e.table.minSize, e.table.maxSize)
}

func (e Encoder) sizeHint(data []byte) int {
	return len(data) * int(e.table.minSize)
}

// Encode encodes data using table.
func Encode(data []byte, table CodeTable) (BitSequence, error) {
	var e Encoder
	e.Init(table)
	return e.Encode(data)
}

// EncodePacked encodes data using table and packs the result.
func EncodePacked(data []byte, table CodeTable) (PackedBits, error) {
	var e Encoder
	e.Init(table)
	return e.EncodePacked(data)
}

var _ fmt.Stringer = Encoder{}
