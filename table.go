package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol of a Tree to its Code.  It is a value type and
// is never modified after GenerateCodeTable returns it.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	order   []Symbol
	minSize byte
	maxSize byte
}

// GenerateCodeTable assigns every leaf of the tree the path leading to it.
//
// If the root itself is a leaf, its symbol is assigned the one-bit code "0"
// so that every encoded symbol occupies at least one bit.  A nil or empty
// tree yields an empty table.
func GenerateCodeTable(t *Tree) CodeTable {
	var table CodeTable
	var hasMinMax bool
	t.walk(func(n *treeNode, path Code) bool {
		if !n.isLeaf() {
			return true
		}
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}

		table.codes[n.symbol] = path
		table.present[n.symbol] = true
		table.order = append(table.order, n.symbol)

		size := path.Size
		if !hasMinMax {
			hasMinMax = true
			table.minSize = size
			table.maxSize = size
		} else if table.minSize > size {
			table.minSize = size
		} else if table.maxSize < size {
			table.maxSize = size
		}
		return true
	})
	return table
}

// Lookup returns the code for symbol, or false if it has none.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return len(ct.order)
}

// Symbols returns the coded symbols in tree order, leftmost leaf first.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a code.
func (ct CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for _, symbol := range ct.order {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// EncodedSize returns the number of bits Encode would produce for an input
// with the given frequencies.
func (ct CodeTable) EncodedSize(ft FrequencyTable) (uint64, error) {
	var total uint64
	for _, entry := range ft.entries {
		hc, found := ct.Lookup(entry.Symbol)
		if !found {
			return 0, UnknownSymbolError{Symbol: entry.Symbol, Offset: -1}
		}
		total += uint64(hc.Size) * entry.Count
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", Symbol(symbol), ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
