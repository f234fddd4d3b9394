package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyEntry pairs a Symbol with its number of occurrences.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint64
}

// FrequencyTable holds one FrequencyEntry per distinct Symbol of some input,
// in order of first occurrence.  The zero value is an empty table.
type FrequencyTable struct {
	entries []FrequencyEntry
	total   uint64
}

// ComputeFrequencies counts the occurrences of each byte in data.
func ComputeFrequencies(data []byte) FrequencyTable {
	var counts [NumSymbols]uint64
	var order []Symbol
	for _, b := range data {
		if counts[b] == 0 {
			order = append(order, Symbol(b))
		}
		counts[b]++
	}

	entries := make([]FrequencyEntry, len(order))
	for index, symbol := range order {
		entries[index] = FrequencyEntry{Symbol: symbol, Count: counts[symbol]}
	}
	return FrequencyTable{entries: entries, total: uint64(len(data))}
}

// MakeFrequencyTable builds a table from explicit entries.  Entries with a
// zero count are skipped.  A Symbol listed twice is an error, as is a set of
// counts whose sum does not fit in a uint64.
func MakeFrequencyTable(entries []FrequencyEntry) (FrequencyTable, error) {
	var seen [NumSymbols]bool
	out := make([]FrequencyEntry, 0, len(entries))
	var total uint64
	for _, entry := range entries {
		if entry.Count == 0 {
			continue
		}
		if seen[entry.Symbol] {
			return FrequencyTable{}, fmt.Errorf("huffman: duplicate frequency entry for symbol %v", entry.Symbol)
		}
		if total+entry.Count < total {
			return FrequencyTable{}, fmt.Errorf("huffman: frequency total overflows uint64 at symbol %v", entry.Symbol)
		}
		seen[entry.Symbol] = true
		out = append(out, entry)
		total += entry.Count
	}
	return FrequencyTable{entries: out, total: total}, nil
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.entries)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol, or 0.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	for _, entry := range ft.entries {
		if entry.Symbol == symbol {
			return entry.Count
		}
	}
	return 0
}

// Entries returns a copy of the table's entries in first-occurrence order.
func (ft FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, entry := range ft.entries {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", entry.Symbol, entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
