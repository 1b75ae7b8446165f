package huffman

import (
	"fmt"
	"math"
)

// FrequencyTable maps each byte to the number of times it occurs in an
// input. Symbols with a count of zero are absent from the table.
type FrequencyTable struct {
	counts [256]uint64
}

// CountFrequencies builds the FrequencyTable of data. An empty input yields
// an empty table.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft.counts[b]++
	}
	return ft
}

// NewFrequencyTable builds a FrequencyTable from explicit counts, as read back
// from a container header. Zero counts are dropped. The sum of all counts
// must fit in a uint64.
func NewFrequencyTable(counts map[byte]uint64) (FrequencyTable, error) {
	var ft FrequencyTable
	var total uint64
	for sym, n := range counts {
		if n > math.MaxUint64-total {
			return FrequencyTable{}, fmt.Errorf("frequency total overflows at symbol %d", sym)
		}
		total += n
		ft.counts[sym] = n
	}
	return ft, nil
}

// Count returns the number of occurrences of sym. ok is false if sym does not
// occur at all.
func (ft FrequencyTable) Count(sym byte) (n uint64, ok bool) {
	n = ft.counts[sym]
	return n, n != 0
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	n := 0
	for _, c := range ft.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, c := range ft.counts {
		total += c
	}
	return total
}

// Symbols returns the present symbols in ascending order.
func (ft FrequencyTable) Symbols() []byte {
	syms := make([]byte, 0, 16)
	for i, c := range ft.counts {
		if c != 0 {
			syms = append(syms, byte(i))
		}
	}
	return syms
}

// Map returns a copy of the table as a map holding only present symbols.
func (ft FrequencyTable) Map() map[byte]uint64 {
	m := make(map[byte]uint64)
	for i, c := range ft.counts {
		if c != 0 {
			m[byte(i)] = c
		}
	}
	return m
}
