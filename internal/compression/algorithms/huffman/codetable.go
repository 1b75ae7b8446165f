package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/bits"
	"sort"
	"strings"
)

// Code is a prefix code written as a string of '0' and '1' characters. A
// valid Code is never empty.
type Code string

// CodeTable maps symbols to their codes and back. It is read-only once
// constructed.
type CodeTable struct {
	codes   [256]Code
	inverse map[Code]byte
	minLen  int
	maxLen  int
}

// NewCodeTable walks the tree below root and assigns "0" to every left edge
// and "1" to every right edge. A root that is itself a leaf gets the code
// "0" so that a single-symbol input still costs one bit per symbol.
func NewCodeTable(root Node) *CodeTable {
	ct := &CodeTable{inverse: make(map[Code]byte)}
	if leaf, ok := root.(*Leaf); ok {
		ct.add(leaf.Symbol, "0")
		return ct
	}

	prefix := make([]byte, 0, 16)
	var walk func(Node)
	walk = func(n Node) {
		switch node := n.(type) {
		case *Leaf:
			ct.add(node.Symbol, Code(prefix))
		case *Internal:
			prefix = append(prefix, '0')
			walk(node.Left)
			prefix[len(prefix)-1] = '1'
			walk(node.Right)
			prefix = prefix[:len(prefix)-1]
		}
	}
	walk(root)
	return ct
}

// NewCodeTableFromCodes builds a CodeTable from an explicit mapping. The
// mapping must be non-empty and every code must be a non-empty binary string
// that is not a prefix of any other code.
func NewCodeTableFromCodes(codes map[byte]Code) (*CodeTable, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: no codes", ErrInvalidCodeTable)
	}
	sorted := make([]Code, 0, len(codes))
	ct := &CodeTable{inverse: make(map[Code]byte, len(codes))}
	for sym, code := range codes {
		if code == "" {
			return nil, fmt.Errorf("%w: empty code for symbol %d", ErrInvalidCodeTable, sym)
		}
		if strings.Trim(string(code), "01") != "" {
			return nil, fmt.Errorf("%w: code %q for symbol %d is not binary", ErrInvalidCodeTable, code, sym)
		}
		if other, found := ct.inverse[code]; found {
			return nil, fmt.Errorf("%w: symbols %d and %d share code %q", ErrInvalidCodeTable, other, sym, code)
		}
		ct.add(sym, code)
		sorted = append(sorted, code)
	}

	// In lexical order a code is immediately followed by the codes it
	// prefixes, so checking neighbours is enough.
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i := 1; i < len(sorted); i++ {
		if strings.HasPrefix(string(sorted[i]), string(sorted[i-1])) {
			return nil, fmt.Errorf("%w: %q is a prefix of %q", ErrInvalidCodeTable, sorted[i-1], sorted[i])
		}
	}
	return ct, nil
}

func (ct *CodeTable) add(sym byte, code Code) {
	ct.codes[sym] = code
	ct.inverse[code] = sym
	if len(ct.inverse) == 1 || len(code) < ct.minLen {
		ct.minLen = len(code)
	}
	if len(code) > ct.maxLen {
		ct.maxLen = len(code)
	}
}

// Code returns the code assigned to sym.
func (ct *CodeTable) Code(sym byte) (Code, bool) {
	code := ct.codes[sym]
	return code, code != ""
}

// Symbol returns the symbol whose code is exactly code.
func (ct *CodeTable) Symbol(code Code) (byte, bool) {
	sym, ok := ct.inverse[code]
	return sym, ok
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.inverse)
}

// Symbols returns the symbols of the table in ascending order.
func (ct *CodeTable) Symbols() []byte {
	syms := make([]byte, 0, len(ct.inverse))
	for i, code := range ct.codes {
		if code != "" {
			syms = append(syms, byte(i))
		}
	}
	return syms
}

// MinLen is the bit length of the shortest code.
func (ct *CodeTable) MinLen() int {
	return ct.minLen
}

// MaxLen is the bit length of the longest code.
func (ct *CodeTable) MaxLen() int {
	return ct.maxLen
}

// Map returns a copy of the symbol to code mapping.
func (ct *CodeTable) Map() map[byte]Code {
	m := make(map[byte]Code, len(ct.inverse))
	for code, sym := range ct.inverse {
		m[sym] = code
	}
	return m
}

// EncodedBits returns the number of payload bits needed to encode an input
// with the frequencies ft. Symbols missing from the table are not counted.
// The result saturates at math.MaxUint64.
func (ct *CodeTable) EncodedBits(ft FrequencyTable) uint64 {
	var n uint64
	for _, sym := range ft.Symbols() {
		count, _ := ft.Count(sym)
		hi, lo := bits.Mul64(count, uint64(len(ct.codes[sym])))
		var carry uint64
		n, carry = bits.Add64(n, lo, 0)
		if hi != 0 || carry != 0 {
			return math.MaxUint64
		}
	}
	return n
}

// Dump writes a programmer-readable listing of the table to w.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinLen() = %d\n", ct.minLen)
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", ct.maxLen)
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tCode(%d) = %q\n", sym, ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
