package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Decode reverses Encode. It needs the table that was used for encoding. A
// bit sequence that does not split into codes of the table yields
// ErrMalformedStream. The raw stream carries no length, so a truncation that
// ends on a code boundary decodes to a shorter output without error; use
// Decompress when truncation must be detected.
func Decode(packed []byte, table *CodeTable, v Version) ([]byte, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("%w: no codes", ErrInvalidCodeTable)
	}
	bits, err := Unpack(packed, v)
	if err != nil {
		return nil, err
	}
	return decodeBits(bits, table, bits.Len()/table.MaxLen())
}

// Decompress reverses Compress. The tree is rebuilt from the frequency table
// in the header; the symbol count and the checksum of the output are
// verified.
func Decompress(data []byte) ([]byte, error) {
	h, rest, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	bits, err := Unpack(rest, h.version)
	if err != nil {
		return nil, err
	}

	total := h.freqs.Total()
	if total == 0 {
		if bits.Len() != 0 {
			return nil, fmt.Errorf("%w: %d payload bits for empty input", ErrMalformedStream, bits.Len())
		}
		if h.crc != checksum(nil) {
			return nil, fmt.Errorf("%w: checksum mismatch", ErrMalformedStream)
		}
		return []byte{}, nil
	}

	// Every symbol costs at least one bit.
	if total > uint64(bits.Len()) {
		return nil, fmt.Errorf("%w: header claims %d symbols in %d payload bits", ErrMalformedStream, total, bits.Len())
	}

	root, err := BuildTree(h.freqs)
	if err != nil {
		return nil, err
	}
	table := NewCodeTable(root)
	if want := table.EncodedBits(h.freqs); uint64(bits.Len()) != want {
		return nil, fmt.Errorf("%w: payload has %d bits, expected %d", ErrMalformedStream, bits.Len(), want)
	}

	out, err := decodeBits(bits, table, int(total))
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != total {
		return nil, fmt.Errorf("%w: decoded %d symbols, expected %d", ErrMalformedStream, len(out), total)
	}
	if checksum(out) != h.crc {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrMalformedStream)
	}
	return out, nil
}

// trieNode is a node of the decoding trie. Index 0 is the root; since the
// root is never a child, a child index of 0 means no edge.
type trieNode struct {
	child [2]int32
	sym   byte
	leaf  bool
}

func buildTrie(table *CodeTable) []trieNode {
	trie := make([]trieNode, 1, 2*table.Len())
	for _, sym := range table.Symbols() {
		code, _ := table.Code(sym)
		cur := int32(0)
		for i := 0; i < len(code); i++ {
			b := code[i] - '0'
			next := trie[cur].child[b]
			if next == 0 {
				next = int32(len(trie))
				trie = append(trie, trieNode{})
				trie[cur].child[b] = next
			}
			cur = next
		}
		trie[cur].sym = sym
		trie[cur].leaf = true
	}
	return trie
}

// decodeBits walks bits from left to right through the trie of table,
// emitting a symbol and returning to the root whenever a leaf is reached.
func decodeBits(bits Bits, table *CodeTable, sizeHint int) ([]byte, error) {
	if sizeHint > bits.Len() {
		sizeHint = bits.Len()
	}
	trie := buildTrie(table)
	out := make([]byte, 0, sizeHint)
	r := bitio.NewReader(bytes.NewReader(bits.Bytes()))

	cur, depth := int32(0), 0
	for i := 0; i < bits.Len(); i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStream, err)
		}
		var b int
		if bit {
			b = 1
		}
		next := trie[cur].child[b]
		if next == 0 {
			return nil, fmt.Errorf("%w: no code matches bits at offset %d", ErrMalformedStream, i-depth)
		}
		if trie[next].leaf {
			out = append(out, trie[next].sym)
			cur, depth = 0, 0
			continue
		}
		cur = next
		depth++
	}
	if cur != 0 {
		return nil, fmt.Errorf("%w: %d trailing bits match no code", ErrMalformedStream, depth)
	}
	return out, nil
}
