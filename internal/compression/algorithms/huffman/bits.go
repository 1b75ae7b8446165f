package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bits is a logical bit sequence. Bits are stored most significant bit first;
// the unused bits of the last byte are zero.
type Bits struct {
	data []byte
	n    int
}

// ParseBits converts a string of '0' and '1' characters into Bits.
func ParseBits(s string) (Bits, error) {
	bw := NewBitWriter()
	for i, c := range s {
		if c != '0' && c != '1' {
			return Bits{}, fmt.Errorf("huffman: invalid bit %q at offset %d", c, i)
		}
	}
	if err := bw.WriteCode(Code(s)); err != nil {
		return Bits{}, err
	}
	return bw.Bits()
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return b.n
}

// At returns the bit at offset i.
func (b Bits) At(i int) bool {
	return b.data[i>>3]&(0x80>>uint(i&7)) != 0
}

// Bytes returns the bits packed into ceil(Len/8) bytes.
func (b Bits) Bytes() []byte {
	return b.data[:(b.n+7)/8]
}

// Equal reports whether both sequences hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.n == other.n && bytes.Equal(b.Bytes(), other.Bytes())
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// BitWriter accumulates a logical bit sequence.
type BitWriter struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   int
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter {
	bw := new(BitWriter)
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// WriteBit appends a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	if err := bw.w.WriteBool(bit); err != nil {
		return err
	}
	bw.n++
	return nil
}

// WriteCode appends the bits of code, up to 64 at a time.
func (bw *BitWriter) WriteCode(code Code) error {
	var chunk uint64
	var size uint8
	for i := 0; i < len(code); i++ {
		chunk <<= 1
		if code[i] == '1' {
			chunk |= 1
		}
		size++
		if size == 64 {
			if err := bw.w.WriteBits(chunk, size); err != nil {
				return err
			}
			chunk, size = 0, 0
		}
	}
	if size > 0 {
		if err := bw.w.WriteBits(chunk, size); err != nil {
			return err
		}
	}
	bw.n += len(code)
	return nil
}

// Len returns the number of bits written so far.
func (bw *BitWriter) Len() int {
	return bw.n
}

// Bits flushes the writer and returns the accumulated sequence. The writer
// must not be used afterwards.
func (bw *BitWriter) Bits() (Bits, error) {
	if err := bw.w.Close(); err != nil {
		return Bits{}, err
	}
	return Bits{data: bw.buf.Bytes(), n: bw.n}, nil
}
