package huffman

import "fmt"

// Version selects how a bit sequence is padded to a byte boundary. It is
// stored in the container header.
type Version byte

const (
	// VersionFullPad always appends 1 to 8 zero bits, so a sequence that
	// is already byte aligned gains a whole zero byte.
	VersionFullPad Version = 1

	// VersionMinimalPad appends 0 to 7 zero bits.
	VersionMinimalPad Version = 2

	// DefaultVersion is used by Compress.
	DefaultVersion = VersionMinimalPad
)

// Valid reports whether v is a known version.
func (v Version) Valid() bool {
	return v == VersionFullPad || v == VersionMinimalPad
}

func (v Version) String() string {
	switch v {
	case VersionFullPad:
		return "full-pad"
	case VersionMinimalPad:
		return "minimal-pad"
	}
	return fmt.Sprintf("Version(%d)", byte(v))
}

// padding returns the number of zero bits appended to n bits.
func (v Version) padding(n int) int {
	if v == VersionFullPad {
		return 8 - n%8
	}
	return (8 - n%8) % 8
}

func (v Version) checkPadding(pad int) bool {
	if v == VersionFullPad {
		return 1 <= pad && pad <= 8
	}
	return pad <= 7
}

func checkVersion(v Version) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, byte(v))
	}
	return nil
}

// Pack pads b with zero bits to a byte boundary and prepends a byte holding
// the number of padding bits.
func Pack(b Bits, v Version) ([]byte, error) {
	if err := checkVersion(v); err != nil {
		return nil, err
	}
	pad := v.padding(b.n)
	payload := b.Bytes()
	out := make([]byte, 0, 2+len(payload))
	out = append(out, byte(pad))
	out = append(out, payload...)
	if pad == 8 {
		out = append(out, 0)
	}
	return out, nil
}

// Unpack reverses Pack. It reads the padding count from the first byte and
// drops that many bits from the end of the payload. The padding bits must be
// zero.
func Unpack(data []byte, v Version) (Bits, error) {
	if err := checkVersion(v); err != nil {
		return Bits{}, err
	}
	if len(data) == 0 {
		return Bits{}, fmt.Errorf("%w: missing padding header", ErrMalformedStream)
	}
	pad := int(data[0])
	if !v.checkPadding(pad) {
		return Bits{}, fmt.Errorf("%w: padding count %d invalid for %s", ErrMalformedStream, pad, v)
	}
	payload := data[1:]
	total := 8 * len(payload)
	if pad > total {
		return Bits{}, fmt.Errorf("%w: padding count %d exceeds payload of %d bits", ErrMalformedStream, pad, total)
	}

	all := Bits{data: payload, n: total}
	n := total - pad
	for i := n; i < total; i++ {
		if all.At(i) {
			return Bits{}, fmt.Errorf("%w: non-zero padding bit", ErrMalformedStream)
		}
	}
	return Bits{data: payload[:(n+7)/8], n: n}, nil
}
