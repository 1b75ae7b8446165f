package huffman

import "fmt"

// Encode compresses data into a padded bit stream and returns it together
// with the code table that was used. The stream alone cannot be decoded;
// pass the table to Decode. Empty input yields ErrEmptyInput.
func Encode(data []byte, v Version) ([]byte, *CodeTable, error) {
	if err := checkVersion(v); err != nil {
		return nil, nil, err
	}
	return encode(data, CountFrequencies(data), v)
}

func encode(data []byte, ft FrequencyTable, v Version) ([]byte, *CodeTable, error) {
	root, err := BuildTree(ft)
	if err != nil {
		return nil, nil, err
	}
	table := NewCodeTable(root)
	bits, err := EncodeBits(data, table)
	if err != nil {
		return nil, nil, err
	}
	packed, err := Pack(bits, v)
	if err != nil {
		return nil, nil, err
	}
	return packed, table, nil
}

// EncodeBits concatenates the codes of all bytes of data in input order.
func EncodeBits(data []byte, table *CodeTable) (Bits, error) {
	bw := NewBitWriter()
	for i, b := range data {
		code, ok := table.Code(b)
		if !ok {
			return Bits{}, fmt.Errorf("huffman: symbol %d at offset %d missing from code table", b, i)
		}
		if err := bw.WriteCode(code); err != nil {
			return Bits{}, err
		}
	}
	return bw.Bits()
}

// Compress compresses data into a self-contained container using
// DefaultVersion.
func Compress(data []byte) ([]byte, error) {
	return CompressVersion(data, DefaultVersion)
}

// CompressVersion compresses data into a self-contained container. The
// container holds the frequency table, a CRC-32 of data and the padded bit
// stream. Empty input produces a valid container that decompresses to an
// empty slice.
func CompressVersion(data []byte, v Version) ([]byte, error) {
	if err := checkVersion(v); err != nil {
		return nil, err
	}
	ft := CountFrequencies(data)

	var packed []byte
	var err error
	if len(data) == 0 {
		packed, err = Pack(Bits{}, v)
	} else {
		packed, _, err = encode(data, ft, v)
	}
	if err != nil {
		return nil, err
	}

	h := header{version: v, freqs: ft, crc: checksum(data)}
	out := make([]byte, 0, 16+4*ft.Len()+len(packed))
	out = h.appendTo(out)
	return append(out, packed...), nil
}
