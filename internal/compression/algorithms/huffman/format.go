package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// headerMagic starts every compressed container.
var headerMagic = []byte{'H', 'U', 'F', 0x00}

// header is the metadata in front of the padded bit stream. It carries the
// frequency table so that the decoder can rebuild the exact same tree.
type header struct {
	version Version
	freqs   FrequencyTable
	crc     uint32
}

// appendTo appends the binary form of the header to p.
func (h *header) appendTo(p []byte) []byte {
	p = append(p, headerMagic...)
	p = append(p, byte(h.version))
	syms := h.freqs.Symbols()
	p = binary.AppendUvarint(p, uint64(len(syms)))
	for _, sym := range syms {
		n, _ := h.freqs.Count(sym)
		p = append(p, sym)
		p = binary.AppendUvarint(p, n)
	}
	return binary.LittleEndian.AppendUint32(p, h.crc)
}

// parseHeader reads a header from the front of data and returns the
// remaining bytes.
func parseHeader(data []byte) (h header, rest []byte, err error) {
	defer func() {
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = fmt.Errorf("%w: truncated header", ErrMalformedStream)
			} else if !errors.Is(err, ErrMalformedStream) {
				err = fmt.Errorf("%w: %v", ErrMalformedStream, err)
			}
		}
	}()

	r := bytes.NewReader(data)
	p := make([]byte, len(headerMagic)+1)
	if _, err = io.ReadFull(r, p); err != nil {
		return h, nil, err
	}
	if !bytes.Equal(p[:len(headerMagic)], headerMagic) {
		return h, nil, errors.New("invalid header magic")
	}
	h.version = Version(p[len(headerMagic)])
	if err = checkVersion(h.version); err != nil {
		return h, nil, err
	}

	k, err := binary.ReadUvarint(r)
	if err != nil {
		return h, nil, err
	}
	if k > 256 {
		return h, nil, fmt.Errorf("alphabet size %d exceeds 256", k)
	}
	counts := make(map[byte]uint64, k)
	prev := -1
	for i := uint64(0); i < k; i++ {
		sym, err := r.ReadByte()
		if err != nil {
			return h, nil, err
		}
		if int(sym) <= prev {
			return h, nil, fmt.Errorf("symbol %d out of order", sym)
		}
		prev = int(sym)
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return h, nil, err
		}
		if n == 0 {
			return h, nil, fmt.Errorf("zero count for symbol %d", sym)
		}
		counts[sym] = n
	}
	if h.freqs, err = NewFrequencyTable(counts); err != nil {
		return h, nil, err
	}

	var crc [4]byte
	if _, err = io.ReadFull(r, crc[:]); err != nil {
		return h, nil, err
	}
	h.crc = binary.LittleEndian.Uint32(crc[:])

	return h, data[len(data)-r.Len():], nil
}

func checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
