package compression

import (
	"bytes"
	"errors"
	"testing"

	"github.com/adilg123/huffpack/internal/compression/algorithms/huffman"
	"github.com/kr/pretty"
)

func TestCompressDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("compression facade round trip "), 30)
	for _, v := range []byte{0, 1, 2} {
		opts := Options{Algorithm: "huffman", Version: v}
		compressed, stats, err := Compress(data, opts)
		if err != nil {
			t.Fatalf("version %d: Compress error %s", v, err)
		}
		if stats.OriginalSize != len(data) || stats.ProcessedSize != len(compressed) {
			t.Errorf("version %d: wrong stats %# v", v, pretty.Formatter(stats))
		}
		if stats.CompressionRatio <= 0 || stats.CompressionRatio >= 100 {
			t.Errorf("version %d: ratio %.2f; want between 0 and 100", v, stats.CompressionRatio)
		}

		got, _, err := Decompress(compressed, Options{})
		if err != nil {
			t.Fatalf("version %d: Decompress error %s", v, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("version %d: round trip mismatch", v)
		}
	}
}

func TestCompress_Empty(t *testing.T) {
	compressed, stats, err := Compress(nil, Options{})
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	if stats.CompressionRatio != 0 {
		t.Errorf("ratio %f for empty input; want 0", stats.CompressionRatio)
	}
	got, _, err := Decompress(compressed, Options{})
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if len(got) != 0 {
		t.Errorf("Decompress = %q; want empty", got)
	}
}

func TestOptions_Validate(t *testing.T) {
	if err := (Options{Algorithm: "lzss"}).Validate(); err == nil {
		t.Errorf("unknown algorithm accepted")
	}
	err := (Options{Version: 5}).Validate()
	if !errors.Is(err, huffman.ErrUnsupportedVersion) {
		t.Errorf("error %v; want %v", err, huffman.ErrUnsupportedVersion)
	}
	if err := (Options{}).Validate(); err != nil {
		t.Errorf("default options rejected: %s", err)
	}
}

func TestDecompress_Malformed(t *testing.T) {
	_, _, err := Decompress([]byte("garbage"), Options{})
	if !IsMalformed(err) {
		t.Errorf("IsMalformed(%v) = false; want true", err)
	}
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze([]byte("aaabbc"))
	if err != nil {
		t.Fatalf("Analyze error %s", err)
	}
	expect := &Analysis{
		Size:        6,
		Symbols:     3,
		Frequencies: map[string]uint64{"97": 3, "98": 2, "99": 1},
		Codes:       map[string]string{"97": "0", "98": "11", "99": "10"},
		PayloadBits: 9,
		MinCodeLen:  1,
		MaxCodeLen:  2,
	}
	if diff := pretty.Diff(expect, a); len(diff) != 0 {
		t.Errorf("wrong analysis: %v", diff)
	}

	if _, err := Analyze(nil); !errors.Is(err, huffman.ErrEmptyInput) {
		t.Errorf("Analyze(nil) error %v; want %v", err, huffman.ErrEmptyInput)
	}
}

func TestGetSupportedAlgorithms(t *testing.T) {
	algs := GetSupportedAlgorithms()
	algs[0] = "changed"
	if SupportedAlgorithms[0] != "huffman" {
		t.Errorf("GetSupportedAlgorithms returned the package slice")
	}
}
