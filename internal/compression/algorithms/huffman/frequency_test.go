package huffman

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/kr/pretty"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("aaabbc"))

	expect := map[byte]uint64{'a': 3, 'b': 2, 'c': 1}
	if diff := pretty.Diff(expect, ft.Map()); len(diff) != 0 {
		t.Errorf("wrong frequencies: %v", diff)
	}
	if n, ok := ft.Count('z'); ok || n != 0 {
		t.Errorf("Count('z') = %d, %t; want 0, false", n, ok)
	}
	if ft.Len() != 3 {
		t.Errorf("Len() = %d; want 3", ft.Len())
	}
	if ft.Total() != 6 {
		t.Errorf("Total() = %d; want 6", ft.Total())
	}
	if syms := ft.Symbols(); !bytes.Equal(syms, []byte("abc")) {
		t.Errorf("Symbols() = %q; want %q", syms, "abc")
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies(nil)
	if ft.Len() != 0 || ft.Total() != 0 || len(ft.Symbols()) != 0 {
		t.Errorf("empty input gave non-empty table %v", ft.Map())
	}
}

func TestNewFrequencyTable(t *testing.T) {
	ft, err := NewFrequencyTable(map[byte]uint64{1: 4, 2: 0, 200: 7})
	if err != nil {
		t.Fatalf("NewFrequencyTable error %s", err)
	}
	if ft.Len() != 2 {
		t.Errorf("zero count kept: Len() = %d; want 2", ft.Len())
	}
	if _, ok := ft.Count(2); ok {
		t.Errorf("symbol 2 with zero count reported present")
	}

	_, err = NewFrequencyTable(map[byte]uint64{1: math.MaxUint64, 2: 1})
	if err == nil {
		t.Errorf("overflowing total accepted")
	}
	if errors.Is(err, ErrMalformedStream) {
		t.Errorf("overflow error should not be a stream error by itself")
	}
}
