package huffman

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func makeTestCodeTable(t *testing.T) *CodeTable {
	t.Helper()
	ft, err := NewFrequencyTable(map[byte]uint64{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45})
	if err != nil {
		t.Fatalf("NewFrequencyTable error %s", err)
	}
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree error %s", err)
	}
	return NewCodeTable(root)
}

func TestCodeTable_Dump(t *testing.T) {
	ct := makeTestCodeTable(t)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinLen() = 1\n",
		"\tMaxLen() = 4\n",
		"\tCode(0) = \"1100\"\n",
		"\tCode(1) = \"1101\"\n",
		"\tCode(2) = \"100\"\n",
		"\tCode(3) = \"101\"\n",
		"\tCode(4) = \"111\"\n",
		"\tCode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_Inverse(t *testing.T) {
	ct := makeTestCodeTable(t)
	for _, sym := range ct.Symbols() {
		code, ok := ct.Code(sym)
		if !ok {
			t.Fatalf("Code(%d) missing", sym)
		}
		back, ok := ct.Symbol(code)
		if !ok || back != sym {
			t.Errorf("Symbol(%q) = %d, %t; want %d, true", code, back, ok, sym)
		}
	}
	if _, ok := ct.Symbol("1"); ok {
		t.Errorf("Symbol(\"1\") found for an internal node")
	}
	if _, ok := ct.Code(6); ok {
		t.Errorf("Code(6) found for an absent symbol")
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	inputs := map[string][]byte{
		"text":   []byte("it was the best of times, it was the worst of times"),
		"all256": allBytes(),
		"skewed": skewed(),
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			root, err := BuildTree(CountFrequencies(data))
			if err != nil {
				t.Fatalf("BuildTree error %s", err)
			}
			codes := NewCodeTable(root).Map()
			for a, ca := range codes {
				for b, cb := range codes {
					if a != b && strings.HasPrefix(string(cb), string(ca)) {
						t.Errorf("code %q of %d is a prefix of code %q of %d", ca, a, cb, b)
					}
				}
			}
		})
	}
}

func TestCodeTable_SingleSymbol(t *testing.T) {
	root, err := BuildTree(CountFrequencies([]byte("zzz")))
	if err != nil {
		t.Fatalf("BuildTree error %s", err)
	}
	ct := NewCodeTable(root)
	expect := map[byte]Code{'z': "0"}
	if diff := pretty.Diff(expect, ct.Map()); len(diff) != 0 {
		t.Errorf("wrong codes: %v", diff)
	}
	if ct.MinLen() != 1 || ct.MaxLen() != 1 {
		t.Errorf("lengths %d..%d; want 1..1", ct.MinLen(), ct.MaxLen())
	}
}

func TestCodeTable_EncodedBits(t *testing.T) {
	data := []byte("aaabbc")
	ft := CountFrequencies(data)
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree error %s", err)
	}
	if n := NewCodeTable(root).EncodedBits(ft); n != 9 {
		t.Errorf("EncodedBits = %d; want 9", n)
	}
}

func TestCodeTable_EncodedBitsSaturates(t *testing.T) {
	ft, err := NewFrequencyTable(map[byte]uint64{'a': 1<<61 + 1, 'b': 1<<61 + 1, 'c': 1<<61 + 1, 'd': 1<<61 + 1})
	if err != nil {
		t.Fatalf("NewFrequencyTable error %s", err)
	}
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree error %s", err)
	}
	if n := NewCodeTable(root).EncodedBits(ft); n != math.MaxUint64 {
		t.Errorf("EncodedBits = %d; want %d", n, uint64(math.MaxUint64))
	}
}

func TestNewCodeTableFromCodes(t *testing.T) {
	ct, err := NewCodeTableFromCodes(map[byte]Code{'a': "0", 'b': "10", 'c': "11"})
	if err != nil {
		t.Fatalf("NewCodeTableFromCodes error %s", err)
	}
	if sym, ok := ct.Symbol("10"); !ok || sym != 'b' {
		t.Errorf("Symbol(\"10\") = %q, %t; want 'b', true", sym, ok)
	}

	invalid := []struct {
		name  string
		codes map[byte]Code
	}{
		{"none", map[byte]Code{}},
		{"empty", map[byte]Code{'a': ""}},
		{"nonbinary", map[byte]Code{'a': "02"}},
		{"duplicate", map[byte]Code{'a': "01", 'b': "01"}},
		{"prefix", map[byte]Code{'a': "0", 'b': "01"}},
		{"distantprefix", map[byte]Code{'a': "1", 'b': "100", 'c': "101"}},
	}
	for _, c := range invalid {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewCodeTableFromCodes(c.codes)
			if !errors.Is(err, ErrInvalidCodeTable) {
				t.Errorf("error %v; want %v", err, ErrInvalidCodeTable)
			}
		})
	}
}

func allBytes() []byte {
	p := make([]byte, 256)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

// skewed returns data with roughly Fibonacci distributed byte counts, which
// gives a deep, unbalanced tree.
func skewed() []byte {
	var p []byte
	a, b := 1, 1
	for sym := 0; sym < 16; sym++ {
		for i := 0; i < a; i++ {
			p = append(p, byte(sym))
		}
		a, b = b, a+b
	}
	return p
}
