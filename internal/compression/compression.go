package compression

import (
	"errors"
	"fmt"
	"io"

	"github.com/adilg123/huffpack/internal/compression/algorithms/huffman"
)

// SupportedAlgorithms contains all supported compression algorithms
var SupportedAlgorithms = []string{
	"huffman",
}

// DefaultAlgorithm is used when Options.Algorithm is empty
const DefaultAlgorithm = "huffman"

// Options contains compression/decompression options
type Options struct {
	Algorithm string
	Version   byte // container format version, 0 selects the default
}

// Stats contains compression statistics
type Stats struct {
	OriginalSize     int
	ProcessedSize    int
	CompressionRatio float64
	Algorithm        string
}

// Analysis describes how an input would be coded
type Analysis struct {
	Size        int               `json:"size"`
	Symbols     int               `json:"symbols"`
	Frequencies map[string]uint64 `json:"frequencies"`
	Codes       map[string]string `json:"codes"`
	PayloadBits uint64            `json:"payload_bits"`
	MinCodeLen  int               `json:"min_code_length"`
	MaxCodeLen  int               `json:"max_code_length"`
}

// AlgorithmFactory defines the interface for compression algorithms
type AlgorithmFactory interface {
	NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser)
	NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser)
}

// factoryMap maps algorithm names to their factories
var factoryMap = map[string]AlgorithmFactory{
	"huffman": &HuffmanFactory{},
}

// HuffmanFactory creates reader/writer pairs for the huffman container format
type HuffmanFactory struct{}

func (f *HuffmanFactory) NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return huffman.NewCompressionReaderAndWriter(options.version())
}

func (f *HuffmanFactory) NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return huffman.NewDecompressionReaderAndWriter()
}

func (o Options) algorithm() string {
	if o.Algorithm == "" {
		return DefaultAlgorithm
	}
	return o.Algorithm
}

func (o Options) version() huffman.Version {
	if o.Version == 0 {
		return huffman.DefaultVersion
	}
	return huffman.Version(o.Version)
}

// Validate checks the algorithm name and format version
func (o Options) Validate() error {
	if !IsValidAlgorithm(o.algorithm()) {
		return fmt.Errorf("unsupported algorithm: %s", o.Algorithm)
	}
	if v := o.version(); !v.Valid() {
		return fmt.Errorf("%w: %d", huffman.ErrUnsupportedVersion, o.Version)
	}
	return nil
}

// IsValidAlgorithm checks if the provided algorithm is supported
func IsValidAlgorithm(algorithm string) bool {
	_, exists := factoryMap[algorithm]
	return exists
}

// GetSupportedAlgorithms returns a list of supported algorithms
func GetSupportedAlgorithms() []string {
	return append([]string{}, SupportedAlgorithms...)
}

// IsMalformed reports whether err was caused by corrupt compressed input
func IsMalformed(err error) bool {
	return errors.Is(err, huffman.ErrMalformedStream)
}

// Compress compresses data using the specified algorithm
func Compress(data []byte, options Options) ([]byte, *Stats, error) {
	if err := options.Validate(); err != nil {
		return nil, nil, err
	}

	factory := factoryMap[options.algorithm()]
	reader, writer := factory.NewCompressionReaderAndWriter(options)

	compressedData, err := processData(data, reader, writer)
	if err != nil {
		return nil, nil, fmt.Errorf("compression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(compressedData),
		Algorithm:     options.algorithm(),
	}

	if len(data) > 0 {
		stats.CompressionRatio = float64(len(compressedData)) / float64(len(data)) * 100
	}

	return compressedData, stats, nil
}

// Decompress decompresses data using the specified algorithm
func Decompress(data []byte, options Options) ([]byte, *Stats, error) {
	if err := options.Validate(); err != nil {
		return nil, nil, err
	}

	factory := factoryMap[options.algorithm()]
	reader, writer := factory.NewDecompressionReaderAndWriter(options)

	decompressedData, err := processData(data, reader, writer)
	if err != nil {
		return nil, nil, fmt.Errorf("decompression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(decompressedData),
		Algorithm:     options.algorithm(),
	}

	if len(decompressedData) > 0 {
		stats.CompressionRatio = float64(len(data)) / float64(len(decompressedData)) * 100
	}

	return decompressedData, stats, nil
}

// Analyze reports the frequency table and code table for data without
// producing compressed output. Keys are decimal byte values.
func Analyze(data []byte) (*Analysis, error) {
	ft := huffman.CountFrequencies(data)
	root, err := huffman.BuildTree(ft)
	if err != nil {
		return nil, err
	}
	table := huffman.NewCodeTable(root)

	a := &Analysis{
		Size:        len(data),
		Symbols:     ft.Len(),
		Frequencies: make(map[string]uint64, ft.Len()),
		Codes:       make(map[string]string, ft.Len()),
		PayloadBits: table.EncodedBits(ft),
		MinCodeLen:  table.MinLen(),
		MaxCodeLen:  table.MaxLen(),
	}
	for sym, n := range ft.Map() {
		a.Frequencies[fmt.Sprint(sym)] = n
	}
	for sym, code := range table.Map() {
		a.Codes[fmt.Sprint(sym)] = string(code)
	}
	return a, nil
}

// processData writes the input, closes the writer to run the codec and reads
// back the result
func processData(inputData []byte, reader io.ReadCloser, writer io.WriteCloser) ([]byte, error) {
	defer reader.Close()

	if _, err := writer.Write(inputData); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return io.ReadAll(reader)
}
