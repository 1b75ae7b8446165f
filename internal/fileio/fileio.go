// Package fileio reads inputs from and writes results to files for the
// compression package. Output names follow fixed conventions: compressing
// "name" writes "name.bin", decompressing "name.bin" writes
// "name.bin_decompressed.txt".
package fileio

import (
	"fmt"
	"io"
	"os"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/adilg123/huffpack/internal/compression"
)

const (
	CompressedExt      = ".bin"
	DecompressedSuffix = "_decompressed.txt"
)

// Options control a file operation.
type Options struct {
	Compression compression.Options

	// Output overrides the conventional output path.
	Output string

	// Force allows overwriting an existing output file.
	Force bool

	// Progress shows a progress bar while the input is read.
	Progress       bool
	ProgressOutput io.Writer
}

// CompressedPath returns the conventional output path for compressing path.
func CompressedPath(path string) string {
	return path + CompressedExt
}

// DecompressedPath returns the conventional output path for decompressing
// path.
func DecompressedPath(path string) string {
	return path + DecompressedSuffix
}

// CompressFile compresses the file at path and returns the path written.
func CompressFile(path string, opts Options) (string, *compression.Stats, error) {
	data, err := readFile(path, opts)
	if err != nil {
		return "", nil, err
	}
	compressed, stats, err := compression.Compress(data, opts.Compression)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	out := opts.Output
	if out == "" {
		out = CompressedPath(path)
	}
	if err = writeFile(out, compressed, opts.Force); err != nil {
		return "", nil, err
	}
	return out, stats, nil
}

// DecompressFile decompresses the file at path and returns the path written.
func DecompressFile(path string, opts Options) (string, *compression.Stats, error) {
	data, err := readFile(path, opts)
	if err != nil {
		return "", nil, err
	}
	decompressed, stats, err := compression.Decompress(data, opts.Compression)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	out := opts.Output
	if out == "" {
		out = DecompressedPath(path)
	}
	if err = writeFile(out, decompressed, opts.Force); err != nil {
		return "", nil, err
	}
	return out, stats, nil
}

// ReadAll reads r completely, showing a progress bar of size bytes if
// requested.
func ReadAll(r io.Reader, size int64, opts Options) ([]byte, error) {
	if !opts.Progress {
		return io.ReadAll(r)
	}
	w := opts.ProgressOutput
	if w == nil {
		w = os.Stderr
	}
	bar := pb.New64(size)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(w)
	bar.Start()
	defer bar.Finish()
	return io.ReadAll(bar.NewProxyReader(r))
}

func readFile(path string, opts Options) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	data, err := ReadAll(f, fi.Size(), opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeFile(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
