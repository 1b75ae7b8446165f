package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	"github.com/adilg123/huffpack/internal/compression"
	"github.com/adilg123/huffpack/internal/compression/algorithms/huffman"
	"github.com/adilg123/huffpack/internal/config"
	"github.com/adilg123/huffpack/internal/fileio"
)

const usageStr = `Usage: huffpack [OPTION]... FILE...
Compress or uncompress FILEs with Huffman coding. Compressing FILE writes
FILE.bin, decompressing FILE writes FILE_decompressed.txt.

  -c, --stdout      write to standard output
  -d, --decompress  decompress
  -f, --force       overwrite existing output files
  -h, --help        give this help
  -o, --output=FILE write to FILE (only with a single input)
  -p, --progress    show a progress bar while reading
  -q, --quiet       suppress all messages
  -t, --table       print the code table of each input instead of
                    compressing
  -v, --verbose     print statistics
      --format=N    container version: 1 full-byte padding, 2 minimal (default)
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	cfg := config.Load()

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		stdout     = pflag.BoolP("stdout", "c", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		force      = pflag.BoolP("force", "f", false, "")
		output     = pflag.StringP("output", "o", "", "")
		progress   = pflag.BoolP("progress", "p", cfg.Progress, "")
		quiet      = pflag.BoolP("quiet", "q", false, "")
		table      = pflag.BoolP("table", "t", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		format     = pflag.Int("format", int(cfg.FormatVersion), "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if pflag.NArg() == 0 {
		log.Print("no input files")
		usage(os.Stderr)
		os.Exit(1)
	}
	if *output != "" && pflag.NArg() > 1 {
		log.Fatal("--output requires a single input file")
	}
	if *format < 1 || *format > 255 {
		log.Fatalf("invalid format version %d", *format)
	}

	opts := fileio.Options{
		Compression: compression.Options{
			Algorithm: compression.DefaultAlgorithm,
			Version:   byte(*format),
		},
		Output:   *output,
		Force:    *force,
		Progress: *progress && !*quiet,
	}
	if err := opts.Compression.Validate(); err != nil {
		log.Fatal(err)
	}

	exit := 0
	for _, path := range pflag.Args() {
		var err error
		switch {
		case *table:
			err = printTable(path, opts)
		case *stdout:
			err = toStdout(path, *decompress, opts)
		default:
			err = processFile(path, *decompress, opts, *quiet, *verbose)
		}
		if err != nil {
			log.Print(err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func processFile(path string, decompress bool, opts fileio.Options, quiet, verbose bool) error {
	var (
		out   string
		stats *compression.Stats
		err   error
	)
	if decompress {
		out, stats, err = fileio.DecompressFile(path, opts)
	} else {
		out, stats, err = fileio.CompressFile(path, opts)
	}
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "%s -> %s\n", path, out)
	}
	if verbose {
		pretty.Fprintf(os.Stderr, "%# v\n", stats)
	}
	return nil
}

func toStdout(path string, decompress bool, opts fileio.Options) error {
	data, err := readInput(path, opts)
	if err != nil {
		return err
	}
	var result []byte
	if decompress {
		result, _, err = compression.Decompress(data, opts.Compression)
	} else {
		result, _, err = compression.Compress(data, opts.Compression)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err = os.Stdout.Write(result)
	return err
}

func printTable(path string, opts fileio.Options) error {
	data, err := readInput(path, opts)
	if err != nil {
		return err
	}
	ft := huffman.CountFrequencies(data)
	root, err := huffman.BuildTree(ft)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	ct := huffman.NewCodeTable(root)
	fmt.Printf("%s: %d bytes, %d symbols, %d payload bits\n", path, len(data), ft.Len(), ct.EncodedBits(ft))
	_, err = ct.Dump(os.Stdout)
	return err
}

func readInput(path string, opts fileio.Options) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return fileio.ReadAll(f, fi.Size(), opts)
}
