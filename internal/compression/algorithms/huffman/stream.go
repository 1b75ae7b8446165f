package huffman

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// StreamWriter buffers everything written to it. Close runs the codec over
// the buffered input and makes the result available to the paired
// StreamReader.
type StreamWriter struct {
	core *streamCore
}

// StreamReader returns the output of the paired StreamWriter once the writer
// has been closed.
type StreamReader struct {
	core *streamCore
}

type streamCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         *bytes.Buffer
	outputBuffer        *bytes.Buffer
	transform           func([]byte) ([]byte, error)
	err                 error
}

func (sr *StreamReader) Read(data []byte) (int, error) {
	sr.core.lock.Lock()
	defer sr.core.lock.Unlock()
	if !sr.core.isInputBufferClosed {
		return 0, ErrInputNotClosed
	}
	if sr.core.err != nil {
		return 0, sr.core.err
	}
	return sr.core.outputBuffer.Read(data)
}

func (sr *StreamReader) Close() error {
	sr.core.lock.Lock()
	defer sr.core.lock.Unlock()
	sr.core.inputBuffer.Reset()
	sr.core.outputBuffer.Reset()
	return nil
}

func (sw *StreamWriter) Write(data []byte) (int, error) {
	sw.core.lock.Lock()
	defer sw.core.lock.Unlock()
	if sw.core.isInputBufferClosed {
		return 0, errors.New("huffman: write after close")
	}
	return sw.core.inputBuffer.Write(data)
}

// Close runs the codec. Calling Close again is a no-op that returns the
// first result.
func (sw *StreamWriter) Close() error {
	sw.core.lock.Lock()
	defer sw.core.lock.Unlock()
	if sw.core.isInputBufferClosed {
		return sw.core.err
	}
	sw.core.isInputBufferClosed = true
	result, err := sw.core.transform(sw.core.inputBuffer.Bytes())
	sw.core.inputBuffer.Reset()
	if err != nil {
		sw.core.err = err
		return err
	}
	_, err = sw.core.outputBuffer.Write(result)
	return err
}

func newStreamPair(transform func([]byte) ([]byte, error)) (io.ReadCloser, io.WriteCloser) {
	core := &streamCore{
		inputBuffer:  new(bytes.Buffer),
		outputBuffer: new(bytes.Buffer),
		transform:    transform,
	}
	return &StreamReader{core: core}, &StreamWriter{core: core}
}

// NewCompressionReaderAndWriter returns a pair that compresses everything
// written to the writer into a container of the given version.
func NewCompressionReaderAndWriter(v Version) (io.ReadCloser, io.WriteCloser) {
	return newStreamPair(func(data []byte) ([]byte, error) {
		return CompressVersion(data, v)
	})
}

// NewDecompressionReaderAndWriter returns a pair that decompresses the
// container written to the writer.
func NewDecompressionReaderAndWriter() (io.ReadCloser, io.WriteCloser) {
	return newStreamPair(Decompress)
}
