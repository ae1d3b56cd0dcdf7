package db

import (
	"io"
	"os"
)

type Sink interface {
	io.Closer
	io.WriterAt
	io.ReaderAt

	Size() (int64, error)
}

type fileSink struct {
	*os.File
}

func (sink fileSink) Size() (size int64, err error) {
	stat, err := sink.Stat()
	if err != nil {
		return
	}
	size = stat.Size()
	return
}

// memSink keeps the whole database in one byte slice, growing on
// writes past the end. Tests use it in place of a real file.
type memSink struct {
	buf []byte
}

func (sink *memSink) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(sink.buf)) {
		return 0, io.EOF
	}
	n := copy(p, sink.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (sink *memSink) WriteAt(p []byte, off int64) (int, error) {
	if end := int(off) + len(p); end > len(sink.buf) {
		sink.buf = append(sink.buf, make([]byte, end-len(sink.buf))...)
	}
	return copy(sink.buf[off:], p), nil
}

func (sink *memSink) Close() error {
	return nil
}

func (sink *memSink) Size() (int64, error) {
	return int64(len(sink.buf)), nil
}
