package token

import (
	"bufio"
	"io"
	"os"
)

// Stream is a source of bytes with one byte of pushback.
//
// Next returns io.EOF at end of input. Pushback must only be called with
// the byte most recently returned by Next, which Next then returns again.
type Stream interface {
	Next() (byte, error)
	Pushback(c byte)
}

type readerStream struct {
	r *bufio.Reader
}

func NewReaderStream(r io.Reader) Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &readerStream{r: br}
}

func NewFileStream(f *os.File) Stream {
	return NewReaderStream(f)
}

func (s *readerStream) Next() (byte, error) {
	return s.r.ReadByte()
}

func (s *readerStream) Pushback(c byte) {
	if err := s.r.UnreadByte(); err != nil {
		panic(err)
	}
}

type bufferStream struct {
	d []byte
	i int
}

func NewBufferStream(d []byte) Stream {
	return &bufferStream{d: d}
}

func NewStringStream(s string) Stream {
	return &bufferStream{d: []byte(s)}
}

func (s *bufferStream) Next() (byte, error) {
	if s.i >= len(s.d) {
		return 0, io.EOF
	}
	c := s.d[s.i]
	s.i++
	return c, nil
}

func (s *bufferStream) Pushback(c byte) {
	if s.i == 0 {
		panic("token: pushback at start of buffer")
	}
	s.i--
}

type funcStream struct {
	data  any
	next  func(any) (byte, error)
	unget func(byte, any)
}

// NewFuncStream returns a Stream driven by caller callbacks. data is passed
// through to both.
func NewFuncStream(data any, next func(data any) (byte, error), unget func(c byte, data any)) Stream {
	return &funcStream{data: data, next: next, unget: unget}
}

func (s *funcStream) Next() (byte, error) {
	return s.next(s.data)
}

func (s *funcStream) Pushback(c byte) {
	s.unget(c, s.data)
}
