package token

import (
	"errors"
	"io"
)

// Tokenizer splits a Stream into tokens. Each Tokenizer owns a scratch
// buffer that grows as needed and is reused for every token.
type Tokenizer struct {
	t   tracker
	buf []byte
}

func NewTokenizer(s Stream) *Tokenizer {
	return &Tokenizer{t: tracker{s: s}, buf: make([]byte, 0, 64)}
}

// Pos returns the position of the next unread byte.
func (z *Tokenizer) Pos() Pos {
	return z.t.pos
}

// Next returns the next token, or io.EOF if the stream ends before one
// starts. The returned Bytes alias the tokenizer's buffer and are only
// valid until the next call.
func (z *Tokenizer) Next() (Token, error) {
	z.buf = z.buf[:0]
	var (
		c   byte
		err error
		p   Pos
	)
	for {
		p = z.t.pos
		c, err = z.t.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{}, io.EOF
			}
			return Token{}, NewError(err, p)
		}
		if !isSpace(c) {
			break
		}
	}
	switch c {
	case '(':
		return z.tok(TOpen, p), nil
	case ')':
		return z.tok(TClose, p), nil
	case '"':
		if err := z.str(); err != nil {
			return Token{}, err
		}
		return z.tok(TString, p), nil
	case '#':
		return z.hash(p)
	}
	z.buf = append(z.buf, c)
	if err := z.run(); err != nil {
		return Token{}, err
	}
	if len(z.buf) == 1 && c == '.' {
		return z.tok(TDot, p), nil
	}
	return z.tok(classify(z.buf), p), nil
}

func (z *Tokenizer) tok(tt TokenType, p Pos) Token {
	return Token{Type: tt, Pos: p, Bytes: z.buf}
}

func (z *Tokenizer) hash(p Pos) (Token, error) {
	c, err := z.t.next()
	if err != nil {
		return Token{}, z.eofErr(err, ErrBadHash)
	}
	switch c {
	case 't':
		z.buf = append(z.buf, '#', 't')
		return z.tok(TTrue, p), nil
	case 'f':
		z.buf = append(z.buf, '#', 'f')
		return z.tok(TFalse, p), nil
	case '?':
		c, err = z.t.next()
		if err != nil {
			return Token{}, z.eofErr(err, ErrBadHash)
		}
		if c == '(' {
			z.buf = append(z.buf, '#', '?', '(')
			return z.tok(TPatternOpen, p), nil
		}
	}
	return Token{}, NewError(ErrBadHash, p)
}

// str reads a string body after the opening quote into the buffer.
func (z *Tokenizer) str() error {
	for {
		c, err := z.t.next()
		if err != nil {
			return z.eofErr(err, ErrUnterminated)
		}
		switch c {
		case '"':
			return nil
		case '\\':
			c, err = z.t.next()
			if err != nil {
				return z.eofErr(err, ErrUnterminated)
			}
			switch c {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			}
		}
		z.buf = append(z.buf, c)
	}
}

// run appends bytes up to the next delimiter, which is left unread.
func (z *Tokenizer) run() error {
	for {
		c, err := z.t.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return NewError(err, z.t.pos)
		}
		if isDelim(c) {
			z.t.pushback(c)
			return nil
		}
		z.buf = append(z.buf, c)
	}
}

func (z *Tokenizer) eofErr(err, cause error) error {
	if errors.Is(err, io.EOF) {
		return NewError(cause, z.t.pos)
	}
	return NewError(err, z.t.pos)
}

// classify returns the type of a run of non-delimiter bytes.
func classify(d []byte) TokenType {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	n := digits(d[i:])
	if n == 0 {
		return TSymbol
	}
	i += n
	if i == len(d) {
		return TInteger
	}
	if d[i] == '.' {
		n = digits(d[i+1:])
		if n == 0 {
			return TSymbol
		}
		i += 1 + n
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '+' || d[j] == '-') {
			j++
		}
		n = digits(d[j:])
		if n == 0 {
			return TSymbol
		}
		i = j + n
	}
	if i != len(d) {
		return TSymbol
	}
	return TReal
}

func digits(d []byte) int {
	i := 0
	for i < len(d) && isDigit(d[i]) {
		i++
	}
	return i
}

// Tokenize appends the tokens of src to dst. Token bytes are copied.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	z := NewTokenizer(NewBufferStream(src))
	for {
		tok, err := z.Next()
		if errors.Is(err, io.EOF) {
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
		tok.Bytes = append([]byte(nil), tok.Bytes...)
		dst = append(dst, tok)
	}
}
