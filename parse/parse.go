package parse

import (
	"errors"
	"io"
	"strconv"

	"github.com/signadot/sexp/debug"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/token"
)

// Reader reads successive top level values from one stream.
type Reader struct {
	z    *token.Tokenizer
	opts *parseOpts
}

func NewReader(s token.Stream, opts ...ParseOption) *Reader {
	return &Reader{z: token.NewTokenizer(s), opts: newOpts(opts)}
}

// Read reads one value from s.
func Read(s token.Stream, opts ...ParseOption) (*ir.Node, error) {
	return NewReader(s, opts...).Read()
}

// ReadString reads the first value of s.
func ReadString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Read(token.NewStringStream(s), opts...)
}

// Read returns the next value. At end of input it returns io.EOF; any
// other failure is a *Error. The empty list reads as a nil node with a
// nil error.
func (r *Reader) Read() (*ir.Node, error) {
	tok, err := r.z.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, r.wrap(err)
	}
	res, err := r.value(&tok)
	if err != nil {
		return nil, err
	}
	if debug.Read() {
		debug.Logf("read %v\n", res)
	}
	return res, nil
}

// Parse parses d, which must hold exactly one value.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	r := NewReader(token.NewBufferStream(d), opts...)
	res, err := r.Read()
	if err != nil {
		return nil, err
	}
	pos := r.z.Pos()
	extra, err := r.Read()
	if errors.Is(err, io.EOF) {
		return res, nil
	}
	r.release(extra)
	r.release(res)
	return nil, newError(ErrTrailing, pos)
}

// ParseAll parses every value in d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	r := NewReader(token.NewBufferStream(d), opts...)
	var res []*ir.Node
	for {
		n, err := r.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, n)
	}
}

func (r *Reader) wrap(err error) error {
	var te *token.Error
	if errors.As(err, &te) {
		return newError(te.Err, te.Pos)
	}
	return newError(err, r.z.Pos())
}

func (r *Reader) next() (token.Token, error) {
	tok, err := r.z.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return tok, newError(ErrUnexpectedEOF, r.z.Pos())
		}
		return tok, r.wrap(err)
	}
	return tok, nil
}

func (r *Reader) trackPos(n *ir.Node, p token.Pos) {
	if r.opts.positions != nil && n != nil {
		r.opts.positions[n] = &p
	}
}

// release frees n to the reader's allocator and drops the positions
// recorded for its nodes.
func (r *Reader) release(n *ir.Node) {
	if r.opts.positions != nil && n != nil {
		stack := []*ir.Node{n}
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			delete(r.opts.positions, c)
			if c.Car != nil {
				stack = append(stack, c.Car)
			}
			if c.Cdr != nil {
				stack = append(stack, c.Cdr)
			}
		}
	}
	ir.ReleaseTo(r.opts.alloc, n)
}

func (r *Reader) value(tok *token.Token) (*ir.Node, error) {
	switch tok.Type {
	case token.TOpen:
		return r.list(ir.PairType, tok.Pos)
	case token.TPatternOpen:
		return r.list(ir.RawPatternType, tok.Pos)
	case token.TClose:
		return nil, newError(ErrUnexpectedClose, tok.Pos)
	case token.TDot:
		return nil, newError(ErrDot, tok.Pos)
	}
	n, err := r.atom(tok)
	if err != nil {
		return nil, err
	}
	r.trackPos(n, tok.Pos)
	return n, nil
}

func (r *Reader) atom(tok *token.Token) (*ir.Node, error) {
	var (
		i   int64
		f   float64
		err error
	)
	switch tok.Type {
	case token.TInteger:
		i, err = strconv.ParseInt(string(tok.Bytes), 10, 64)
	case token.TReal:
		f, err = strconv.ParseFloat(string(tok.Bytes), 64)
	}
	if err != nil {
		return nil, newError(ErrNumber, tok.Pos)
	}
	n := r.opts.alloc.Alloc()
	switch tok.Type {
	case token.TSymbol:
		ir.SymbolAt(n, string(tok.Bytes))
	case token.TString:
		ir.StringAt(n, string(tok.Bytes))
	case token.TInteger:
		n.Type = ir.IntegerType
		n.Int = i
	case token.TReal:
		n.Type = ir.RealType
		n.Float = f
	case token.TTrue, token.TFalse:
		n.Type = ir.BooleanType
		n.Bool = tok.Type == token.TTrue
	}
	return n, nil
}

// list reads the elements of a list whose opening token has been
// consumed. The cdr chain is built in a loop; only element values
// recurse.
func (r *Reader) list(cellType ir.Type, open token.Pos) (*ir.Node, error) {
	var head, last *ir.Node
	fail := func(err error) (*ir.Node, error) {
		r.release(head)
		return nil, err
	}
	for {
		tok, err := r.next()
		if err != nil {
			return fail(err)
		}
		switch tok.Type {
		case token.TClose:
			return head, nil
		case token.TDot:
			if head == nil {
				return fail(newError(ErrDot, tok.Pos))
			}
			return r.tail(head, last, fail)
		}
		pos := tok.Pos
		v, err := r.value(&tok)
		if err != nil {
			return fail(err)
		}
		cell := r.opts.alloc.Alloc()
		cell.Type = cellType
		cell.Car = v
		if head == nil {
			r.trackPos(cell, open)
			head = cell
		} else {
			r.trackPos(cell, pos)
			last.Cdr = cell
		}
		last = cell
	}
}

// tail reads the value after a dot and the closing paren.
func (r *Reader) tail(head, last *ir.Node, fail func(error) (*ir.Node, error)) (*ir.Node, error) {
	tok, err := r.next()
	if err != nil {
		return fail(err)
	}
	if tok.Type == token.TClose || tok.Type == token.TDot {
		return fail(newError(ErrDot, tok.Pos))
	}
	v, err := r.value(&tok)
	if err != nil {
		return fail(err)
	}
	last.Cdr = v
	tok, err = r.next()
	if err != nil {
		return fail(err)
	}
	if tok.Type != token.TClose {
		return fail(newError(ErrDot, tok.Pos))
	}
	return head, nil
}
