package token

import "fmt"

// Pos is a position in a stream. Offset counts bytes from the start of the
// stream; Line and Col are zero based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}

// tracker wraps a Stream and keeps the position of the next byte.
type tracker struct {
	s       Stream
	pos     Pos
	prevCol int
}

func (t *tracker) next() (byte, error) {
	c, err := t.s.Next()
	if err != nil {
		return 0, err
	}
	t.pos.Offset++
	if c == '\n' {
		t.prevCol = t.pos.Col
		t.pos.Line++
		t.pos.Col = 0
	} else {
		t.pos.Col++
	}
	return c, nil
}

func (t *tracker) pushback(c byte) {
	t.s.Pushback(c)
	t.pos.Offset--
	if c == '\n' {
		t.pos.Line--
		t.pos.Col = t.prevCol
	} else {
		t.pos.Col--
	}
}
