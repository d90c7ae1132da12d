package ir

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v is not %v", err, target)
		}
	}()
	f()
}

func TestAccessors(t *testing.T) {
	if Int(5).Integer() != 5 {
		t.Error("Integer")
	}
	if Real(2.5).RealValue() != 2.5 {
		t.Error("RealValue")
	}
	if Symbol("x").SymbolName() != "x" {
		t.Error("SymbolName")
	}
	if String("s").StringValue() != "s" {
		t.Error("StringValue")
	}
	if !Bool(true).Boolean() {
		t.Error("Boolean")
	}
	p := Cons(Int(1), Int(2))
	if p.First().Integer() != 1 || p.Rest().Integer() != 2 {
		t.Error("First/Rest")
	}
	l := List(Symbol("a"), Symbol("b"), Symbol("c"))
	if l.Nth(2).SymbolName() != "c" {
		t.Error("Nth")
	}
	if (*Node)(nil).Len() != 0 {
		t.Error("nil Len")
	}
}

func TestAccessorTypeMismatch(t *testing.T) {
	expectPanic(t, ErrTypeMismatch, func() { Symbol("x").Integer() })
	expectPanic(t, ErrTypeMismatch, func() { Int(1).StringValue() })
	expectPanic(t, ErrTypeMismatch, func() { String("s").SymbolName() })
	expectPanic(t, ErrTypeMismatch, func() { Int(1).RealValue() })
	expectPanic(t, ErrTypeMismatch, func() { Int(1).Boolean() })
	expectPanic(t, ErrTypeMismatch, func() { (*Node)(nil).First() })
	expectPanic(t, ErrTypeMismatch, func() { Int(1).Rest() })
	expectPanic(t, ErrTypeMismatch, func() { Int(1).Len() })

	defer func() {
		r := recover()
		tm, ok := r.(*TypeMismatchError)
		if !ok {
			t.Fatalf("expected *TypeMismatchError, got %T", r)
		}
		if tm.Got != SymbolType || tm.Want[0] != IntegerType {
			t.Errorf("unexpected %v", tm)
		}
	}()
	Symbol("x").Integer()
}

func TestListErrors(t *testing.T) {
	expectPanic(t, ErrImproperList, func() { Cons(Int(1), Int(2)).Len() })
	expectPanic(t, ErrIndex, func() { List(Int(1)).Nth(1) })
	expectPanic(t, ErrIndex, func() { List(Int(1)).Nth(-1) })
	expectPanic(t, ErrIndex, func() { (*Node)(nil).Nth(0) })
}

func TestTypeOf(t *testing.T) {
	if TypeOf(nil) != NilType {
		t.Error("nil")
	}
	if TypeOf(Cons(nil, nil)) != PairType {
		t.Error("pair")
	}
	for _, typ := range Types() {
		var back Type
		d, _ := typ.MarshalText()
		if err := back.UnmarshalText(d); err != nil || back != typ {
			t.Errorf("%s round trip: %v %v", typ, back, err)
		}
	}
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, ok)
		}
	}
	if _, ok := ParseKind("bogus"); ok {
		t.Error("bogus kind accepted")
	}
	if len(Kinds()) != 8 {
		t.Errorf("expected 8 kinds")
	}
	if !KindList.Accepts(PairType) || KindList.Accepts(NilType) {
		t.Error("list kind")
	}
	if KindOr.Accepts(IntegerType) {
		t.Error("or accepts by type")
	}
}
