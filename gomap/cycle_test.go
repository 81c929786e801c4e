package gomap

import (
	"errors"
	"testing"

	"github.com/signadot/ctree/ir"
)

func TestCircularReference_Marshal(t *testing.T) {
	type Person struct {
		Name string
		Boss *Person
	}

	person := &Person{Name: "Alice"}
	person.Boss = person

	_, err := ToIR(person)
	var cerr *CyclicInputError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CyclicInputError, got %v", err)
	}
	if cerr.Path != "Boss" || cerr.Prev != "" {
		t.Errorf("got path %q prev %q", cerr.Path, cerr.Prev)
	}
	if !errors.Is(err, ErrCyclicInput) {
		t.Errorf("error does not wrap ErrCyclicInput")
	}
}

func TestCircularReference_StructSlice(t *testing.T) {
	type Person struct {
		Name    string
		Reports []*Person
	}

	person := &Person{Name: "Alice"}
	person.Reports = []*Person{person}

	_, err := ToIR(person)
	var cerr *CyclicInputError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CyclicInputError, got %v", err)
	}
	if cerr.Path != "Reports[0]" {
		t.Errorf("got path %q", cerr.Path)
	}
}

func TestCircularReference_StructMap(t *testing.T) {
	type Person struct {
		Name  string
		Peers map[string]*Person
	}

	person := &Person{Name: "Alice", Peers: make(map[string]*Person)}
	person.Peers["self"] = person

	if _, err := ToIR(person); !errors.Is(err, ErrCyclicInput) {
		t.Fatalf("expected cyclic input error, got %v", err)
	}
}

func TestCircularReference_Interface(t *testing.T) {
	m := map[string]any{}
	m["again"] = []any{m}
	if _, err := ToIR(m); !errors.Is(err, ErrCyclicInput) {
		t.Fatalf("expected cyclic input error, got %v", err)
	}
}

func TestCircularReference_NoCycle(t *testing.T) {
	type Person struct {
		Name string
		Boss *Person
	}

	alice := &Person{Name: "Alice"}
	bob := &Person{Name: "Bob", Boss: alice}

	node, err := ToIR(bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result Person
	if err := FromIR(node, &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "Bob" {
		t.Errorf("expected Name='Bob', got %q", result.Name)
	}
	if result.Boss == nil || result.Boss.Name != "Alice" {
		t.Fatalf("expected Boss Alice, got %+v", result.Boss)
	}
}

func TestSharedReferenceIsNotCycle(t *testing.T) {
	type Leaf struct{ V int }
	type Pair struct {
		A, B *Leaf
	}
	shared := &Leaf{V: 7}
	node, err := ToIR(Pair{A: shared, B: shared})
	if err != nil {
		t.Fatalf("shared pointer reported as error: %v", err)
	}
	if ir.Get(ir.Get(node, "B"), "V").Int64 != 7 {
		t.Errorf("B.V not marshalled")
	}
}

func TestFirstFieldAddressIsNotCycle(t *testing.T) {
	type Inner struct {
		Next *int
	}
	type Outer struct {
		In Inner
	}
	o := &Outer{}
	x := 3
	o.In.Next = &x
	if _, err := ToIR(o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
