// Package constmap holds the runtime half of go-constmap: the contract that
// generated enumerations satisfy, and the declaration types the generator
// reads.
//
// A generated enumeration is a small integer type whose variants index a
// package-level array of values. Retrieving a variant's value is a single
// array index:
//
//	fn := *Item0.Get() // or *constmap.Get[func() string](Item0)
//	fmt.Println(fn())
package constmap

// Key is implemented by every enumeration generated by go-constmap.
//
// ValueList must return the same values, in declaration order, on every call.
// ID must return the variant's zero-based declaration ordinal.
type Key[T any] interface {
	ValueList() []T
	ID() int
}

// Get returns a pointer to the value associated with k.
// It panics if k.ID() is not a valid index into k.ValueList(), which can only
// happen for Key implementations written by hand.
func Get[T any, K Key[T]](k K) *T {
	return &k.ValueList()[k.ID()]
}

// Lookup is like Get but reports whether k.ID() was in range instead of
// panicking.
func Lookup[T any, K Key[T]](k K) (*T, bool) {
	vs, id := k.ValueList(), k.ID()
	if id < 0 || id >= len(vs) {
		return nil, false
	}
	return &vs[id], true
}

// Entry pairs a variant name with its value.
type Entry[T any] struct {
	Name  string
	Value T
}

// Decl is the declaration read by go-constmap. The variable it initialises is
// only inspected at generation time:
//
//	//go:generate go-constmap
//	var fooDecl = constmap.Decl[func() string]{
//		{Name: "Item0", Value: item0},
//		{Name: "Item1", Value: item1},
//	}
//
// An entry without a Value, such as {Name: "None"}, holds the zero value of T.
// Values may refer to other packages only through qualified identifiers; dot
// imports are rejected.
type Decl[T any] []Entry[T]
