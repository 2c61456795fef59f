// go-constmap is a tool designed to be called by go:generate for generating
// enumerations whose variants map, by ordinal, to a static list of values.
//
// By default, go-constmap will look for a variable declaration immediately following
// the go:generate statement from which it was called. The variable must be
// initialised with a constmap.Decl literal listing the variants and their values.
//
// For example, given code similar to what is shown below
//
//	//go:generate go-constmap
//	var fooDecl = constmap.Decl[func() string]{
//		{Name: "Item0", Value: item0},
//		{Name: "Item1", Value: item1},
//	}
//
// go-constmap will generate a Foo type with the variants Item0 and Item1, an
// array holding item0 and item1, and the following methods
//
//	// ValueList returns the values of all Foo variants in declaration order.
//	func (Foo) ValueList() []func() string { /* omitted for brevity */ }
//
//	// ID returns the declaration ordinal of f.
//	func (f Foo) ID() int { /* omitted for brevity */ }
//
//	// Get returns the value associated with f.
//	func (f Foo) Get() *func() string { /* omitted for brevity */ }
//
// along with String, Defined, Next, Scan, MarshalJSON and UnmarshalJSON.
//
// Declarations can also be kept in a YAML file and passed with --yaml. Run
// go-constmap describe to print a Go declaration in that format. For help with
// the cli, run with the --help argument.
//
//	go-constmap --help
package main

import (
	"github.com/ajjensen13/go-constmap/internal/cmd"
)

func main() {
	cmd.Execute()
}
