package example

import (
	"strings"

	"github.com/ajjensen13/go-constmap/constmap"
)

func item0() string { return "item0" }
func item1() string { return "item1" }

// Foo demonstrates function values.
//
//go:generate go-constmap
var fooDecl = constmap.Decl[func() string]{
	{Name: "Item0", Value: item0},
	{Name: "Item1", Value: item1},
}

// Num demonstrates numeric values, declared without field names.
//
//go:generate go-constmap --decl numDecl
var numDecl = constmap.Decl[int32]{
	{"A", 10},
	{"B", 20},
	{"C", 30},
}

// Transform demonstrates values taken from another package.
//
//go:generate go-constmap --receiver tr
var transformDecl = constmap.Decl[func(string) string]{
	{Name: "Upper", Value: strings.ToUpper},
	{Name: "Lower", Value: strings.ToLower},
	{Name: "Trim", Value: strings.TrimSpace},
	{Name: "Same", Value: func(s string) string { return s }},
}

// Color demonstrates a YAML declaration file.
//
//go:generate go-constmap --yaml color.yaml
