// Package decls holds declarations that exercise edge cases of reading
// constmap.Decl literals.
package decls

import (
	"image/color"
	. "strings"

	"github.com/ajjensen13/go-constmap/constmap"
)

var zeroDecl = constmap.Decl[color.RGBA]{
	{Name: "Clear"},
	{Name: "Red", Value: color.RGBA{R: 0xff, A: 0xff}},
}

var dotDecl = constmap.Decl[func(string) string]{
	{Name: "Upper", Value: ToUpper},
}

var selectorDecl = constmap.Decl[int]{
	{Name: "White", Value: int(color.White.Y)},
	{Name: "Red", Value: int(color.RGBA{R: 0xff}.R)},
}
