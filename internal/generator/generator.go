// Package generator renders declarations into Go source with jennifer.
package generator

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/ajjensen13/go-constmap/internal/declaration"
)

// ConstmapPath is the import path of the runtime package referenced by
// generated code.
const ConstmapPath = "github.com/ajjensen13/go-constmap/constmap"

// Generate generates the enumeration described by d into a new file of
// package pkgName. d must be valid.
func Generate(pkgName string, d *declaration.Declaration) (f *jen.File, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	if len(d.Entries) == 0 {
		return nil, errors.New("nothing to generate")
	}

	g := newGen(d)

	f = jen.NewFile(pkgName)
	f.ImportName(ConstmapPath, "constmap")
	importAliases(f, d)

	g.typeDecl(f)
	f.Line()
	g.valuesDecl(f)
	f.Line()
	g.valueListMethod(f)
	f.Line()
	g.idMethod(f)
	f.Line()
	g.getMethod(f)
	f.Line()
	g.stringMethod(f)
	f.Line()
	g.definedMethod(f)
	f.Line()
	g.nextMethod(f)
	f.Line()
	g.scanMethod(f)
	f.Line()
	g.jsonMarshal(f)
	f.Line()
	g.jsonUnmarshal(f)
	f.Line()
	g.compileCheckFunction(f)

	return f, nil
}

// importAliases makes the generated file refer to each package by the name
// the declaration uses for it, which is the name Validate checks variants
// against.
func importAliases(f *jen.File, d *declaration.Declaration) {
	imports := d.Imports()
	aliases := make([]string, 0, len(imports))
	for alias := range imports {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		p := imports[alias]
		if alias == path.Base(p) {
			f.ImportName(p, alias)
			continue
		}
		f.ImportAlias(p, alias)
	}
}

// gen holds the names used while rendering one declaration.
type gen struct {
	d         *declaration.Declaration
	typeName  string
	names     []string
	receiver  string
	valuesVar string
	errVar    string
	tokenVar  string
	scanVar   string
	verbVar   string
	xVar      string
}

func newGen(d *declaration.Declaration) *gen {
	names := d.Names()
	taken := append([]string{d.TypeName}, declaration.GeneratedImports...)
	taken = append(taken, names...)
	for alias := range d.Imports() {
		taken = append(taken, alias)
	}

	g := &gen{d: d, typeName: d.TypeName, names: names}

	g.valuesVar = safeIndent(UnexportedName(d.TypeName)+"Values", taken...)
	taken = append(taken, g.valuesVar)

	receiver := d.Receiver
	if receiver == "" {
		receiver = DefaultReceiverName(d.TypeName)
	}
	g.receiver = safeIndent(receiver, taken...)
	taken = append(taken, g.receiver)

	g.errVar = safeIndent("err", taken...)
	taken = append(taken, g.errVar)

	g.tokenVar = safeIndent("token", taken...)
	g.scanVar = safeIndent("scanState", append(taken, g.tokenVar)...)
	g.verbVar = safeIndent("verb", append(taken, g.tokenVar, g.scanVar)...)
	g.xVar = safeIndent("x", append(taken, g.tokenVar, g.scanVar, g.verbVar)...)

	return g
}

// elem returns a fresh statement rendering the element type.
func (g *gen) elem() *jen.Statement {
	return exprCode(g.d.Element)
}

// exprCode renders e verbatim, except for package-qualified identifiers which
// are rendered through jen.Qual so that their imports are added to the file.
func exprCode(e declaration.Expr) *jen.Statement {
	s := &jen.Statement{}
	e.Segments(
		func(lit string) {
			if lit != "" {
				s.Op(lit)
			}
		},
		func(r declaration.PackageRef) {
			s.Qual(r.Path, r.Name)
		},
	)
	return s
}

func (g *gen) recv() *jen.Statement {
	return jen.Id(g.receiver).Id(g.typeName)
}

// typeDecl generates the enumeration type and its variants.
func (g *gen) typeDecl(f *jen.File) {
	f.Commentf("%s is an enumeration whose variants index %s.", g.typeName, g.valuesVar)
	f.Type().Id(g.typeName).Int()
	f.Line()
	f.Const().DefsFunc(func(grp *jen.Group) {
		for i, name := range g.names {
			if i == 0 {
				grp.Id(name).Id(g.typeName).Op("=").Iota()
				continue
			}
			grp.Id(name)
		}
	})
}

// valuesDecl generates the value array, keyed by variant, and the
// constmap.Key assertion.
func (g *gen) valuesDecl(f *jen.File) {
	f.Commentf("%s holds the value of each %s, indexed by ID.", g.valuesVar, g.typeName)
	// jen.Dict would sort the keys
	f.Var().Id(g.valuesVar).Op("=").Index(jen.Op("...")).Add(g.elem()).CustomFunc(jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}, func(grp *jen.Group) {
		for _, e := range g.d.Entries {
			grp.Id(e.Name).Op(":").Add(exprCode(e.Value))
		}
	})
	f.Line()
	f.Var().Id("_").Qual(ConstmapPath, "Key").Types(g.elem()).Op("=").Id(g.typeName).Call(jen.Lit(0))
}

// valueListMethod generates the ValueList() method.
func (g *gen) valueListMethod(f *jen.File) {
	f.Commentf("ValueList returns the values of all %s variants in declaration order.", g.typeName)
	f.Comment("Every call returns the same underlying array.")
	f.Func().Params(jen.Id(g.typeName)).Id("ValueList").Params().Index().Add(g.elem()).Block(
		jen.Return(jen.Id(g.valuesVar).Index(jen.Op(":"))),
	)
}

// idMethod generates the ID() method.
func (g *gen) idMethod(f *jen.File) {
	f.Commentf("ID returns the declaration ordinal of %s.", g.receiver)
	f.Func().Params(g.recv()).Id("ID").Params().Int().Block(
		jen.Return(jen.Int().Parens(jen.Id(g.receiver))),
	)
}

// getMethod generates the Get() method.
func (g *gen) getMethod(f *jen.File) {
	f.Commentf("Get returns the value associated with %s. It panics if !%s.Defined().", g.receiver, g.receiver)
	f.Func().Params(g.recv()).Id("Get").Params().Op("*").Add(g.elem()).Block(
		jen.Return(jen.Qual(ConstmapPath, "Get").Types(g.elem()).Call(jen.Id(g.receiver))),
	)
}

// stringMethod generates the String() method.
func (g *gen) stringMethod(f *jen.File) {
	f.Commentf("String implements fmt.Stringer. If !%s.Defined(), then a generated string is returned based on %s's value.", g.receiver, g.receiver)
	f.Func().Params(g.recv()).Id("String").Params().String().Block(
		jen.Switch(jen.Id(g.receiver)).BlockFunc(func(grp *jen.Group) {
			for _, name := range g.names {
				grp.Case(jen.Id(name)).Block(jen.Return(jen.Lit(name)))
			}
		}),
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(g.typeName+"(%d)"), jen.Int().Parens(jen.Id(g.receiver)))),
	)
}

// definedMethod generates the Defined() method.
func (g *gen) definedMethod(f *jen.File) {
	f.Commentf("Defined returns true if %s holds a defined value.", g.receiver)
	f.Func().Params(g.recv()).Id("Defined").Params().Bool().Block(
		jen.Return(jen.Lit(0).Op("<=").Id(g.receiver).Op("&&").Id(g.receiver).Op("<").Id(g.typeName).Call(jen.Len(jen.Id(g.valuesVar)))),
	)
}

// nextMethod generates the Next() method.
func (g *gen) nextMethod(f *jen.File) {
	r, t := g.receiver, g.typeName
	f.Commentf("Next returns the next defined %s. If %s is not defined, then Next returns the first defined value.", t, r)
	f.Commentf("Next() can be used to loop through all values of an enum.")
	f.Commentf("")
	f.Commentf("\t%s := %s(0)", r, t)
	f.Comment("\tfor {")
	f.Commentf("\t\tfmt.Println(%s)", r)
	f.Commentf("\t\t%s = %s.Next()", r, r)
	f.Commentf("\t\tif %s == %s(0) {", r, t)
	f.Comment("\t\t\tbreak")
	f.Comment("\t\t}")
	f.Comment("\t}")
	f.Func().Params(g.recv()).Id("Next").Params().Id(t).Block(
		jen.Switch(jen.Id(r)).BlockFunc(func(grp *jen.Group) {
			for i, name := range g.names {
				ni := (i + 1) % len(g.names)
				grp.Case(jen.Id(name)).Block(jen.Return(jen.Id(g.names[ni])))
			}
			grp.Default().Block(jen.Return(jen.Id(g.names[0])))
		}),
	)
}

// scanMethod generates the Scan() method.
func (g *gen) scanMethod(f *jen.File) {
	f.Commentf("Scan implements fmt.Scanner. Use fmt.Scan() to parse strings into %s values", g.typeName)
	f.Func().Params(jen.Id(g.receiver).Op("*").Id(g.typeName)).Id("Scan").Params(jen.Id(g.scanVar).Qual("fmt", "ScanState"), jen.Id(g.verbVar).Rune()).Error().Block(
		jen.List(jen.Id(g.tokenVar), jen.Id(g.errVar)).Op(":=").Id(g.scanVar).Dot("Token").Call(jen.True(), jen.Nil()),
		jen.If(jen.Id(g.errVar).Op("!=").Nil()).Block(
			jen.Return(jen.Id(g.errVar)),
		),
		jen.Line(),
		jen.Switch(jen.String().Parens(jen.Id(g.tokenVar))).BlockFunc(func(grp *jen.Group) {
			for _, name := range g.names {
				grp.Case(jen.Lit(name)).Block(
					jen.Op("*").Id(g.receiver).Op("=").Id(name),
				)
			}
			grp.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+g.typeName+" value: %s"), jen.Id(g.tokenVar))),
			)
		}),
		jen.Return(jen.Nil()),
	)
}

// jsonMarshal generates the MarshalJSON() method.
func (g *gen) jsonMarshal(f *jen.File) {
	f.Comment("MarshalJSON implements json.Marshaler")
	f.Func().Params(g.recv()).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Index().Byte().Parens(jen.Qual("strconv", "Quote").Call(jen.Id(g.receiver).Dot("String").Call())), jen.Nil()),
	)
}

// jsonUnmarshal generates the UnmarshalJSON() method.
func (g *gen) jsonUnmarshal(f *jen.File) {
	f.Comment("UnmarshalJSON implements json.Unmarshaler")
	f.Func().Params(jen.Id(g.receiver).Op("*").Id(g.typeName)).Id("UnmarshalJSON").Params(jen.Id(g.xVar).Index().Byte()).Params(jen.Error()).Block(
		jen.Switch(jen.String().Parens(jen.Id(g.xVar))).BlockFunc(func(grp *jen.Group) {
			for _, name := range g.names {
				grp.Case(jen.Lit(`"` + name + `"`)).Block(jen.Op("*").Id(g.receiver).Op("=").Id(name), jen.Return(jen.Nil()))
			}
			grp.Default().Block(jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("failed to parse value %v into %T"), jen.Id(g.xVar), jen.Op("*").Id(g.receiver))))
		}),
	)
}

// compileCheckFunction generates the _() function that will fail to compile
// if the ordinals have changed or the value array no longer has one value per
// variant.
func (g *gen) compileCheckFunction(f *jen.File) {
	f.Func().Id("_").Params().BlockFunc(func(grp *jen.Group) {
		grp.Var().Id(g.xVar).Index(jen.Lit(1)).Struct()
		grp.Comment(`An "invalid array index" compiler error signifies that the variants have changed.`)
		grp.Commentf(`Re-run the %s command to generate them again.`, commandName())
		for i, name := range g.names {
			grp.Id("_").Op("=").Id(g.xVar).Index(jen.Id(name).Op("-").Lit(i))
		}
		grp.Id("_").Op("=").Id(g.xVar).Index(jen.Len(jen.Id(g.valuesVar)).Op("-").Lit(len(g.names)))
	})
}

func commandName() string {
	if len(os.Args) == 0 {
		return "go-constmap"
	}
	return os.Args[0]
}

// DefaultReceiverName returns the default receiver name to use for typeName.
func DefaultReceiverName(typeName string) string {
	s, _ := utf8.DecodeRuneInString(typeName)
	return UnexportedName(string(s))
}

// safeIndent returns an identifier that is safe to use (not a keyword,
// and not already used). want is the requested identifier; not is a
// list of identifiers that are already used.
func safeIndent(want string, not ...string) string {
	if token.IsKeyword(want) {
		return safeIndent("_"+want, not...)
	}

	for _, s := range not {
		if want == s {
			return safeIndent("_"+want, not...)
		}
	}

	return want
}

// UnexportedName returns s with the first character replaced
// with its lower case version if it is upper case.
func UnexportedName(s string) string {
	if !ast.IsExported(s) {
		return s
	}

	start, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		panic("s is empty")
	}

	start = unicode.ToLower(start)
	return string(start) + s[size:]
}

// ExportedName returns s with the first character replaced
// with its upper case version.
func ExportedName(s string) string {
	start, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(start)) + s[size:]
}
