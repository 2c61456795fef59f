package cmd

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"math"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ajjensen13/go-constmap/internal/declaration"
	"github.com/ajjensen13/go-constmap/internal/generator"
)

// loadPackage loads the package of file inputFileName.
func loadPackage(pkgName, inputFileName string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports}, fmt.Sprintf("file=%s", inputFileName))
	if err != nil {
		return nil, err
	}

	var ret *packages.Package
	for _, pkg := range pkgs {
		if pkg.Name != pkgName {
			continue
		}

		if ret != nil {
			return nil, fmt.Errorf("multiple packages found with name %s", pkgName)
		}

		ret = pkg
	}

	if ret == nil {
		return nil, fmt.Errorf("no packages found with name %s", pkgName)
	}

	return ret, nil
}

// findDeclVar finds the package-level variable holding the declaration.
// If name is passed, a variable with that name is searched for.
// Otherwise, the first declaration after line in inputFileName must be it.
func findDeclVar(pkg *packages.Package, name, inputFileName string, line int) (*types.Var, error) {
	if name != "" {
		return findDeclVarByName(pkg.Types, name)
	}

	return findDeclVarByPosition(pkg.Fset, pkg.TypesInfo, pkg.Types.Scope(), inputFileName, line)
}

// findDeclVarByPosition finds the next package-level *types.Var in inputFileName after line
func findDeclVarByPosition(fset *token.FileSet, info *types.Info, scope *types.Scope, inputFileName string, line int) (*types.Var, error) {
	var closestObject types.Object
	closest := math.MaxInt32
	closestCol := math.MaxInt32
	for _, object := range info.Defs {
		if object == nil {
			continue
		}

		p := fset.Position(object.Pos())
		if !sameFile(p.Filename, inputFileName) {
			continue
		}

		if p.Line < line || closest < p.Line || closest == p.Line && closestCol < p.Column {
			continue
		}

		closestObject = object
		closest, closestCol = p.Line, p.Column
	}

	if closestObject == nil {
		return nil, errors.New("failed to determine declaration")
	}

	// blank variables are not inserted into any scope
	v, ok := closestObject.(*types.Var)
	if !ok || v.Parent() != scope && v.Name() != "_" {
		return nil, fmt.Errorf("failed to determine declaration: closest declaration is not a package-level variable: %v", closestObject)
	}

	return v, nil
}

// findDeclVarByName finds the package-level variable named name.
func findDeclVarByName(pkg *types.Package, name string) (*types.Var, error) {
	v, ok := pkg.Scope().Lookup(name).(*types.Var)
	if !ok {
		return nil, fmt.Errorf("variable %q not found", name)
	}
	return v, nil
}

// declarationFromVar reads the constmap.Decl composite literal v is
// initialised with.
func declarationFromVar(pkg *packages.Package, v *types.Var) (*declaration.Declaration, error) {
	if !isDeclType(v.Type()) {
		return nil, fmt.Errorf("%s: type %s is not a constmap.Decl", v.Name(), v.Type())
	}

	spec, value := findValueSpec(pkg, v)
	if spec == nil {
		return nil, fmt.Errorf("%s: declaration not found", v.Name())
	}

	lit, ok := unparen(value).(*ast.CompositeLit)
	if !ok {
		return nil, fmt.Errorf("%s: must be initialised with a constmap.Decl composite literal", v.Name())
	}

	typeExpr := lit.Type
	if typeExpr == nil {
		typeExpr = spec.Type
	}
	index, ok := typeExpr.(*ast.IndexExpr)
	if !ok {
		return nil, fmt.Errorf("%s: element type must be written as constmap.Decl[T]", v.Name())
	}

	src := newSourceReader(pkg)

	d := &declaration.Declaration{TypeName: defaultTypeName(v.Name())}

	var err error
	d.Element, err = src.expr(index.Index)
	if err != nil {
		return nil, fmt.Errorf("%s: element type: %w", v.Name(), err)
	}

	for i, elt := range lit.Elts {
		entry, ok := unparen(elt).(*ast.CompositeLit)
		if !ok {
			return nil, fmt.Errorf("%s: entry %d: must be a constmap.Entry composite literal", v.Name(), i)
		}

		nameExpr, valueExpr, err := entryFields(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", v.Name(), i, err)
		}

		tv, ok := pkg.TypesInfo.Types[nameExpr]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return nil, fmt.Errorf("%s: entry %d: name must be a constant string", v.Name(), i)
		}

		e := declaration.Entry{Name: constant.StringVal(tv.Value)}
		if valueExpr == nil {
			e.Value = declaration.ZeroValue(d.Element)
		} else {
			e.Value, err = src.expr(valueExpr)
			if err != nil {
				return nil, fmt.Errorf("%s: entry %q: %w", v.Name(), e.Name, err)
			}
		}
		d.Entries = append(d.Entries, e)
	}

	return d, nil
}

// isDeclType reports whether t is an instance of constmap.Decl.
func isDeclType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == generator.ConstmapPath && obj.Name() == "Decl"
}

// findValueSpec finds the spec declaring v and the expression v is
// initialised with.
func findValueSpec(pkg *packages.Package, v *types.Var) (*ast.ValueSpec, ast.Expr) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.VAR {
				continue
			}

			for _, s := range gd.Specs {
				vs := s.(*ast.ValueSpec)
				for i, id := range vs.Names {
					if pkg.TypesInfo.Defs[id] != v {
						continue
					}

					if i >= len(vs.Values) {
						return vs, nil
					}
					return vs, vs.Values[i]
				}
			}
		}
	}

	return nil, nil
}

// entryFields returns the Name and Value expressions of a constmap.Entry
// literal, keyed or not. value is nil for a keyed literal without Value.
func entryFields(lit *ast.CompositeLit) (name, value ast.Expr, err error) {
	if len(lit.Elts) == 2 {
		if _, keyed := lit.Elts[0].(*ast.KeyValueExpr); !keyed {
			return lit.Elts[0], lit.Elts[1], nil
		}
	}

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return nil, nil, errors.New("mixture of field:value and value elements")
		}

		key, _ := kv.Key.(*ast.Ident)
		switch {
		case key == nil:
			return nil, nil, errors.New("unexpected key")
		case key.Name == "Name":
			name = kv.Value
		case key.Name == "Value":
			value = kv.Value
		}
	}

	if name == nil {
		return nil, nil, errors.New("missing Name")
	}

	return name, value, nil
}

// defaultTypeName derives the generated type name from the variable name,
// or returns "" if it cannot.
func defaultTypeName(varName string) string {
	name := strings.TrimSuffix(varName, "Decl")
	if name == "" || name == "_" {
		return ""
	}
	return generator.ExportedName(name)
}

// sourceReader captures expressions of a package as source text.
type sourceReader struct {
	pkg   *packages.Package
	files map[string][]byte
}

func newSourceReader(pkg *packages.Package) *sourceReader {
	return &sourceReader{pkg: pkg, files: make(map[string][]byte)}
}

func (r *sourceReader) expr(e ast.Expr) (declaration.Expr, error) {
	tf := r.pkg.Fset.File(e.Pos())
	if tf == nil {
		return declaration.Expr{}, errors.New("expression has no position")
	}

	src, ok := r.files[tf.Name()]
	if !ok {
		var err error
		src, err = os.ReadFile(tf.Name())
		if err != nil {
			return declaration.Expr{}, err
		}
		r.files[tf.Name()] = src
	}

	if id := r.dotImported(e); id != nil {
		return declaration.Expr{}, fmt.Errorf("%s: dot-imported identifier %s; qualify it with its package name", r.pkg.Fset.Position(id.Pos()), id.Name)
	}

	text := string(src[tf.Offset(e.Pos()):tf.Offset(e.End())])
	return declaration.NewExpr(text, e, e.Pos(), func(id *ast.Ident) (string, bool) {
		pn, ok := r.pkg.TypesInfo.Uses[id].(*types.PkgName)
		if !ok {
			return "", false
		}
		return pn.Imported().Path(), true
	}), nil
}

// dotImported returns the first identifier in e that refers to a
// package-level object of another package without a qualifier. Such
// identifiers only resolve through a dot import, which the generated file
// does not have.
func (r *sourceReader) dotImported(e ast.Expr) *ast.Ident {
	var ret *ast.Ident
	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		if ret != nil {
			return false
		}

		// the selected name is qualified by X
		if sel, ok := n.(*ast.SelectorExpr); ok {
			ast.Inspect(sel.X, visit)
			return false
		}

		ret = r.unqualified(n)
		return ret == nil
	}
	ast.Inspect(e, visit)
	return ret
}

// unqualified returns n if it is an identifier using a package-level object
// of another package.
func (r *sourceReader) unqualified(n ast.Node) *ast.Ident {
	id, ok := n.(*ast.Ident)
	if !ok {
		return nil
	}

	obj := r.pkg.TypesInfo.Uses[id]
	if obj == nil || obj.Pkg() == nil || obj.Pkg() == r.pkg.Types {
		return nil
	}

	if _, ok := obj.(*types.PkgName); ok {
		return nil
	}

	// struct fields and methods have no parent scope
	if obj.Parent() != obj.Pkg().Scope() {
		return nil
	}
	return id
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}

// sameFile determines if a and b point to the same file
func sameFile(a, b string) bool {
	as, err := os.Stat(a)
	if err != nil {
		panic(err)
	}

	bs, err := os.Stat(b)
	if err != nil {
		panic(err)
	}

	return os.SameFile(as, bs)
}
