package declaration

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
)

// Expr is a Go expression (or type) captured as source text.
//
// Refs lists the package-qualified identifiers inside Text so the generator
// can import the packages they come from.
type Expr struct {
	Text string
	Refs []PackageRef
}

// PackageRef is a qualified identifier such as strings.ToUpper.
// Text[Start:End] is the whole selector.
type PackageRef struct {
	Start, End int
	Alias      string
	Path       string
	Name       string
}

// Resolver returns the import path of the package id refers to, if any.
type Resolver func(id *ast.Ident) (path string, ok bool)

// NewExpr captures node, whose source text is text and which starts at base.
func NewExpr(text string, node ast.Expr, base token.Pos, resolve Resolver) Expr {
	ret := Expr{Text: text}
	ast.Inspect(node, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		path, ok := resolve(id)
		if !ok {
			return true
		}

		ret.Refs = append(ret.Refs, PackageRef{
			Start: int(sel.Pos() - base),
			End:   int(sel.End() - base),
			Alias: id.Name,
			Path:  path,
			Name:  sel.Sel.Name,
		})
		return false
	})

	sort.Slice(ret.Refs, func(i, j int) bool { return ret.Refs[i].Start < ret.Refs[j].Start })
	return ret
}

// ParseExpr parses text as a Go expression. Selectors whose operand is a key
// of imports are recorded as references to the mapped import path.
func ParseExpr(text string, imports map[string]string) (Expr, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseExprFrom(fset, "", text, 0)
	if err != nil {
		return Expr{}, fmt.Errorf("parsing %q: %w", text, err)
	}

	base := token.Pos(fset.File(node.Pos()).Base())
	return NewExpr(text, node, base, func(id *ast.Ident) (string, bool) {
		path, ok := imports[id.Name]
		return path, ok
	}), nil
}

// Segments splits Text around its references. lit is called for verbatim
// text between references (possibly empty), ref for each reference.
func (e Expr) Segments(lit func(string), ref func(PackageRef)) {
	pos := 0
	for _, r := range e.Refs {
		lit(e.Text[pos:r.Start])
		ref(r)
		pos = r.End
	}
	lit(e.Text[pos:])
}

// ZeroValue returns an expression evaluating to the zero value of the type
// elem, which may be any Go type.
func ZeroValue(elem Expr) Expr {
	const prefix = "*new("
	ret := Expr{Text: prefix + elem.Text + ")"}
	for _, r := range elem.Refs {
		r.Start += len(prefix)
		r.End += len(prefix)
		ret.Refs = append(ret.Refs, r)
	}
	return ret
}

func (e Expr) String() string {
	return e.Text
}
