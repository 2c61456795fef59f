// Package declaration models an enumeration declaration independently of the
// surface it was read from (Go source or a YAML file).
package declaration

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
)

var (
	ErrNoEntries     = errors.New("no entries declared")
	ErrDuplicateName = errors.New("duplicate variant name")
	ErrInvalidName   = errors.New("invalid variant name")
)

// Declaration describes one enumeration to generate.
type Declaration struct {
	// TypeName is the name of the generated enumeration type.
	TypeName string

	// Element is the type shared by all values.
	Element Expr

	// Receiver is the receiver name of the generated methods.
	// If empty, the generator picks one.
	Receiver string

	// Entries are in declaration order; an entry's index is its ordinal.
	Entries []Entry
}

// Entry is a variant and the expression of its value.
type Entry struct {
	Name  string
	Value Expr
}

// Names returns the variant names in declaration order.
func (d *Declaration) Names() []string {
	ret := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		ret[i] = e.Name
	}
	return ret
}

// Imports returns every package referenced by the element type or a value,
// keyed by the name used in the declaration.
func (d *Declaration) Imports() map[string]string {
	ret := make(map[string]string)
	add := func(e Expr) {
		for _, r := range e.Refs {
			ret[r.Alias] = r.Path
		}
	}
	add(d.Element)
	for _, e := range d.Entries {
		add(e.Value)
	}
	return ret
}

// Validate reports authoring defects that would otherwise surface as
// confusing compile errors in the generated file.
func (d *Declaration) Validate() error {
	if !isIdent(d.TypeName) {
		return fmt.Errorf("invalid type name %q", d.TypeName)
	}

	if d.Element.Text == "" {
		return fmt.Errorf("type %s: missing element type", d.TypeName)
	}

	if d.Receiver != "" && (!isIdent(d.Receiver) || isPredeclared(d.Receiver)) {
		return fmt.Errorf("type %s: invalid receiver name %q", d.TypeName, d.Receiver)
	}

	if len(d.Entries) == 0 {
		return fmt.Errorf("type %s: %w", d.TypeName, ErrNoEntries)
	}

	imports := d.Imports()
	seen := make(map[string]int, len(d.Entries))
	for i, e := range d.Entries {
		if !isIdent(e.Name) || e.Name == d.TypeName {
			return fmt.Errorf("type %s: entry %d: %w: %q", d.TypeName, i, ErrInvalidName, e.Name)
		}

		// variants are package-level constants of the generated file
		if _, ok := imports[e.Name]; ok || isPredeclared(e.Name) || isGeneratedImport(e.Name) {
			return fmt.Errorf("type %s: entry %d: %w: %q shadows an identifier used by the generated code", d.TypeName, i, ErrInvalidName, e.Name)
		}

		if j, ok := seen[e.Name]; ok {
			return fmt.Errorf("type %s: entries %d and %d: %w: %q", d.TypeName, j, i, ErrDuplicateName, e.Name)
		}
		seen[e.Name] = i

		if e.Value.Text == "" {
			return fmt.Errorf("type %s: entry %q: missing value", d.TypeName, e.Name)
		}
	}

	return nil
}

// GeneratedImports are the package names every generated file refers to.
var GeneratedImports = []string{"constmap", "fmt", "strconv"}

func isGeneratedImport(s string) bool {
	for _, name := range GeneratedImports {
		if s == name {
			return true
		}
	}
	return false
}

// isPredeclared reports whether s names a predeclared identifier such as
// int, len or nil.
func isPredeclared(s string) bool {
	return types.Universe.Lookup(s) != nil
}

// isIdent reports whether s can name a Go declaration.
func isIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}
