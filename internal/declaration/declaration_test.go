package declaration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

func mustExpr(t *testing.T, text string, imports map[string]string) Expr {
	t.Helper()
	e, err := ParseExpr(text, imports)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func validDeclaration(t *testing.T) *Declaration {
	return &Declaration{
		TypeName: "Foo",
		Element:  mustExpr(t, "func() string", nil),
		Entries: []Entry{
			{Name: "Item0", Value: mustExpr(t, "item0", nil)},
			{Name: "Item1", Value: mustExpr(t, "item1", nil)},
		},
	}
}

func TestDeclaration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Declaration)
		wantErr error
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(d *Declaration) {},
		},
		{
			name: "duplicate values are allowed",
			mutate: func(d *Declaration) {
				d.Entries[1].Value = d.Entries[0].Value
			},
		},
		{
			name:    "no entries",
			mutate:  func(d *Declaration) { d.Entries = nil },
			wantErr: ErrNoEntries,
		},
		{
			name:    "duplicate name",
			mutate:  func(d *Declaration) { d.Entries[1].Name = "Item0" },
			wantErr: ErrDuplicateName,
		},
		{
			name:    "keyword",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "func" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "blank",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "_" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "name equals type",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "Foo" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "generated import fmt",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "fmt" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "generated import strconv",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "strconv" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "generated import constmap",
			mutate:  func(d *Declaration) { d.Entries[1].Name = "constmap" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "predeclared type",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "int" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "predeclared string",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "string" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "predeclared error",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "error" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "predeclared func",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "len" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "predeclared nil",
			mutate:  func(d *Declaration) { d.Entries[0].Name = "nil" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "predeclared true",
			mutate:  func(d *Declaration) { d.Entries[1].Name = "true" },
			wantErr: ErrInvalidName,
		},
		{
			name: "value import alias",
			mutate: func(d *Declaration) {
				imports := map[string]string{"color": "image/color"}
				d.Element = mustExpr(t, "color.RGBA", imports)
				d.Entries[0].Value = mustExpr(t, "color.RGBA{}", imports)
				d.Entries[1].Value = mustExpr(t, "color.RGBA{A: 1}", imports)
				d.Entries[1].Name = "color"
			},
			wantErr: ErrInvalidName,
		},
		{
			name:   "variant named err",
			mutate: func(d *Declaration) { d.Entries[0].Name = "err" },
		},
		{
			name:    "bad type name",
			mutate:  func(d *Declaration) { d.TypeName = "1Foo" },
			wantMsg: "invalid type name",
		},
		{
			name:    "missing element",
			mutate:  func(d *Declaration) { d.Element = Expr{} },
			wantMsg: "missing element type",
		},
		{
			name:    "bad receiver",
			mutate:  func(d *Declaration) { d.Receiver = "if" },
			wantMsg: "invalid receiver name",
		},
		{
			name:    "predeclared receiver",
			mutate:  func(d *Declaration) { d.Receiver = "int" },
			wantMsg: "invalid receiver name",
		},
		{
			name:    "missing value",
			mutate:  func(d *Declaration) { d.Entries[1].Value = Expr{} },
			wantMsg: "missing value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := assertions.New(t)

			d := validDeclaration(t)
			tt.mutate(d)
			err := d.Validate()
			switch {
			case tt.wantErr != nil:
				test.So(err, should.Wrap, tt.wantErr)
			case tt.wantMsg != "":
				if test.So(err, should.BeError) {
					test.So(err.Error(), should.ContainSubstring, tt.wantMsg)
				}
			default:
				test.So(err, should.BeNil)
			}
		})
	}
}

func TestDeclaration_Names(t *testing.T) {
	test := assertions.New(t)
	test.So(validDeclaration(t).Names(), should.Resemble, []string{"Item0", "Item1"})
}

func TestParseExpr(t *testing.T) {
	test := assertions.New(t)
	imports := map[string]string{"color": "image/color", "str": "strings"}

	e, err := ParseExpr("wrap(str.ToUpper, color.RGBA{R: 1}, local.Field)", imports)
	if !test.So(err, should.BeNil) || !test.So(e.Refs, should.HaveLength, 2) {
		return
	}

	test.So(e.Refs[0], should.Resemble, PackageRef{Start: 5, End: 16, Alias: "str", Path: "strings", Name: "ToUpper"})
	test.So(e.Text[e.Refs[0].Start:e.Refs[0].End], should.Equal, "str.ToUpper")
	test.So(e.Text[e.Refs[1].Start:e.Refs[1].End], should.Equal, "color.RGBA")

	var sb strings.Builder
	e.Segments(
		func(s string) { sb.WriteString(s) },
		func(r PackageRef) { sb.WriteString("<" + r.Path + "." + r.Name + ">") },
	)
	test.So(sb.String(), should.Equal, "wrap(<strings.ToUpper>, <image/color.RGBA>{R: 1}, local.Field)")
}

func TestParseExpr_Types(t *testing.T) {
	for _, text := range []string{"func() string", "[]byte", "map[string]int", "*bytes.Buffer", "struct{ A int }"} {
		t.Run(text, func(t *testing.T) {
			test := assertions.New(t)
			e, err := ParseExpr(text, map[string]string{"bytes": "bytes"})
			if test.So(err, should.BeNil) {
				test.So(e.String(), should.Equal, text)
			}
		})
	}
}

func TestParseExpr_Invalid(t *testing.T) {
	test := assertions.New(t)
	_, err := ParseExpr("func(", nil)
	test.So(err, should.BeError)
}

func TestZeroValue(t *testing.T) {
	test := assertions.New(t)
	imports := map[string]string{"color": "image/color"}

	z := ZeroValue(mustExpr(t, "map[string]color.RGBA", imports))
	test.So(z.Text, should.Equal, "*new(map[string]color.RGBA)")
	if test.So(z.Refs, should.HaveLength, 1) {
		test.So(z.Text[z.Refs[0].Start:z.Refs[0].End], should.Equal, "color.RGBA")
		test.So(z.Refs[0].Path, should.Equal, "image/color")
	}

	// the result is itself a valid expression
	parsed := mustExpr(t, z.Text, imports)
	test.So(parsed, should.Resemble, z)
}

func TestDeclaration_Imports(t *testing.T) {
	test := assertions.New(t)
	imports := map[string]string{"color": "image/color"}

	d := &Declaration{
		TypeName: "Color",
		Element:  mustExpr(t, "color.RGBA", imports),
		Entries:  []Entry{{Name: "Red", Value: mustExpr(t, "color.RGBA{R: 0xff, A: 0xff}", imports)}},
	}
	test.So(d.Imports(), should.Resemble, imports)
}

const colorYAML = `type: Color
element: color.RGBA
receiver: c
imports:
  color: image/color
entries:
  Red: "color.RGBA{R: 0xff, A: 0xff}"
  Green: "color.RGBA{G: 0xff, A: 0xff}"
  Blue: "color.RGBA{B: 0xff, A: 0xff}"
`

func TestReadYAML(t *testing.T) {
	test := assertions.New(t)

	d, err := ReadYAML(strings.NewReader(colorYAML))
	if !test.So(err, should.BeNil) {
		return
	}
	test.So(d.Validate(), should.BeNil)

	test.So(d.TypeName, should.Equal, "Color")
	test.So(d.Receiver, should.Equal, "c")
	test.So(d.Element.Text, should.Equal, "color.RGBA")
	test.So(d.Names(), should.Resemble, []string{"Red", "Green", "Blue"})
	test.So(d.Entries[2].Value.Text, should.Equal, "color.RGBA{B: 0xff, A: 0xff}")
	if test.So(d.Entries[2].Value.Refs, should.HaveLength, 1) {
		test.So(d.Entries[2].Value.Refs[0].Path, should.Equal, "image/color")
	}
}

func TestReadYAML_ZeroValue(t *testing.T) {
	test := assertions.New(t)

	d, err := ReadYAML(strings.NewReader(colorYAML + "  Clear:\n  Empty: null\n"))
	if !test.So(err, should.BeNil) {
		return
	}
	test.So(d.Validate(), should.BeNil)
	test.So(d.Names(), should.Resemble, []string{"Red", "Green", "Blue", "Clear", "Empty"})

	for _, e := range d.Entries[3:] {
		test.So(e.Value.Text, should.Equal, "*new(color.RGBA)")
		if test.So(e.Value.Refs, should.HaveLength, 1) {
			test.So(e.Value.Refs[0].Path, should.Equal, "image/color")
		}
	}
}

func TestReadYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "empty declaration file"},
		{"unknown field", "type: Foo\ncolour: red\n", "colour"},
		{"entries sequence", "type: Foo\nelement: int\nentries:\n  - A\n", "entries must be a mapping"},
		{"nested value", "type: Foo\nelement: int\nentries:\n  A: [1]\n", "entries must map names to expressions"},
		{"bad element", "type: Foo\nelement: 'func('\n", "element"},
		{"bad value", "type: Foo\nelement: int\nentries:\n  A: '1 +'\n", `entry "A"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := assertions.New(t)
			_, err := ReadYAML(strings.NewReader(tt.input))
			if test.So(err, should.BeError) {
				test.So(err.Error(), should.ContainSubstring, tt.wantMsg)
			}
		})
	}
}

func TestReadYAML_NoEntries(t *testing.T) {
	test := assertions.New(t)

	d, err := ReadYAML(strings.NewReader("type: Foo\nelement: int\n"))
	if test.So(err, should.BeNil) {
		test.So(d.Validate(), should.Wrap, ErrNoEntries)
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	test := assertions.New(t)

	want, err := ReadYAML(strings.NewReader(colorYAML))
	if !test.So(err, should.BeNil) {
		return
	}

	var buf bytes.Buffer
	if !test.So(WriteYAML(&buf, want), should.BeNil) {
		return
	}

	got, err := ReadYAML(&buf)
	if test.So(err, should.BeNil) {
		test.So(got, should.Resemble, want)
	}
}
