package example

import (
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

func TestTransform_Get(t *testing.T) {
	tests := []struct {
		name  string
		e     Transform
		input string
		want  string
	}{
		{"Upper", Upper, "Hello", "HELLO"},
		{"Lower", Lower, "Hello", "hello"},
		{"Trim", Trim, "  Hello ", "Hello"},
		{"Same", Same, " Hello", " Hello"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := assertions.New(t)
			test.So(tt.e.ID(), should.Equal, i)
			test.So((*tt.e.Get())(tt.input), should.Equal, tt.want)
		})
	}
}

func TestTransform_ValueList(t *testing.T) {
	test := assertions.New(t)
	test.So(len(Upper.ValueList()), should.Equal, 4)
}
