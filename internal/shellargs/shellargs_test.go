package shellargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a b c", []string{"a", "b", "c"}},
		{"runs of whitespace", "a   b\tc", []string{"a", "b", "c"}},
		{"leading and trailing space", "  clean install  ", []string{"clean", "install"}},
		{"single quotes retained", "a 'b c' d", []string{"a", "'b c'", "d"}},
		{"double quotes retained", `a "b c" d`, []string{"a", `"b c"`, "d"}},
		{"quote inside token", `-Dname='two words'`, []string{"-Dname='two words'"}},
		{"mixed quote kinds", `'a "b' c`, []string{`'a "b'`, "c"}},
		{"unterminated quote swallows rest", "a 'b c d", []string{"a", "'b c d"}},
		{"empty", "", nil},
		{"only whitespace", "   ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.in))
		})
	}
}

func TestSplit_MavenDefault(t *testing.T) {
	assert.Equal(t, []string{"clean", "install"}, Split("clean install"))
}
