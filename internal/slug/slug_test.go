package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Acme", want: "acme"},
		{name: "spaces", in: "Acme Web Platform", want: "acme-web-platform"},
		{name: "punctuation collapses", in: "Q3 -- Launch!!", want: "q3-launch"},
		{name: "leading and trailing junk", in: "  --Sprint 7--  ", want: "sprint-7"},
		{name: "unicode stripped", in: "Büro Köln", want: "b-ro-k-ln"},
		{name: "empty", in: "", want: "untitled"},
		{name: "only junk", in: "!!!", want: "untitled"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, Make(test.in))
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	long := Make(strings.Repeat("word ", 40))
	require.LessOrEqual(t, len(long), maxLen)
	require.False(t, strings.HasSuffix(long, "-"))
}

func TestWithSuffix(t *testing.T) {
	a := WithSuffix("acme")
	b := WithSuffix("acme")
	require.True(t, strings.HasPrefix(a, "acme-"))
	require.Len(t, a, len("acme-")+8)
	require.NotEqual(t, a, b)
}
