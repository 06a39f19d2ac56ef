package lint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jssort/jssort/pkg/ast"
)

func TestApplyFixes(t *testing.T) {
	t.Run("single replacement", func(t *testing.T) {
		req := require.New(t)

		source := []byte("hello world")
		diags := []Diagnostic{{
			Fix: &Fix{Range: ast.Range{Start: 6, End: 11}, Text: "there"},
		}}

		out, changed := applyFixes(source, diags)
		req.True(changed)
		req.Equal("hello there", string(out))
	})

	t.Run("multiple replacements applied rightmost first", func(t *testing.T) {
		req := require.New(t)

		source := []byte("aa bb cc")
		diags := []Diagnostic{
			{Fix: &Fix{Range: ast.Range{Start: 0, End: 2}, Text: "xxxx"}},
			{Fix: &Fix{Range: ast.Range{Start: 6, End: 8}, Text: "y"}},
		}

		out, changed := applyFixes(source, diags)
		req.True(changed)
		req.Equal("xxxx bb y", string(out))
	})

	t.Run("no fixes", func(t *testing.T) {
		req := require.New(t)

		source := []byte("unchanged")
		out, changed := applyFixes(source, []Diagnostic{{Message: "report only"}})
		req.False(changed)
		req.Equal(source, out)
	})
}
