package emit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceEmpty(t *testing.T) {
	_, err := Source(nil, Options{})
	require.ErrorIs(t, err, ErrNoSizes)
}

func TestSourceSmall(t *testing.T) {
	src, err := Source([]uint64{8, 16, 24, 32, 48}, Options{
		Package: "classes",
		Config:  "small",
		Ranges:  []string{"[8,32,8]", "[32,64,16]"},
		PerLine: 4,
	})
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by mksizeclasses.go; DO NOT EDIT.\n"))
	assert.Contains(t, out, "package classes\n")
	assert.Contains(t, out, "//\t[32,64,16]\n")
	assert.Contains(t, out, "const NumClasses = 5\n")
	assert.Contains(t, out, "\t8, 16, 24, 32,\n\t48,\n}")
	assert.Contains(t, out, "func SizeClass(size uint64) int {")
	assert.Contains(t, out, "func SizeFromClass(class int) uint64 {")
}

// TestSourceParses checks the output is valid Go and carries the table in order.
func TestSourceParses(t *testing.T) {
	sizes := make([]uint64, 0, 116)
	for s := uint64(8); s < 1000; s += 8 {
		sizes = append(sizes, s)
	}
	src, err := Source(sizes, Options{})
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "z.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "sizeclass", f.Name.Name)
	assert.True(t, ast.IsGenerated(f))

	var got []uint64
	var funcs []string
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CompositeLit:
			for _, e := range n.Elts {
				v, err := strconv.ParseUint(e.(*ast.BasicLit).Value, 10, 64)
				require.NoError(t, err)
				got = append(got, v)
			}
		case *ast.FuncDecl:
			funcs = append(funcs, n.Name.Name)
		}
		return true
	})
	assert.Equal(t, sizes, got)
	assert.Equal(t, []string{"SizeClass", "SizeFromClass"}, funcs)
}

func TestSourceHeaderWithoutRanges(t *testing.T) {
	src, err := Source([]uint64{8}, Options{Config: "one"})
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Size classes for config \"one\".\n")

	src, err = Source([]uint64{8}, Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(src), "Size classes for config")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zsizeclasses.go")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteFile(path, []byte("package x\n"), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteFileFullSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z.go")
	require.NoError(t, WriteFile(path, []byte("package x\n"), true))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWriteFileMissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "z.go"), []byte("x"), false)
	require.Error(t, err)
}
