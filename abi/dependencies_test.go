package abi_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The conversion core is imported by guests built for wasip1, so it may only
// depend on the standard library, wazero's api types and the errors package.
var coreAllowed = []string{
	"github.com/tetratelabs/wazero/api",
	"github.com/ruwak-dev/ruwak/errors",
}

func TestCoreImports(t *testing.T) {
	for _, dir := range []string{".", "../errors"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, "no Go files in %s", dir)

		fset := token.NewFileSet()
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			checkFileImports(t, fset, file)
		}
	}
}

func checkFileImports(t *testing.T, fset *token.FileSet, filename string) {
	t.Helper()

	f, err := parser.ParseFile(fset, filename, nil, parser.ImportsOnly)
	require.NoError(t, err, "failed to parse %s", filename)

	for _, imp := range f.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		first, _, _ := strings.Cut(path, "/")
		if !strings.Contains(first, ".") {
			continue
		}
		assert.Contains(t, coreAllowed, path, "%s imports %s", filename, path)
	}
}
