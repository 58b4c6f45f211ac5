package driver_test

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	goodSrc   = "package p\n\nfunc f(a, b int) int {\n\treturn a + b\n}\n"
	noPkgSrc  = "var x = 1\n"
	lexErrSrc = "package p\nvar s = \"abc\n"
)

// writeTree creates files (relative path -> content) under a temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}
