package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

// snippetSeeds exercise automatic semicolons and the header/composite
// literal ambiguity.
var snippetSeeds = []string{
	"",
	"package p\n",
	"package main\n\nfunc main() {\n\tx := 1*2 + 3\n}\n",
	"package p\nimport (\n\t\"fmt\"\n\tf \"os\"\n\t. \"strings\"\n)\n",
	"package p\nfunc f() {\n\tif x := (T{}); x.ok {\n\t}\n\tfor k, v := range m {\n\t}\n}\n",
	"package p\nfunc f(v interface{}) {\n\tswitch t := v.(type) {\n\tcase int, string:\n\tdefault:\n\t}\n}\n",
	"package p\nvar a = [...]int{1, 2, 3}[1:2:3]\n",
	"package p\nfunc f(c <-chan int) {\n\tselect {\n\tcase v, ok := <-c:\n\t\t_ = v\n\tdefault:\n\t}\n}\n",
	"package p\nvar s = `raw\nstring`\nvar r = '\\n'\n",
	"package p\nfunc f() { L: for { break L } }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
	addSourceSeeds(f)
}

// addSourceSeeds adds this repository's own non-test Go files. Most of them
// use features outside the accepted subset, which is useful too.
func addSourceSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "internal")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		// #nosec G304 -- path comes from a walk of the repository tree
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
