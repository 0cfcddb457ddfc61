package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherTabExportPaths walks a directory for .json tab exports (the shape
// produced by the browser editor's export / drag-and-drop feature). A zero
// maxNum means no limit.
func GatherTabExportPaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() && strings.HasSuffix(s, ".json") {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func ReadFileOrPanic(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return data
}

func Max[A constraints.Ordered](a A, b A) A {
	if a > b {
		return a
	}
	return b
}
