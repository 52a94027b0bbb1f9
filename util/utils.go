package util

import (
	"log"
	"os"
	"path/filepath"
)

// GetAbsolutePath joins a path relative to the working directory.
func GetAbsolutePath(relativePath string) string {
	root, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	return filepath.Join(root, relativePath)
}

func StringPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func Float64Ptr(f float64) *float64 {
	return &f
}
