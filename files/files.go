// Package files implements assertions on paths of the local file system.
// An empty path is treated as a missing actual value.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
)

type Files struct {
	Failures *failure.Failures
}

func New() *Files {
	return &Files{Failures: &failure.Failures{}}
}

// exists reports whether path can be stat'ed. Paths that cannot be inspected, e.g. for
// lack of permission, do not count as existing.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func isRegular(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// Extension returns the extension of path without the leading dot, or "" if it has none.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(filepath.Base(path)), ".")
}

func (f *Files) AssertExists(info failure.Info, path string) error {
	if path == "" {
		return f.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	if exists(path) {
		return nil
	}
	return f.Failures.Failure(info, errmsg.ShouldExist(path))
}

func (f *Files) AssertIsDirectory(info failure.Info, path string) error {
	if path == "" {
		return f.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	if isDir(path) {
		return nil
	}
	return f.Failures.Failure(info, errmsg.ShouldBeDirectory(path))
}

func (f *Files) AssertIsFile(info failure.Info, path string) error {
	if path == "" {
		return f.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	if isRegular(path) {
		return nil
	}
	return f.Failures.Failure(info, errmsg.ShouldBeFile(path))
}

// AssertHasExtension checks that path is a regular file with the expected extension.
// The expected extension may be given with or without the leading dot.
func (f *Files) AssertHasExtension(info failure.Info, path, expected string) error {
	expected = strings.TrimPrefix(expected, ".")
	if expected == "" {
		return failure.Precondition(errmsg.ExtensionIsEmpty)
	}
	if err := f.AssertIsFile(info, path); err != nil {
		return err
	}
	actual := Extension(path)
	if actual == expected {
		return nil
	}
	return f.Failures.Failure(info, errmsg.ShouldHaveExtension(path, actual, expected))
}

func (f *Files) AssertHasNoExtension(info failure.Info, path string) error {
	if err := f.AssertIsFile(info, path); err != nil {
		return err
	}
	actual := Extension(path)
	if actual == "" {
		return nil
	}
	return f.Failures.Failure(info, errmsg.ShouldHaveNoExtension(path, actual))
}

// AssertHasContent checks that path is a regular file whose content equals expected.
// Read errors other than a missing file are returned as they are.
func (f *Files) AssertHasContent(info failure.Info, path, expected string) error {
	if err := f.AssertIsFile(info, path); err != nil {
		return err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if string(bs) == expected {
		return nil
	}
	return f.Failures.Failure(info, errmsg.ShouldHaveContent(path, expected, string(bs)))
}
