package fluent

import (
	"github.com/mazzegi/fluent/files"
)

var _ State[*FileAssert, string] = (*FileAssert)(nil)

type FileAssert struct {
	assertion[*FileAssert]
	path  string
	files *files.Files
}

func ThatFile(t TestingT, path string) *FileAssert {
	a := &FileAssert{path: path}
	a.assertion = newAssertion(t, a)
	a.files = files.New()
	a.files.Failures = a.failures
	return a
}

func (a *FileAssert) Actual() string {
	return a.path
}

func (a *FileAssert) Exists() *FileAssert {
	a.t.Helper()
	a.check(func() error { return a.files.AssertExists(a.info, a.path) })
	return a
}

func (a *FileAssert) IsDirectory() *FileAssert {
	a.t.Helper()
	a.check(func() error { return a.files.AssertIsDirectory(a.info, a.path) })
	return a
}

func (a *FileAssert) IsFile() *FileAssert {
	a.t.Helper()
	a.check(func() error { return a.files.AssertIsFile(a.info, a.path) })
	return a
}

// HasExtension checks the extension of a regular file. A leading dot of expected is ignored.
func (a *FileAssert) HasExtension(expected string) *FileAssert {
	a.t.Helper()
	a.check(func() error { return a.files.AssertHasExtension(a.info, a.path, expected) })
	return a
}

func (a *FileAssert) HasNoExtension() *FileAssert {
	a.t.Helper()
	a.check(func() error { return a.files.AssertHasNoExtension(a.info, a.path) })
	return a
}

func (a *FileAssert) HasContent(expected string) *FileAssert {
	a.t.Helper()
	a.check(func() error { return a.files.AssertHasContent(a.info, a.path, expected) })
	return a
}
