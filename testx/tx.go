package testx

import (
	"testing"
)

func NewTx(t testing.TB) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t testing.TB
}

func (tx *Tx) T() testing.TB {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	AssertEqual(tx.t, want, have)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	AssertNoErr(tx.t, err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	AssertErr(tx.t, err)
}

func (tx *Tx) AssertErrIs(err, target error) {
	tx.t.Helper()
	AssertErrIs(tx.t, err, target)
}

func (tx *Tx) AssertContains(s, sub string) {
	tx.t.Helper()
	AssertContains(tx.t, s, sub)
}

func (tx *Tx) AssertTrue(b bool, msg string) {
	tx.t.Helper()
	if b {
		return
	}
	tx.t.Fatalf("expect true: %s", msg)
}

func (tx *Tx) AssertPanics(fn func()) any {
	tx.t.Helper()
	return AssertPanics(tx.t, fn)
}
