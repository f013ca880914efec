package testx

import (
	"fmt"
	"testing"
)

func Name(i int) string {
	return fmt.Sprintf("test_#%03d", i)
}

// RunTests runs every test as a named subtest of t.
func RunTests[TEST any](t *testing.T, tests []TEST, runFnc func(tx *Tx, test TEST)) {
	for i, test := range tests {
		t.Run(Name(i), func(t *testing.T) {
			runFnc(NewTx(t), test)
		})
	}
}
