package iterables

import (
	"strings"
	"testing"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/condition"
	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
	"github.com/mazzegi/fluent/testx"
)

var jedi = condition.New("a Jedi", func(s string) bool {
	return s == "Yoda" || s == "Luke" || s == "Obiwan"
})

func TestAreAtMost(t *testing.T) {
	tx := testx.NewTx(t)
	it := New[string]()
	actual := []string{"Yoda", "Luke", "Obiwan"}

	tx.AssertNoErr(it.AssertAreAtMost(failure.Info{}, actual, 3, jedi))
	tx.AssertNoErr(it.AssertAreAtMost(failure.Info{}, []string{"Han"}, 0, jedi))

	err := it.AssertAreAtMost(failure.Info{Description: description.Text("Test")}, actual, 2, jedi)
	tx.AssertEqual("[Test] \nExpecting elements:\n<[\"Yoda\", \"Luke\", \"Obiwan\"]>\n to be at most 2 times <a Jedi>", err.Error())
}

func TestAreAtLeastAndExactly(t *testing.T) {
	tx := testx.NewTx(t)
	it := New[string]()
	actual := []string{"Yoda", "Han", "Luke"}

	tx.AssertNoErr(it.AssertAreAtLeast(failure.Info{}, actual, 2, jedi))
	tx.AssertErrIs(it.AssertAreAtLeast(failure.Info{}, actual, 3, jedi), failure.ErrAssertionFailed)
	tx.AssertNoErr(it.AssertAreExactly(failure.Info{}, actual, 2, jedi))
	tx.AssertErrIs(it.AssertAreExactly(failure.Info{}, actual, 1, jedi), failure.ErrAssertionFailed)
}

func TestConditionPreconditions(t *testing.T) {
	tx := testx.NewTx(t)
	it := New[string]()
	var missing condition.Condition[string]

	err := it.AssertAreAtMost(failure.Info{}, nil, 1, missing)
	tx.AssertErrIs(err, failure.ErrPrecondition)
	tx.AssertEqual(errmsg.ConditionIsNull, err.Error())

	err = it.AssertAreExactly(failure.Info{}, nil, -1, jedi)
	tx.AssertEqual(errmsg.TimesIsNegative, err.Error())
}

func TestHasSize(t *testing.T) {
	tx := testx.NewTx(t)
	it := New[int]()
	tx.AssertNoErr(it.AssertHasSize(failure.Info{}, []int{1, 2}, 2))
	tx.AssertNoErr(it.AssertHasSize(failure.Info{}, nil, 0))
	tx.AssertEqual("\nExpected size:<3> but was:<2> in:\n<[1, 2]>", it.AssertHasSize(failure.Info{}, []int{1, 2}, 3).Error())
	tx.AssertErrIs(it.AssertHasSize(failure.Info{}, nil, -1), failure.ErrPrecondition)
}

func TestEmptiness(t *testing.T) {
	tx := testx.NewTx(t)
	it := New[int]()
	tx.AssertNoErr(it.AssertIsEmpty(failure.Info{}, nil))
	tx.AssertNoErr(it.AssertIsEmpty(failure.Info{}, []int{}))
	tx.AssertEqual("\nExpecting empty but was:<[1]>", it.AssertIsEmpty(failure.Info{}, []int{1}).Error())
	tx.AssertNoErr(it.AssertIsNotEmpty(failure.Info{}, []int{1}))
	tx.AssertEqual("\nExpecting actual not to be empty", it.AssertIsNotEmpty(failure.Info{}, nil).Error())
}

func TestContains(t *testing.T) {
	tx := testx.NewTx(t)
	it := New[string]()
	actual := []string{"Yoda", "Luke"}

	tx.AssertNoErr(it.AssertContains(failure.Info{}, actual, []string{"Luke"}))
	err := it.AssertContains(failure.Info{}, actual, []string{"Luke", "Han", "Leia"})
	tx.AssertEqual("\nExpecting:\n <[\"Yoda\", \"Luke\"]>\nto contain:\n <[\"Luke\", \"Han\", \"Leia\"]>\nbut could not find:\n <[\"Han\", \"Leia\"]>", err.Error())
	tx.AssertErrIs(it.AssertContains(failure.Info{}, actual, nil), failure.ErrPrecondition)
}

func TestContainsWithCustomStrategy(t *testing.T) {
	tx := testx.NewTx(t)
	caseInsensitive := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	it := NewWithStrategy(compare.Custom(caseInsensitive, "case insensitive comparator"))
	actual := []string{"Yoda", "Luke"}

	tx.AssertNoErr(it.AssertContains(failure.Info{}, actual, []string{"LUKE", "yoda"}))
	err := it.AssertContains(failure.Info{}, actual, []string{"han"})
	tx.AssertEqual("\nExpecting:\n <[\"Yoda\", \"Luke\"]>\nto contain:\n <[\"han\"]>\nbut could not find:\n <[\"han\"]>"+
		"\nwhen comparing values using case insensitive comparator", err.Error())
}
