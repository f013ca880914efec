package errmsg

import (
	"testing"
	"time"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/condition"
	"github.com/mazzegi/fluent/date"
	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/presentation"
	"github.com/mazzegi/fluent/testx"
)

var standard = presentation.Standard{}

func parse(s string) time.Time {
	return date.MustParse(s)
}

func TestShouldNotBeBetween(t *testing.T) {
	type test struct {
		actual         string
		inclusiveStart bool
		inclusiveEnd   bool
		want           string
	}
	tests := []test{
		{
			actual: "2009-01-01", inclusiveStart: true, inclusiveEnd: true,
			want: "[Test] \nExpecting:\n <2009-01-01T00:00:00.000>\nnot to be in period:\n [2011-01-01T00:00:00.000, 2012-01-01T00:00:00.000]",
		},
		{
			actual: "2012-01-01", inclusiveStart: true, inclusiveEnd: false,
			want: "[Test] \nExpecting:\n <2012-01-01T00:00:00.000>\nnot to be in period:\n [2011-01-01T00:00:00.000, 2012-01-01T00:00:00.000[",
		},
		{
			actual: "2011-01-01", inclusiveStart: false, inclusiveEnd: true,
			want: "[Test] \nExpecting:\n <2011-01-01T00:00:00.000>\nnot to be in period:\n ]2011-01-01T00:00:00.000, 2012-01-01T00:00:00.000]",
		},
		{
			actual: "2011-01-01", inclusiveStart: false, inclusiveEnd: false,
			want: "[Test] \nExpecting:\n <2011-01-01T00:00:00.000>\nnot to be in period:\n ]2011-01-01T00:00:00.000, 2012-01-01T00:00:00.000[",
		},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test test) {
		factory := ShouldNotBeBetween(parse(test.actual), parse("2011-01-01"), parse("2012-01-01"),
			test.inclusiveStart, test.inclusiveEnd, nil)
		tx.AssertEqual(test.want, factory.Create(description.Text("Test"), standard))
	})
}

func TestShouldBeBetween(t *testing.T) {
	tx := testx.NewTx(t)
	factory := ShouldBeBetween(parse("2010-01-01"), parse("2011-01-01"), parse("2012-01-01"), true, false, nil)
	tx.AssertEqual("\nExpecting:\n <2010-01-01T00:00:00.000>\nto be in period:\n [2011-01-01T00:00:00.000, 2012-01-01T00:00:00.000[",
		factory.Create(description.Empty(), standard))
}

func TestShouldHaveExtension(t *testing.T) {
	tx := testx.NewTx(t)
	factory := ShouldHaveExtension("actual-file.png", "png", "java")
	tx.AssertEqual("[TEST] \nExpecting\n  <actual-file.png>\nto have extension:\n  <\"java\">\nbut had:\n  <\"png\">.",
		factory.Create(description.Text("TEST"), standard))

	factory = ShouldHaveExtension("actual-file", "", "java")
	tx.AssertEqual("[TEST] \nExpecting\n  <actual-file>\nto have extension:\n  <\"java\">\nbut had no extension.",
		factory.Create(description.Text("TEST"), standard))
}

func TestElementsShouldBeAtMost(t *testing.T) {
	tx := testx.NewTx(t)
	jedi := condition.New("a Jedi", func(s string) bool { return true })
	factory := ElementsShouldBeAtMost([]string{"Yoda", "Luke", "Obiwan"}, 2, jedi)
	tx.AssertEqual("[Test] \nExpecting elements:\n<[\"Yoda\", \"Luke\", \"Obiwan\"]>\n to be at most 2 times <a Jedi>",
		factory.Create(description.Text("Test"), standard))
}

func TestShouldBeAfter(t *testing.T) {
	tx := testx.NewTx(t)
	actual, other := parse("2011-01-15"), parse("2022-01-01")

	factory := ShouldBeAfter(actual, other, compare.Standard(compare.Times()))
	tx.AssertEqual("\nExpecting:\n <2011-01-15T00:00:00.000>\nto be strictly after:\n <2022-01-01T00:00:00.000>",
		factory.Create(nil, standard))

	byMonth := compare.Custom(func(a, b time.Time) int {
		return date.YearMonthOf(a).Compare(date.YearMonthOf(b))
	}, "YearAndMonthComparator")
	factory = ShouldBeAfter(actual, other, byMonth)
	tx.AssertEqual("\nExpecting:\n <2011-01-15T00:00:00.000>\nto be strictly after:\n <2022-01-01T00:00:00.000>"+
		"\nwhen comparing values using YearAndMonthComparator",
		factory.Create(nil, standard))
}

func TestDateMessages(t *testing.T) {
	actual, other := parse("2011-01-15"), parse("2012-02-16")
	type test struct {
		factory Factory
		want    string
	}
	tests := []test{
		{ShouldBeAfterOrEqual(actual, other, nil), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be after or equal to:\n <2012-02-16T00:00:00.000>"},
		{ShouldBeBefore(other, actual, nil), "\nExpecting:\n <2012-02-16T00:00:00.000>\nto be strictly before:\n <2011-01-15T00:00:00.000>"},
		{ShouldBeBeforeOrEqual(other, actual, nil), "\nExpecting:\n <2012-02-16T00:00:00.000>\nto be before or equal to:\n <2011-01-15T00:00:00.000>"},
		{ShouldBeInSameYear(actual, other), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be on same year as:\n <2012-02-16T00:00:00.000>"},
		{ShouldBeInSameMonth(actual, other), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be on same year and month as:\n <2012-02-16T00:00:00.000>"},
		{ShouldBeInSameDay(actual, other), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be on same year, month and day as:\n <2012-02-16T00:00:00.000>"},
		{ShouldBeCloseTo(actual, actual.Add(2*time.Hour), time.Hour, 2*time.Hour), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be close to:\n <2011-01-15T02:00:00.000>\nby less than 1h0m0s but difference was 2h0m0s"},
		{ShouldBeInThePast(other), "\nExpecting:\n <2012-02-16T00:00:00.000>\nto be in the past"},
		{ShouldBeInTheFuture(actual), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be in the future"},
		{ShouldBeToday(actual), "\nExpecting:\n <2011-01-15T00:00:00.000>\nto be today"},
		{ShouldNotBeNil(), ActualIsNull},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, test.factory.Create(description.Empty(), standard))
	})
}

type jedi struct {
	Name string
	Age  int
}

func TestShouldBeEqual(t *testing.T) {
	tx := testx.NewTx(t)
	factory := ShouldBeEqual("Yoda", "Luke", nil)
	tx.AssertEqual("[Test] \nexpected: \"Luke\"\n but was: \"Yoda\"", factory.Create(description.Text("Test"), standard))

	factory = ShouldBeEqual(int64(42), 42, nil)
	tx.AssertEqual("\nexpected: 42 (int)\n but was: 42 (int64)", factory.Create(nil, standard))
}

func TestShouldBeEqualListsDifferingFields(t *testing.T) {
	tx := testx.NewTx(t)
	factory := ShouldBeEqual(jedi{Name: "Yoda", Age: 900}, jedi{Name: "Luke", Age: 19}, nil)
	tx.AssertEqual("\nexpected: errmsg.jedi{Name: \"Luke\", Age: 19}\n but was: errmsg.jedi{Name: \"Yoda\", Age: 900}"+
		"\nwhen comparing fields:"+
		"\n  - Age: expected <19> but was <900>"+
		"\n  - Name: expected <\"Luke\"> but was <\"Yoda\">",
		factory.Create(nil, standard))
}

type node struct {
	Name string
	Next *node
}

func TestShouldBeEqualSkipsFieldsOfCyclicValues(t *testing.T) {
	tx := testx.NewTx(t)
	a := &node{Name: "a"}
	a.Next = a
	b := &node{Name: "b"}
	b.Next = b
	factory := ShouldBeEqual(a, b, nil)
	tx.AssertEqual("\nexpected: &errmsg.node{Name: \"b\", Next: (cycle)}\n but was: &errmsg.node{Name: \"a\", Next: (cycle)}",
		factory.Create(nil, standard))
}

func TestShouldBeEqualRendersDatesWhole(t *testing.T) {
	tx := testx.NewTx(t)
	actual, expected := parse("2011-01-15"), parse("2011-01-16")
	want := "\nexpected: 2011-01-16T00:00:00.000\n but was: 2011-01-15T00:00:00.000"
	tx.AssertEqual(want, ShouldBeEqual(actual, expected, nil).Create(nil, standard))
	tx.AssertEqual(want, ShouldBeEqual(&actual, &expected, nil).Create(nil, standard))
}

func TestShouldBeEqualWithCustomStrategy(t *testing.T) {
	tx := testx.NewTx(t)
	factory := ShouldBeEqual("Yoda", "Luke", compare.Custom(compare.Natural[string](), "natural order"))
	tx.AssertEqual("\nexpected: \"Luke\"\n but was: \"Yoda\"\nwhen comparing values using natural order",
		factory.Create(nil, standard))
}

func TestObjectMessages(t *testing.T) {
	jediCond := condition.New("a Jedi", func(s string) bool { return false })
	type test struct {
		factory Factory
		want    string
	}
	tests := []test{
		{ShouldNotBeEqual("Yoda", "Yoda", nil), "\nExpecting:\n <\"Yoda\">\nnot to be equal to:\n <\"Yoda\">"},
		{ShouldBeNil("Yoda"), "\nExpecting actual to be null but was:\n <\"Yoda\">"},
		{ShouldBe("Han", jediCond), "\nExpecting:\n <\"Han\">\nto be <a Jedi>"},
		{ShouldNotBe("Han", jediCond), "\nExpecting:\n <\"Han\">\nnot to be <a Jedi>"},
		{ShouldHaveSize([]int{1, 2}, 2, 3), "\nExpected size:<3> but was:<2> in:\n<[1, 2]>"},
		{ShouldBeEmpty([]int{1}), "\nExpecting empty but was:<[1]>"},
		{ShouldNotBeEmpty(), "\nExpecting actual not to be empty"},
		{ShouldContain([]string{"a"}, []string{"a", "b"}, []string{"b"}, nil), "\nExpecting:\n <[\"a\"]>\nto contain:\n <[\"a\", \"b\"]>\nbut could not find:\n <[\"b\"]>"},
		{ElementsShouldBeAtLeast([]string{"Han"}, 1, jediCond), "\nExpecting elements:\n<[\"Han\"]>\n to be at least 1 times <a Jedi>"},
		{ElementsShouldBeExactly([]string{"Han"}, 1, jediCond), "\nExpecting elements:\n<[\"Han\"]>\n to be exactly 1 times <a Jedi>"},
		{ShouldExist("/tmp/x"), "\nExpecting file:\n  </tmp/x>\nto exist."},
		{ShouldBeDirectory("/tmp/x"), "\nExpecting path:\n  </tmp/x>\nto be a directory."},
		{ShouldBeFile("/tmp/x"), "\nExpecting path:\n  </tmp/x>\nto be a regular file."},
		{ShouldHaveNoExtension("/tmp/x.txt", "txt"), "\nExpecting\n  </tmp/x.txt>\nnot to have an extension but had:\n  <\"txt\">"},
		{ShouldHaveRowCount("users", 3, 2), "\nExpecting table:\n  <users>\nto have 3 rows but had 2"},
		{ShouldHaveRow("users", map[string]any{"name": "Yoda"}), "\nExpecting table:\n  <users>\nto contain row:\n  <{\"name\": \"Yoda\"}>\nbut it did not."},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, test.factory.Create(nil, standard))
	})
}

func TestCreateIsDeterministic(t *testing.T) {
	tx := testx.NewTx(t)
	factory := ShouldContain(map[string]int{"a": 1, "b": 2, "c": 3}, []string{"d"}, []string{"d"}, nil)
	first := factory.Create(description.Text("Test"), standard)
	for i := 0; i < 20; i++ {
		tx.AssertEqual(first, factory.Create(description.Text("Test"), standard))
	}
}

func TestCreateUsesRepresentation(t *testing.T) {
	tx := testx.NewTx(t)
	dollars := presentation.Func(func(v any) (string, bool) {
		if s, ok := v.(string); ok {
			return "$" + s + "$", true
		}
		return "", false
	}, nil)
	factory := ShouldNotBeEqual("foo", "foo", nil)
	tx.AssertEqual("\nExpecting:\n <$foo$>\nnot to be equal to:\n <$foo$>", factory.Create(nil, dollars))
}

func TestEqual(t *testing.T) {
	tx := testx.NewTx(t)
	actual, other := parse("2011-01-15"), parse("2022-01-01")
	byLength := compare.Custom(func(a, b time.Time) int { return 0 }, "nothing")

	tx.AssertTrue(Equal(ShouldBeAfter(actual, other, nil), ShouldBeAfter(actual, other, nil)), "same factory")
	tx.AssertTrue(Equal(ShouldBeAfter(actual, other, compare.Standard(compare.Times())), ShouldBeAfter(actual, other, nil)), "standard strategy is invisible")
	tx.AssertTrue(!Equal(ShouldBeAfter(actual, other, byLength), ShouldBeAfter(actual, other, nil)), "custom strategy differs")
	tx.AssertTrue(!Equal(ShouldBeAfter(actual, other, nil), ShouldBeBefore(actual, other, nil)), "different template")
	tx.AssertTrue(!Equal(ShouldBeAfter(actual, other, nil), ShouldBeAfter(other, actual, nil)), "different values")
}
