package errmsg

import "strconv"

func ShouldHaveRowCount(table string, expected, actual int) Factory {
	return New("\nExpecting table:\n  <%s>\nto have %s rows but had %s",
		Raw(table), Raw(strconv.Itoa(expected)), Raw(strconv.Itoa(actual)))
}

func ShouldHaveRow(table string, row any) Factory {
	return New("\nExpecting table:\n  <%s>\nto contain row:\n  <%s>\nbut it did not.", Raw(table), row)
}
