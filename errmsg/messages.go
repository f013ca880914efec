package errmsg

const (
	ActualIsNull                  = "\nExpecting actual not to be null"
	DateToCompareActualWithIsNull = "The date to compare actual with should not be null"
	StartDateIsNull               = "The start date of period to compare actual with should not be null"
	EndDateIsNull                 = "The end date of period to compare actual with should not be null"
	ComparatorIsNull              = "The comparator should not be null"
	ConditionIsNull               = "The condition to evaluate should not be null"
	ExtensionIsEmpty              = "The expected extension should not be empty"
	DeltaIsNegative               = "The delta should not be negative"
	TimesIsNegative               = "The expected number of times should not be negative"
	SizeIsNegative                = "The expected size should not be negative"
	ValuesAreEmpty                = "The values to look for should not be empty"
	RowIsEmpty                    = "The expected row should have at least one column"
	DatabaseIsNull                = "The database to query should not be null"
)

// InvalidTableName is the precondition message for a table name that is not a plain identifier.
func InvalidTableName(table string) string {
	return "The table name should be a plain identifier but was: " + table
}
