package diffsql

// Status is the integer code stored in every result column.
type Status int

const (
	// StatusMatch: both values NULL or equal. As a row status: present on both sides.
	StatusMatch Status = 0
	// StatusDiffer: both values non-NULL and unequal.
	StatusDiffer Status = 1
	// StatusNullBefore: NULL or missing in before, non-NULL in after.
	StatusNullBefore Status = 2
	// StatusNullAfter: non-NULL in before, NULL or missing in after.
	StatusNullAfter Status = 3
	// RowMissingBefore: no before row carries this key tuple.
	RowMissingBefore Status = 4
	// RowMissingAfter: no after row carries this key tuple.
	RowMissingAfter Status = 5
)

const (
	// DefaultResultTable is the relation the generated statement creates.
	DefaultResultTable = "diff_result"
	// RowStatusColumn is the trailing row-level status column.
	RowStatusColumn = "_ROW_STATUS"
	// PresenceColumn marks rows that exist in a filtered side.
	PresenceColumn = "_CHECKATRON_PRESENT"
)

// LegendEntry documents one status code.
type LegendEntry struct {
	Code        Status `json:"code"`
	Scope       string `json:"scope"`
	Description string `json:"description"`
}

// Legend lists every status code in ascending order.
var Legend = []LegendEntry{
	{StatusMatch, "column/row", "values match / row present on both sides"},
	{StatusDiffer, "column", "values are different"},
	{StatusNullBefore, "column", "NULL in before table only"},
	{StatusNullAfter, "column", "NULL in after table only"},
	{RowMissingBefore, "row", "row missing in before table"},
	{RowMissingAfter, "row", "row missing in after table"},
}

// Description returns the legend text for s.
func (s Status) Description() string {
	for _, e := range Legend {
		if e.Code == s {
			return e.Description
		}
	}
	return "unknown status"
}
