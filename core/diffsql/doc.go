// Package diffsql synthesizes the comparison SQL for two reconciled schemas.
//
// The generated statement (re)creates a result table, diff_result by default, with one
// integer status column per comparison column followed by _ROW_STATUS. It never runs
// the SQL itself.
//
// # Join plan
//
//  1. before_filtered / after_filtered: each table, optionally filtered, with a
//     presence marker column so row absence does not depend on key values.
//  2. key_universe: UNION (duplicate-eliminating) of the key projections of both sides.
//  3. key_universe LEFT JOIN each filtered side on null-safe key equality.
//  4. One CASE per comparison column and one for the row.
//
// # Status codes
//
//	0  values match (both NULL, or equal); row present on both sides
//	1  both values non-NULL and different
//	2  NULL (or column missing) in before only
//	3  NULL (or column missing) in after only
//	4  row missing in before
//	5  row missing in after
//
// # Filters
//
// Filter.Raw is a caller-supplied trusted SQL fragment. It is inserted verbatim into
// the WHERE clause of its side and is never validated or escaped. Filter.Conditions
// is the structured alternative: values are rendered as literals quoted according to
// the column kind.
//
// # Usage
//
//	req, err := diffsql.NewRequest(rec, "PROD.SALES.ORDERS", "TEST.SALES.ORDERS",
//	    diffsql.WithBeforeFilter(diffsql.Filter{Raw: "LOAD_DATE = '2024-06-01'"}))
//	sql, err := diffsql.Synthesize(req, diffsql.Snowflake())
package diffsql
