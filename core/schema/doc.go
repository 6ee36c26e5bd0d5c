// Package schema reconciles two independently sourced column listings ("before" and
// "after") plus a business key into the column layout used to build comparison SQL.
//
// # Reconciliation
//
// Reconcile normalizes every name, validates the structural preconditions and returns:
//   - the unified column list: before columns in their order, then after-only columns
//     in their order, without duplicates
//   - the resolved key columns, in key order
//   - the comparison columns (unified list minus keys)
//   - keys that only exist on one side, so callers can warn about them
//
// Every column carries InBefore/InAfter presence flags, so the SQL builder knows which
// side has to be read as NULL.
//
// # Policies
//
// Two decisions are policies rather than hard-coded comparisons and can be swapped
// with options:
//   - NameNormalizer (default UpperCase): how names are case-folded before matching
//   - KindResolver (default AfterWins): which side's kind wins when both sides know a
//     column but disagree on its kind
//
// # Usage
//
//	rec, err := schema.Reconcile(before, after, []string{"account_id"})
//	if err != nil {
//	    return err // *schema.SchemaError
//	}
//	for _, col := range rec.ComparisonColumns() {
//	    fmt.Println(col.Name, col.Kind)
//	}
package schema
