package diffsql

import (
	"strings"

	"checkatron/core/schema"
)

// Request is everything the synthesizer needs for one statement. It is built by
// NewRequest and never modified afterwards.
type Request struct {
	beforeTable  string
	afterTable   string
	keys         []schema.ResolvedColumn
	columns      []schema.ResolvedColumn
	beforeFilter Filter
	afterFilter  Filter
	resultTable  string
	includeKeys  bool
}

// RequestOption customizes NewRequest.
type RequestOption func(*Request)

// WithBeforeFilter restricts the before side.
func WithBeforeFilter(f Filter) RequestOption {
	return func(r *Request) { r.beforeFilter = copyFilter(f) }
}

// WithAfterFilter restricts the after side.
func WithAfterFilter(f Filter) RequestOption {
	return func(r *Request) { r.afterFilter = copyFilter(f) }
}

// WithResultTable overrides DefaultResultTable.
func WithResultTable(name string) RequestOption {
	return func(r *Request) {
		if name = strings.TrimSpace(name); name != "" {
			r.resultTable = name
		}
	}
}

// WithKeyColumns prepends the key values to the result so rows can be identified.
func WithKeyColumns(include bool) RequestOption {
	return func(r *Request) { r.includeKeys = include }
}

// NewRequest builds a Request from a reconciliation result. Table identifiers are
// used verbatim; they must be valid identifiers for the target engine.
func NewRequest(rec *schema.Reconciled, beforeTable, afterTable string, opts ...RequestOption) (*Request, error) {
	if rec == nil {
		return nil, &schema.SchemaError{Reason: "reconciliation result is required"}
	}
	if len(rec.Keys) == 0 {
		return nil, &schema.SchemaError{Side: "keys", Reason: "at least one key column is required"}
	}

	beforeTable, afterTable = strings.TrimSpace(beforeTable), strings.TrimSpace(afterTable)
	if beforeTable == "" {
		return nil, &RenderError{Reason: "before table identifier is empty"}
	}
	if afterTable == "" {
		return nil, &RenderError{Reason: "after table identifier is empty"}
	}

	r := &Request{
		beforeTable: beforeTable,
		afterTable:  afterTable,
		keys:        append([]schema.ResolvedColumn(nil), rec.Keys...),
		columns:     rec.ComparisonColumns(),
		resultTable: DefaultResultTable,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Keys returns a copy of the key columns.
func (r *Request) Keys() []schema.ResolvedColumn {
	return append([]schema.ResolvedColumn(nil), r.keys...)
}

// Columns returns a copy of the comparison columns in result order.
func (r *Request) Columns() []schema.ResolvedColumn {
	return append([]schema.ResolvedColumn(nil), r.columns...)
}

// ResultTable returns the name of the relation the statement creates.
func (r *Request) ResultTable() string { return r.resultTable }

// OutputColumns lists the result relation's columns in order.
func (r *Request) OutputColumns() []string {
	out := make([]string, 0, len(r.keys)+len(r.columns)+1)
	if r.includeKeys {
		out = append(out, schema.Names(r.keys)...)
	}
	out = append(out, schema.Names(r.columns)...)
	return append(out, RowStatusColumn)
}

// lookup resolves a filter column among keys and comparison columns. An exact
// match is tried before a case-insensitive one.
func (r *Request) lookup(name string) (schema.ResolvedColumn, bool) {
	all := append(r.Keys(), r.columns...)
	for _, c := range all {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range all {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return schema.ResolvedColumn{}, false
}

func copyFilter(f Filter) Filter {
	return Filter{Raw: f.Raw, Conditions: append([]Condition(nil), f.Conditions...)}
}
