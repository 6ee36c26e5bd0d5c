package schema

import "strings"

// Kind is the coarse comparison kind of a column.
// It only decides how literals are quoted; it never changes join or comparison logic.
type Kind int

const (
	// KindUnknown is the zero value. Inference never produces it.
	KindUnknown Kind = iota
	// KindText is any character-like column.
	KindText
	// KindNumber is any numeric column.
	KindNumber
)

// String returns the upper-case kind label used in listings and logs.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindNumber:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// InferKind classifies a raw database type string by substring matching.
// Unrecognized types fall back to KindText.
func InferKind(rawType string) Kind {
	t := strings.ToUpper(rawType)
	for _, marker := range []string{"VARCHAR", "STRING", "TEXT"} {
		if strings.Contains(t, marker) {
			return KindText
		}
	}
	for _, marker := range []string{"NUMBER", "INT", "FLOAT", "DECIMAL"} {
		if strings.Contains(t, marker) {
			return KindNumber
		}
	}
	return KindText
}

// Column describes one column of a schema listing.
type Column struct {
	// Name is the column name. Reconcile normalizes it.
	Name string `json:"name"`
	// Kind is the inferred comparison kind.
	Kind Kind `json:"kind"`
}

// NewColumn builds a Column from a raw (name, type) pair.
func NewColumn(name, rawType string) Column {
	return Column{Name: name, Kind: InferKind(rawType)}
}

// ResolvedColumn is a column of the unified list with its resolved kind and
// per-side presence.
type ResolvedColumn struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	InBefore bool   `json:"in_before"`
	InAfter  bool   `json:"in_after"`
}

// OneSided reports whether the column exists on exactly one side.
func (c ResolvedColumn) OneSided() bool {
	return c.InBefore != c.InAfter
}

// KindConflict records a column whose inferred kinds disagree between sides.
type KindConflict struct {
	Column   string `json:"column"`
	Before   Kind   `json:"before"`
	After    Kind   `json:"after"`
	Resolved Kind   `json:"resolved"`
}

// Reconciled is the output of Reconcile.
type Reconciled struct {
	// Columns is the unified column list.
	Columns []ResolvedColumn `json:"columns"`

	// Keys holds the key columns in key-list order.
	Keys []ResolvedColumn `json:"keys"`

	// OneSidedKeys lists key names present on only one side.
	// Such keys are legal but rows can never match across sides on them.
	OneSidedKeys []string `json:"one_sided_keys"`

	// Conflicts lists the columns whose kind had to be resolved by policy.
	Conflicts []KindConflict `json:"conflicts"`
}

// ComparisonColumns returns the unified columns that are not keys, in unified order.
func (r *Reconciled) ComparisonColumns() []ResolvedColumn {
	keys := make(map[string]struct{}, len(r.Keys))
	for _, k := range r.Keys {
		keys[k.Name] = struct{}{}
	}

	out := make([]ResolvedColumn, 0, len(r.Columns))
	for _, col := range r.Columns {
		if _, isKey := keys[col.Name]; isKey {
			continue
		}
		out = append(out, col)
	}
	return out
}

// Names returns the names of the given columns.
func Names(cols []ResolvedColumn) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
