package schema

// Reconcile validates two schema listings and a key list and builds the unified
// column layout. It is a pure function of its inputs.
func Reconcile(before, after []Column, keys []string, opts ...Option) (*Reconciled, error) {
	o := options{normalize: UpperCase, resolve: AfterWins}
	for _, opt := range opts {
		opt(&o)
	}

	if len(before) == 0 {
		return nil, &SchemaError{Side: "before", Reason: "schema has no columns"}
	}
	if len(after) == 0 {
		return nil, &SchemaError{Side: "after", Reason: "schema has no columns"}
	}
	if len(keys) == 0 {
		return nil, &SchemaError{Side: "keys", Reason: "at least one key column is required"}
	}

	beforeIdx, err := index(before, "before", o.normalize)
	if err != nil {
		return nil, err
	}
	afterIdx, err := index(after, "after", o.normalize)
	if err != nil {
		return nil, err
	}

	// Unified list: before order first, then after-only columns in after order.
	rec := &Reconciled{
		Columns:      make([]ResolvedColumn, 0, len(before)+len(after)),
		OneSidedKeys: []string{},
		Conflicts:    []KindConflict{},
	}
	position := make(map[string]int, len(before)+len(after))

	for _, col := range before {
		name := o.normalize(col.Name)
		resolved := ResolvedColumn{Name: name, Kind: col.Kind, InBefore: true}
		if afterCol, ok := afterIdx[name]; ok {
			resolved.InAfter = true
			resolved.Kind = o.resolve(col.Kind, afterCol.Kind)
			if col.Kind != afterCol.Kind {
				rec.Conflicts = append(rec.Conflicts, KindConflict{
					Column:   name,
					Before:   col.Kind,
					After:    afterCol.Kind,
					Resolved: resolved.Kind,
				})
			}
		}
		position[name] = len(rec.Columns)
		rec.Columns = append(rec.Columns, resolved)
	}
	for _, col := range after {
		name := o.normalize(col.Name)
		if _, seen := beforeIdx[name]; seen {
			continue
		}
		position[name] = len(rec.Columns)
		rec.Columns = append(rec.Columns, ResolvedColumn{Name: name, Kind: col.Kind, InAfter: true})
	}

	seenKeys := make(map[string]struct{}, len(keys))
	rec.Keys = make([]ResolvedColumn, 0, len(keys))
	for _, raw := range keys {
		name := o.normalize(raw)
		if name == "" {
			return nil, &SchemaError{Side: "keys", Reason: "key name is empty"}
		}
		if _, dup := seenKeys[name]; dup {
			return nil, &SchemaError{Side: "keys", Column: name, Reason: "duplicate key column"}
		}
		seenKeys[name] = struct{}{}

		pos, ok := position[name]
		if !ok {
			return nil, &SchemaError{Side: "keys", Column: name, Reason: "key column is absent from both schemas"}
		}
		col := rec.Columns[pos]
		if col.OneSided() {
			rec.OneSidedKeys = append(rec.OneSidedKeys, name)
		}
		rec.Keys = append(rec.Keys, col)
	}

	return rec, nil
}

// index maps normalized names to columns and rejects empty or duplicate names.
func index(cols []Column, side string, normalize NameNormalizer) (map[string]Column, error) {
	idx := make(map[string]Column, len(cols))
	for _, col := range cols {
		name := normalize(col.Name)
		if name == "" {
			return nil, &SchemaError{Side: side, Reason: "column name is empty"}
		}
		if _, dup := idx[name]; dup {
			return nil, &SchemaError{Side: side, Column: name, Reason: "duplicate column"}
		}
		idx[name] = col
	}
	return idx, nil
}
