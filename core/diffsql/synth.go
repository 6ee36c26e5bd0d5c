package diffsql

import (
	"fmt"
	"strings"

	"checkatron/core/schema"
)

// CTE names of the generated statement.
const (
	beforeCTE   = "before_filtered"
	afterCTE    = "after_filtered"
	universeCTE = "key_universe"
)

const indent = "    "

// Synthesize renders req as a single SQL statement for d. A nil dialect selects
// Snowflake. It returns either the complete statement or an error, never a partial
// statement.
func Synthesize(req *Request, d Dialect) (string, error) {
	if req == nil {
		return "", &RenderError{Reason: "request is required"}
	}
	if d == nil {
		d = Snowflake()
	}
	if err := checkOutputNames(req, d); err != nil {
		return "", err
	}

	beforeSide := func(c schema.ResolvedColumn) bool { return c.InBefore }
	afterSide := func(c schema.ResolvedColumn) bool { return c.InAfter }

	beforeWhere, err := req.beforeFilter.whereClause(d, "before", sideLookup(req, beforeSide))
	if err != nil {
		return "", err
	}
	afterWhere, err := req.afterFilter.whereClause(d, "after", sideLookup(req, afterSide))
	if err != nil {
		return "", err
	}

	beforeKeys, err := keyProjection(req.keys, beforeSide, d)
	if err != nil {
		return "", err
	}
	afterKeys, err := keyProjection(req.keys, afterSide, d)
	if err != nil {
		return "", err
	}

	projections, err := selectList(req, d)
	if err != nil {
		return "", err
	}

	beforeOn, err := JoinPredicate(BeforeAlias, req.keys, beforeSide).Render(d)
	if err != nil {
		return "", err
	}
	afterOn, err := JoinPredicate(AfterAlias, req.keys, afterSide).Render(d)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(d.CreateTableAs(req.resultTable) + "\n")
	sb.WriteString("WITH " + filteredCTE(beforeCTE, req.beforeTable, beforeWhere) + ",\n")
	sb.WriteString(filteredCTE(afterCTE, req.afterTable, afterWhere) + ",\n")
	sb.WriteString(universeCTE + " AS (\n")
	sb.WriteString(indent + "SELECT " + beforeKeys + " FROM " + beforeCTE + "\n")
	sb.WriteString(indent + "UNION\n")
	sb.WriteString(indent + "SELECT " + afterKeys + " FROM " + afterCTE + "\n")
	sb.WriteString(")\n")
	sb.WriteString("SELECT\n")
	sb.WriteString(indent + strings.Join(projections, ",\n"+indent) + "\n")
	sb.WriteString("FROM " + universeCTE + " " + UniverseAlias + "\n")
	sb.WriteString("LEFT JOIN " + beforeCTE + " " + BeforeAlias + "\n")
	sb.WriteString(indent + "ON " + beforeOn + "\n")
	sb.WriteString("LEFT JOIN " + afterCTE + " " + AfterAlias + "\n")
	sb.WriteString(indent + "ON " + afterOn + ";\n")

	return sb.String(), nil
}

func filteredCTE(name, table, where string) string {
	cte := name + " AS (\n" +
		indent + "SELECT src.*, 1 AS " + PresenceColumn + "\n" +
		indent + "FROM " + table + " src"
	if where != "" {
		cte += "\n" + indent + "WHERE " + where
	}
	return cte + "\n)"
}

// keyProjection lists the key columns of one side; keys the side lacks are NULL.
func keyProjection(keys []schema.ResolvedColumn, inSide func(schema.ResolvedColumn) bool, d Dialect) (string, error) {
	parts := make([]string, len(keys))
	for i, k := range keys {
		var p Projection
		if inSide(k) {
			p = As(Col("", k.Name, true), "")
		} else {
			p = As(Null(), k.Name)
		}
		s, err := p.Render(d)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

func selectList(req *Request, d Dialect) ([]string, error) {
	var projections []Projection
	if req.includeKeys {
		for _, k := range req.keys {
			projections = append(projections, As(Col(UniverseAlias, k.Name, true), k.Name))
		}
	}
	for _, c := range req.columns {
		projections = append(projections, As(StatusExpr(c), c.Name))
	}
	projections = append(projections, As(RowStatusExpr(), RowStatusColumn))

	out := make([]string, len(projections))
	for i, p := range projections {
		s, err := p.Render(d)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// sideLookup restricts filter columns to those the side actually has.
func sideLookup(req *Request, inSide func(schema.ResolvedColumn) bool) func(string) (schema.ResolvedColumn, bool) {
	return func(name string) (schema.ResolvedColumn, bool) {
		col, ok := req.lookup(name)
		if !ok || !inSide(col) {
			return schema.ResolvedColumn{}, false
		}
		return col, true
	}
}

// checkOutputNames rejects column names that collide with the generated
// bookkeeping columns or with each other in the result relation.
func checkOutputNames(req *Request, d Dialect) error {
	seen := make(map[string]struct{})
	for _, name := range req.OutputColumns() {
		upper := strings.ToUpper(name)
		if _, dup := seen[upper]; dup {
			return &RenderError{Dialect: d.Name(), Column: name, Reason: fmt.Sprintf("result column is produced twice in %s", req.resultTable)}
		}
		seen[upper] = struct{}{}
	}
	for _, c := range append(req.Keys(), req.columns...) {
		if strings.EqualFold(c.Name, PresenceColumn) {
			return &RenderError{Dialect: d.Name(), Column: c.Name, Reason: "column name is reserved for the presence marker"}
		}
	}
	return nil
}
