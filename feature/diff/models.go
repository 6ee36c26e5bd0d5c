package diff

import (
	"errors"

	"checkatron/core/describe"
	"checkatron/core/diffsql"
)

// ErrInvalidInput marks request problems that are neither schema nor render errors.
var ErrInvalidInput = errors.New("invalid input")

// Input is one comparison request.
type Input struct {
	Before        []describe.Record   `json:"before"`
	After         []describe.Record   `json:"after"`
	Keys          []string            `json:"keys"`
	BeforeTable   string              `json:"before_table"`
	AfterTable    string              `json:"after_table"`
	BeforeWhere   string              `json:"before_where"`
	AfterWhere    string              `json:"after_where"`
	BeforeFilters []diffsql.Condition `json:"before_filters"`
	AfterFilters  []diffsql.Condition `json:"after_filters"`
	Dialect       string              `json:"dialect"`
	ResultTable   string              `json:"result_table"`
	// IncludeKeys falls back to the configured default when omitted.
	IncludeKeys *bool `json:"include_keys,omitempty"`
}

// Conflict reports a column whose kind differed between the listings.
type Conflict struct {
	Column   string `json:"column"`
	Before   string `json:"before"`
	After    string `json:"after"`
	Resolved string `json:"resolved"`
}

// Warning flags a raw filter that looks like SQL injection.
type Warning struct {
	Side        string `json:"side"`
	Fragment    string `json:"fragment"`
	Fingerprint string `json:"fingerprint"`
}

// Result is the generated statement with what a caller needs to read its output.
type Result struct {
	SQL          string     `json:"sql"`
	Dialect      string     `json:"dialect"`
	ResultTable  string     `json:"result_table"`
	Columns      []string   `json:"columns"`
	OneSidedKeys []string   `json:"one_sided_keys"`
	Conflicts    []Conflict `json:"conflicts"`
	Warnings     []Warning  `json:"warnings"`
}

// Locations points at the listings the generate command reads.
type Locations struct {
	Before string
	After  string
	Keys   string
}
