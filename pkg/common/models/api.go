package models

import "time"

// Access scopes. A caller is scoped to their own records, their center's
// records, or everything.
const (
	AccessOwn    = "own"
	AccessCenter = "center"
	AccessAll    = "all"
)

// Actor identifies who is performing an operation and how far they can see.
type Actor struct {
	ID       string `json:"id"`
	CenterID string `json:"center_id,omitempty"`
	Access   string `json:"access,omitempty"`
}

// Scope returns the persistence-level filter implied by the actor's access.
func (a Actor) Scope() ScopeFilter {
	switch a.Access {
	case AccessOwn:
		return ScopeFilter{CreatedBy: a.ID}
	case AccessCenter:
		return ScopeFilter{CenterID: a.CenterID}
	default:
		return ScopeFilter{}
	}
}

// ScopeFilter restricts lookups to a creator or a center. The zero value
// means unrestricted. Soft-deleted records are always excluded regardless of
// scope.
type ScopeFilter struct {
	CreatedBy string
	CenterID  string
}

// RecordQuery is the export/list filter. String fields match as
// case-insensitive substrings, mirroring the search behaviour of the record
// browser.
type RecordQuery struct {
	PaecNo   string     `json:"paec_no,omitempty"`
	Name     string     `json:"name,omitempty"`
	UHID     string     `json:"uhid,omitempty"`
	FromDate *time.Time `json:"from_date,omitempty"`
	ToDate   *time.Time `json:"to_date,omitempty"`
	Limit    int        `json:"limit,omitempty"`
}

// RowError is one failed sheet row. Row numbers are 1-based positions in the
// original sheet including the header row, so the first data row is row 2.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary is the outcome of one import run.
type ImportSummary struct {
	RunID     string     `json:"run_id"`
	TotalRows int        `json:"total_rows"`
	Created   int        `json:"created"`
	Updated   int        `json:"updated"`
	Errors    []RowError `json:"errors"`
}

// FieldChange records one field's prior and new display value for audit.
type FieldChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FieldDiff maps canonical dotted paths to their changes. Only paths present
// in the applied patch appear; unchanged values produce no entry.
type FieldDiff map[string]FieldChange

// AuditEntry is one append-only audit record.
type AuditEntry struct {
	ID        int64                  `json:"id"`
	Actor     string                 `json:"actor"`
	Action    string                 `json:"action"` // created, updated, deleted, imported, exported
	Module    string                 `json:"module"`
	Subject   string                 `json:"subject,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
