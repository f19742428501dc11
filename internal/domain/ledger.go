package domain

// LedgerEntry is the per-(scope, subject) join counter.
type LedgerEntry struct {
	ScopeID     string
	SubjectID   string
	RejoinCount int
}
