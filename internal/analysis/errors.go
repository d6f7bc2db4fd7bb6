package analysis

import "errors"

// Fatal build errors. Each aborts the whole build; no partial pack is ever
// returned. Per-record problems (missing identifiers) drop the record instead.
var (
	ErrNoFormAssigned = errors.New("campaign has no survey form assigned")
	ErrNoQuestions    = errors.New("survey form has no questions")
	ErrNoSubmissions  = errors.New("campaign has no submissions")
)
