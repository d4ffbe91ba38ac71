package models

// Transaction direction. A draft never leaves a parser with an unresolved type.
const (
	TypeDebit  = "DEBIT"
	TypeCredit = "CREDIT"
)

// MinMatchScore is the confidence threshold below which a fuzzy match result
// is not actionable. Results under the threshold are still returned; callers
// gate on MatchResult.IsValid.
const MinMatchScore = 500
