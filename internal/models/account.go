package models

import "finflow/bankfeed/internal/textutils"

// AccountProfile is the read-only projection of a user account consumed by the
// fuzzy matcher. Keywords and Aliases are stored comma-separated, the way the
// accounts collaborator delivers them.
type AccountProfile struct {
	ID            string `csv:"ID" yaml:"id"`
	Name          string `csv:"Name" yaml:"name"`
	AccountType   string `csv:"AccountType" yaml:"account_type"`
	Institution   string `csv:"Institution" yaml:"institution"`
	AccountNumber string `csv:"AccountNumber" yaml:"account_number"`
	Keywords      string `csv:"Keywords" yaml:"keywords"`
	Aliases       string `csv:"Aliases" yaml:"aliases"`
}

// KeywordList returns the keywords as trimmed entries.
func (a *AccountProfile) KeywordList() []string {
	return textutils.SplitList(a.Keywords)
}

// AliasList returns the aliases as trimmed entries.
func (a *AccountProfile) AliasList() []string {
	return textutils.SplitList(a.Aliases)
}

// MatchResult is the outcome of one fuzzy-match call. Account is nil when no
// candidate scored at all. A result below MinMatchScore signals "no confident
// match", not an error.
type MatchResult struct {
	Account *AccountProfile
	Score   int
}

// IsValid reports whether the match is confident enough to act on.
func (r MatchResult) IsValid() bool {
	return r.Account != nil && r.Score >= MinMatchScore
}
