// Package matcher resolves free-text transaction context to one of a user's
// accounts with a confidence-scored fuzzy match.
//
// Scoring is additive over a data-driven table of weighted signals: every
// account attribute is compared against every text field, weighted per
// (attribute, field), with a flat bonus whenever a normalized attribute
// appears literally inside a normalized text field. The candidate with the
// strictly highest total wins; ties keep input order.
package matcher

import (
	"strings"

	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/models"
	"finflow/bankfeed/internal/textutils"
)

// ExactMatchBonus is added per (attribute, text field) pair on a literal
// substring hit. It exceeds the largest possible single similarity
// contribution (weight 3 x similarity 100) so one exact hit always outranks
// approximate noise.
const ExactMatchBonus = 500

// fieldWeights holds one signal's multiplier per text field.
type fieldWeights struct {
	hint        int
	rawText     int
	description int
}

// signal is one row of the scoring table: which account attribute values to
// compare, how to weight them per text field, and whether a literal substring
// hit earns the exact-match bonus.
type signal struct {
	name    string
	values  func(a *models.AccountProfile) []string
	weights fieldWeights
	bonus   bool
}

var signalTable = []signal{
	{
		name:    "name",
		values:  func(a *models.AccountProfile) []string { return []string{a.Name} },
		weights: fieldWeights{hint: 1, rawText: 1, description: 1},
	},
	{
		name:    "account_type",
		values:  func(a *models.AccountProfile) []string { return []string{a.AccountType} },
		weights: fieldWeights{hint: 1, rawText: 1, description: 1},
	},
	{
		name:    "institution",
		values:  func(a *models.AccountProfile) []string { return []string{a.Institution} },
		weights: fieldWeights{hint: 2, rawText: 3, description: 2},
		bonus:   true,
	},
	{
		name:    "account_number",
		values:  func(a *models.AccountProfile) []string { return []string{a.AccountNumber} },
		weights: fieldWeights{hint: 2, rawText: 2, description: 2},
		bonus:   true,
	},
	{
		name:    "keywords",
		values:  func(a *models.AccountProfile) []string { return a.KeywordList() },
		weights: fieldWeights{hint: 2, rawText: 2, description: 2},
		bonus:   true,
	},
	{
		name:    "aliases",
		values:  func(a *models.AccountProfile) []string { return a.AliasList() },
		weights: fieldWeights{hint: 3, rawText: 2, description: 2},
		bonus:   true,
	},
}

// Matcher computes confidence-scored account matches. It is a pure function
// of its inputs aside from logging and holds no per-call state.
type Matcher struct {
	logger logging.Logger
}

// New creates a Matcher. A nil logger falls back to a default adapter.
func New(logger logging.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Matcher{logger: logger}
}

// textField is one normalized free-text input with its weight selector.
type textField struct {
	name   string
	value  string
	weight func(w fieldWeights) int
}

// FindBestMatch scores every candidate against the three text signals and
// returns the best result. The result is always returned, even below the
// confidence threshold; callers must check MatchResult.IsValid before acting
// on it.
func (m *Matcher) FindBestMatch(accounts []models.AccountProfile, hint, rawText, description string) models.MatchResult {
	fields := []textField{
		{"hint", textutils.Normalize(hint), func(w fieldWeights) int { return w.hint }},
		{"raw_text", textutils.Normalize(rawText), func(w fieldWeights) int { return w.rawText }},
		{"description", textutils.Normalize(description), func(w fieldWeights) int { return w.description }},
	}

	var best models.MatchResult
	for i := range accounts {
		score := scoreAccount(&accounts[i], fields)
		if best.Account == nil || score > best.Score {
			best = models.MatchResult{Account: &accounts[i], Score: score}
		}
	}

	if best.IsValid() {
		m.logger.Info("resolved account for transaction context",
			logging.Field{Key: "account", Value: best.Account.ID},
			logging.Field{Key: "name", Value: best.Account.Name},
			logging.Field{Key: "score", Value: best.Score})
	} else {
		m.logger.Info("no qualifying account match",
			logging.Field{Key: "candidates", Value: len(accounts)},
			logging.Field{Key: "best_score", Value: best.Score})
	}
	return best
}

func scoreAccount(account *models.AccountProfile, fields []textField) int {
	total := 0
	for _, sig := range signalTable {
		for _, raw := range sig.values(account) {
			attr := textutils.Normalize(raw)
			if attr == "" {
				continue
			}
			for _, field := range fields {
				if field.value == "" {
					continue
				}
				total += field.weight(sig.weights) * safeSimilarity(attr, field.value)
				if sig.bonus && strings.Contains(field.value, attr) {
					total += ExactMatchBonus
				}
			}
		}
	}
	return total
}
