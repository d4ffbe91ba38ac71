package registry

import "finflow/bankfeed/internal/models"

// Defaults returns the built-in catalog of bank alert sources. Specific alert
// subjects precede generic "notification" patterns for the same sender so the
// first-match rule picks the most specific config.
func Defaults() []ExtractionConfig {
	return []ExtractionConfig{
		{
			Name:            "hdfc-upi-debit",
			SenderAddress:   "alerts@hdfcbank.net",
			SubjectPatterns: []string{"You have done a UPI txn"},
			TransactionType: models.TypeDebit,
		},
		{
			Name:            "hdfc-credit-card",
			SenderAddress:   "alerts@hdfcbank.net",
			SubjectPatterns: []string{"Alert : Update on your HDFC Bank Credit Card"},
			TransactionType: models.TypeDebit,
			SkipDeclined:    true,
		},
		{
			Name:            "hdfc-generic",
			SenderAddress:   "alerts@hdfcbank.net",
			SubjectPatterns: []string{"notification from HDFC Bank"},
		},
		{
			Name:            "icici-card",
			SenderAddress:   "credit_cards@icicibank.com",
			SubjectPatterns: []string{"Transaction alert for your ICICI Bank Credit Card"},
			TransactionType: models.TypeDebit,
			SkipDeclined:    true,
		},
		{
			Name:            "icici-account",
			SenderAddress:   "alert@icicibank.com",
			SubjectPatterns: []string{"ICICI Bank Account", "UPI transaction"},
		},
		{
			Name:            "axis-account",
			SenderAddress:   "alerts@axisbank.com",
			SubjectPatterns: []string{"Debit transaction alert", "Credit transaction alert"},
		},
		{
			Name:            "sbi-account",
			SenderAddress:   "alerts@sbi.co.in",
			SubjectPatterns: []string{"transaction on account"},
		},
	}
}

// NewDefault builds a registry from the built-in catalog.
func NewDefault() *Registry {
	r, err := New(Defaults()...)
	if err != nil {
		// The built-in catalog is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return r
}
