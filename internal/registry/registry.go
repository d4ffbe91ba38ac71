// Package registry is the static catalog mapping a bank-alert email source
// (sender address plus subject substrings) to the extraction rules used by
// the email-ingestion collaborator.
package registry

import (
	"errors"
	"strings"

	"finflow/bankfeed/internal/models"
)

// ExtractionConfig identifies the originating institution of an inbound
// transaction-alert email and parameterizes its text extraction. Instances
// are immutable after registry construction.
type ExtractionConfig struct {
	// Name labels the config for logging and diagnostics.
	Name string `yaml:"name"`

	// SubjectPatterns are ordered substrings; a config matches an email when
	// any pattern is contained in the subject line.
	SubjectPatterns []string `yaml:"subject_patterns"`

	// SenderAddress is the alert sender this config applies to.
	SenderAddress string `yaml:"sender_address"`

	// TransactionType, when set, is used verbatim downstream instead of
	// auto-detecting the direction from the email text. Must be DEBIT or
	// CREDIT when present.
	TransactionType string `yaml:"transaction_type,omitempty"`

	// SkipDeclined drops declined-transaction alerts from this source.
	SkipDeclined bool `yaml:"skip_declined"`
}

// HasFixedTransactionType reports whether the downstream extraction step must
// use TransactionType verbatim and skip auto-detection.
func (c ExtractionConfig) HasFixedTransactionType() bool {
	return c.TransactionType != ""
}

// Validate enforces the config invariants.
func (c ExtractionConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("extraction config requires a name")
	}
	if strings.TrimSpace(c.SenderAddress) == "" {
		return errors.New("extraction config requires a sender address")
	}
	if len(c.SubjectPatterns) == 0 {
		return errors.New("extraction config requires at least one subject pattern")
	}
	if c.TransactionType != "" &&
		c.TransactionType != models.TypeDebit && c.TransactionType != models.TypeCredit {
		return errors.New("transaction type must be DEBIT or CREDIT when set")
	}
	return nil
}

// Registry holds the ordered extraction configs. It is immutable after New
// and safe for unsynchronized concurrent reads.
type Registry struct {
	configs []ExtractionConfig
}

// New validates the configs and builds a registry preserving their order.
// Order matters: subject patterns overlap across configs, and classification
// is first-match-wins.
func New(configs ...ExtractionConfig) (*Registry, error) {
	copied := make([]ExtractionConfig, len(configs))
	for i, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		c.SubjectPatterns = append([]string(nil), c.SubjectPatterns...)
		copied[i] = c
	}
	return &Registry{configs: copied}, nil
}

// Configs returns the full ordered config list as a copy.
func (r *Registry) Configs() []ExtractionConfig {
	out := make([]ExtractionConfig, len(r.configs))
	copy(out, r.configs)
	return out
}

// Classify returns the first config, in registry order, whose sender matches
// the given sender address and whose subject-pattern set contains a substring
// of the subject. The boolean is false when nothing matches.
func (r *Registry) Classify(sender, subject string) (ExtractionConfig, bool) {
	sender = strings.ToLower(strings.TrimSpace(sender))
	subjectLower := strings.ToLower(subject)

	for _, c := range r.configs {
		if strings.ToLower(c.SenderAddress) != sender {
			continue
		}
		for _, pattern := range c.SubjectPatterns {
			if strings.Contains(subjectLower, strings.ToLower(pattern)) {
				return c, true
			}
		}
	}
	return ExtractionConfig{}, false
}
