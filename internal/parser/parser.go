// Package parser defines the statement parser contract and the format
// detection used at the ingestion boundary.
package parser

import (
	"io"

	"finflow/bankfeed/internal/models"
)

// Options carries the per-parse inputs besides the statement bytes.
type Options struct {
	// Password decrypts protected spreadsheet containers. Ignored by formats
	// without encryption support.
	Password string

	// Context is copied unmodified into every emitted draft.
	Context models.StatementContext
}

// Parser converts a raw statement byte stream into an ordered sequence of
// transaction drafts.
//
// A returned error always means the container itself could not be opened
// (it is, or wraps, a *parsererror.FormatError). Individual rows that fail
// validation are logged and skipped, never surfaced.
//
// Implementations are stateless between invocations and may be used
// concurrently on independent inputs; a single Parse call is synchronous and
// reads the whole input into memory.
type Parser interface {
	Parse(r io.Reader, opts Options) ([]models.TransactionDraft, error)
}
