package parser

import "bytes"

// Kind identifies a statement container format.
type Kind string

const (
	KindText Kind = "text" // delimited text
	KindXLSX Kind = "xlsx" // OOXML spreadsheet
	KindXLS  Kind = "xls"  // legacy BIFF spreadsheet
)

var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Detect sniffs the leading bytes of a statement and classifies its container.
// A ZIP signature means an OOXML workbook, the OLE2 signature a legacy BIFF
// workbook; anything else is treated as delimited text. Encrypted OOXML
// workbooks are OLE2 containers on the wire, so they detect as KindXLS and the
// XLSX parser is selected by the caller when a password is supplied.
func Detect(data []byte, passwordSupplied bool) Kind {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return KindXLSX
	case bytes.HasPrefix(data, ole2Magic):
		if passwordSupplied {
			return KindXLSX
		}
		return KindXLS
	default:
		return KindText
	}
}
