package constants

import "strings"

// DocType is the declared type of an uploaded document.
type DocType string

const (
	BankStatement    DocType = "bank_statement"
	Payroll          DocType = "payroll"
	TaxReturn        DocType = "tax_return"
	IDDocument       DocType = "id_document"
	ProofOfAddress   DocType = "proof_of_address"
	EmploymentLetter DocType = "employment_letter"
	OtherDocument    DocType = "other"
)

var allDocTypes = []DocType{
	BankStatement,
	Payroll,
	TaxReturn,
	IDDocument,
	ProofOfAddress,
	EmploymentLetter,
	OtherDocument,
}

// DocTypeStrings returns the allowed document types for enum validation.
func DocTypeStrings() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// CanonicalDocType normalizes user input to a known document type.
// Unknown values map to OtherDocument.
func CanonicalDocType(input string) (DocType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, dt := range allDocTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return OtherDocument, false
}

// minFieldCounts is the per-type minimum number of extracted fields below
// which an extraction pass is queued for human review.
var minFieldCounts = map[DocType]int{
	BankStatement:    3,
	Payroll:          2,
	TaxReturn:        2,
	IDDocument:       3,
	ProofOfAddress:   2,
	EmploymentLetter: 2,
}

// MinFieldCount returns the review floor for a document type; unknown types
// default to 2.
func MinFieldCount(dt DocType) int {
	if n, ok := minFieldCounts[dt]; ok {
		return n
	}
	return 2
}
