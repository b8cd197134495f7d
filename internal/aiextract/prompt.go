package aiextract

import (
	"fmt"
	"strings"

	"github.com/Ajauregui69/livo-backend/constants"
)

// fieldHints lists the field names the scoring engine understands, so the
// model extracts them under stable keys.
var fieldHints = map[constants.DocType][]string{
	constants.BankStatement: {
		constants.FieldAverageBalance,
		constants.FieldCurrentBalance,
		constants.FieldOverdraftCount,
	},
	constants.Payroll: {
		constants.FieldMonthlyIncome,
		constants.FieldEmployerName,
	},
	constants.TaxReturn: {
		constants.FieldAnnualIncome,
	},
	constants.EmploymentLetter: {
		constants.FieldEmployerName,
		constants.FieldEmploymentStartDate,
		constants.FieldMonthlyIncome,
	},
	constants.IDDocument: {
		"full_name", "document_number", "date_of_birth",
	},
	constants.ProofOfAddress: {
		"full_name", "address",
	},
}

func buildSystemPrompt(docType constants.DocType) string {
	parts := []string{
		"You are a financial document parser for a property-buyer qualification pipeline.",
		"Return ONLY JSON matching the JSON Schema provided: a flat fields object (string values), an overall confidence from 0 to 100, a short analysis, and a risk_level of low, medium or high.",
		"Amounts are plain decimal numbers without currency symbols or thousands separators.",
		"Dates use ISO-8601 (YYYY-MM-DD).",
		"Omit fields you cannot find; never invent values.",
	}
	if hints, ok := fieldHints[docType]; ok {
		parts = append(parts, "Preferred field keys for this document type: "+strings.Join(hints, ", ")+".")
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(docType constants.DocType, text string) string {
	return fmt.Sprintf("Document type: %s\n\nDocument text:\n%s", docType, text)
}
