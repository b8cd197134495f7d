package constants

// FieldType describes how an extracted value should be interpreted.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldCurrency FieldType = "currency"
)

// FieldTypes holds the allowed field types for enum validation.
var FieldTypes = []string{
	string(FieldText),
	string(FieldNumber),
	string(FieldDate),
	string(FieldCurrency),
}

// Extraction methods recorded on extracted_fields. Rule-derived fields use
// "rule:<uuid>" instead of a fixed constant.
const (
	MethodManual = "manual"
	MethodAI     = "ai"
)

// Well-known field names consumed by the scoring engine. Rules may extract
// arbitrary field names; only these influence the score.
const (
	FieldMonthlyIncome       = "monthly_income"
	FieldAnnualIncome        = "annual_income"
	FieldEmployerName        = "employer_name"
	FieldEmploymentStartDate = "employment_start_date"
	FieldAverageBalance      = "average_balance"
	FieldCurrentBalance      = "current_balance"
	FieldOverdraftCount      = "overdraft_count"
	FieldMonthlyDebtPayments = "monthly_debt_payments"
)
