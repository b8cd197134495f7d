// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Ajauregui69/livo-backend/db/ent/schema"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractedfield"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractionrule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	creditscoreFields := schema.CreditScore{}.Fields()
	_ = creditscoreFields
	// creditscoreDescScore is the schema descriptor for score field.
	creditscoreDescScore := creditscoreFields[2].Descriptor()
	// creditscore.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	creditscore.ScoreValidator = func() func(int) error {
		validators := creditscoreDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// creditscoreDescRiskTier is the schema descriptor for risk_tier field.
	creditscoreDescRiskTier := creditscoreFields[3].Descriptor()
	// creditscore.RiskTierValidator is a validator for the "risk_tier" field. It is called by the builders before save.
	creditscore.RiskTierValidator = creditscoreDescRiskTier.Validators[0].(func(string) error)
	// creditscoreDescEstimatedMonthlyIncome is the schema descriptor for estimated_monthly_income field.
	creditscoreDescEstimatedMonthlyIncome := creditscoreFields[4].Descriptor()
	// creditscore.DefaultEstimatedMonthlyIncome holds the default value on creation for the estimated_monthly_income field.
	creditscore.DefaultEstimatedMonthlyIncome = creditscoreDescEstimatedMonthlyIncome.Default.(decimal.Decimal)
	// creditscoreDescMaxLoan is the schema descriptor for max_loan field.
	creditscoreDescMaxLoan := creditscoreFields[5].Descriptor()
	// creditscore.DefaultMaxLoan holds the default value on creation for the max_loan field.
	creditscore.DefaultMaxLoan = creditscoreDescMaxLoan.Default.(decimal.Decimal)
	// creditscoreDescSuggestedDownPayment is the schema descriptor for suggested_down_payment field.
	creditscoreDescSuggestedDownPayment := creditscoreFields[6].Descriptor()
	// creditscore.DefaultSuggestedDownPayment holds the default value on creation for the suggested_down_payment field.
	creditscore.DefaultSuggestedDownPayment = creditscoreDescSuggestedDownPayment.Default.(decimal.Decimal)
	// creditscoreDescActive is the schema descriptor for active field.
	creditscoreDescActive := creditscoreFields[9].Descriptor()
	// creditscore.DefaultActive holds the default value on creation for the active field.
	creditscore.DefaultActive = creditscoreDescActive.Default.(bool)
	// creditscoreDescComputedAt is the schema descriptor for computed_at field.
	creditscoreDescComputedAt := creditscoreFields[10].Descriptor()
	// creditscore.DefaultComputedAt holds the default value on creation for the computed_at field.
	creditscore.DefaultComputedAt = creditscoreDescComputedAt.Default.(func() time.Time)
	// creditscoreDescCreatedAt is the schema descriptor for created_at field.
	creditscoreDescCreatedAt := creditscoreFields[12].Descriptor()
	// creditscore.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditscore.DefaultCreatedAt = creditscoreDescCreatedAt.Default.(func() time.Time)
	// creditscoreDescUpdatedAt is the schema descriptor for updated_at field.
	creditscoreDescUpdatedAt := creditscoreFields[13].Descriptor()
	// creditscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditscore.DefaultUpdatedAt = creditscoreDescUpdatedAt.Default.(func() time.Time)
	// creditscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditscore.UpdateDefaultUpdatedAt = creditscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	// creditscoreDescID is the schema descriptor for id field.
	creditscoreDescID := creditscoreFields[0].Descriptor()
	// creditscore.DefaultID holds the default value on creation for the id field.
	creditscore.DefaultID = creditscoreDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[2].Descriptor()
	// document.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	document.DocTypeValidator = func() func(string) error {
		validators := documentDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStorageKey is the schema descriptor for storage_key field.
	documentDescStorageKey := documentFields[3].Descriptor()
	// document.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	document.StorageKeyValidator = documentDescStorageKey.Validators[0].(func(string) error)
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[4].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescMimeType is the schema descriptor for mime_type field.
	documentDescMimeType := documentFields[5].Descriptor()
	// document.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	document.MimeTypeValidator = documentDescMimeType.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[6].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[10].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[11].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentreviewFields := schema.DocumentReview{}.Fields()
	_ = documentreviewFields
	// documentreviewDescStatus is the schema descriptor for status field.
	documentreviewDescStatus := documentreviewFields[2].Descriptor()
	// documentreview.DefaultStatus holds the default value on creation for the status field.
	documentreview.DefaultStatus = documentreviewDescStatus.Default.(string)
	// documentreviewDescCreatedAt is the schema descriptor for created_at field.
	documentreviewDescCreatedAt := documentreviewFields[11].Descriptor()
	// documentreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentreview.DefaultCreatedAt = documentreviewDescCreatedAt.Default.(func() time.Time)
	// documentreviewDescUpdatedAt is the schema descriptor for updated_at field.
	documentreviewDescUpdatedAt := documentreviewFields[12].Descriptor()
	// documentreview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentreview.DefaultUpdatedAt = documentreviewDescUpdatedAt.Default.(func() time.Time)
	// documentreview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentreview.UpdateDefaultUpdatedAt = documentreviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentreviewDescID is the schema descriptor for id field.
	documentreviewDescID := documentreviewFields[0].Descriptor()
	// documentreview.DefaultID holds the default value on creation for the id field.
	documentreview.DefaultID = documentreviewDescID.Default.(func() uuid.UUID)
	extractedfieldFields := schema.ExtractedField{}.Fields()
	_ = extractedfieldFields
	// extractedfieldDescFieldName is the schema descriptor for field_name field.
	extractedfieldDescFieldName := extractedfieldFields[2].Descriptor()
	// extractedfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractedfield.FieldNameValidator = extractedfieldDescFieldName.Validators[0].(func(string) error)
	// extractedfieldDescFieldType is the schema descriptor for field_type field.
	extractedfieldDescFieldType := extractedfieldFields[3].Descriptor()
	// extractedfield.DefaultFieldType holds the default value on creation for the field_type field.
	extractedfield.DefaultFieldType = extractedfieldDescFieldType.Default.(string)
	// extractedfield.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	extractedfield.FieldTypeValidator = extractedfieldDescFieldType.Validators[0].(func(string) error)
	// extractedfieldDescExtractionMethod is the schema descriptor for extraction_method field.
	extractedfieldDescExtractionMethod := extractedfieldFields[7].Descriptor()
	// extractedfield.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	extractedfield.ExtractionMethodValidator = extractedfieldDescExtractionMethod.Validators[0].(func(string) error)
	// extractedfieldDescCorrected is the schema descriptor for corrected field.
	extractedfieldDescCorrected := extractedfieldFields[8].Descriptor()
	// extractedfield.DefaultCorrected holds the default value on creation for the corrected field.
	extractedfield.DefaultCorrected = extractedfieldDescCorrected.Default.(bool)
	// extractedfieldDescCreatedAt is the schema descriptor for created_at field.
	extractedfieldDescCreatedAt := extractedfieldFields[9].Descriptor()
	// extractedfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedfield.DefaultCreatedAt = extractedfieldDescCreatedAt.Default.(func() time.Time)
	// extractedfieldDescUpdatedAt is the schema descriptor for updated_at field.
	extractedfieldDescUpdatedAt := extractedfieldFields[10].Descriptor()
	// extractedfield.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractedfield.DefaultUpdatedAt = extractedfieldDescUpdatedAt.Default.(func() time.Time)
	// extractedfield.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractedfield.UpdateDefaultUpdatedAt = extractedfieldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractedfieldDescID is the schema descriptor for id field.
	extractedfieldDescID := extractedfieldFields[0].Descriptor()
	// extractedfield.DefaultID holds the default value on creation for the id field.
	extractedfield.DefaultID = extractedfieldDescID.Default.(func() uuid.UUID)
	extractionruleFields := schema.ExtractionRule{}.Fields()
	_ = extractionruleFields
	// extractionruleDescRuleName is the schema descriptor for rule_name field.
	extractionruleDescRuleName := extractionruleFields[1].Descriptor()
	// extractionrule.RuleNameValidator is a validator for the "rule_name" field. It is called by the builders before save.
	extractionrule.RuleNameValidator = extractionruleDescRuleName.Validators[0].(func(string) error)
	// extractionruleDescDocType is the schema descriptor for doc_type field.
	extractionruleDescDocType := extractionruleFields[2].Descriptor()
	// extractionrule.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	extractionrule.DocTypeValidator = func() func(string) error {
		validators := extractionruleDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionruleDescFieldName is the schema descriptor for field_name field.
	extractionruleDescFieldName := extractionruleFields[3].Descriptor()
	// extractionrule.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractionrule.FieldNameValidator = extractionruleDescFieldName.Validators[0].(func(string) error)
	// extractionruleDescPattern is the schema descriptor for pattern field.
	extractionruleDescPattern := extractionruleFields[4].Descriptor()
	// extractionrule.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	extractionrule.PatternValidator = extractionruleDescPattern.Validators[0].(func(string) error)
	// extractionruleDescPatternType is the schema descriptor for pattern_type field.
	extractionruleDescPatternType := extractionruleFields[5].Descriptor()
	// extractionrule.DefaultPatternType holds the default value on creation for the pattern_type field.
	extractionrule.DefaultPatternType = extractionruleDescPatternType.Default.(string)
	// extractionruleDescFieldType is the schema descriptor for field_type field.
	extractionruleDescFieldType := extractionruleFields[6].Descriptor()
	// extractionrule.DefaultFieldType holds the default value on creation for the field_type field.
	extractionrule.DefaultFieldType = extractionruleDescFieldType.Default.(string)
	// extractionrule.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	extractionrule.FieldTypeValidator = extractionruleDescFieldType.Validators[0].(func(string) error)
	// extractionruleDescPriority is the schema descriptor for priority field.
	extractionruleDescPriority := extractionruleFields[8].Descriptor()
	// extractionrule.DefaultPriority holds the default value on creation for the priority field.
	extractionrule.DefaultPriority = extractionruleDescPriority.Default.(int)
	// extractionruleDescActive is the schema descriptor for active field.
	extractionruleDescActive := extractionruleFields[9].Descriptor()
	// extractionrule.DefaultActive holds the default value on creation for the active field.
	extractionrule.DefaultActive = extractionruleDescActive.Default.(bool)
	// extractionruleDescSuccessCount is the schema descriptor for success_count field.
	extractionruleDescSuccessCount := extractionruleFields[10].Descriptor()
	// extractionrule.DefaultSuccessCount holds the default value on creation for the success_count field.
	extractionrule.DefaultSuccessCount = extractionruleDescSuccessCount.Default.(int)
	// extractionrule.SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	extractionrule.SuccessCountValidator = extractionruleDescSuccessCount.Validators[0].(func(int) error)
	// extractionruleDescFailureCount is the schema descriptor for failure_count field.
	extractionruleDescFailureCount := extractionruleFields[11].Descriptor()
	// extractionrule.DefaultFailureCount holds the default value on creation for the failure_count field.
	extractionrule.DefaultFailureCount = extractionruleDescFailureCount.Default.(int)
	// extractionrule.FailureCountValidator is a validator for the "failure_count" field. It is called by the builders before save.
	extractionrule.FailureCountValidator = extractionruleDescFailureCount.Validators[0].(func(int) error)
	// extractionruleDescCreatedAt is the schema descriptor for created_at field.
	extractionruleDescCreatedAt := extractionruleFields[13].Descriptor()
	// extractionrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionrule.DefaultCreatedAt = extractionruleDescCreatedAt.Default.(func() time.Time)
	// extractionruleDescUpdatedAt is the schema descriptor for updated_at field.
	extractionruleDescUpdatedAt := extractionruleFields[14].Descriptor()
	// extractionrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionrule.DefaultUpdatedAt = extractionruleDescUpdatedAt.Default.(func() time.Time)
	// extractionrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionrule.UpdateDefaultUpdatedAt = extractionruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionruleDescID is the schema descriptor for id field.
	extractionruleDescID := extractionruleFields[0].Descriptor()
	// extractionrule.DefaultID holds the default value on creation for the id field.
	extractionrule.DefaultID = extractionruleDescID.Default.(func() uuid.UUID)
}
