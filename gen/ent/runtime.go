// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lanefields/credit-extractor/db/ent/schema"
	"github.com/lanefields/credit-extractor/gen/ent/credititem"
	"github.com/lanefields/credit-extractor/gen/ent/extractjob"
	"github.com/lanefields/credit-extractor/gen/ent/profile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credititemFields := schema.CreditItem{}.Fields()
	_ = credititemFields
	// credititemDescCreditorName is the schema descriptor for creditor_name field.
	credititemDescCreditorName := credititemFields[3].Descriptor()
	// credititem.CreditorNameValidator is a validator for the "creditor_name" field. It is called by the builders before save.
	credititem.CreditorNameValidator = credititemDescCreditorName.Validators[0].(func(string) error)
	// credititemDescItemType is the schema descriptor for item_type field.
	credititemDescItemType := credititemFields[4].Descriptor()
	// credititem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	credititem.ItemTypeValidator = credititemDescItemType.Validators[0].(func(string) error)
	// credititemDescAccountLast4 is the schema descriptor for account_last4 field.
	credititemDescAccountLast4 := credititemFields[8].Descriptor()
	// credititem.AccountLast4Validator is a validator for the "account_last4" field. It is called by the builders before save.
	credititem.AccountLast4Validator = credititemDescAccountLast4.Validators[0].(func(string) error)
	// credititemDescIsNegative is the schema descriptor for is_negative field.
	credititemDescIsNegative := credititemFields[10].Descriptor()
	// credititem.DefaultIsNegative holds the default value on creation for the is_negative field.
	credititem.DefaultIsNegative = credititemDescIsNegative.Default.(bool)
	// credititemDescConfidence is the schema descriptor for confidence field.
	credititemDescConfidence := credititemFields[12].Descriptor()
	// credititem.DefaultConfidence holds the default value on creation for the confidence field.
	credititem.DefaultConfidence = credititemDescConfidence.Default.(float32)
	// credititemDescStatus is the schema descriptor for status field.
	credititemDescStatus := credititemFields[13].Descriptor()
	// credititem.DefaultStatus holds the default value on creation for the status field.
	credititem.DefaultStatus = credititemDescStatus.Default.(string)
	// credititemDescCreatedAt is the schema descriptor for created_at field.
	credititemDescCreatedAt := credititemFields[14].Descriptor()
	// credititem.DefaultCreatedAt holds the default value on creation for the created_at field.
	credititem.DefaultCreatedAt = credititemDescCreatedAt.Default.(func() time.Time)
	// credititemDescUpdatedAt is the schema descriptor for updated_at field.
	credititemDescUpdatedAt := credititemFields[15].Descriptor()
	// credititem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credititem.DefaultUpdatedAt = credititemDescUpdatedAt.Default.(func() time.Time)
	// credititem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credititem.UpdateDefaultUpdatedAt = credititemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// credititemDescID is the schema descriptor for id field.
	credititemDescID := credititemFields[0].Descriptor()
	// credititem.DefaultID holds the default value on creation for the id field.
	credititem.DefaultID = credititemDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFilePath is the schema descriptor for file_path field.
	extractjobDescFilePath := extractjobFields[2].Descriptor()
	// extractjob.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	extractjob.FilePathValidator = extractjobDescFilePath.Validators[0].(func(string) error)
	// extractjobDescFileName is the schema descriptor for file_name field.
	extractjobDescFileName := extractjobFields[3].Descriptor()
	// extractjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	extractjob.FileNameValidator = extractjobDescFileName.Validators[0].(func(string) error)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[4].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjobDescCreatedAt is the schema descriptor for created_at field.
	extractjobDescCreatedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractjob.DefaultCreatedAt = extractjobDescCreatedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[2].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
