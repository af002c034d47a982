// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CreditItemColumns holds the columns for the "credit_item" table.
	CreditItemColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "creditor_name", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "amount_cents", Type: field.TypeInt64, Nullable: true},
		{Name: "opened_date", Type: field.TypeTime, Nullable: true},
		{Name: "reported_date", Type: field.TypeTime, Nullable: true},
		{Name: "account_last4", Type: field.TypeString, Nullable: true, Size: 4},
		{Name: "bureaus", Type: field.TypeJSON, Nullable: true},
		{Name: "is_negative", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "to_send"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CreditItemTable holds the schema information for the "credit_item" table.
	CreditItemTable = &schema.Table{
		Name:       "credit_item",
		Columns:    CreditItemColumns,
		PrimaryKey: []*schema.Column{CreditItemColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_item_extract_job_items",
				Columns:    []*schema.Column{CreditItemColumns[14]},
				RefColumns: []*schema.Column{ExtractJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "credit_item_profile_items",
				Columns:    []*schema.Column{CreditItemColumns[15]},
				RefColumns: []*schema.Column{ProfileColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "credititem_profile_id_creditor_name_item_type",
				Unique:  true,
				Columns: []*schema.Column{CreditItemColumns[15], CreditItemColumns[1], CreditItemColumns[2]},
			},
			{
				Name:    "credititem_job_id",
				Unique:  false,
				Columns: []*schema.Column{CreditItemColumns[14]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_profile_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[9]},
				RefColumns: []*schema.Column{ProfileColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[9], ExtractJobColumns[3], ExtractJobColumns[4]},
			},
		},
	}
	// ProfileColumns holds the columns for the "profile" table.
	ProfileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfileTable holds the schema information for the "profile" table.
	ProfileTable = &schema.Table{
		Name:       "profile",
		Columns:    ProfileColumns,
		PrimaryKey: []*schema.Column{ProfileColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CreditItemTable,
		ExtractJobTable,
		ProfileTable,
	}
)

func init() {
	CreditItemTable.ForeignKeys[0].RefTable = ExtractJobTable
	CreditItemTable.ForeignKeys[1].RefTable = ProfileTable
	CreditItemTable.Annotation = &entsql.Annotation{
		Table: "credit_item",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = ProfileTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	ProfileTable.Annotation = &entsql.Annotation{
		Table: "profile",
	}
}
