// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CalorieCacheColumns holds the columns for the "calorie_cache" table.
	CalorieCacheColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "dish_name", Type: field.TypeString},
		{Name: "restaurant_name", Type: field.TypeString, Nullable: true},
		{Name: "calories", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "is_estimated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CalorieCacheTable holds the schema information for the "calorie_cache" table.
	CalorieCacheTable = &schema.Table{
		Name:       "calorie_cache",
		Columns:    CalorieCacheColumns,
		PrimaryKey: []*schema.Column{CalorieCacheColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caloriecache_dish_name",
				Unique:  false,
				Columns: []*schema.Column{CalorieCacheColumns[1]},
			},
			{
				Name:    "caloriecache_dish_name_restaurant_name",
				Unique:  false,
				Columns: []*schema.Column{CalorieCacheColumns[1], CalorieCacheColumns[2]},
			},
		},
	}
	// DishesColumns holds the columns for the "dishes" table.
	DishesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "calories", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "is_estimated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID},
	}
	// DishesTable holds the schema information for the "dishes" table.
	DishesTable = &schema.Table{
		Name:       "dishes",
		Columns:    DishesColumns,
		PrimaryKey: []*schema.Column{DishesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dishes_orders_dishes",
				Columns:    []*schema.Column{DishesColumns[7]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// HealthReportCacheColumns holds the columns for the "health_report_cache" table.
	HealthReportCacheColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "last_order_count", Type: field.TypeInt},
		{Name: "report", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// HealthReportCacheTable holds the schema information for the "health_report_cache" table.
	HealthReportCacheTable = &schema.Table{
		Name:       "health_report_cache",
		Columns:    HealthReportCacheColumns,
		PrimaryKey: []*schema.Column{HealthReportCacheColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "health_report_cache_users_report_caches",
				Columns:    []*schema.Column{HealthReportCacheColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "restaurant_name", Type: field.TypeString},
		{Name: "ordered_at", Type: field.TypeTime},
		{Name: "total_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_calories", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "has_estimates", Type: field.TypeBool, Default: false},
		{Name: "raw_subject", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orders_users_orders",
				Columns:    []*schema.Column{OrdersColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SyncLogColumns holds the columns for the "sync_log" table.
	SyncLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SyncLogTable holds the schema information for the "sync_log" table.
	SyncLogTable = &schema.Table{
		Name:       "sync_log",
		Columns:    SyncLogColumns,
		PrimaryKey: []*schema.Column{SyncLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "synclog_message_id",
				Unique:  false,
				Columns: []*schema.Column{SyncLogColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CalorieCacheTable,
		DishesTable,
		HealthReportCacheTable,
		OrdersTable,
		SyncLogTable,
		UsersTable,
	}
)

func init() {
	CalorieCacheTable.Annotation = &entsql.Annotation{
		Table: "calorie_cache",
	}
	DishesTable.ForeignKeys[0].RefTable = OrdersTable
	DishesTable.Annotation = &entsql.Annotation{
		Table: "dishes",
	}
	HealthReportCacheTable.ForeignKeys[0].RefTable = UsersTable
	HealthReportCacheTable.Annotation = &entsql.Annotation{
		Table: "health_report_cache",
	}
	OrdersTable.ForeignKeys[0].RefTable = UsersTable
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	SyncLogTable.Annotation = &entsql.Annotation{
		Table: "sync_log",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
