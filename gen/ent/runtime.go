// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/db/ent/schema"
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
	"github.com/mealtrace/mealtrace/gen/ent/dish"
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/order"
	"github.com/mealtrace/mealtrace/gen/ent/synclog"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	caloriecacheFields := schema.CalorieCache{}.Fields()
	_ = caloriecacheFields
	// caloriecacheDescDishName is the schema descriptor for dish_name field.
	caloriecacheDescDishName := caloriecacheFields[1].Descriptor()
	// caloriecache.DishNameValidator is a validator for the "dish_name" field. It is called by the builders before save.
	caloriecache.DishNameValidator = caloriecacheDescDishName.Validators[0].(func(string) error)
	// caloriecacheDescIsEstimated is the schema descriptor for is_estimated field.
	caloriecacheDescIsEstimated := caloriecacheFields[5].Descriptor()
	// caloriecache.DefaultIsEstimated holds the default value on creation for the is_estimated field.
	caloriecache.DefaultIsEstimated = caloriecacheDescIsEstimated.Default.(bool)
	// caloriecacheDescCreatedAt is the schema descriptor for created_at field.
	caloriecacheDescCreatedAt := caloriecacheFields[6].Descriptor()
	// caloriecache.DefaultCreatedAt holds the default value on creation for the created_at field.
	caloriecache.DefaultCreatedAt = caloriecacheDescCreatedAt.Default.(func() time.Time)
	// caloriecacheDescID is the schema descriptor for id field.
	caloriecacheDescID := caloriecacheFields[0].Descriptor()
	// caloriecache.DefaultID holds the default value on creation for the id field.
	caloriecache.DefaultID = caloriecacheDescID.Default.(func() uuid.UUID)
	dishFields := schema.Dish{}.Fields()
	_ = dishFields
	// dishDescName is the schema descriptor for name field.
	dishDescName := dishFields[2].Descriptor()
	// dish.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dish.NameValidator = dishDescName.Validators[0].(func(string) error)
	// dishDescQuantity is the schema descriptor for quantity field.
	dishDescQuantity := dishFields[3].Descriptor()
	// dish.DefaultQuantity holds the default value on creation for the quantity field.
	dish.DefaultQuantity = dishDescQuantity.Default.(int)
	// dish.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	dish.QuantityValidator = dishDescQuantity.Validators[0].(func(int) error)
	// dishDescIsEstimated is the schema descriptor for is_estimated field.
	dishDescIsEstimated := dishFields[6].Descriptor()
	// dish.DefaultIsEstimated holds the default value on creation for the is_estimated field.
	dish.DefaultIsEstimated = dishDescIsEstimated.Default.(bool)
	// dishDescCreatedAt is the schema descriptor for created_at field.
	dishDescCreatedAt := dishFields[7].Descriptor()
	// dish.DefaultCreatedAt holds the default value on creation for the created_at field.
	dish.DefaultCreatedAt = dishDescCreatedAt.Default.(func() time.Time)
	// dishDescID is the schema descriptor for id field.
	dishDescID := dishFields[0].Descriptor()
	// dish.DefaultID holds the default value on creation for the id field.
	dish.DefaultID = dishDescID.Default.(func() uuid.UUID)
	healthreportcacheFields := schema.HealthReportCache{}.Fields()
	_ = healthreportcacheFields
	// healthreportcacheDescLastOrderCount is the schema descriptor for last_order_count field.
	healthreportcacheDescLastOrderCount := healthreportcacheFields[2].Descriptor()
	// healthreportcache.LastOrderCountValidator is a validator for the "last_order_count" field. It is called by the builders before save.
	healthreportcache.LastOrderCountValidator = healthreportcacheDescLastOrderCount.Validators[0].(func(int) error)
	// healthreportcacheDescCreatedAt is the schema descriptor for created_at field.
	healthreportcacheDescCreatedAt := healthreportcacheFields[4].Descriptor()
	// healthreportcache.DefaultCreatedAt holds the default value on creation for the created_at field.
	healthreportcache.DefaultCreatedAt = healthreportcacheDescCreatedAt.Default.(func() time.Time)
	// healthreportcacheDescUpdatedAt is the schema descriptor for updated_at field.
	healthreportcacheDescUpdatedAt := healthreportcacheFields[5].Descriptor()
	// healthreportcache.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	healthreportcache.DefaultUpdatedAt = healthreportcacheDescUpdatedAt.Default.(func() time.Time)
	// healthreportcache.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	healthreportcache.UpdateDefaultUpdatedAt = healthreportcacheDescUpdatedAt.UpdateDefault.(func() time.Time)
	// healthreportcacheDescID is the schema descriptor for id field.
	healthreportcacheDescID := healthreportcacheFields[0].Descriptor()
	// healthreportcache.DefaultID holds the default value on creation for the id field.
	healthreportcache.DefaultID = healthreportcacheDescID.Default.(func() uuid.UUID)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescMessageID is the schema descriptor for message_id field.
	orderDescMessageID := orderFields[2].Descriptor()
	// order.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	order.MessageIDValidator = orderDescMessageID.Validators[0].(func(string) error)
	// orderDescRestaurantName is the schema descriptor for restaurant_name field.
	orderDescRestaurantName := orderFields[3].Descriptor()
	// order.RestaurantNameValidator is a validator for the "restaurant_name" field. It is called by the builders before save.
	order.RestaurantNameValidator = orderDescRestaurantName.Validators[0].(func(string) error)
	// orderDescHasEstimates is the schema descriptor for has_estimates field.
	orderDescHasEstimates := orderFields[7].Descriptor()
	// order.DefaultHasEstimates holds the default value on creation for the has_estimates field.
	order.DefaultHasEstimates = orderDescHasEstimates.Default.(bool)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[9].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[10].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	synclogFields := schema.SyncLog{}.Fields()
	_ = synclogFields
	// synclogDescMessageID is the schema descriptor for message_id field.
	synclogDescMessageID := synclogFields[1].Descriptor()
	// synclog.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	synclog.MessageIDValidator = synclogDescMessageID.Validators[0].(func(string) error)
	// synclogDescOutcome is the schema descriptor for outcome field.
	synclogDescOutcome := synclogFields[2].Descriptor()
	// synclog.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	synclog.OutcomeValidator = synclogDescOutcome.Validators[0].(func(string) error)
	// synclogDescCreatedAt is the schema descriptor for created_at field.
	synclogDescCreatedAt := synclogFields[4].Descriptor()
	// synclog.DefaultCreatedAt holds the default value on creation for the created_at field.
	synclog.DefaultCreatedAt = synclogDescCreatedAt.Default.(func() time.Time)
	// synclogDescID is the schema descriptor for id field.
	synclogDescID := synclogFields[0].Descriptor()
	// synclog.DefaultID holds the default value on creation for the id field.
	synclog.DefaultID = synclogDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[3].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
