// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
	"github.com/mealtrace/mealtrace/gen/ent/dish"
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/order"
	"github.com/mealtrace/mealtrace/gen/ent/synclog"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CalorieCache is the client for interacting with the CalorieCache builders.
	CalorieCache *CalorieCacheClient
	// Dish is the client for interacting with the Dish builders.
	Dish *DishClient
	// HealthReportCache is the client for interacting with the HealthReportCache builders.
	HealthReportCache *HealthReportCacheClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// SyncLog is the client for interacting with the SyncLog builders.
	SyncLog *SyncLogClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CalorieCache = NewCalorieCacheClient(c.config)
	c.Dish = NewDishClient(c.config)
	c.HealthReportCache = NewHealthReportCacheClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.SyncLog = NewSyncLogClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CalorieCache:      NewCalorieCacheClient(cfg),
		Dish:              NewDishClient(cfg),
		HealthReportCache: NewHealthReportCacheClient(cfg),
		Order:             NewOrderClient(cfg),
		SyncLog:           NewSyncLogClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CalorieCache:      NewCalorieCacheClient(cfg),
		Dish:              NewDishClient(cfg),
		HealthReportCache: NewHealthReportCacheClient(cfg),
		Order:             NewOrderClient(cfg),
		SyncLog:           NewSyncLogClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CalorieCache.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CalorieCache, c.Dish, c.HealthReportCache, c.Order, c.SyncLog, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CalorieCache, c.Dish, c.HealthReportCache, c.Order, c.SyncLog, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CalorieCacheMutation:
		return c.CalorieCache.mutate(ctx, m)
	case *DishMutation:
		return c.Dish.mutate(ctx, m)
	case *HealthReportCacheMutation:
		return c.HealthReportCache.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *SyncLogMutation:
		return c.SyncLog.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CalorieCacheClient is a client for the CalorieCache schema.
type CalorieCacheClient struct {
	config
}

// NewCalorieCacheClient returns a client for the CalorieCache from the given config.
func NewCalorieCacheClient(c config) *CalorieCacheClient {
	return &CalorieCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caloriecache.Hooks(f(g(h())))`.
func (c *CalorieCacheClient) Use(hooks ...Hook) {
	c.hooks.CalorieCache = append(c.hooks.CalorieCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caloriecache.Intercept(f(g(h())))`.
func (c *CalorieCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalorieCache = append(c.inters.CalorieCache, interceptors...)
}

// Create returns a builder for creating a CalorieCache entity.
func (c *CalorieCacheClient) Create() *CalorieCacheCreate {
	mutation := newCalorieCacheMutation(c.config, OpCreate)
	return &CalorieCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalorieCache entities.
func (c *CalorieCacheClient) CreateBulk(builders ...*CalorieCacheCreate) *CalorieCacheCreateBulk {
	return &CalorieCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalorieCacheClient) MapCreateBulk(slice any, setFunc func(*CalorieCacheCreate, int)) *CalorieCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalorieCacheCreateBulk{err: fmt.Errorf("calling to CalorieCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalorieCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalorieCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalorieCache.
func (c *CalorieCacheClient) Update() *CalorieCacheUpdate {
	mutation := newCalorieCacheMutation(c.config, OpUpdate)
	return &CalorieCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalorieCacheClient) UpdateOne(_m *CalorieCache) *CalorieCacheUpdateOne {
	mutation := newCalorieCacheMutation(c.config, OpUpdateOne, withCalorieCache(_m))
	return &CalorieCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalorieCacheClient) UpdateOneID(id uuid.UUID) *CalorieCacheUpdateOne {
	mutation := newCalorieCacheMutation(c.config, OpUpdateOne, withCalorieCacheID(id))
	return &CalorieCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalorieCache.
func (c *CalorieCacheClient) Delete() *CalorieCacheDelete {
	mutation := newCalorieCacheMutation(c.config, OpDelete)
	return &CalorieCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalorieCacheClient) DeleteOne(_m *CalorieCache) *CalorieCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalorieCacheClient) DeleteOneID(id uuid.UUID) *CalorieCacheDeleteOne {
	builder := c.Delete().Where(caloriecache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalorieCacheDeleteOne{builder}
}

// Query returns a query builder for CalorieCache.
func (c *CalorieCacheClient) Query() *CalorieCacheQuery {
	return &CalorieCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalorieCache},
		inters: c.Interceptors(),
	}
}

// Get returns a CalorieCache entity by its id.
func (c *CalorieCacheClient) Get(ctx context.Context, id uuid.UUID) (*CalorieCache, error) {
	return c.Query().Where(caloriecache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalorieCacheClient) GetX(ctx context.Context, id uuid.UUID) *CalorieCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalorieCacheClient) Hooks() []Hook {
	return c.hooks.CalorieCache
}

// Interceptors returns the client interceptors.
func (c *CalorieCacheClient) Interceptors() []Interceptor {
	return c.inters.CalorieCache
}

func (c *CalorieCacheClient) mutate(ctx context.Context, m *CalorieCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalorieCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalorieCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalorieCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalorieCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalorieCache mutation op: %q", m.Op())
	}
}

// DishClient is a client for the Dish schema.
type DishClient struct {
	config
}

// NewDishClient returns a client for the Dish from the given config.
func NewDishClient(c config) *DishClient {
	return &DishClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dish.Hooks(f(g(h())))`.
func (c *DishClient) Use(hooks ...Hook) {
	c.hooks.Dish = append(c.hooks.Dish, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dish.Intercept(f(g(h())))`.
func (c *DishClient) Intercept(interceptors ...Interceptor) {
	c.inters.Dish = append(c.inters.Dish, interceptors...)
}

// Create returns a builder for creating a Dish entity.
func (c *DishClient) Create() *DishCreate {
	mutation := newDishMutation(c.config, OpCreate)
	return &DishCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Dish entities.
func (c *DishClient) CreateBulk(builders ...*DishCreate) *DishCreateBulk {
	return &DishCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DishClient) MapCreateBulk(slice any, setFunc func(*DishCreate, int)) *DishCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DishCreateBulk{err: fmt.Errorf("calling to DishClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DishCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DishCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Dish.
func (c *DishClient) Update() *DishUpdate {
	mutation := newDishMutation(c.config, OpUpdate)
	return &DishUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DishClient) UpdateOne(_m *Dish) *DishUpdateOne {
	mutation := newDishMutation(c.config, OpUpdateOne, withDish(_m))
	return &DishUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DishClient) UpdateOneID(id uuid.UUID) *DishUpdateOne {
	mutation := newDishMutation(c.config, OpUpdateOne, withDishID(id))
	return &DishUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Dish.
func (c *DishClient) Delete() *DishDelete {
	mutation := newDishMutation(c.config, OpDelete)
	return &DishDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DishClient) DeleteOne(_m *Dish) *DishDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DishClient) DeleteOneID(id uuid.UUID) *DishDeleteOne {
	builder := c.Delete().Where(dish.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DishDeleteOne{builder}
}

// Query returns a query builder for Dish.
func (c *DishClient) Query() *DishQuery {
	return &DishQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDish},
		inters: c.Interceptors(),
	}
}

// Get returns a Dish entity by its id.
func (c *DishClient) Get(ctx context.Context, id uuid.UUID) (*Dish, error) {
	return c.Query().Where(dish.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DishClient) GetX(ctx context.Context, id uuid.UUID) *Dish {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a Dish.
func (c *DishClient) QueryOrder(_m *Dish) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dish.Table, dish.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dish.OrderTable, dish.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DishClient) Hooks() []Hook {
	return c.hooks.Dish
}

// Interceptors returns the client interceptors.
func (c *DishClient) Interceptors() []Interceptor {
	return c.inters.Dish
}

func (c *DishClient) mutate(ctx context.Context, m *DishMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DishCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DishUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DishUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DishDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Dish mutation op: %q", m.Op())
	}
}

// HealthReportCacheClient is a client for the HealthReportCache schema.
type HealthReportCacheClient struct {
	config
}

// NewHealthReportCacheClient returns a client for the HealthReportCache from the given config.
func NewHealthReportCacheClient(c config) *HealthReportCacheClient {
	return &HealthReportCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `healthreportcache.Hooks(f(g(h())))`.
func (c *HealthReportCacheClient) Use(hooks ...Hook) {
	c.hooks.HealthReportCache = append(c.hooks.HealthReportCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `healthreportcache.Intercept(f(g(h())))`.
func (c *HealthReportCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.HealthReportCache = append(c.inters.HealthReportCache, interceptors...)
}

// Create returns a builder for creating a HealthReportCache entity.
func (c *HealthReportCacheClient) Create() *HealthReportCacheCreate {
	mutation := newHealthReportCacheMutation(c.config, OpCreate)
	return &HealthReportCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HealthReportCache entities.
func (c *HealthReportCacheClient) CreateBulk(builders ...*HealthReportCacheCreate) *HealthReportCacheCreateBulk {
	return &HealthReportCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HealthReportCacheClient) MapCreateBulk(slice any, setFunc func(*HealthReportCacheCreate, int)) *HealthReportCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HealthReportCacheCreateBulk{err: fmt.Errorf("calling to HealthReportCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HealthReportCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HealthReportCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HealthReportCache.
func (c *HealthReportCacheClient) Update() *HealthReportCacheUpdate {
	mutation := newHealthReportCacheMutation(c.config, OpUpdate)
	return &HealthReportCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HealthReportCacheClient) UpdateOne(_m *HealthReportCache) *HealthReportCacheUpdateOne {
	mutation := newHealthReportCacheMutation(c.config, OpUpdateOne, withHealthReportCache(_m))
	return &HealthReportCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HealthReportCacheClient) UpdateOneID(id uuid.UUID) *HealthReportCacheUpdateOne {
	mutation := newHealthReportCacheMutation(c.config, OpUpdateOne, withHealthReportCacheID(id))
	return &HealthReportCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HealthReportCache.
func (c *HealthReportCacheClient) Delete() *HealthReportCacheDelete {
	mutation := newHealthReportCacheMutation(c.config, OpDelete)
	return &HealthReportCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HealthReportCacheClient) DeleteOne(_m *HealthReportCache) *HealthReportCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HealthReportCacheClient) DeleteOneID(id uuid.UUID) *HealthReportCacheDeleteOne {
	builder := c.Delete().Where(healthreportcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HealthReportCacheDeleteOne{builder}
}

// Query returns a query builder for HealthReportCache.
func (c *HealthReportCacheClient) Query() *HealthReportCacheQuery {
	return &HealthReportCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHealthReportCache},
		inters: c.Interceptors(),
	}
}

// Get returns a HealthReportCache entity by its id.
func (c *HealthReportCacheClient) Get(ctx context.Context, id uuid.UUID) (*HealthReportCache, error) {
	return c.Query().Where(healthreportcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HealthReportCacheClient) GetX(ctx context.Context, id uuid.UUID) *HealthReportCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a HealthReportCache.
func (c *HealthReportCacheClient) QueryUser(_m *HealthReportCache) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(healthreportcache.Table, healthreportcache.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, healthreportcache.UserTable, healthreportcache.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HealthReportCacheClient) Hooks() []Hook {
	return c.hooks.HealthReportCache
}

// Interceptors returns the client interceptors.
func (c *HealthReportCacheClient) Interceptors() []Interceptor {
	return c.inters.HealthReportCache
}

func (c *HealthReportCacheClient) mutate(ctx context.Context, m *HealthReportCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HealthReportCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HealthReportCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HealthReportCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HealthReportCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HealthReportCache mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(_m *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(_m))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id uuid.UUID) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(_m *Order) *OrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id uuid.UUID) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id uuid.UUID) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Order.
func (c *OrderClient) QueryUser(_m *Order) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, order.UserTable, order.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDishes queries the dishes edge of a Order.
func (c *OrderClient) QueryDishes(_m *Order) *DishQuery {
	query := (&DishClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(dish.Table, dish.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.DishesTable, order.DishesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// SyncLogClient is a client for the SyncLog schema.
type SyncLogClient struct {
	config
}

// NewSyncLogClient returns a client for the SyncLog from the given config.
func NewSyncLogClient(c config) *SyncLogClient {
	return &SyncLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `synclog.Hooks(f(g(h())))`.
func (c *SyncLogClient) Use(hooks ...Hook) {
	c.hooks.SyncLog = append(c.hooks.SyncLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `synclog.Intercept(f(g(h())))`.
func (c *SyncLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncLog = append(c.inters.SyncLog, interceptors...)
}

// Create returns a builder for creating a SyncLog entity.
func (c *SyncLogClient) Create() *SyncLogCreate {
	mutation := newSyncLogMutation(c.config, OpCreate)
	return &SyncLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncLog entities.
func (c *SyncLogClient) CreateBulk(builders ...*SyncLogCreate) *SyncLogCreateBulk {
	return &SyncLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncLogClient) MapCreateBulk(slice any, setFunc func(*SyncLogCreate, int)) *SyncLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncLogCreateBulk{err: fmt.Errorf("calling to SyncLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncLog.
func (c *SyncLogClient) Update() *SyncLogUpdate {
	mutation := newSyncLogMutation(c.config, OpUpdate)
	return &SyncLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncLogClient) UpdateOne(_m *SyncLog) *SyncLogUpdateOne {
	mutation := newSyncLogMutation(c.config, OpUpdateOne, withSyncLog(_m))
	return &SyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncLogClient) UpdateOneID(id uuid.UUID) *SyncLogUpdateOne {
	mutation := newSyncLogMutation(c.config, OpUpdateOne, withSyncLogID(id))
	return &SyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncLog.
func (c *SyncLogClient) Delete() *SyncLogDelete {
	mutation := newSyncLogMutation(c.config, OpDelete)
	return &SyncLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncLogClient) DeleteOne(_m *SyncLog) *SyncLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncLogClient) DeleteOneID(id uuid.UUID) *SyncLogDeleteOne {
	builder := c.Delete().Where(synclog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncLogDeleteOne{builder}
}

// Query returns a query builder for SyncLog.
func (c *SyncLogClient) Query() *SyncLogQuery {
	return &SyncLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncLog entity by its id.
func (c *SyncLogClient) Get(ctx context.Context, id uuid.UUID) (*SyncLog, error) {
	return c.Query().Where(synclog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncLogClient) GetX(ctx context.Context, id uuid.UUID) *SyncLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncLogClient) Hooks() []Hook {
	return c.hooks.SyncLog
}

// Interceptors returns the client interceptors.
func (c *SyncLogClient) Interceptors() []Interceptor {
	return c.inters.SyncLog
}

func (c *SyncLogClient) mutate(ctx context.Context, m *SyncLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncLog mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrders queries the orders edge of a User.
func (c *UserClient) QueryOrders(_m *User) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.OrdersTable, user.OrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReportCaches queries the report_caches edge of a User.
func (c *UserClient) QueryReportCaches(_m *User) *HealthReportCacheQuery {
	query := (&HealthReportCacheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(healthreportcache.Table, healthreportcache.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ReportCachesTable, user.ReportCachesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CalorieCache, Dish, HealthReportCache, Order, SyncLog, User []ent.Hook
	}
	inters struct {
		CalorieCache, Dish, HealthReportCache, Order, SyncLog, User []ent.Interceptor
	}
)
