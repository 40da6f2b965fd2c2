// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fabtrack/steelparse/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
	"github.com/fabtrack/steelparse/gen/ent/supplierproduct"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ParsingMapping is the client for interacting with the ParsingMapping builders.
	ParsingMapping *ParsingMappingClient
	// StockItem is the client for interacting with the StockItem builders.
	StockItem *StockItemClient
	// SupplierProduct is the client for interacting with the SupplierProduct builders.
	SupplierProduct *SupplierProductClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ParsingMapping = NewParsingMappingClient(c.config)
	c.StockItem = NewStockItemClient(c.config)
	c.SupplierProduct = NewSupplierProductClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ParsingMapping:  NewParsingMappingClient(cfg),
		StockItem:       NewStockItemClient(cfg),
		SupplierProduct: NewSupplierProductClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ParsingMapping:  NewParsingMappingClient(cfg),
		StockItem:       NewStockItemClient(cfg),
		SupplierProduct: NewSupplierProductClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ParsingMapping.
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
	c.ParsingMapping.Use(hooks...)
	c.StockItem.Use(hooks...)
	c.SupplierProduct.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ParsingMapping.Intercept(interceptors...)
	c.StockItem.Intercept(interceptors...)
	c.SupplierProduct.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ParsingMappingMutation:
		return c.ParsingMapping.mutate(ctx, m)
	case *StockItemMutation:
		return c.StockItem.mutate(ctx, m)
	case *SupplierProductMutation:
		return c.SupplierProduct.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ParsingMappingClient is a client for the ParsingMapping schema.
type ParsingMappingClient struct {
	config
}

// NewParsingMappingClient returns a client for the ParsingMapping from the given config.
func NewParsingMappingClient(c config) *ParsingMappingClient {
	return &ParsingMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parsingmapping.Hooks(f(g(h())))`.
func (c *ParsingMappingClient) Use(hooks ...Hook) {
	c.hooks.ParsingMapping = append(c.hooks.ParsingMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parsingmapping.Intercept(f(g(h())))`.
func (c *ParsingMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParsingMapping = append(c.inters.ParsingMapping, interceptors...)
}

// Create returns a builder for creating a ParsingMapping entity.
func (c *ParsingMappingClient) Create() *ParsingMappingCreate {
	mutation := newParsingMappingMutation(c.config, OpCreate)
	return &ParsingMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParsingMapping entities.
func (c *ParsingMappingClient) CreateBulk(builders ...*ParsingMappingCreate) *ParsingMappingCreateBulk {
	return &ParsingMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParsingMappingClient) MapCreateBulk(slice any, setFunc func(*ParsingMappingCreate, int)) *ParsingMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParsingMappingCreateBulk{err: fmt.Errorf("calling to ParsingMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParsingMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParsingMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParsingMapping.
func (c *ParsingMappingClient) Update() *ParsingMappingUpdate {
	mutation := newParsingMappingMutation(c.config, OpUpdate)
	return &ParsingMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParsingMappingClient) UpdateOne(_m *ParsingMapping) *ParsingMappingUpdateOne {
	mutation := newParsingMappingMutation(c.config, OpUpdateOne, withParsingMapping(_m))
	return &ParsingMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParsingMappingClient) UpdateOneID(id uuid.UUID) *ParsingMappingUpdateOne {
	mutation := newParsingMappingMutation(c.config, OpUpdateOne, withParsingMappingID(id))
	return &ParsingMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParsingMapping.
func (c *ParsingMappingClient) Delete() *ParsingMappingDelete {
	mutation := newParsingMappingMutation(c.config, OpDelete)
	return &ParsingMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParsingMappingClient) DeleteOne(_m *ParsingMapping) *ParsingMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParsingMappingClient) DeleteOneID(id uuid.UUID) *ParsingMappingDeleteOne {
	builder := c.Delete().Where(parsingmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParsingMappingDeleteOne{builder}
}

// Query returns a query builder for ParsingMapping.
func (c *ParsingMappingClient) Query() *ParsingMappingQuery {
	return &ParsingMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParsingMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a ParsingMapping entity by its id.
func (c *ParsingMappingClient) Get(ctx context.Context, id uuid.UUID) (*ParsingMapping, error) {
	return c.Query().Where(parsingmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParsingMappingClient) GetX(ctx context.Context, id uuid.UUID) *ParsingMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParsingMappingClient) Hooks() []Hook {
	return c.hooks.ParsingMapping
}

// Interceptors returns the client interceptors.
func (c *ParsingMappingClient) Interceptors() []Interceptor {
	return c.inters.ParsingMapping
}

func (c *ParsingMappingClient) mutate(ctx context.Context, m *ParsingMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParsingMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParsingMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParsingMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParsingMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParsingMapping mutation op: %q", m.Op())
	}
}

// StockItemClient is a client for the StockItem schema.
type StockItemClient struct {
	config
}

// NewStockItemClient returns a client for the StockItem from the given config.
func NewStockItemClient(c config) *StockItemClient {
	return &StockItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stockitem.Hooks(f(g(h())))`.
func (c *StockItemClient) Use(hooks ...Hook) {
	c.hooks.StockItem = append(c.hooks.StockItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stockitem.Intercept(f(g(h())))`.
func (c *StockItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.StockItem = append(c.inters.StockItem, interceptors...)
}

// Create returns a builder for creating a StockItem entity.
func (c *StockItemClient) Create() *StockItemCreate {
	mutation := newStockItemMutation(c.config, OpCreate)
	return &StockItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StockItem entities.
func (c *StockItemClient) CreateBulk(builders ...*StockItemCreate) *StockItemCreateBulk {
	return &StockItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StockItemClient) MapCreateBulk(slice any, setFunc func(*StockItemCreate, int)) *StockItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StockItemCreateBulk{err: fmt.Errorf("calling to StockItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StockItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StockItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StockItem.
func (c *StockItemClient) Update() *StockItemUpdate {
	mutation := newStockItemMutation(c.config, OpUpdate)
	return &StockItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StockItemClient) UpdateOne(_m *StockItem) *StockItemUpdateOne {
	mutation := newStockItemMutation(c.config, OpUpdateOne, withStockItem(_m))
	return &StockItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StockItemClient) UpdateOneID(id uuid.UUID) *StockItemUpdateOne {
	mutation := newStockItemMutation(c.config, OpUpdateOne, withStockItemID(id))
	return &StockItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StockItem.
func (c *StockItemClient) Delete() *StockItemDelete {
	mutation := newStockItemMutation(c.config, OpDelete)
	return &StockItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StockItemClient) DeleteOne(_m *StockItem) *StockItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StockItemClient) DeleteOneID(id uuid.UUID) *StockItemDeleteOne {
	builder := c.Delete().Where(stockitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StockItemDeleteOne{builder}
}

// Query returns a query builder for StockItem.
func (c *StockItemClient) Query() *StockItemQuery {
	return &StockItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStockItem},
		inters: c.Interceptors(),
	}
}

// Get returns a StockItem entity by its id.
func (c *StockItemClient) Get(ctx context.Context, id uuid.UUID) (*StockItem, error) {
	return c.Query().Where(stockitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StockItemClient) GetX(ctx context.Context, id uuid.UUID) *StockItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StockItemClient) Hooks() []Hook {
	return c.hooks.StockItem
}

// Interceptors returns the client interceptors.
func (c *StockItemClient) Interceptors() []Interceptor {
	return c.inters.StockItem
}

func (c *StockItemClient) mutate(ctx context.Context, m *StockItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StockItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StockItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StockItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StockItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StockItem mutation op: %q", m.Op())
	}
}

// SupplierProductClient is a client for the SupplierProduct schema.
type SupplierProductClient struct {
	config
}

// NewSupplierProductClient returns a client for the SupplierProduct from the given config.
func NewSupplierProductClient(c config) *SupplierProductClient {
	return &SupplierProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplierproduct.Hooks(f(g(h())))`.
func (c *SupplierProductClient) Use(hooks ...Hook) {
	c.hooks.SupplierProduct = append(c.hooks.SupplierProduct, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplierproduct.Intercept(f(g(h())))`.
func (c *SupplierProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplierProduct = append(c.inters.SupplierProduct, interceptors...)
}

// Create returns a builder for creating a SupplierProduct entity.
func (c *SupplierProductClient) Create() *SupplierProductCreate {
	mutation := newSupplierProductMutation(c.config, OpCreate)
	return &SupplierProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplierProduct entities.
func (c *SupplierProductClient) CreateBulk(builders ...*SupplierProductCreate) *SupplierProductCreateBulk {
	return &SupplierProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierProductClient) MapCreateBulk(slice any, setFunc func(*SupplierProductCreate, int)) *SupplierProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierProductCreateBulk{err: fmt.Errorf("calling to SupplierProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplierProduct.
func (c *SupplierProductClient) Update() *SupplierProductUpdate {
	mutation := newSupplierProductMutation(c.config, OpUpdate)
	return &SupplierProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierProductClient) UpdateOne(_m *SupplierProduct) *SupplierProductUpdateOne {
	mutation := newSupplierProductMutation(c.config, OpUpdateOne, withSupplierProduct(_m))
	return &SupplierProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierProductClient) UpdateOneID(id uuid.UUID) *SupplierProductUpdateOne {
	mutation := newSupplierProductMutation(c.config, OpUpdateOne, withSupplierProductID(id))
	return &SupplierProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplierProduct.
func (c *SupplierProductClient) Delete() *SupplierProductDelete {
	mutation := newSupplierProductMutation(c.config, OpDelete)
	return &SupplierProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierProductClient) DeleteOne(_m *SupplierProduct) *SupplierProductDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierProductClient) DeleteOneID(id uuid.UUID) *SupplierProductDeleteOne {
	builder := c.Delete().Where(supplierproduct.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierProductDeleteOne{builder}
}

// Query returns a query builder for SupplierProduct.
func (c *SupplierProductClient) Query() *SupplierProductQuery {
	return &SupplierProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplierProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplierProduct entity by its id.
func (c *SupplierProductClient) Get(ctx context.Context, id uuid.UUID) (*SupplierProduct, error) {
	return c.Query().Where(supplierproduct.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierProductClient) GetX(ctx context.Context, id uuid.UUID) *SupplierProduct {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SupplierProductClient) Hooks() []Hook {
	return c.hooks.SupplierProduct
}

// Interceptors returns the client interceptors.
func (c *SupplierProductClient) Interceptors() []Interceptor {
	return c.inters.SupplierProduct
}

func (c *SupplierProductClient) mutate(ctx context.Context, m *SupplierProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplierProduct mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ParsingMapping, StockItem, SupplierProduct []ent.Hook
	}
	inters struct {
		ParsingMapping, StockItem, SupplierProduct []ent.Interceptor
	}
)
