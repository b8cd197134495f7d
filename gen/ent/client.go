// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Ajauregui69/livo-backend/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Ajauregui69/livo-backend/gen/ent/creditscore"
	"github.com/Ajauregui69/livo-backend/gen/ent/document"
	"github.com/Ajauregui69/livo-backend/gen/ent/documentreview"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractedfield"
	"github.com/Ajauregui69/livo-backend/gen/ent/extractionrule"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CreditScore is the client for interacting with the CreditScore builders.
	CreditScore *CreditScoreClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentReview is the client for interacting with the DocumentReview builders.
	DocumentReview *DocumentReviewClient
	// ExtractedField is the client for interacting with the ExtractedField builders.
	ExtractedField *ExtractedFieldClient
	// ExtractionRule is the client for interacting with the ExtractionRule builders.
	ExtractionRule *ExtractionRuleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CreditScore = NewCreditScoreClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.DocumentReview = NewDocumentReviewClient(c.config)
	c.ExtractedField = NewExtractedFieldClient(c.config)
	c.ExtractionRule = NewExtractionRuleClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		CreditScore:    NewCreditScoreClient(cfg),
		Document:       NewDocumentClient(cfg),
		DocumentReview: NewDocumentReviewClient(cfg),
		ExtractedField: NewExtractedFieldClient(cfg),
		ExtractionRule: NewExtractionRuleClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		CreditScore:    NewCreditScoreClient(cfg),
		Document:       NewDocumentClient(cfg),
		DocumentReview: NewDocumentReviewClient(cfg),
		ExtractedField: NewExtractedFieldClient(cfg),
		ExtractionRule: NewExtractionRuleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CreditScore.
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
	c.CreditScore.Use(hooks...)
	c.Document.Use(hooks...)
	c.DocumentReview.Use(hooks...)
	c.ExtractedField.Use(hooks...)
	c.ExtractionRule.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CreditScore.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.DocumentReview.Intercept(interceptors...)
	c.ExtractedField.Intercept(interceptors...)
	c.ExtractionRule.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CreditScoreMutation:
		return c.CreditScore.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentReviewMutation:
		return c.DocumentReview.mutate(ctx, m)
	case *ExtractedFieldMutation:
		return c.ExtractedField.mutate(ctx, m)
	case *ExtractionRuleMutation:
		return c.ExtractionRule.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CreditScoreClient is a client for the CreditScore schema.
type CreditScoreClient struct {
	config
}

// NewCreditScoreClient returns a client for the CreditScore from the given config.
func NewCreditScoreClient(c config) *CreditScoreClient {
	return &CreditScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditscore.Hooks(f(g(h())))`.
func (c *CreditScoreClient) Use(hooks ...Hook) {
	c.hooks.CreditScore = append(c.hooks.CreditScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditscore.Intercept(f(g(h())))`.
func (c *CreditScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditScore = append(c.inters.CreditScore, interceptors...)
}

// Create returns a builder for creating a CreditScore entity.
func (c *CreditScoreClient) Create() *CreditScoreCreate {
	mutation := newCreditScoreMutation(c.config, OpCreate)
	return &CreditScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditScore entities.
func (c *CreditScoreClient) CreateBulk(builders ...*CreditScoreCreate) *CreditScoreCreateBulk {
	return &CreditScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditScoreClient) MapCreateBulk(slice any, setFunc func(*CreditScoreCreate, int)) *CreditScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditScoreCreateBulk{err: fmt.Errorf("calling to CreditScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditScore.
func (c *CreditScoreClient) Update() *CreditScoreUpdate {
	mutation := newCreditScoreMutation(c.config, OpUpdate)
	return &CreditScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditScoreClient) UpdateOne(_m *CreditScore) *CreditScoreUpdateOne {
	mutation := newCreditScoreMutation(c.config, OpUpdateOne, withCreditScore(_m))
	return &CreditScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditScoreClient) UpdateOneID(id uuid.UUID) *CreditScoreUpdateOne {
	mutation := newCreditScoreMutation(c.config, OpUpdateOne, withCreditScoreID(id))
	return &CreditScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditScore.
func (c *CreditScoreClient) Delete() *CreditScoreDelete {
	mutation := newCreditScoreMutation(c.config, OpDelete)
	return &CreditScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditScoreClient) DeleteOne(_m *CreditScore) *CreditScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditScoreClient) DeleteOneID(id uuid.UUID) *CreditScoreDeleteOne {
	builder := c.Delete().Where(creditscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditScoreDeleteOne{builder}
}

// Query returns a query builder for CreditScore.
func (c *CreditScoreClient) Query() *CreditScoreQuery {
	return &CreditScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditScore},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditScore entity by its id.
func (c *CreditScoreClient) Get(ctx context.Context, id uuid.UUID) (*CreditScore, error) {
	return c.Query().Where(creditscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditScoreClient) GetX(ctx context.Context, id uuid.UUID) *CreditScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CreditScoreClient) Hooks() []Hook {
	return c.hooks.CreditScore
}

// Interceptors returns the client interceptors.
func (c *CreditScoreClient) Interceptors() []Interceptor {
	return c.inters.CreditScore
}

func (c *CreditScoreClient) mutate(ctx context.Context, m *CreditScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditScore mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFields queries the fields edge of a Document.
func (c *DocumentClient) QueryFields(_m *Document) *ExtractedFieldQuery {
	query := (&ExtractedFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractedfield.Table, extractedfield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.FieldsTable, document.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReviews queries the reviews edge of a Document.
func (c *DocumentClient) QueryReviews(_m *Document) *DocumentReviewQuery {
	query := (&DocumentReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documentreview.Table, documentreview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ReviewsTable, document.ReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentReviewClient is a client for the DocumentReview schema.
type DocumentReviewClient struct {
	config
}

// NewDocumentReviewClient returns a client for the DocumentReview from the given config.
func NewDocumentReviewClient(c config) *DocumentReviewClient {
	return &DocumentReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentreview.Hooks(f(g(h())))`.
func (c *DocumentReviewClient) Use(hooks ...Hook) {
	c.hooks.DocumentReview = append(c.hooks.DocumentReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentreview.Intercept(f(g(h())))`.
func (c *DocumentReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentReview = append(c.inters.DocumentReview, interceptors...)
}

// Create returns a builder for creating a DocumentReview entity.
func (c *DocumentReviewClient) Create() *DocumentReviewCreate {
	mutation := newDocumentReviewMutation(c.config, OpCreate)
	return &DocumentReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentReview entities.
func (c *DocumentReviewClient) CreateBulk(builders ...*DocumentReviewCreate) *DocumentReviewCreateBulk {
	return &DocumentReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentReviewClient) MapCreateBulk(slice any, setFunc func(*DocumentReviewCreate, int)) *DocumentReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentReviewCreateBulk{err: fmt.Errorf("calling to DocumentReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentReview.
func (c *DocumentReviewClient) Update() *DocumentReviewUpdate {
	mutation := newDocumentReviewMutation(c.config, OpUpdate)
	return &DocumentReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentReviewClient) UpdateOne(_m *DocumentReview) *DocumentReviewUpdateOne {
	mutation := newDocumentReviewMutation(c.config, OpUpdateOne, withDocumentReview(_m))
	return &DocumentReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentReviewClient) UpdateOneID(id uuid.UUID) *DocumentReviewUpdateOne {
	mutation := newDocumentReviewMutation(c.config, OpUpdateOne, withDocumentReviewID(id))
	return &DocumentReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentReview.
func (c *DocumentReviewClient) Delete() *DocumentReviewDelete {
	mutation := newDocumentReviewMutation(c.config, OpDelete)
	return &DocumentReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentReviewClient) DeleteOne(_m *DocumentReview) *DocumentReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentReviewClient) DeleteOneID(id uuid.UUID) *DocumentReviewDeleteOne {
	builder := c.Delete().Where(documentreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentReviewDeleteOne{builder}
}

// Query returns a query builder for DocumentReview.
func (c *DocumentReviewClient) Query() *DocumentReviewQuery {
	return &DocumentReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentReview},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentReview entity by its id.
func (c *DocumentReviewClient) Get(ctx context.Context, id uuid.UUID) (*DocumentReview, error) {
	return c.Query().Where(documentreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentReviewClient) GetX(ctx context.Context, id uuid.UUID) *DocumentReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentReview.
func (c *DocumentReviewClient) QueryDocument(_m *DocumentReview) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentreview.Table, documentreview.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentreview.DocumentTable, documentreview.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentReviewClient) Hooks() []Hook {
	return c.hooks.DocumentReview
}

// Interceptors returns the client interceptors.
func (c *DocumentReviewClient) Interceptors() []Interceptor {
	return c.inters.DocumentReview
}

func (c *DocumentReviewClient) mutate(ctx context.Context, m *DocumentReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentReview mutation op: %q", m.Op())
	}
}

// ExtractedFieldClient is a client for the ExtractedField schema.
type ExtractedFieldClient struct {
	config
}

// NewExtractedFieldClient returns a client for the ExtractedField from the given config.
func NewExtractedFieldClient(c config) *ExtractedFieldClient {
	return &ExtractedFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedfield.Hooks(f(g(h())))`.
func (c *ExtractedFieldClient) Use(hooks ...Hook) {
	c.hooks.ExtractedField = append(c.hooks.ExtractedField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedfield.Intercept(f(g(h())))`.
func (c *ExtractedFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedField = append(c.inters.ExtractedField, interceptors...)
}

// Create returns a builder for creating a ExtractedField entity.
func (c *ExtractedFieldClient) Create() *ExtractedFieldCreate {
	mutation := newExtractedFieldMutation(c.config, OpCreate)
	return &ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedField entities.
func (c *ExtractedFieldClient) CreateBulk(builders ...*ExtractedFieldCreate) *ExtractedFieldCreateBulk {
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedFieldClient) MapCreateBulk(slice any, setFunc func(*ExtractedFieldCreate, int)) *ExtractedFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedFieldCreateBulk{err: fmt.Errorf("calling to ExtractedFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedField.
func (c *ExtractedFieldClient) Update() *ExtractedFieldUpdate {
	mutation := newExtractedFieldMutation(c.config, OpUpdate)
	return &ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedFieldClient) UpdateOne(_m *ExtractedField) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedField(_m))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedFieldClient) UpdateOneID(id uuid.UUID) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedFieldID(id))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedField.
func (c *ExtractedFieldClient) Delete() *ExtractedFieldDelete {
	mutation := newExtractedFieldMutation(c.config, OpDelete)
	return &ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedFieldClient) DeleteOne(_m *ExtractedField) *ExtractedFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedFieldClient) DeleteOneID(id uuid.UUID) *ExtractedFieldDeleteOne {
	builder := c.Delete().Where(extractedfield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedFieldDeleteOne{builder}
}

// Query returns a query builder for ExtractedField.
func (c *ExtractedFieldClient) Query() *ExtractedFieldQuery {
	return &ExtractedFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedField},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedField entity by its id.
func (c *ExtractedFieldClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedField, error) {
	return c.Query().Where(extractedfield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedFieldClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractedField.
func (c *ExtractedFieldClient) QueryDocument(_m *ExtractedField) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedfield.Table, extractedfield.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedfield.DocumentTable, extractedfield.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedFieldClient) Hooks() []Hook {
	return c.hooks.ExtractedField
}

// Interceptors returns the client interceptors.
func (c *ExtractedFieldClient) Interceptors() []Interceptor {
	return c.inters.ExtractedField
}

func (c *ExtractedFieldClient) mutate(ctx context.Context, m *ExtractedFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedField mutation op: %q", m.Op())
	}
}

// ExtractionRuleClient is a client for the ExtractionRule schema.
type ExtractionRuleClient struct {
	config
}

// NewExtractionRuleClient returns a client for the ExtractionRule from the given config.
func NewExtractionRuleClient(c config) *ExtractionRuleClient {
	return &ExtractionRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionrule.Hooks(f(g(h())))`.
func (c *ExtractionRuleClient) Use(hooks ...Hook) {
	c.hooks.ExtractionRule = append(c.hooks.ExtractionRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionrule.Intercept(f(g(h())))`.
func (c *ExtractionRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionRule = append(c.inters.ExtractionRule, interceptors...)
}

// Create returns a builder for creating a ExtractionRule entity.
func (c *ExtractionRuleClient) Create() *ExtractionRuleCreate {
	mutation := newExtractionRuleMutation(c.config, OpCreate)
	return &ExtractionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionRule entities.
func (c *ExtractionRuleClient) CreateBulk(builders ...*ExtractionRuleCreate) *ExtractionRuleCreateBulk {
	return &ExtractionRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionRuleClient) MapCreateBulk(slice any, setFunc func(*ExtractionRuleCreate, int)) *ExtractionRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionRuleCreateBulk{err: fmt.Errorf("calling to ExtractionRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionRule.
func (c *ExtractionRuleClient) Update() *ExtractionRuleUpdate {
	mutation := newExtractionRuleMutation(c.config, OpUpdate)
	return &ExtractionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionRuleClient) UpdateOne(_m *ExtractionRule) *ExtractionRuleUpdateOne {
	mutation := newExtractionRuleMutation(c.config, OpUpdateOne, withExtractionRule(_m))
	return &ExtractionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionRuleClient) UpdateOneID(id uuid.UUID) *ExtractionRuleUpdateOne {
	mutation := newExtractionRuleMutation(c.config, OpUpdateOne, withExtractionRuleID(id))
	return &ExtractionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionRule.
func (c *ExtractionRuleClient) Delete() *ExtractionRuleDelete {
	mutation := newExtractionRuleMutation(c.config, OpDelete)
	return &ExtractionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionRuleClient) DeleteOne(_m *ExtractionRule) *ExtractionRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionRuleClient) DeleteOneID(id uuid.UUID) *ExtractionRuleDeleteOne {
	builder := c.Delete().Where(extractionrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionRuleDeleteOne{builder}
}

// Query returns a query builder for ExtractionRule.
func (c *ExtractionRuleClient) Query() *ExtractionRuleQuery {
	return &ExtractionRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionRule entity by its id.
func (c *ExtractionRuleClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionRule, error) {
	return c.Query().Where(extractionrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionRuleClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractionRuleClient) Hooks() []Hook {
	return c.hooks.ExtractionRule
}

// Interceptors returns the client interceptors.
func (c *ExtractionRuleClient) Interceptors() []Interceptor {
	return c.inters.ExtractionRule
}

func (c *ExtractionRuleClient) mutate(ctx context.Context, m *ExtractionRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionRule mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CreditScore, Document, DocumentReview, ExtractedField, ExtractionRule []ent.Hook
	}
	inters struct {
		CreditScore, Document, DocumentReview, ExtractedField,
		ExtractionRule []ent.Interceptor
	}
)
