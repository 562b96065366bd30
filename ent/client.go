// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/praxisprep/praxis/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/praxisprep/praxis/ent/chatevent"
	"github.com/praxisprep/praxis/ent/contentcache"
	"github.com/praxisprep/praxis/ent/kventry"
	"github.com/praxisprep/praxis/ent/quizevent"
	"github.com/praxisprep/praxis/ent/studyplan"
	"github.com/praxisprep/praxis/ent/usageevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatEvent is the client for interacting with the ChatEvent builders.
	ChatEvent *ChatEventClient
	// ContentCache is the client for interacting with the ContentCache builders.
	ContentCache *ContentCacheClient
	// KVEntry is the client for interacting with the KVEntry builders.
	KVEntry *KVEntryClient
	// QuizEvent is the client for interacting with the QuizEvent builders.
	QuizEvent *QuizEventClient
	// StudyPlan is the client for interacting with the StudyPlan builders.
	StudyPlan *StudyPlanClient
	// UsageEvent is the client for interacting with the UsageEvent builders.
	UsageEvent *UsageEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatEvent = NewChatEventClient(c.config)
	c.ContentCache = NewContentCacheClient(c.config)
	c.KVEntry = NewKVEntryClient(c.config)
	c.QuizEvent = NewQuizEventClient(c.config)
	c.StudyPlan = NewStudyPlanClient(c.config)
	c.UsageEvent = NewUsageEventClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ChatEvent:    NewChatEventClient(cfg),
		ContentCache: NewContentCacheClient(cfg),
		KVEntry:      NewKVEntryClient(cfg),
		QuizEvent:    NewQuizEventClient(cfg),
		StudyPlan:    NewStudyPlanClient(cfg),
		UsageEvent:   NewUsageEventClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ChatEvent:    NewChatEventClient(cfg),
		ContentCache: NewContentCacheClient(cfg),
		KVEntry:      NewKVEntryClient(cfg),
		QuizEvent:    NewQuizEventClient(cfg),
		StudyPlan:    NewStudyPlanClient(cfg),
		UsageEvent:   NewUsageEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatEvent.
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
		c.ChatEvent, c.ContentCache, c.KVEntry, c.QuizEvent, c.StudyPlan, c.UsageEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChatEvent, c.ContentCache, c.KVEntry, c.QuizEvent, c.StudyPlan, c.UsageEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatEventMutation:
		return c.ChatEvent.mutate(ctx, m)
	case *ContentCacheMutation:
		return c.ContentCache.mutate(ctx, m)
	case *KVEntryMutation:
		return c.KVEntry.mutate(ctx, m)
	case *QuizEventMutation:
		return c.QuizEvent.mutate(ctx, m)
	case *StudyPlanMutation:
		return c.StudyPlan.mutate(ctx, m)
	case *UsageEventMutation:
		return c.UsageEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatEventClient is a client for the ChatEvent schema.
type ChatEventClient struct {
	config
}

// NewChatEventClient returns a client for the ChatEvent from the given config.
func NewChatEventClient(c config) *ChatEventClient {
	return &ChatEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatevent.Hooks(f(g(h())))`.
func (c *ChatEventClient) Use(hooks ...Hook) {
	c.hooks.ChatEvent = append(c.hooks.ChatEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatevent.Intercept(f(g(h())))`.
func (c *ChatEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatEvent = append(c.inters.ChatEvent, interceptors...)
}

// Create returns a builder for creating a ChatEvent entity.
func (c *ChatEventClient) Create() *ChatEventCreate {
	mutation := newChatEventMutation(c.config, OpCreate)
	return &ChatEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatEvent entities.
func (c *ChatEventClient) CreateBulk(builders ...*ChatEventCreate) *ChatEventCreateBulk {
	return &ChatEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatEventClient) MapCreateBulk(slice any, setFunc func(*ChatEventCreate, int)) *ChatEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatEventCreateBulk{err: fmt.Errorf("calling to ChatEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatEvent.
func (c *ChatEventClient) Update() *ChatEventUpdate {
	mutation := newChatEventMutation(c.config, OpUpdate)
	return &ChatEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatEventClient) UpdateOne(_m *ChatEvent) *ChatEventUpdateOne {
	mutation := newChatEventMutation(c.config, OpUpdateOne, withChatEvent(_m))
	return &ChatEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatEventClient) UpdateOneID(id int) *ChatEventUpdateOne {
	mutation := newChatEventMutation(c.config, OpUpdateOne, withChatEventID(id))
	return &ChatEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatEvent.
func (c *ChatEventClient) Delete() *ChatEventDelete {
	mutation := newChatEventMutation(c.config, OpDelete)
	return &ChatEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatEventClient) DeleteOne(_m *ChatEvent) *ChatEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatEventClient) DeleteOneID(id int) *ChatEventDeleteOne {
	builder := c.Delete().Where(chatevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatEventDeleteOne{builder}
}

// Query returns a query builder for ChatEvent.
func (c *ChatEventClient) Query() *ChatEventQuery {
	return &ChatEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatEvent entity by its id.
func (c *ChatEventClient) Get(ctx context.Context, id int) (*ChatEvent, error) {
	return c.Query().Where(chatevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatEventClient) GetX(ctx context.Context, id int) *ChatEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatEventClient) Hooks() []Hook {
	return c.hooks.ChatEvent
}

// Interceptors returns the client interceptors.
func (c *ChatEventClient) Interceptors() []Interceptor {
	return c.inters.ChatEvent
}

func (c *ChatEventClient) mutate(ctx context.Context, m *ChatEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatEvent mutation op: %q", m.Op())
	}
}

// ContentCacheClient is a client for the ContentCache schema.
type ContentCacheClient struct {
	config
}

// NewContentCacheClient returns a client for the ContentCache from the given config.
func NewContentCacheClient(c config) *ContentCacheClient {
	return &ContentCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentcache.Hooks(f(g(h())))`.
func (c *ContentCacheClient) Use(hooks ...Hook) {
	c.hooks.ContentCache = append(c.hooks.ContentCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentcache.Intercept(f(g(h())))`.
func (c *ContentCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentCache = append(c.inters.ContentCache, interceptors...)
}

// Create returns a builder for creating a ContentCache entity.
func (c *ContentCacheClient) Create() *ContentCacheCreate {
	mutation := newContentCacheMutation(c.config, OpCreate)
	return &ContentCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentCache entities.
func (c *ContentCacheClient) CreateBulk(builders ...*ContentCacheCreate) *ContentCacheCreateBulk {
	return &ContentCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentCacheClient) MapCreateBulk(slice any, setFunc func(*ContentCacheCreate, int)) *ContentCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentCacheCreateBulk{err: fmt.Errorf("calling to ContentCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentCache.
func (c *ContentCacheClient) Update() *ContentCacheUpdate {
	mutation := newContentCacheMutation(c.config, OpUpdate)
	return &ContentCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentCacheClient) UpdateOne(_m *ContentCache) *ContentCacheUpdateOne {
	mutation := newContentCacheMutation(c.config, OpUpdateOne, withContentCache(_m))
	return &ContentCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentCacheClient) UpdateOneID(id int) *ContentCacheUpdateOne {
	mutation := newContentCacheMutation(c.config, OpUpdateOne, withContentCacheID(id))
	return &ContentCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentCache.
func (c *ContentCacheClient) Delete() *ContentCacheDelete {
	mutation := newContentCacheMutation(c.config, OpDelete)
	return &ContentCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentCacheClient) DeleteOne(_m *ContentCache) *ContentCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentCacheClient) DeleteOneID(id int) *ContentCacheDeleteOne {
	builder := c.Delete().Where(contentcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentCacheDeleteOne{builder}
}

// Query returns a query builder for ContentCache.
func (c *ContentCacheClient) Query() *ContentCacheQuery {
	return &ContentCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentCache},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentCache entity by its id.
func (c *ContentCacheClient) Get(ctx context.Context, id int) (*ContentCache, error) {
	return c.Query().Where(contentcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentCacheClient) GetX(ctx context.Context, id int) *ContentCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentCacheClient) Hooks() []Hook {
	return c.hooks.ContentCache
}

// Interceptors returns the client interceptors.
func (c *ContentCacheClient) Interceptors() []Interceptor {
	return c.inters.ContentCache
}

func (c *ContentCacheClient) mutate(ctx context.Context, m *ContentCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentCache mutation op: %q", m.Op())
	}
}

// KVEntryClient is a client for the KVEntry schema.
type KVEntryClient struct {
	config
}

// NewKVEntryClient returns a client for the KVEntry from the given config.
func NewKVEntryClient(c config) *KVEntryClient {
	return &KVEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kventry.Hooks(f(g(h())))`.
func (c *KVEntryClient) Use(hooks ...Hook) {
	c.hooks.KVEntry = append(c.hooks.KVEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kventry.Intercept(f(g(h())))`.
func (c *KVEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.KVEntry = append(c.inters.KVEntry, interceptors...)
}

// Create returns a builder for creating a KVEntry entity.
func (c *KVEntryClient) Create() *KVEntryCreate {
	mutation := newKVEntryMutation(c.config, OpCreate)
	return &KVEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KVEntry entities.
func (c *KVEntryClient) CreateBulk(builders ...*KVEntryCreate) *KVEntryCreateBulk {
	return &KVEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KVEntryClient) MapCreateBulk(slice any, setFunc func(*KVEntryCreate, int)) *KVEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KVEntryCreateBulk{err: fmt.Errorf("calling to KVEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KVEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KVEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KVEntry.
func (c *KVEntryClient) Update() *KVEntryUpdate {
	mutation := newKVEntryMutation(c.config, OpUpdate)
	return &KVEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KVEntryClient) UpdateOne(_m *KVEntry) *KVEntryUpdateOne {
	mutation := newKVEntryMutation(c.config, OpUpdateOne, withKVEntry(_m))
	return &KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KVEntryClient) UpdateOneID(id int) *KVEntryUpdateOne {
	mutation := newKVEntryMutation(c.config, OpUpdateOne, withKVEntryID(id))
	return &KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KVEntry.
func (c *KVEntryClient) Delete() *KVEntryDelete {
	mutation := newKVEntryMutation(c.config, OpDelete)
	return &KVEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KVEntryClient) DeleteOne(_m *KVEntry) *KVEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KVEntryClient) DeleteOneID(id int) *KVEntryDeleteOne {
	builder := c.Delete().Where(kventry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KVEntryDeleteOne{builder}
}

// Query returns a query builder for KVEntry.
func (c *KVEntryClient) Query() *KVEntryQuery {
	return &KVEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKVEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a KVEntry entity by its id.
func (c *KVEntryClient) Get(ctx context.Context, id int) (*KVEntry, error) {
	return c.Query().Where(kventry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KVEntryClient) GetX(ctx context.Context, id int) *KVEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KVEntryClient) Hooks() []Hook {
	return c.hooks.KVEntry
}

// Interceptors returns the client interceptors.
func (c *KVEntryClient) Interceptors() []Interceptor {
	return c.inters.KVEntry
}

func (c *KVEntryClient) mutate(ctx context.Context, m *KVEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KVEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KVEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KVEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KVEntry mutation op: %q", m.Op())
	}
}

// QuizEventClient is a client for the QuizEvent schema.
type QuizEventClient struct {
	config
}

// NewQuizEventClient returns a client for the QuizEvent from the given config.
func NewQuizEventClient(c config) *QuizEventClient {
	return &QuizEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizevent.Hooks(f(g(h())))`.
func (c *QuizEventClient) Use(hooks ...Hook) {
	c.hooks.QuizEvent = append(c.hooks.QuizEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizevent.Intercept(f(g(h())))`.
func (c *QuizEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizEvent = append(c.inters.QuizEvent, interceptors...)
}

// Create returns a builder for creating a QuizEvent entity.
func (c *QuizEventClient) Create() *QuizEventCreate {
	mutation := newQuizEventMutation(c.config, OpCreate)
	return &QuizEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizEvent entities.
func (c *QuizEventClient) CreateBulk(builders ...*QuizEventCreate) *QuizEventCreateBulk {
	return &QuizEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizEventClient) MapCreateBulk(slice any, setFunc func(*QuizEventCreate, int)) *QuizEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizEventCreateBulk{err: fmt.Errorf("calling to QuizEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizEvent.
func (c *QuizEventClient) Update() *QuizEventUpdate {
	mutation := newQuizEventMutation(c.config, OpUpdate)
	return &QuizEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizEventClient) UpdateOne(_m *QuizEvent) *QuizEventUpdateOne {
	mutation := newQuizEventMutation(c.config, OpUpdateOne, withQuizEvent(_m))
	return &QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizEventClient) UpdateOneID(id int) *QuizEventUpdateOne {
	mutation := newQuizEventMutation(c.config, OpUpdateOne, withQuizEventID(id))
	return &QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizEvent.
func (c *QuizEventClient) Delete() *QuizEventDelete {
	mutation := newQuizEventMutation(c.config, OpDelete)
	return &QuizEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizEventClient) DeleteOne(_m *QuizEvent) *QuizEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizEventClient) DeleteOneID(id int) *QuizEventDeleteOne {
	builder := c.Delete().Where(quizevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizEventDeleteOne{builder}
}

// Query returns a query builder for QuizEvent.
func (c *QuizEventClient) Query() *QuizEventQuery {
	return &QuizEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizEvent entity by its id.
func (c *QuizEventClient) Get(ctx context.Context, id int) (*QuizEvent, error) {
	return c.Query().Where(quizevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizEventClient) GetX(ctx context.Context, id int) *QuizEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizEventClient) Hooks() []Hook {
	return c.hooks.QuizEvent
}

// Interceptors returns the client interceptors.
func (c *QuizEventClient) Interceptors() []Interceptor {
	return c.inters.QuizEvent
}

func (c *QuizEventClient) mutate(ctx context.Context, m *QuizEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizEvent mutation op: %q", m.Op())
	}
}

// StudyPlanClient is a client for the StudyPlan schema.
type StudyPlanClient struct {
	config
}

// NewStudyPlanClient returns a client for the StudyPlan from the given config.
func NewStudyPlanClient(c config) *StudyPlanClient {
	return &StudyPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyplan.Hooks(f(g(h())))`.
func (c *StudyPlanClient) Use(hooks ...Hook) {
	c.hooks.StudyPlan = append(c.hooks.StudyPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyplan.Intercept(f(g(h())))`.
func (c *StudyPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyPlan = append(c.inters.StudyPlan, interceptors...)
}

// Create returns a builder for creating a StudyPlan entity.
func (c *StudyPlanClient) Create() *StudyPlanCreate {
	mutation := newStudyPlanMutation(c.config, OpCreate)
	return &StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyPlan entities.
func (c *StudyPlanClient) CreateBulk(builders ...*StudyPlanCreate) *StudyPlanCreateBulk {
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyPlanClient) MapCreateBulk(slice any, setFunc func(*StudyPlanCreate, int)) *StudyPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyPlanCreateBulk{err: fmt.Errorf("calling to StudyPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyPlan.
func (c *StudyPlanClient) Update() *StudyPlanUpdate {
	mutation := newStudyPlanMutation(c.config, OpUpdate)
	return &StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyPlanClient) UpdateOne(_m *StudyPlan) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlan(_m))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyPlanClient) UpdateOneID(id int) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlanID(id))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyPlan.
func (c *StudyPlanClient) Delete() *StudyPlanDelete {
	mutation := newStudyPlanMutation(c.config, OpDelete)
	return &StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyPlanClient) DeleteOne(_m *StudyPlan) *StudyPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyPlanClient) DeleteOneID(id int) *StudyPlanDeleteOne {
	builder := c.Delete().Where(studyplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyPlanDeleteOne{builder}
}

// Query returns a query builder for StudyPlan.
func (c *StudyPlanClient) Query() *StudyPlanQuery {
	return &StudyPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyPlan entity by its id.
func (c *StudyPlanClient) Get(ctx context.Context, id int) (*StudyPlan, error) {
	return c.Query().Where(studyplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyPlanClient) GetX(ctx context.Context, id int) *StudyPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyPlanClient) Hooks() []Hook {
	return c.hooks.StudyPlan
}

// Interceptors returns the client interceptors.
func (c *StudyPlanClient) Interceptors() []Interceptor {
	return c.inters.StudyPlan
}

func (c *StudyPlanClient) mutate(ctx context.Context, m *StudyPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyPlan mutation op: %q", m.Op())
	}
}

// UsageEventClient is a client for the UsageEvent schema.
type UsageEventClient struct {
	config
}

// NewUsageEventClient returns a client for the UsageEvent from the given config.
func NewUsageEventClient(c config) *UsageEventClient {
	return &UsageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usageevent.Hooks(f(g(h())))`.
func (c *UsageEventClient) Use(hooks ...Hook) {
	c.hooks.UsageEvent = append(c.hooks.UsageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usageevent.Intercept(f(g(h())))`.
func (c *UsageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageEvent = append(c.inters.UsageEvent, interceptors...)
}

// Create returns a builder for creating a UsageEvent entity.
func (c *UsageEventClient) Create() *UsageEventCreate {
	mutation := newUsageEventMutation(c.config, OpCreate)
	return &UsageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageEvent entities.
func (c *UsageEventClient) CreateBulk(builders ...*UsageEventCreate) *UsageEventCreateBulk {
	return &UsageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageEventClient) MapCreateBulk(slice any, setFunc func(*UsageEventCreate, int)) *UsageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageEventCreateBulk{err: fmt.Errorf("calling to UsageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageEvent.
func (c *UsageEventClient) Update() *UsageEventUpdate {
	mutation := newUsageEventMutation(c.config, OpUpdate)
	return &UsageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageEventClient) UpdateOne(_m *UsageEvent) *UsageEventUpdateOne {
	mutation := newUsageEventMutation(c.config, OpUpdateOne, withUsageEvent(_m))
	return &UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageEventClient) UpdateOneID(id int) *UsageEventUpdateOne {
	mutation := newUsageEventMutation(c.config, OpUpdateOne, withUsageEventID(id))
	return &UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageEvent.
func (c *UsageEventClient) Delete() *UsageEventDelete {
	mutation := newUsageEventMutation(c.config, OpDelete)
	return &UsageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageEventClient) DeleteOne(_m *UsageEvent) *UsageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageEventClient) DeleteOneID(id int) *UsageEventDeleteOne {
	builder := c.Delete().Where(usageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageEventDeleteOne{builder}
}

// Query returns a query builder for UsageEvent.
func (c *UsageEventClient) Query() *UsageEventQuery {
	return &UsageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageEvent entity by its id.
func (c *UsageEventClient) Get(ctx context.Context, id int) (*UsageEvent, error) {
	return c.Query().Where(usageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageEventClient) GetX(ctx context.Context, id int) *UsageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageEventClient) Hooks() []Hook {
	return c.hooks.UsageEvent
}

// Interceptors returns the client interceptors.
func (c *UsageEventClient) Interceptors() []Interceptor {
	return c.inters.UsageEvent
}

func (c *UsageEventClient) mutate(ctx context.Context, m *UsageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatEvent, ContentCache, KVEntry, QuizEvent, StudyPlan, UsageEvent []ent.Hook
	}
	inters struct {
		ChatEvent, ContentCache, KVEntry, QuizEvent, StudyPlan,
		UsageEvent []ent.Interceptor
	}
)
