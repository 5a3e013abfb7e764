package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	repositories.EntityStore
	kind     models.Kind
	affected int64
	fields   map[string]any
}

func (f *fakeStore) Kind() models.Kind { return f.kind }

func (f *fakeStore) CreateFields(_ context.Context, fields map[string]any) (models.Entity, error) {
	f.fields = fields
	e := f.kind.New()
	e.SetPrimaryKey(42)
	return e, nil
}

func (f *fakeStore) UpdateField(context.Context, int64, string, any) (int64, error) {
	return f.affected, nil
}

func (f *fakeStore) DeleteByID(context.Context, int64) (int64, error) {
	return f.affected, nil
}

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type fakeRunner struct{ ran []string }

func (r *fakeRunner) List() []catalog.Query { return catalog.List() }

func (r *fakeRunner) Run(_ context.Context, id string) (catalog.Result, error) {
	r.ran = append(r.ran, id)
	if _, ok := catalog.Lookup(id); !ok {
		return catalog.Result{}, database.ErrNotFound
	}
	return catalog.Result{Columns: []string{"total_customers"}, Rows: [][]any{{int64(20)}}}, nil
}

type fakeExporter struct {
	name string
	res  catalog.Result
}

func (e *fakeExporter) Export(_ context.Context, name string, res catalog.Result) (string, error) {
	e.name, e.res = name, res
	return "exports/" + name + ".parquet", nil
}

type fakeCounters struct{ n int64 }

func (c fakeCounters) Refresh(context.Context) (int64, error) { return c.n, nil }

func newService(store *fakeStore, pub events.Publisher) *Service {
	return New(Deps{
		Stores:    map[models.Kind]repositories.EntityStore{store.kind: store},
		Catalog:   &fakeRunner{},
		Counters:  fakeCounters{n: 12},
		Publisher: pub,
	})
}

func TestCreateEntityPublishes(t *testing.T) {
	store := &fakeStore{kind: models.KindCustomer}
	pub := &recordingPublisher{}
	svc := newService(store, pub)

	e, err := svc.CreateEntity(context.Background(), "customer", map[string]any{"name": "Ana"})
	require.NoError(t, err)
	assert.EqualValues(t, 42, e.PrimaryKey())
	assert.Equal(t, "Ana", store.fields["name"])

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.ActionCreated, pub.events[0].Action)
	assert.Equal(t, "customers", pub.events[0].Entity)
	assert.EqualValues(t, 42, pub.events[0].ID)
	assert.False(t, pub.events[0].At.IsZero())
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	store := &fakeStore{kind: models.KindRestaurant, affected: 1}
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := newService(store, pub)

	n, err := svc.UpdateEntityField(context.Background(), "restaurants", 3, "rating", 4.5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Len(t, pub.events, 1)
}

func TestNoEventWhenNothingChanged(t *testing.T) {
	store := &fakeStore{kind: models.KindOrder, affected: 0}
	pub := &recordingPublisher{}
	svc := newService(store, pub)

	n, err := svc.UpdateEntityField(context.Background(), "orders", 999, "status", "Delivered")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.DeleteEntity(context.Background(), "orders", 999)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Empty(t, pub.events)
}

func TestUnknownKind(t *testing.T) {
	svc := newService(&fakeStore{kind: models.KindCustomer}, nil)

	_, err := svc.GetEntity(context.Background(), "menu_items", 1)
	assert.ErrorIs(t, err, database.ErrNotFound)

	// Known kind without a registered store.
	_, err = svc.DeleteEntity(context.Background(), "orders", 1)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestExport(t *testing.T) {
	svc := newService(&fakeStore{kind: models.KindCustomer}, nil)
	_, err := svc.ExportQuery(context.Background(), "total_customers")
	assert.ErrorIs(t, err, database.ErrUnsupportedOperation)

	exp := &fakeExporter{}
	svc.exporter = exp
	location, err := svc.ExportQuery(context.Background(), "total_customers")
	require.NoError(t, err)
	assert.Equal(t, "exports/total_customers.parquet", location)
	assert.Equal(t, "total_customers", exp.name)
	assert.Len(t, exp.res.Rows, 1)

	_, err = svc.ExportQuery(context.Background(), "nope")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRefreshCountersPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newService(&fakeStore{kind: models.KindCustomer}, pub)

	n, err := svc.RefreshCounters(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.ActionCountersRefreshed, pub.events[0].Action)
}

func TestPingWithoutDatabase(t *testing.T) {
	svc := newService(&fakeStore{kind: models.KindCustomer}, nil)
	assert.Error(t, svc.Ping(context.Background()))
}
