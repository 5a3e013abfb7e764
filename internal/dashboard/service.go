package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/chrisdamba/foodadmin/internal/schemaeditor"
	"github.com/chrisdamba/foodadmin/internal/seed"
)

type Runner interface {
	List() []catalog.Query
	Run(ctx context.Context, id string) (catalog.Result, error)
}

type Exporter interface {
	Export(ctx context.Context, name string, res catalog.Result) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	DB        Pinger
	Stores    map[models.Kind]repositories.EntityStore
	Catalog   Runner
	Editor    *schemaeditor.Editor
	Seeder    *seed.Seeder
	Counters  repositories.CounterRepository
	Publisher events.Publisher
	Exporter  Exporter
}

// Service is the single entry point used by the HTTP API and the CLI.
type Service struct {
	db        Pinger
	stores    map[models.Kind]repositories.EntityStore
	catalog   Runner
	editor    *schemaeditor.Editor
	seeder    *seed.Seeder
	counters  repositories.CounterRepository
	publisher events.Publisher
	exporter  Exporter
	now       func() time.Time
}

func New(d Deps) *Service {
	publisher := d.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		db:        d.DB,
		stores:    d.Stores,
		catalog:   d.Catalog,
		editor:    d.Editor,
		seeder:    d.Seeder,
		counters:  d.Counters,
		publisher: publisher,
		exporter:  d.Exporter,
		now:       time.Now,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("no database configured")
	}
	return s.db.Ping(ctx)
}

// publish never fails the caller; the mutation has already been committed.
func (s *Service) publish(ctx context.Context, ev events.Event) {
	ev.At = s.now().UTC()
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).Warn("failed to publish change event",
			"action", ev.Action, "entity", ev.Entity, "table", ev.Table, "error", err)
	}
}

func (s *Service) store(kind string) (repositories.EntityStore, error) {
	k, err := models.ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrNotFound, err)
	}
	st, ok := s.stores[k]
	if !ok {
		return nil, fmt.Errorf("%w: no store for %s", database.ErrNotFound, k)
	}
	return st, nil
}

func (s *Service) Kinds() []models.Kind {
	return models.Kinds
}

func (s *Service) CreateEntity(ctx context.Context, kind string, fields map[string]any) (models.Entity, error) {
	st, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	entity, err := st.CreateFields(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{Entity: st.Kind().String(), Action: events.ActionCreated, ID: entity.PrimaryKey()})
	return entity, nil
}

func (s *Service) ListEntities(ctx context.Context, kind string, page repositories.Page) ([]models.Entity, error) {
	st, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	return st.ListEntities(ctx, page)
}

func (s *Service) GetEntity(ctx context.Context, kind string, id int64) (models.Entity, error) {
	st, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	return st.GetEntity(ctx, id)
}

// UpdateEntityField returns the number of rows changed; 0 means no row has id.
func (s *Service) UpdateEntityField(ctx context.Context, kind string, id int64, field string, value any) (int64, error) {
	st, err := s.store(kind)
	if err != nil {
		return 0, err
	}
	n, err := st.UpdateField(ctx, id, field, value)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.publish(ctx, events.Event{Entity: st.Kind().String(), Action: events.ActionUpdated, ID: id, Field: field})
	}
	return n, nil
}

func (s *Service) DeleteEntity(ctx context.Context, kind string, id int64) (int64, error) {
	st, err := s.store(kind)
	if err != nil {
		return 0, err
	}
	n, err := st.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.publish(ctx, events.Event{Entity: st.Kind().String(), Action: events.ActionDeleted, ID: id})
	}
	return n, nil
}

func (s *Service) Queries() []catalog.Query {
	return s.catalog.List()
}

func (s *Service) RunQuery(ctx context.Context, id string) (catalog.Result, error) {
	return s.catalog.Run(ctx, id)
}

func (s *Service) Seed(ctx context.Context) ([]seed.Result, error) {
	results, err := s.seeder.SeedAll(ctx)
	for _, r := range results {
		if r.Inserted > 0 {
			s.publish(ctx, events.Event{
				Entity: r.Kind.String(),
				Action: events.ActionSeeded,
				Detail: fmt.Sprintf("%d rows", r.Inserted),
			})
		}
	}
	return results, err
}

func (s *Service) RefreshCounters(ctx context.Context) (int64, error) {
	n, err := s.counters.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.Event{Action: events.ActionCountersRefreshed, Detail: fmt.Sprintf("%d rows", n)})
	return n, nil
}

func (s *Service) ExportQuery(ctx context.Context, id string) (string, error) {
	if s.exporter == nil {
		return "", fmt.Errorf("%w: export is not configured", database.ErrUnsupportedOperation)
	}
	res, err := s.catalog.Run(ctx, id)
	if err != nil {
		return "", err
	}
	return s.exporter.Export(ctx, id, res)
}

func (s *Service) ExportTable(ctx context.Context, table string) (string, error) {
	if s.exporter == nil {
		return "", fmt.Errorf("%w: export is not configured", database.ErrUnsupportedOperation)
	}
	res, err := s.editor.TableContent(ctx, table)
	if err != nil {
		return "", err
	}
	return s.exporter.Export(ctx, table, res)
}
