package api

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/chrisdamba/foodadmin/internal/schemaeditor"
	"github.com/chrisdamba/foodadmin/internal/seed"
)

// Dashboard is the service the handlers drive.
type Dashboard interface {
	Ping(ctx context.Context) error

	Kinds() []models.Kind
	CreateEntity(ctx context.Context, kind string, fields map[string]any) (models.Entity, error)
	ListEntities(ctx context.Context, kind string, page repositories.Page) ([]models.Entity, error)
	GetEntity(ctx context.Context, kind string, id int64) (models.Entity, error)
	UpdateEntityField(ctx context.Context, kind string, id int64, field string, value any) (int64, error)
	DeleteEntity(ctx context.Context, kind string, id int64) (int64, error)

	Queries() []catalog.Query
	RunQuery(ctx context.Context, id string) (catalog.Result, error)
	ExportQuery(ctx context.Context, id string) (string, error)

	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, name string) ([]schemaeditor.ColumnInfo, error)
	TableContent(ctx context.Context, name string) (catalog.Result, error)
	CreateTable(ctx context.Context, name, columnSpec string) error
	DropTable(ctx context.Context, name string) error
	RenameTable(ctx context.Context, oldName, newName string) error
	AddColumn(ctx context.Context, table, column, columnType string) error
	RenameColumn(ctx context.Context, table, oldName, newName string) error
	DropColumn(ctx context.Context, table, column string) error
	InsertRow(ctx context.Context, table string, values map[string]any) (int64, error)
	ExportTable(ctx context.Context, table string) (string, error)

	Seed(ctx context.Context) ([]seed.Result, error)
	RefreshCounters(ctx context.Context) (int64, error)
}

type Handler struct {
	Svc Dashboard
}

func NewHandler(svc Dashboard) *Handler {
	return &Handler{Svc: svc}
}
