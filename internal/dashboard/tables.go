package dashboard

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/schemaeditor"
)

func (s *Service) schemaChanged(ctx context.Context, table, detail string) {
	s.publish(ctx, events.Event{Table: table, Action: events.ActionSchemaChanged, Detail: detail})
}

func (s *Service) ListTables(ctx context.Context) ([]string, error) {
	return s.editor.ListTables(ctx)
}

func (s *Service) DescribeTable(ctx context.Context, name string) ([]schemaeditor.ColumnInfo, error) {
	return s.editor.DescribeTable(ctx, name)
}

func (s *Service) TableContent(ctx context.Context, name string) (catalog.Result, error) {
	return s.editor.TableContent(ctx, name)
}

func (s *Service) CreateTable(ctx context.Context, name, columnSpec string) error {
	if err := s.editor.CreateTable(ctx, name, columnSpec); err != nil {
		return err
	}
	s.schemaChanged(ctx, name, "create table")
	return nil
}

func (s *Service) DropTable(ctx context.Context, name string) error {
	if err := s.editor.DropTable(ctx, name); err != nil {
		return err
	}
	s.schemaChanged(ctx, name, "drop table")
	return nil
}

func (s *Service) RenameTable(ctx context.Context, oldName, newName string) error {
	if err := s.editor.RenameTable(ctx, oldName, newName); err != nil {
		return err
	}
	s.schemaChanged(ctx, newName, "rename table from "+oldName)
	return nil
}

func (s *Service) AddColumn(ctx context.Context, table, column, columnType string) error {
	if err := s.editor.AddColumn(ctx, table, column, columnType); err != nil {
		return err
	}
	s.schemaChanged(ctx, table, "add column "+column)
	return nil
}

func (s *Service) RenameColumn(ctx context.Context, table, oldName, newName string) error {
	return s.editor.RenameColumn(ctx, table, oldName, newName)
}

func (s *Service) DropColumn(ctx context.Context, table, column string) error {
	return s.editor.DropColumn(ctx, table, column)
}

func (s *Service) InsertRow(ctx context.Context, table string, values map[string]any) (int64, error) {
	n, err := s.editor.InsertRow(ctx, table, values)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.Event{Table: table, Action: events.ActionCreated})
	return n, nil
}
