package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/cloudwriter"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/lucsky/cuid"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

const (
	DestinationLocal = "local"
	DestinationS3    = "s3"
)

// Exporter writes tabular results to parquet files, locally or to a bucket.
type Exporter struct {
	config  models.ExportConfig
	factory cloudwriter.CloudWriterFactory
}

func New(ctx context.Context, config models.ExportConfig) (*Exporter, error) {
	switch config.Destination {
	case "", DestinationLocal:
		return &Exporter{config: config}, nil
	case DestinationS3:
		factory, err := cloudwriter.NewS3WriterFactory(ctx, config.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		return NewWithFactory(config, factory), nil
	}
	return nil, fmt.Errorf("unsupported export destination %q", config.Destination)
}

func NewWithFactory(config models.ExportConfig, factory cloudwriter.CloudWriterFactory) *Exporter {
	return &Exporter{config: config, factory: factory}
}

// Export writes res as <name>-<cuid>.parquet and returns where it went.
func (e *Exporter) Export(ctx context.Context, name string, res catalog.Result) (string, error) {
	fields := inferFields(res)
	if len(fields) == 0 {
		return "", fmt.Errorf("nothing to export for %s: result has no columns", name)
	}
	schema, err := schemaJSON(fields)
	if err != nil {
		return "", fmt.Errorf("failed to create schema: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s.parquet", fieldName(name, map[string]int{}), cuid.New())
	fw, location, err := e.createFile(ctx, fileName)
	if err != nil {
		return "", err
	}

	if err := writeParquet(fw, schema, fields, res.Rows); err != nil {
		fw.Close()
		return "", err
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", location, err)
	}

	logging.FromContext(ctx).Info("exported result", "name", name, "rows", len(res.Rows), "location", location)
	return location, nil
}

func (e *Exporter) createFile(ctx context.Context, fileName string) (source.ParquetFile, string, error) {
	if e.factory != nil {
		key := path.Join(e.config.Folder, fileName)
		cw, err := e.factory.NewWriter(ctx, e.config.Bucket, key)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create cloud writer: %w", err)
		}
		return NewCloudParquetFile(cw), fmt.Sprintf("s3://%s/%s", e.config.Bucket, key), nil
	}

	dir := filepath.Join(e.config.OutputPath, e.config.Folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, "", err
	}
	filePath := filepath.Join(dir, fileName)
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, filePath, nil
}

func writeParquet(fw source.ParquetFile, schema string, fields []field, rows [][]any) error {
	pw, err := writer.NewJSONWriter(schema, fw, 4)
	if err != nil {
		return fmt.Errorf("failed to create JSONWriter: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		rec, err := encodeRow(fields, row)
		if err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
		if err := pw.Write(rec); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// CloudParquetFile adapts a CloudWriter to the write side of
// source.ParquetFile.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
