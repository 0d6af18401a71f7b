package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"countries-api/core/database"
	"countries-api/core/storage"
	"countries-api/core/value"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads the full country dataset.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Load reads and decodes every record.
	Load(ctx context.Context) ([]*Record, error)
}

// NewSource returns the source selected by cfg.Source.
// client and db may be nil when the corresponding source is not selected.
func NewSource(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Source {
	case SourceFile:
		return &FileSource{Path: cfg.Path}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("%w: storage client is not configured", ErrSourceUnavailable)
		}
		return &StorageSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("%w: database connection is not available", ErrSourceUnavailable)
		}
		return &DatabaseSource{DB: db, Table: cfg.Table}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// FileSource reads the dataset from a JSON file on disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

func (s *FileSource) Load(ctx context.Context) ([]*Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Decode(data)
}

// StorageSource reads the dataset from an object in S3/MinIO.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (s *StorageSource) Name() string {
	return "storage:" + s.Bucket + "/" + s.Object
}

func (s *StorageSource) Load(ctx context.Context) ([]*Record, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.Bucket)
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset object: %w", err)
	}
	return Decode(data)
}

// documentRow is one row of the dataset table.
type documentRow struct {
	ID       uint
	Document string
}

// DatabaseSource reads one JSON document per row, ordered by id.
// The table is only ever read.
type DatabaseSource struct {
	DB    *gorm.DB
	Table string
}

func (s *DatabaseSource) Name() string {
	return "database:" + s.Table
}

func (s *DatabaseSource) Load(ctx context.Context) ([]*Record, error) {
	if err := database.RequireColumns(ctx, s.DB, s.Table, "id", "document"); err != nil {
		return nil, err
	}

	var rows []documentRow
	if err := s.DB.WithContext(ctx).Table(s.Table).Select("id", "document").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query dataset table %s: %w", s.Table, err)
	}

	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		doc, err := value.Parse([]byte(row.Document))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", row.ID, ErrMalformedDataset, err)
		}
		rec, err := NewRecord(doc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
