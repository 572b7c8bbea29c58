package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"

	"data-reconciler/core/storage"
)

// Upload pushes a rendered report file to object storage.
func Upload(ctx context.Context, client storage.Client, bucket, object, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open report for upload: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat report: %w", err)
	}

	_, err = client.PutObject(ctx, bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(path),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}
	return nil
}

func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
