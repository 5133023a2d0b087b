package checks

import (
	"context"
	"fmt"
	"strings"

	"nft-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a report bucket check.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Prefix  string `json:"prefix"`
	Reports int    `json:"reports"`
}

// CheckReportBucket verifies that the export bucket exists and counts the
// reports stored under prefix.
func CheckReportBucket(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Prefix: prefix}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	listPrefix := prefix
	if listPrefix != "" && !strings.HasSuffix(listPrefix, "/") {
		listPrefix += "/"
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", listPrefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			report.Reports++
		}
	}

	return report, nil
}

// FixReportBucket creates the export bucket when it is missing.
func FixReportBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	created, err := storage.EnsureBucket(ctx, client, bucket, region)
	if err != nil {
		logger.Error("Failed to create report bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	if created {
		logger.Info("Created report bucket", zap.String("bucket", bucket))
	}
	return nil
}
