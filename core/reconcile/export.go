package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"nft-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrInvalidOwner is returned when an owner cannot be used as a single object path segment.
	ErrInvalidOwner = errors.New("owner is not a valid report path segment")
	// ErrInvalidReportName is returned for report names that are not a plain .json file name.
	ErrInvalidReportName = errors.New("invalid report name")
	// ErrReportNotFound is returned when a stored report does not exist.
	ErrReportNotFound = errors.New("report not found")
)

// Exporter uploads reports to object storage as JSON.
type Exporter struct {
	client storage.Client
	bucket string
	prefix string
}

// NewExporter creates an exporter writing under prefix in bucket.
func NewExporter(client storage.Client, bucket, prefix string) *Exporter {
	return &Exporter{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns {prefix}/{owner}/{unix-nano}.json.
func (e *Exporter) ObjectName(owner string, at time.Time) string {
	return path.Join(e.prefix, owner, fmt.Sprintf("%d.json", at.UnixNano()))
}

// ReportName returns the object name of the stored report file of owner.
func (e *Exporter) ReportName(owner, file string) (string, error) {
	if err := validateOwner(owner); err != nil {
		return "", err
	}
	if file == "" || strings.ContainsAny(file, `/\`) || path.Ext(file) != ".json" || strings.HasPrefix(file, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportName, file)
	}
	return path.Join(e.prefix, owner, file), nil
}

// validateOwner keeps owners to one path segment so they stay under the prefix.
func validateOwner(owner string) error {
	if owner == "" || owner == "." || owner == ".." || strings.ContainsAny(owner, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidOwner, owner)
	}
	return nil
}

// Export uploads report and returns the object name it was stored under.
func (e *Exporter) Export(ctx context.Context, report *Report) (string, error) {
	if err := validateOwner(report.Owner); err != nil {
		return "", err
	}
	at := report.GeneratedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	objectName := e.ObjectName(report.Owner, at)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = e.client.PutObject(ctx, e.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		reportExportsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to upload report %s: %w", objectName, err)
	}

	reportExportsTotal.WithLabelValues("ok").Inc()
	return objectName, nil
}

// List returns the object names of owner's exported reports, oldest first.
func (e *Exporter) List(ctx context.Context, owner string) ([]string, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	prefix := path.Join(e.prefix, owner) + "/"

	var names []string
	for obj := range e.client.ListObjects(ctx, e.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports for %s: %w", owner, obj.Err)
		}
		if path.Ext(obj.Key) == ".json" {
			names = append(names, obj.Key)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Load reads an exported report back.
func (e *Exporter) Load(ctx context.Context, objectName string) (*Report, error) {
	body, err := e.client.GetObject(ctx, e.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, loadError(objectName, "get", err)
	}
	defer body.Close()

	var report Report
	if err := json.NewDecoder(body).Decode(&report); err != nil {
		return nil, loadError(objectName, "decode", err)
	}
	return &report, nil
}

// loadError maps a missing object to ErrReportNotFound. minio reports a
// missing key lazily, on the first read.
func loadError(objectName, op string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrReportNotFound, objectName)
	}
	return fmt.Errorf("failed to %s report %s: %w", op, objectName, err)
}

// Prune deletes all but the newest keep reports of owner and returns how many
// were removed.
func (e *Exporter) Prune(ctx context.Context, owner string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	names, err := e.List(ctx, owner)
	if err != nil {
		return 0, err
	}
	if len(names) <= keep {
		return 0, nil
	}
	stale := names[:len(names)-keep]

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, name := range stale {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	var failed []string
	for rerr := range e.client.RemoveObjects(ctx, e.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed = append(failed, fmt.Sprintf("%s: %v", rerr.ObjectName, rerr.Err))
	}
	if len(failed) > 0 {
		return len(stale) - len(failed), fmt.Errorf("failed to remove %d report(s): %v", len(failed), failed)
	}

	return len(stale), nil
}
