package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"nft-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExporter_ObjectName(t *testing.T) {
	e := NewExporter(nil, "bucket", "reports")
	at := time.Unix(0, 1700000000123456789)

	assert.Equal(t, "reports/0xowner/1700000000123456789.json", e.ObjectName("0xowner", at))
	assert.Equal(t, "0xowner/1700000000123456789.json", NewExporter(nil, "bucket", "").ObjectName("0xowner", at))
}

func TestExporter_Export(t *testing.T) {
	report := Compare("0xowner", []string{"0xA|1"}, []string{"0xB|2"})
	report.GeneratedAt = time.Unix(0, 42).UTC()

	client := new(mocks.Client)
	var uploaded []byte
	client.On("PutObject",
		mock.Anything,
		"bucket",
		"reports/0xowner/42.json",
		mock.Anything,
		mock.AnythingOfType("int64"),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" }),
	).Run(func(args mock.Arguments) {
		data, err := io.ReadAll(args.Get(3).(io.Reader))
		require.NoError(t, err)
		uploaded = data
		assert.Equal(t, int64(len(data)), args.Get(4).(int64))
	}).Return(minio.UploadInfo{}, nil)

	name, err := NewExporter(client, "bucket", "reports").Export(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, "reports/0xowner/42.json", name)
	client.AssertExpectations(t)

	var decoded Report
	require.NoError(t, json.NewDecoder(bytes.NewReader(uploaded)).Decode(&decoded))
	assert.Equal(t, StatusDifferent, decoded.Status)
	assert.Equal(t, []string{"0xA|1"}, decoded.OnlyInAPI)
	assert.Equal(t, []string{"0xB|2"}, decoded.OnlyInLedger)
}

func TestExporter_UploadFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := NewExporter(client, "bucket", "reports").Export(context.Background(), &Report{Owner: "o1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func objectChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func TestExporter_List(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "reports/o1/", Recursive: true}).
		Return(objectChannel("reports/o1/300.json", "reports/o1/100.json", "reports/o1/notes.txt"))

	names, err := NewExporter(client, "bucket", "reports").List(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/o1/100.json", "reports/o1/300.json"}, names)
}

func TestExporter_Load(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(bytes.NewBufferString(`{"owner":"o1","status":"Same","api_count":1,"ledger_count":1,"intersection_count":1,"only_in_api":[],"only_in_ledger":[]}`))
	client.On("GetObject", mock.Anything, "bucket", "reports/o1/1.json", minio.GetObjectOptions{}).Return(body, nil)

	report, err := NewExporter(client, "bucket", "reports").Load(context.Background(), "reports/o1/1.json")
	require.NoError(t, err)
	assert.True(t, report.Same())
	assert.Equal(t, "o1", report.Owner)
}

func TestExporter_Prune(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).
		Return(objectChannel("reports/o1/1.json", "reports/o1/2.json", "reports/o1/3.json"))

	var removed []string
	client.On("RemoveObjects", mock.Anything, "bucket", mock.Anything, minio.RemoveObjectsOptions{}).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).Return(nil)

	n, err := NewExporter(client, "bucket", "reports").Prune(context.Background(), "o1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"reports/o1/1.json", "reports/o1/2.json"}, removed)
}

func TestExporter_RejectsOwnersOutsidePrefix(t *testing.T) {
	client := new(mocks.Client)
	e := NewExporter(client, "bucket", "reports")

	for _, bad := range []string{"", ".", "..", "../x", "a/b", `a\b`, "/abs"} {
		t.Run(bad, func(t *testing.T) {
			_, err := e.Export(context.Background(), &Report{Owner: bad})
			assert.ErrorIs(t, err, ErrInvalidOwner)

			_, err = e.List(context.Background(), bad)
			assert.ErrorIs(t, err, ErrInvalidOwner)

			_, err = e.Prune(context.Background(), bad, 0)
			assert.ErrorIs(t, err, ErrInvalidOwner)

			_, err = e.ReportName(bad, "1.json")
			assert.ErrorIs(t, err, ErrInvalidOwner)
		})
	}

	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestExporter_ReportName(t *testing.T) {
	e := NewExporter(nil, "bucket", "reports")

	name, err := e.ReportName("0xowner", "42.json")
	require.NoError(t, err)
	assert.Equal(t, "reports/0xowner/42.json", name)

	for _, bad := range []string{"", "notes.txt", "../42.json", "x/42.json", ".json"} {
		_, err := e.ReportName("0xowner", bad)
		assert.ErrorIs(t, err, ErrInvalidReportName, bad)
	}
}

func TestExporter_LoadMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "reports/o1/9.json", minio.GetObjectOptions{}).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	_, err := NewExporter(client, "bucket", "reports").Load(context.Background(), "reports/o1/9.json")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
