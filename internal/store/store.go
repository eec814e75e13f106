package store

import (
	"benritz/bondcalc/internal/types"
	"path"
	"path/filepath"
	"time"

	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

const dateFormat = "2006-01-02"

// ScheduleRecord is a single row of a stored payment schedule.
type ScheduleRecord struct {
	RunID      string  `parquet:"run_id"`
	Period     int64   `parquet:"period"`
	Date       string  `parquet:"date"`
	Kind       string  `parquet:"kind"`
	Amount     float64 `parquet:"amount"`
	Par        float64 `parquet:"par"`
	CouponRate float64 `parquet:"coupon_rate"`
	Frequency  int64   `parquet:"frequency"`
}

// Schedule is a generated payment schedule and the terms it was generated from.
type Schedule struct {
	RunID string
	Terms *types.BondTerms
	Start time.Time
	Flows []types.CashFlow
}

func NewSchedule(terms *types.BondTerms, start time.Time) (*Schedule, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	flows, err := terms.Schedule(start)
	if err != nil {
		return nil, err
	}

	return &Schedule{
		RunID: uuid.NewString(),
		Terms: terms,
		Start: start,
		Flows: flows,
	}, nil
}

func (s *Schedule) records() []ScheduleRecord {
	rows := make([]ScheduleRecord, 0, len(s.Flows))
	for _, cf := range s.Flows {
		rows = append(rows, ScheduleRecord{
			RunID:      s.RunID,
			Period:     int64(cf.Period),
			Date:       cf.Date.Format(dateFormat),
			Kind:       string(cf.Kind),
			Amount:     cf.Amount,
			Par:        s.Terms.Par,
			CouponRate: s.Terms.CouponRate,
			Frequency:  int64(s.Terms.Frequency),
		})
	}
	return rows
}

func writeSchedule(s *Schedule, output io.Writer) error {
	writer := parquet.NewGenericWriter[ScheduleRecord](output)

	if _, err := writer.Write(s.records()); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return nil
}

// key is the object key of the schedule under prefix, partitioned by the
// UTC start date.
func key(s *Schedule, prefix string) string {
	start := s.Start.UTC()
	return path.Join(
		prefix,
		fmt.Sprintf("%04d", start.Year()),
		fmt.Sprintf("%02d", start.Month()),
		fmt.Sprintf("%02d", start.Day()),
		s.RunID+".parquet",
	)
}

func StoreToPath(ctx context.Context, s *Schedule, basepath string) (string, error) {
	outPath := filepath.Join(basepath, filepath.FromSlash(key(s, "")))

	if err := os.MkdirAll(filepath.Dir(outPath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := writeSchedule(s, file); err != nil {
		return "", err
	}

	return outPath, nil
}

type S3Path struct {
	Bucket string
	Prefix string
}

// ParseS3 splits an s3://bucket/prefix URL. Trailing slashes on the prefix
// are dropped.
func ParseS3(url string) (*S3Path, error) {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return nil, fmt.Errorf("%q is not an s3:// URL", url)
	}

	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return nil, fmt.Errorf("%q has no bucket", url)
	}

	return &S3Path{Bucket: bucket, Prefix: strings.TrimRight(prefix, "/")}, nil
}

// PutObjectAPI is the part of the S3 client used to upload schedules.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func StoreToS3(ctx context.Context, s *Schedule, s3Client PutObjectAPI, dst *S3Path) (string, error) {
	tmp, err := os.CreateTemp("", "schedule-*.parquet")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %v", err)
	}
	defer tmp.Close()
	defer os.Remove(tmp.Name())

	if err := writeSchedule(s, tmp); err != nil {
		return "", err
	}

	if _, err := tmp.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to seek to start of file: %w", err)
	}

	k := key(s, dst.Prefix)
	input := &s3.PutObjectInput{
		Bucket: aws.String(dst.Bucket),
		Key:    aws.String(k),
		Body:   tmp,
	}

	if _, err := s3Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload file to s3://%s/%s: %w", dst.Bucket, k, err)
	}

	return fmt.Sprintf("s3://%s/%s", dst.Bucket, k), nil
}

// Store writes the schedule to dst, either an s3:// URL or a local directory.
func Store(ctx context.Context, s *Schedule, s3Client PutObjectAPI, dst string) (string, error) {
	if s3Path, _ := ParseS3(dst); s3Path != nil {
		if s3Client == nil {
			return "", fmt.Errorf("no s3 client for %s", dst)
		}
		return StoreToS3(ctx, s, s3Client, s3Path)
	}
	return StoreToPath(ctx, s, dst)
}
