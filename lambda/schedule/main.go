package main

import (
	"benritz/bondcalc/internal/store"
	"benritz/bondcalc/internal/types"
	"time"

	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ENV_BUCKET_NAME   = "BONDCALC_BUCKET_NAME"
	ENV_BUCKET_PREFIX = "BONDCALC_BUCKET_PREFIX"
)

// scheduleRequest is the body of a queued schedule request.
type scheduleRequest struct {
	Par       float64 `json:"par"`
	Maturity  int     `json:"maturity"`
	Coupon    float64 `json:"coupon"`
	Frequency int     `json:"frequency"`
	Start     string  `json:"start,omitempty"` // YYYY-MM-DD, defaults to today
}

type worker struct {
	client store.PutObjectAPI
	dst    *store.S3Path
	now    func() time.Time
}

func (w *worker) storeSchedule(ctx context.Context, body string) (string, error) {
	var req scheduleRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return "", fmt.Errorf("invalid request: %v", err)
	}

	start := w.now()
	if req.Start != "" {
		ts, err := time.Parse("2006-01-02", req.Start)
		if err != nil {
			return "", fmt.Errorf("invalid start date: %v", err)
		}
		start = ts
	}

	terms := types.NewBondTerms(req.Par, req.Maturity, req.Coupon, req.Frequency)

	s, err := store.NewSchedule(terms, start)
	if err != nil {
		return "", err
	}

	return store.StoreToS3(ctx, s, w.client, w.dst)
}

// handle stores a schedule for every message, reporting the messages that
// failed so only those are retried.
func (w *worker) handle(ctx context.Context, request events.SQSEvent) (events.SQSEventResponse, error) {
	resp := events.SQSEventResponse{}

	for _, rec := range request.Records {
		outPath, err := w.storeSchedule(ctx, rec.Body)
		if err != nil {
			log.Printf("[WARN] message %s: %v", rec.MessageId, err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: rec.MessageId,
			})
			continue
		}
		log.Printf("[INFO] message %s: stored schedule to %s", rec.MessageId, outPath)
	}

	return resp, nil
}

func newWorker(ctx context.Context) (*worker, error) {
	bucketName := os.Getenv(ENV_BUCKET_NAME)
	if bucketName == "" {
		return nil, fmt.Errorf("%s is not set", ENV_BUCKET_NAME)
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}

	return &worker{
		client: s3.NewFromConfig(cfg),
		dst: &store.S3Path{
			Bucket: bucketName,
			Prefix: os.Getenv(ENV_BUCKET_PREFIX),
		},
		now: time.Now,
	}, nil
}

func main() {
	w, err := newWorker(context.Background())
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	lambda.Start(w.handle)
}
