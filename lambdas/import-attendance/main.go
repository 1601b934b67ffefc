package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"attendly.com/attendly/core"
	"attendly.com/attendly/infrastructure/filesystem"
	"attendly.com/attendly/lambdas/import-attendance/helper"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// Triggered by S3 object-created events when a badge reader drops its
// daily punch CSV into the import bucket.
func handler(ctx context.Context, event events.S3Event) error {
	dsn := os.Getenv("DSN")
	if dsn == "" {
		return fmt.Errorf("DSN is not set")
	}

	offset := 0
	if v := os.Getenv("PUNCH_TZ_OFFSET_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PUNCH_TZ_OFFSET_SECONDS: %w", err)
		}
		offset = parsed
	}

	db := core.ConnectDB(dsn)

	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key := record.S3.Object.Key
		log.Printf("importing punches from s3://%s/%s", bucket, key)

		var stream bytes.Buffer
		if err := filesystem.ReadFile(bucket, key, ctx, &stream); err != nil {
			return err
		}

		punches, err := helper.ParsePunchCSV(&stream, offset)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", key, err)
		}

		sessions := helper.GroupPunches(punches)
		summary, err := helper.Import(db, sessions)
		if err != nil {
			return err
		}

		log.Printf("imported %s: %d created, %d skipped", key, summary.Created, summary.Skipped)
	}

	return nil
}

func main() {
	lambda.Start(handler)
}
