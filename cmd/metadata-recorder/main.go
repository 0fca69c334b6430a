package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/objectops/s3-metadata-recorder/internal/config"
	"github.com/objectops/s3-metadata-recorder/internal/objectstore"
	"github.com/objectops/s3-metadata-recorder/internal/recorder"
	"github.com/objectops/s3-metadata-recorder/internal/storage"
)

// Clients are built once at cold start and reused across invocations; the
// Lambda runtime owns the process lifecycle.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: load configuration: %v", err)
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("ERROR: load AWS config: %v", err)
	}

	rec := recorder.New(
		objectstore.New(s3.NewFromConfig(awsCfg)),
		storage.NewMetadataTable(dynamodb.NewFromConfig(awsCfg), cfg.TableName),
	)

	lambda.Start(rec.Handle)
}
