package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/objectops/s3-metadata-recorder/internal/model"
)

// PutItemAPI is the slice of the DynamoDB client the table uses.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// MetadataTable writes FileMetadata rows into a DynamoDB table partitioned
// by FileName.
type MetadataTable struct {
	client    PutItemAPI
	tableName string
}

// NewMetadataTable creates a MetadataTable writing to tableName.
func NewMetadataTable(client PutItemAPI, tableName string) *MetadataTable {
	return &MetadataTable{client: client, tableName: tableName}
}

// Put upserts the full row. A later Put with the same FileName overwrites
// the earlier row; last write wins.
func (t *MetadataTable) Put(ctx context.Context, meta model.FileMetadata) error {
	item, err := attributevalue.MarshalMap(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata for %q: %w", meta.FileName, err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put metadata for %q: %w", meta.FileName, err)
	}
	return nil
}
