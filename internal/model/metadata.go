package model

// FileMetadata represents a single item in the S3FilesMetadata DynamoDB table.
// FileName is the table's partition key and always holds the decoded object
// key, never the raw percent-encoded form from the notification.
type FileMetadata struct {
	FileName     string `dynamodbav:"FileName"`
	BucketName   string `dynamodbav:"BucketName"`
	FileSize     int64  `dynamodbav:"FileSize"`
	ContentType  string `dynamodbav:"ContentType"`
	LastModified string `dynamodbav:"LastModified"`
	UploadedAt   string `dynamodbav:"UploadedAt"`
}
