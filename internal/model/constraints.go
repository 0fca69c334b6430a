package model

// Domain constants shared across handler, storage, and entrypoint packages.
const (
	DefaultTableName   = "S3FilesMetadata"
	DefaultContentType = "unknown"
	SuccessBody        = "Metadata stored successfully"
)
