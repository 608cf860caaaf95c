// Package storage publishes inventory exports to S3-compatible object storage.
//
// Client is the narrow slice of the MinIO API the service needs, so tests can
// substitute mocks.Client. EnsureBucket, Upload and List are the operations the
// CSV publishing flow is built from.
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
//	err = storage.Upload(ctx, client, cfg.Storage.Bucket, "exports/inventory.csv", data, "text/csv")
package storage
