package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"garment-stock/core/query"
	"garment-stock/core/reconcile"
	"garment-stock/core/storage"
	"garment-stock/core/ws"

	"go.uber.org/zap"
)

// ExportPrefix is the folder published CSV files are written to.
const ExportPrefix = "exports/"

// Adjust actions accepted by Service.Adjust.
const (
	ActionIncrement = "inc"
	ActionDecrement = "dec"
	ActionDelete    = "del"
)

// ErrPublishDisabled is returned when no object storage client is configured.
var ErrPublishDisabled = errors.New("object storage is not configured")

// Service exposes the inventory operations to handlers and commands.
type Service struct {
	engine  *reconcile.Engine
	storage storage.Client
	bucket  string
	region  string
	hub     *ws.Hub
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new inventory service. client and hub may be nil.
func NewService(engine *reconcile.Engine, client storage.Client, cfg storage.Config, hub *ws.Hub, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:  engine,
		storage: client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		hub:     hub,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the records matching opts in the requested order.
func (s *Service) List(ctx context.Context, opts query.Options) ([]reconcile.Record, error) {
	records, err := s.engine.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(records, opts), nil
}

// Import adds item to the inventory and returns the merged record.
func (s *Service) Import(ctx context.Context, item reconcile.Item) (*reconcile.Record, error) {
	rec, err := s.engine.MergeAndAdd(ctx, item)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Imported item", zap.String("key", rec.Key), zap.Int("added", item.Qty), zap.Int("qty", rec.Qty))
	s.notify("import", rec.Key, rec.Qty)
	return rec, nil
}

// Export removes item.Qty units. A nil record means the line was used up and deleted.
func (s *Service) Export(ctx context.Context, item reconcile.Item) (*reconcile.Record, error) {
	rec, err := s.engine.Subtract(ctx, item)
	if err != nil {
		return nil, err
	}

	key, qty := reconcile.MakeKey(item), 0
	if rec != nil {
		qty = rec.Qty
	}
	s.logger.Info("Exported item", zap.String("key", key), zap.Int("removed", item.Qty), zap.Int("qty", qty))
	s.notify("export", key, qty)
	return rec, nil
}

// Adjust applies a single-row change to the record stored under key. n
// defaults to 1 for inc and dec. del returns a nil record.
func (s *Service) Adjust(ctx context.Context, key, action string, n int) (*reconcile.Record, error) {
	if n <= 0 {
		n = 1
	}

	var (
		rec *reconcile.Record
		err error
	)
	switch action {
	case ActionIncrement:
		rec, err = s.engine.Increment(ctx, key, n)
	case ActionDecrement:
		rec, err = s.engine.Decrement(ctx, key, n)
	case ActionDelete:
		err = s.engine.Remove(ctx, key)
	default:
		return nil, &reconcile.ValidationError{Field: "action", Reason: "must be inc, dec or del"}
	}
	if err != nil {
		return nil, err
	}

	qty := 0
	if rec != nil {
		qty = rec.Qty
	}
	s.logger.Info("Adjusted record", zap.String("key", key), zap.String("action", action), zap.Int("qty", qty))
	s.notify(action, key, qty)
	return rec, nil
}

// Clear deletes every record and returns how many were removed.
func (s *Service) Clear(ctx context.Context) (int, error) {
	n, err := s.engine.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.notify("clear", "", 0)
	}
	return n, nil
}

// CSV renders the records matching opts. Without a sort criterion rows follow
// creation order. It returns query.ErrNoData when nothing matches.
func (s *Service) CSV(ctx context.Context, opts query.Options) (string, error) {
	records, err := s.List(ctx, opts)
	if err != nil {
		return "", err
	}
	if opts.SortBy == query.SortNone {
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].AddedAt.Equal(records[j].AddedAt) {
				return records[i].Key < records[j].Key
			}
			return records[i].AddedAt.Before(records[j].AddedAt)
		})
	}
	return query.EncodeCSV(records)
}

// PublishCSV uploads the full inventory as CSV and returns the object name.
func (s *Service) PublishCSV(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", ErrPublishDisabled
	}

	data, err := s.CSV(ctx, query.Options{})
	if err != nil {
		return "", err
	}

	if err := storage.EnsureBucket(ctx, s.storage, s.bucket, s.region); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%sinventory_export_%s.csv", ExportPrefix, s.now().UTC().Format("20060102T150405Z"))
	if err := storage.Upload(ctx, s.storage, s.bucket, name, []byte(data), "text/csv"); err != nil {
		return "", err
	}

	s.logger.Info("Published inventory export", zap.String("bucket", s.bucket), zap.String("object", name))
	return name, nil
}

// Exports lists the published CSV files, newest first.
func (s *Service) Exports(ctx context.Context) ([]storage.Object, error) {
	if s.storage == nil {
		return nil, ErrPublishDisabled
	}
	return storage.List(ctx, s.storage, s.bucket, ExportPrefix)
}

func (s *Service) notify(action, key string, qty int) {
	s.hub.Publish(ws.Event{Action: action, Key: key, Qty: qty, At: s.now().UTC()})
}
