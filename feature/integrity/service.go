package integrity

import (
	"context"

	"garment-stock/core/reconcile"

	"go.uber.org/zap"
)

// SchemaChecker reports table columns the store expects but cannot find.
type SchemaChecker interface {
	MissingColumns(ctx context.Context) ([]string, error)
}

// Report is the result of a scan.
type Report struct {
	Plan *reconcile.ReconcilePlan `json:"plan"`
	// MissingColumns is only set when the store is backed by a SQL table.
	MissingColumns []string `json:"missing_columns,omitempty"`
	SchemaError    string   `json:"schema_error,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	engine *reconcile.Engine
	schema SchemaChecker
	logger *zap.Logger
}

// NewService creates a new integrity service. schema may be nil.
func NewService(engine *reconcile.Engine, schema SchemaChecker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine: engine,
		schema: schema,
		logger: logger,
	}
}

// Scan inspects the stored records and, when available, the table schema.
// It never mutates anything.
func (s *Service) Scan(ctx context.Context, opts reconcile.ReconcileOptions) (*Report, error) {
	plan, err := s.engine.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	report := &Report{Plan: plan}

	if s.schema != nil {
		missing, err := s.schema.MissingColumns(ctx)
		if err != nil {
			s.logger.Warn("Schema check failed", zap.Error(err))
			report.SchemaError = err.Error()
		} else {
			report.MissingColumns = missing
		}
	}

	if len(plan.Results) > 0 || len(report.MissingColumns) > 0 {
		s.logger.Warn("Integrity problems detected",
			zap.Int("records", len(plan.Results)),
			zap.Int("actions", len(plan.Actions)),
			zap.Strings("missing_columns", report.MissingColumns),
		)
	}
	return report, nil
}

// Repair plans with opts and executes the result. opts.Confirmed must be set.
func (s *Service) Repair(ctx context.Context, opts reconcile.ReconcileOptions) (*reconcile.ReconcilePlan, int, error) {
	plan, err := s.engine.Plan(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	executed, err := s.engine.ApplyPlan(ctx, plan, opts)
	return plan, executed, err
}
