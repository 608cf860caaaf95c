package cmd

import (
	"fmt"

	"garment-stock/core/reconcile"
	"garment-stock/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the integrity command
	purgeRecords bool
	rekeyRecords bool
	dryRunRepair bool
	yesConfirm   bool
)

// integrityCmd scans the store and optionally repairs it.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Scan the inventory store (report + optionally purge/rekey)",
	Long: `Scan every stored record for keys that no longer match their attributes,
non-positive quantities and sizes not offered for the type. For the sql backend
the table columns are checked too.

Examples:
  # Report only
  integrity

  # Delete records with a non-positive quantity (with interactive confirmation)
  integrity --purge

  # Move records to their derived key, merging duplicates, without prompting
  integrity --rekey --yes

  # Show what would happen
  integrity --purge --rekey --dry-run`,
	RunE: runIntegrity,
}

func init() {
	integrityCmd.Flags().BoolVar(&purgeRecords, "purge", false, "Delete records with a non-positive quantity")
	integrityCmd.Flags().BoolVar(&rekeyRecords, "rekey", false, "Move records to their derived key")
	integrityCmd.Flags().BoolVar(&dryRunRepair, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	integrityCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()
	l := rt.log

	l.Info("Starting inventory integrity scan", zap.String("backend", rt.cfg.Store.Backend))

	svc := integrity.NewService(rt.engine, rt.store.Schema, l)
	opts := reconcile.ReconcileOptions{
		DoPurge: purgeRecords,
		DoRekey: rekeyRecords,
		DryRun:  dryRunRepair,
	}

	// Step 1: Scan (always runs)
	report, err := svc.Scan(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to scan inventory: %w", err)
	}

	// Step 2: Print report
	printIntegrityReport(l, report)

	// Step 3: Check if actions are requested
	if !purgeRecords && !rekeyRecords {
		l.Info("No actions requested. Use --purge to delete empty records or --rekey to repair keys.")
		return nil
	}

	if dryRunRepair {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(report.Plan.Actions) == 0 {
		l.Info("No actions required based on current flags.")
		return nil
	}

	// Step 4: Apply (if confirmed)
	if !confirmDestructiveAction(yesConfirm) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := rt.engine.ApplyPlan(ctx, report.Plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan after %d actions: %w", executed, err)
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printIntegrityReport prints a formatted scan report using logger.
func printIntegrityReport(l *zap.Logger, report *integrity.Report) {
	s := report.Plan.Summary

	l.Info("Integrity report",
		zap.Int("total_records", s.TotalRecords),
		zap.Int("key_mismatches", s.KeyMismatches),
		zap.Int("non_positive", s.NonPositive),
		zap.Int("invalid_sizes", s.InvalidSizes),
	)
	if len(report.MissingColumns) > 0 {
		l.Warn("Missing table columns", zap.Strings("columns", report.MissingColumns))
	}
	if report.SchemaError != "" {
		l.Warn("Schema check failed", zap.String("error", report.SchemaError))
	}

	if len(report.Plan.Actions) == 0 {
		return
	}
	l.Info("Planned actions",
		zap.Int("purge_actions", s.PurgeActions),
		zap.Int("rekey_actions", s.RekeyActions),
		zap.Int("total_actions", len(report.Plan.Actions)),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := min(5, len(report.Plan.Actions))
	for _, action := range report.Plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(report.Plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(report.Plan.Actions)-maxShow))
	}
}
