package reconcile

import (
	"context"
	"fmt"
	"sort"

	"garment-stock/core/catalog"

	"go.uber.org/zap"
)

// Plan scans every stored record for invariant violations and returns the
// repairs allowed by opts. It does NOT execute actions; use ApplyPlan for that.
//
// A record is reported when its stored key differs from the key derived from
// its attributes, when its quantity is not positive, or when its size is not
// offered for its type. Only the first two can be repaired automatically.
func (e *Engine) Plan(ctx context.Context, opts ReconcileOptions) (*ReconcilePlan, error) {
	records, err := e.store.GetAll(ctx)
	if err != nil {
		return nil, storeErr("list", err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })

	plan := &ReconcilePlan{
		Results: []ScanResult{},
		Actions: []Action{},
	}
	plan.Summary.TotalRecords = len(records)

	for _, rec := range records {
		derived := MakeKey(rec.Item(0))
		res := ScanResult{
			Key:        rec.Key,
			DerivedKey: derived,
			Type:       rec.Type,
			Size:       rec.Size,
			Qty:        rec.Qty,
		}

		mismatch := derived != rec.Key
		if mismatch {
			res.Problems = append(res.Problems, "key_mismatch")
			plan.Summary.KeyMismatches++
		}
		if rec.Qty <= 0 {
			res.Problems = append(res.Problems, "non_positive_qty")
			plan.Summary.NonPositive++
		}
		if !catalog.IsValidSize(rec.Type, rec.Size) {
			res.Problems = append(res.Problems, "invalid_size")
			plan.Summary.InvalidSizes++
		}
		if len(res.Problems) == 0 {
			continue
		}
		plan.Results = append(plan.Results, res)

		switch {
		case rec.Qty <= 0 && opts.DoPurge:
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionPurge,
				Key:    rec.Key,
				Reason: fmt.Sprintf("quantity %d is not positive", rec.Qty),
			})
			plan.Summary.PurgeActions++
		case rec.Qty > 0 && mismatch && opts.DoRekey:
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionRekey,
				Key:    rec.Key,
				Target: derived,
				Reason: "stored key differs from derived key",
			})
			plan.Summary.RekeyActions++
		}
	}

	return plan, nil
}

// ApplyPlan executes the actions in a plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func (e *Engine) ApplyPlan(ctx context.Context, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if plan == nil || !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	defer e.cache.Invalidate()

	var (
		purgeKeys []string
		rekeys    []Action
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionPurge:
			purgeKeys = append(purgeKeys, action.Key)
		case ActionRekey:
			rekeys = append(rekeys, action)
		}
	}

	if len(purgeKeys) > 0 {
		unlock := e.locks.LockAll(purgeKeys)
		if batch, ok := e.store.(BatchDeleter); ok {
			if err := batch.DeleteBatch(ctx, purgeKeys); err != nil {
				unlock()
				return executed, storeErr("delete", err)
			}
			executed += len(purgeKeys)
		} else {
			for _, key := range purgeKeys {
				if err := e.store.Delete(ctx, key); err != nil {
					unlock()
					return executed, storeErr("delete", err)
				}
				executed++
			}
		}
		unlock()
	}

	for _, action := range rekeys {
		if err := e.rekey(ctx, action.Key, action.Target); err != nil {
			return executed, err
		}
		executed++
	}

	e.logger.Info("Applied inventory repair plan",
		zap.Int("purged", len(purgeKeys)),
		zap.Int("rekeyed", len(rekeys)),
	)
	return executed, nil
}

// rekey moves the record under from to the key to, merging quantities with a
// record already stored there. The earliest AddedAt wins.
func (e *Engine) rekey(ctx context.Context, from, to string) error {
	unlock := e.locks.LockAll([]string{from, to})
	defer unlock()

	src, err := e.store.GetByKey(ctx, from)
	if err != nil {
		return storeErr("get", err)
	}
	if src == nil {
		// Already moved or deleted since the scan.
		return nil
	}

	merged := *src
	merged.Key = to
	norm := Normalize(src.Item(0))
	merged.Type, merged.Code, merged.Color, merged.Size, merged.Fabric =
		norm.Type, norm.Code, norm.Color, norm.Size, norm.Fabric

	dst, err := e.store.GetByKey(ctx, to)
	if err != nil {
		return storeErr("get", err)
	}
	if dst != nil {
		qty, err := addQty(dst.Qty, merged.Qty)
		if err != nil {
			return err
		}
		merged.Qty = qty
		if merged.AddedAt.IsZero() || (!dst.AddedAt.IsZero() && dst.AddedAt.Before(merged.AddedAt)) {
			merged.AddedAt = dst.AddedAt
		}
		if dst.Notes != "" {
			merged.Notes = dst.Notes
		}
	}

	if err := e.store.Upsert(ctx, merged); err != nil {
		return storeErr("upsert", err)
	}
	if err := e.store.Delete(ctx, from); err != nil {
		e.undoRekey(ctx, from, to, dst)
		return storeErr("delete", err)
	}

	e.logger.Debug("Rekeyed record", zap.String("from", from), zap.String("to", to), zap.Int("qty", merged.Qty))
	return nil
}

// undoRekey puts the target key back to dst after the source could not be
// deleted. If that fails too the source quantity is zeroed so the stock is not
// counted twice; the next scan purges it.
func (e *Engine) undoRekey(ctx context.Context, from, to string, dst *Record) {
	var err error
	if dst != nil {
		err = e.store.Upsert(ctx, *dst)
	} else {
		err = e.store.Delete(ctx, to)
	}
	if err == nil {
		return
	}

	e.logger.Warn("Failed to restore rekey target", zap.String("key", to), zap.Error(err))
	if err := e.store.UpdateQuantity(ctx, from, 0); err != nil {
		e.logger.Error("Failed to zero rekey source, stock is counted twice",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
	}
}
