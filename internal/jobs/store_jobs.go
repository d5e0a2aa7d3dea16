package jobs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/logger"
)

const backupTimeFormat = "20060102T150405"

// BackupStore copies the datastore file into the backup directory with
// a timestamped name and prunes the oldest copies beyond the retention
// count.
func (jr *JobRunner) BackupStore() {
	jr.runWithRecovery("backup-store", func() {
		cfg := jr.config.Store

		data, err := os.ReadFile(cfg.Path)
		if err != nil {
			logger.Error("Failed to read datastore for backup", "path", cfg.Path, "error", err)
			return
		}

		if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
			logger.Error("Failed to create backup directory", "dir", cfg.BackupDir, "error", err)
			return
		}

		name := "lendify-" + time.Now().UTC().Format(backupTimeFormat) + ".json"
		target := filepath.Join(cfg.BackupDir, name)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			logger.Error("Failed to write backup", "target", target, "error", err)
			return
		}
		logger.Info("Datastore backed up", "target", target, "bytes", len(data))

		jr.pruneBackups(cfg.BackupDir, cfg.BackupRetain)
	})
}

func (jr *JobRunner) pruneBackups(dir string, retain int) {
	matches, err := filepath.Glob(filepath.Join(dir, "lendify-*.json"))
	if err != nil || len(matches) <= retain {
		return
	}
	// Timestamped names sort chronologically.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-retain] {
		if err := os.Remove(old); err != nil {
			logger.Warn("Failed to prune backup", "file", old, "error", err)
			continue
		}
		logger.Info("Pruned old backup", "file", old)
	}
}

// ReportOverdueCheckouts logs every Active checkout older than the
// configured age. Report-only: the trust ledger stays untouched until a
// return or rating comes in through the API.
func (jr *JobRunner) ReportOverdueCheckouts() {
	jr.runWithRecovery("report-overdue-checkouts", func() {
		doc, err := jr.store.Load(context.Background())
		if err != nil {
			logger.Error("Failed to load datastore", "error", err)
			return
		}

		cutoff := time.Now().Add(-time.Duration(jr.config.Scheduler.OverdueAfterHours) * time.Hour)
		overdue := 0
		for i := range doc.Checkouts {
			c := &doc.Checkouts[i]
			if c.Status != domain.CheckoutStatusActive {
				continue
			}
			checkedOut, err := time.Parse(time.RFC3339, c.CheckoutTime)
			if err != nil {
				logger.Warn("Unparseable checkout time", "checkout_id", c.ID, "value", c.CheckoutTime)
				continue
			}
			if checkedOut.Before(cutoff) {
				overdue++
				logger.Warn("Overdue checkout",
					"checkout_id", c.ID,
					"tool_id", c.ToolID,
					"tool_name", c.ToolName,
					"borrower_id", c.BorrowerID,
					"checked_out", c.CheckoutTime,
				)
			}
		}
		logger.Info("Overdue scan finished", "active_overdue", overdue)
	})
}
