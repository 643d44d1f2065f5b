package scheduler

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookhub/internal/exporters"
)

// backupTimeLayout keeps backup file names sortable.
const backupTimeLayout = "20060102-150405"

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule validates a five-field cron schedule string.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// BackupFileName returns the file name of a backup taken at t.
func BackupFileName(t time.Time) string {
	return fmt.Sprintf("books_export-%s.xlsx", t.Format(backupTimeLayout))
}

// ExportBackupScheduler periodically writes the books table as an xlsx
// file into a backup directory.
type ExportBackupScheduler struct {
	scanner  exporters.TableScanner
	dir      string
	schedule string
	now      func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	lastMu     sync.Mutex
	lastPath   string
	lastResult exporters.ExportResult
	lastErr    error
}

// NewExportBackupScheduler creates a new scheduler instance
func NewExportBackupScheduler(scanner exporters.TableScanner, dir, schedule string) *ExportBackupScheduler {
	return &ExportBackupScheduler{
		scanner:  scanner,
		dir:      dir,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start schedules the backup job. The scheduler stops when ctx is done.
func (s *ExportBackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.dir == "" {
		log.Printf("Export backup scheduler: backup directory not configured, skipping")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runBackup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Export backup scheduler: started with schedule '%s', writing to %s", s.schedule, s.dir)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running backup to finish and stops the scheduler.
func (s *ExportBackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Export backup scheduler: stopped")
}

// RunNow triggers an immediate backup in the background.
func (s *ExportBackupScheduler) RunNow() {
	go s.runBackup(context.Background())
}

// Backup writes one backup file and returns its path.
func (s *ExportBackupScheduler) Backup(ctx context.Context) (string, exporters.ExportResult, error) {
	path := filepath.Join(s.dir, BackupFileName(s.now()))
	result, err := exporters.WriteFile(ctx, s.scanner, path)
	if err != nil {
		return "", result, fmt.Errorf("backup to %s: %w", path, err)
	}
	return path, result, nil
}

// IsRunning returns whether the scheduler is active
func (s *ExportBackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next backup will occur
func (s *ExportBackupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	t := entry.Next
	return &t
}

// LastBackup reports the outcome of the most recent backup run.
func (s *ExportBackupScheduler) LastBackup() (string, exporters.ExportResult, error) {
	s.lastMu.Lock()
	defer s.lastMu.Unlock()
	return s.lastPath, s.lastResult, s.lastErr
}

func (s *ExportBackupScheduler) runBackup(ctx context.Context) {
	startTime := time.Now()
	path, result, err := s.Backup(ctx)

	s.lastMu.Lock()
	s.lastPath, s.lastResult, s.lastErr = path, result, err
	s.lastMu.Unlock()

	if err != nil {
		log.Printf("Export backup: failed: %v", err)
		return
	}
	log.Printf("Export backup: wrote %d rows to %s in %v", result.Rows, path, time.Since(startTime).Round(time.Millisecond))
}
