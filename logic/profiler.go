package logic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"social_osint/shared"
	"time"

	"go.uber.org/fx"
)

const profilerStartDelay = 10 * time.Second
const profilerInterval = time.Minute

// IProfiler periodically dumps goroutine stacks while the API server runs.
type IProfiler interface {
	// SaveAndPurge writes one dump and removes dumps older than the retention period.
	SaveAndPurge(now time.Time) error
}

type profiler struct {
	cfg    *shared.Config
	logger shared.ILogger
	stop   chan struct{}
	done   chan struct{}
}

// NewProfiler hooks the dump loop into the app lifecycle. With profile_keep_days at 0 it does nothing.
func NewProfiler(cfg *shared.Config, logger shared.ILogger, lc fx.Lifecycle) IProfiler {
	prof := &profiler{
		cfg:    cfg,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if cfg.ProfileKeepDays <= 0 {
		return prof
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := os.MkdirAll(cfg.ProfileDir(), 0755); err != nil {
				return fmt.Errorf("failed to create profile directory: %w", err)
			}
			go prof.loop()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(prof.stop)
			select {
			case <-prof.done:
			case <-ctx.Done():
			}
			return nil
		},
	})
	return prof
}

func (prof *profiler) loop() {
	defer close(prof.done)
	timer := time.NewTimer(profilerStartDelay)
	defer timer.Stop()
	for {
		select {
		case <-prof.stop:
			return
		case now := <-timer.C:
			if err := prof.SaveAndPurge(now); err != nil {
				prof.logger.Warnf("Failed to save goroutine profile: %v", err)
			}
			timer.Reset(profilerInterval)
		}
	}
}

func (prof *profiler) SaveAndPurge(now time.Time) error {
	if err := saveProfile(prof.cfg.ProfileDir(), now); err != nil {
		return err
	}
	return purgeOld(prof.cfg.ProfileDir(), now.AddDate(0, 0, -prof.cfg.ProfileKeepDays))
}

func saveProfile(profileDir string, now time.Time) error {
	fname := now.Format("2006-01-02!15-04-05") + ".txt"
	f, err := os.Create(filepath.Join(profileDir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

func purgeOld(profileDir string, cutoff time.Time) error {
	entries, err := os.ReadDir(profileDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err = os.Remove(filepath.Join(profileDir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}
