package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// filePrefix and fileExt frame every log file name this process writes;
// Sweep only ever touches files matching them.
const (
	filePrefix = "osenotify-"
	fileExt    = ".log"
)

// Setup installs the default slog logger: JSON records to stdout, teed into
// a timestamped file under dir when dir is non-empty. The returned close
// function releases the file handle.
func Setup(dir string) (func(), error) {
	var w io.Writer = os.Stdout
	closeFn := func() {}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: create dir: %w", err)
		}
		name := filepath.Join(dir, filePrefix+time.Now().Format("20060102-150405")+fileExt)
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, f)
		closeFn = func() { f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return closeFn, nil
}

// Sweep removes log files under dir older than retention and returns how
// many were deleted. A missing or empty dir is a no-op. Files that do not
// carry this process's log name pattern are left alone.
func Sweep(dir string, retention time.Duration) int {
	if dir == "" {
		return 0
	}

	matches, err := filepath.Glob(filepath.Join(dir, filePrefix+"*"+fileExt))
	if err != nil {
		return 0
	}

	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			slog.Error("logging: sweep could not remove file", "path", path, "err", err)
			continue
		}
		removed++
		slog.Info("logging: removed expired log file", "file", filepath.Base(path))
	}
	return removed
}
