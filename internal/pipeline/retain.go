package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"ytmeta/internal/fileutil"
)

const lockRetryDelay = 100 * time.Millisecond

// retainAudio moves audioPath into keepDir under its own base name. An
// advisory lock on keepDir/.<basename>.lock serializes concurrent runs
// retaining the same file; the lock file is removed once released.
func retainAudio(ctx context.Context, audioPath, keepDir string) (string, error) {
	base := filepath.Base(audioPath)
	lock := flock.New(filepath.Join(keepDir, "."+base+".lock"))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return "", fmt.Errorf("lock %s: %w", lock.Path(), errors.New("not acquired"))
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	dest := filepath.Join(keepDir, base)
	if err := fileutil.MoveFile(audioPath, dest); err != nil {
		return "", err
	}
	return dest, nil
}
