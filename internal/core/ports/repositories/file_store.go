package repositories

import (
	"context"
	"io"
)

// FileMover persists an uploaded file under a generated unique name and
// returns the relative path of the stored file. Failures (disk, permission)
// are surfaced as-is to the caller.
type FileMover interface {
	Save(ctx context.Context, content io.Reader, originalName string) (string, error)
}
