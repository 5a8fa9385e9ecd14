package disnes

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
)

// fsReadRange reads exactly length bytes from path starting at offset. ctx
// bounds the read: it's checked before the open and before the read so a
// canceled context stops the manifest load at its next I/O boundary rather
// than partway through a syscall.
func fsReadRange(ctx context.Context, path string, offset, length int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "disnes: open %s", path)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "disnes: seek %s to %#x", path, offset)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errors.Wrapf(err, "disnes: read %#x byte(s) from %s at %#x", length, path, offset)
	}

	return buf, nil
}
