// Package fs provides the filesystem probe behind staleness decisions.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileStat = (*Stat)(nil)

// Stat implements ports.FileStat over the local filesystem.
type Stat struct{}

// NewStat creates a new Stat.
func NewStat() *Stat {
	return &Stat{}
}

// ModTime returns the modification time of path at whatever resolution the
// filesystem exposes. A missing file is not an error: it reports exists
// false so the evaluator can treat it as "output absent, rebuild".
func (s *Stat) ModTime(path string) (time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime(), true, nil
}
