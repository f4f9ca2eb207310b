package ports

import "time"

// FileStat probes the filesystem state that staleness decisions depend on.
//
//go:generate go run go.uber.org/mock/mockgen -source=file_stat.go -destination=mocks/mock_file_stat.go -package=mocks
type FileStat interface {
	// ModTime returns the modification time of the file at path. When the
	// file does not exist it returns a zero time, exists false, and a nil
	// error; the error is reserved for other stat failures.
	ModTime(path string) (mtime time.Time, exists bool, err error)
}
