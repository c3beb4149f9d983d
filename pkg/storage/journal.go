// Package storage provides the session journal: an append-only transcript of
// every raw input line, written for in-run audit. Nothing is ever read back.
package storage

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/quantrove/matchbook/pkg/util"
)

// Journal records raw operation lines as they arrive.
type Journal interface {
	Append(line string)
}

type NopJournal struct{}

func NewNopJournal() *NopJournal      { return &NopJournal{} }
func (j *NopJournal) Append(_ string) {}

// FileJournal appends timestamped lines to a file.
type FileJournal struct {
	mu    sync.Mutex
	f     *os.File
	clock util.Clock
}

func NewFileJournal(path string, clock util.Clock) (*FileJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileJournal{f: f, clock: clock}, nil
}

func (j *FileJournal) Append(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.f, "%s %s\n", j.clock.Now().Format(time.RFC3339Nano), line)
}

func (j *FileJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.f.Close()
}

var _ Journal = (*NopJournal)(nil)
var _ Journal = (*FileJournal)(nil)
