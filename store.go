package ithub

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Store owns the persisted aggregate. Every command method performs one
// load-modify-save unit: the full intended new state is built in memory
// and persisted once, so a failure part-way leaves the snapshot
// untouched. There is no locking; the tool is designed for a single local
// session, and the last writer wins.
type Store struct {
	// Path is the location of the JSON snapshot file.
	Path string
}

// NewStore returns a store backed by the given snapshot file.
func NewStore(path string) *Store { return &Store{Path: path} }

// Load returns the current aggregate. On first-ever use it initializes
// the snapshot with the seed dataset and returns that seed. A snapshot
// written by an older schema version gets its missing collections
// backfilled with the seed defaults (migration-on-read). A snapshot that
// exists but cannot be decoded is an error; Load never reseeds over it.
func (s *Store) Load() (*AppData, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		data := seedData(time.Now())
		if err := s.Save(data); err != nil {
			return nil, err
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read data file %q: %w", s.Path, err)
	}

	var data AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("cannot decode data file %q: %w", s.Path, err)
	}
	backfill(&data)
	return &data, nil
}

// Save replaces the entire persisted aggregate. The snapshot is written
// to a temporary file and renamed into place, so a failed write never
// truncates the previous one.
func (s *Store) Save(data *AppData) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode data: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory for %q: %w", s.Path, err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return fmt.Errorf("cannot write data file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("cannot replace data file %q: %w", s.Path, err)
	}
	return nil
}

// backfill fills collections missing from snapshots written by older
// schema versions with their seed defaults, and derives the ticket
// counter for snapshots that predate it.
func backfill(data *AppData) {
	seed := seedData(time.Now())
	if data.Users == nil {
		data.Users = seed.Users
	}
	if data.Products == nil {
		data.Products = seed.Products
	}
	if data.Services == nil {
		data.Services = seed.Services
	}
	if data.Transactions == nil {
		data.Transactions = []Transaction{}
	}
	if data.Expenses == nil {
		data.Expenses = []Expense{}
	}
	if data.Tickets == nil {
		data.Tickets = seed.Tickets
	}
	if data.TicketSeq == 0 {
		// Legacy snapshots derived numbers from the collection length;
		// reproduce that value once, then count durably from here on.
		data.TicketSeq = 1000 + len(data.Tickets)
	}
}
