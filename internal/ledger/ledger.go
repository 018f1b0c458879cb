package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"dkp-auctioneer/internal/auctionerrors"
	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/utils"
)

// Store defines the durable points-balance interface for the auction engine
type Store interface {
	GetBalance(userID string) int
	Credit(userID, displayName string, amount int) (int, error)
	Debit(userID, displayName string, amount int) (int, error)
	Remove(userID string) error
	Register(users []model.User) (int, error)
	Standings() []model.Standing
}

// FileStore is a concurrency-safe Store backed by a single JSON file.
// Every read-modify-write cycle holds the exclusive lock so concurrent
// credits and debits can never lose an update.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]*model.LedgerEntry
}

// NewFileStore loads the ledger file at dir/ledger.json. A missing or
// corrupt file degrades to an empty ledger with a logged warning.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ledger: failed to create data dir %s: %w", dir, err)
	}

	store := &FileStore{
		path:    filepath.Join(dir, "ledger.json"),
		entries: make(map[string]*model.LedgerEntry),
	}

	content, err := os.ReadFile(store.path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Warn("ledger: could not read ledger file, starting empty", map[string]any{
				"path":  store.path,
				"error": err.Error(),
			})
		}
		return store, nil
	}

	if len(content) > 0 {
		if err := json.Unmarshal(content, &store.entries); err != nil {
			utils.Warn("ledger: malformed ledger file, starting empty", map[string]any{
				"path":  store.path,
				"error": err.Error(),
			})
			store.entries = make(map[string]*model.LedgerEntry)
		}
	}
	return store, nil
}

// GetBalance returns the user's balance, zero for unknown users
func (s *FileStore) GetBalance(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[userID]; ok {
		return entry.Balance
	}
	return 0
}

// Credit adds amount to the user's balance, creating the entry lazily,
// and returns the new balance
func (s *FileStore) Credit(userID, displayName string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("ledger: %w - credit amount must be positive", auctionerrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.getOrCreate(userID, displayName)
	entry.Balance += amount

	if err := s.save(); err != nil {
		entry.Balance -= amount
		return 0, err
	}
	return entry.Balance, nil
}

// Debit subtracts amount from the user's balance, clamped at zero, and
// returns the new balance. The ledger is a capped currency pool, not a
// strict accounting system, so over-debit floors rather than fails.
func (s *FileStore) Debit(userID, displayName string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("ledger: %w - debit amount must be positive", auctionerrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.getOrCreate(userID, displayName)
	previous := entry.Balance
	entry.Balance = max(0, entry.Balance-amount)

	if err := s.save(); err != nil {
		entry.Balance = previous
		return 0, err
	}
	return entry.Balance, nil
}

// Remove deletes the user from the ledger entirely
func (s *FileStore) Remove(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[userID]; !ok {
		return fmt.Errorf("ledger: remove user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	delete(s.entries, userID)
	return s.save()
}

// Register adds any missing users with a zero balance and refreshes the
// display names of existing ones. It returns the number of users added.
func (s *FileStore) Register(users []model.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, user := range users {
		if user.UserID == "" {
			continue
		}
		if entry, ok := s.entries[user.UserID]; ok {
			if user.DisplayName != "" {
				entry.DisplayName = user.DisplayName
			}
			continue
		}
		s.entries[user.UserID] = &model.LedgerEntry{DisplayName: user.DisplayName}
		added++
	}

	if err := s.save(); err != nil {
		return 0, err
	}
	return added, nil
}

// Standings returns all ledger entries sorted by balance descending,
// ties broken by user id for a stable order
func (s *FileStore) Standings() []model.Standing {
	s.mu.Lock()
	defer s.mu.Unlock()

	standings := make([]model.Standing, 0, len(s.entries))
	for userID, entry := range s.entries {
		standings = append(standings, model.Standing{
			UserID:      userID,
			DisplayName: entry.DisplayName,
			Balance:     entry.Balance,
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Balance != standings[j].Balance {
			return standings[i].Balance > standings[j].Balance
		}
		return standings[i].UserID < standings[j].UserID
	})
	return standings
}

// getOrCreate must be called with s.mu held
func (s *FileStore) getOrCreate(userID, displayName string) *model.LedgerEntry {
	entry, ok := s.entries[userID]
	if !ok {
		entry = &model.LedgerEntry{DisplayName: displayName}
		s.entries[userID] = entry
	} else if displayName != "" {
		entry.DisplayName = displayName
	}
	return entry
}

// save writes the ledger atomically via a temp file and rename, so a crash
// leaves either the old file or the new one, never a torn write.
// Must be called with s.mu held.
func (s *FileStore) save() error {
	bytes, err := json.MarshalIndent(s.entries, "", "    ")
	if err != nil {
		return fmt.Errorf("ledger: failed to marshal ledger: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0o644); err != nil {
		return fmt.Errorf("ledger: failed to write ledger file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("ledger: failed to replace ledger file: %w", err)
	}
	return nil
}
