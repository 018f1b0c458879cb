package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dkp-auctioneer/internal/auctionerrors"
	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/utils"
)

// timestampLayout matches the bracketed format used in the persisted files
const timestampLayout = "[2006-01-02 15:04:05]"

// Recorder is the append-only audit interface used by the auction engine
type Recorder interface {
	Append(userID, displayName, action string, amount int, description string) error
	UserLog(userID string, limit int) ([]model.LogEntry, error)
	RecordCreation(name, item, description string, createdAt, endTime time.Time) (int, error)
	RecordResult(auctionID int, closedAt time.Time, topBids []model.TopBid) error
	AuctionRecord(auctionID int) (model.AuctionRecord, error)
}

// userLog groups a user's audit entries under their display name
type userLog struct {
	DisplayName string           `json:"display_name"`
	Logs        []model.LogEntry `json:"logs"`
}

// historyFile is the persisted auction-history layout. LastID is the
// monotonic auction id counter carried across restarts.
type historyFile struct {
	LastID   int                            `json:"last_id"`
	Auctions map[string]model.AuctionRecord `json:"auctions"`
}

// FileLog is a concurrency-safe Recorder backed by two JSON files:
// points_log.json for ledger changes and auction_log.json for outcomes.
type FileLog struct {
	mu          sync.Mutex
	pointsPath  string
	auctionPath string
	points      map[string]*userLog
	history     historyFile
	nowFn       func() time.Time
}

// NewFileLog loads both audit files from dir. Missing or corrupt files
// degrade to empty datasets with a logged warning. A nil clock defaults
// to time.Now.
func NewFileLog(dir string, now func() time.Time) (*FileLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audit: failed to create data dir %s: %w", dir, err)
	}
	if now == nil {
		now = time.Now
	}

	log := &FileLog{
		nowFn:       now,
		pointsPath:  filepath.Join(dir, "points_log.json"),
		auctionPath: filepath.Join(dir, "auction_log.json"),
		points:      make(map[string]*userLog),
		history:     historyFile{Auctions: make(map[string]model.AuctionRecord)},
	}

	// A failed load may have partially filled the target before erroring;
	// reset it so a malformed file really does start empty.
	if !loadJSON(log.pointsPath, &log.points) || log.points == nil {
		log.points = make(map[string]*userLog)
	}
	if !loadJSON(log.auctionPath, &log.history) || log.history.Auctions == nil {
		log.history = historyFile{Auctions: make(map[string]model.AuctionRecord)}
	}
	return log, nil
}

// Append records a single ledger change against a user
func (l *FileLog) Append(userID, displayName, action string, amount int, description string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.points[userID]
	if !ok {
		entry = &userLog{DisplayName: displayName}
		l.points[userID] = entry
	} else if displayName != "" {
		entry.DisplayName = displayName
	}

	entry.Logs = append(entry.Logs, model.LogEntry{
		Timestamp:   l.nowFn().UTC().Format(timestampLayout),
		Action:      action,
		Amount:      amount,
		Description: description,
	})
	return saveJSON(l.pointsPath, l.points)
}

// UserLog returns the user's most recent entries, newest last, capped at limit
func (l *FileLog) UserLog(userID string, limit int) ([]model.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.points[userID]
	if !ok || len(entry.Logs) == 0 {
		return nil, fmt.Errorf("audit: user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}

	logs := entry.Logs
	if limit > 0 && len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}
	return append([]model.LogEntry(nil), logs...), nil
}

// RecordCreation allocates the next auction id, persists the creation
// record, and returns the id. The record must exist before the auction is
// visible to bidders so a half-created auction can never collect bids.
func (l *FileLog) RecordCreation(name, item, description string, createdAt, endTime time.Time) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	auctionID := l.history.LastID + 1
	record := model.AuctionRecord{
		ID:          auctionID,
		Name:        name,
		Item:        item,
		Description: description,
		CreatedAt:   createdAt.UTC().Format(timestampLayout),
		DateOfEnd:   endTime.UTC().Format(timestampLayout),
		TopBids:     []model.TopBid{},
	}

	key := fmt.Sprintf("%s_%d", name, auctionID)
	l.history.Auctions[key] = record
	l.history.LastID = auctionID

	if err := saveJSON(l.auctionPath, &l.history); err != nil {
		delete(l.history.Auctions, key)
		l.history.LastID = auctionID - 1
		return 0, err
	}
	return auctionID, nil
}

// RecordResult attaches the closing time and top bids to an auction record.
// This is the only mutation an audit record ever receives after creation.
func (l *FileLog) RecordResult(auctionID int, closedAt time.Time, topBids []model.TopBid) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, record := range l.history.Auctions {
		if record.ID == auctionID {
			if topBids == nil {
				topBids = []model.TopBid{}
			}
			record.TopBids = topBids
			record.DateOfEnd = closedAt.UTC().Format(timestampLayout)
			l.history.Auctions[key] = record
			return saveJSON(l.auctionPath, &l.history)
		}
	}
	return fmt.Errorf("audit: auction %d: %w", auctionID, auctionerrors.ErrHistoryNotFound)
}

// AuctionRecord looks up the history record for an auction id
func (l *FileLog) AuctionRecord(auctionID int) (model.AuctionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, record := range l.history.Auctions {
		if record.ID == auctionID {
			return record, nil
		}
	}
	return model.AuctionRecord{}, fmt.Errorf("audit: auction %d: %w", auctionID, auctionerrors.ErrHistoryNotFound)
}

// loadJSON reads a JSON file into target, tolerating absent or corrupt
// data. It reports whether target holds a complete decode; on a false
// return the caller must discard target, since a failed unmarshal can
// leave it partially filled.
func loadJSON(path string, target any) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Warn("audit: could not read audit file, starting empty", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
		return false
	}
	if len(content) == 0 {
		return false
	}
	if err := json.Unmarshal(content, target); err != nil {
		utils.Warn("audit: malformed audit file, starting empty", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// saveJSON writes atomically via temp file and rename
func saveJSON(path string, data any) error {
	bytes, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("audit: failed to marshal audit data: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0o644); err != nil {
		return fmt.Errorf("audit: failed to write audit file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("audit: failed to replace audit file: %w", err)
	}
	return nil
}
