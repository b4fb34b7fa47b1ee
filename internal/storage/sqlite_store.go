package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/clocklog/internal/clock"
	"github.com/alexanderramin/clocklog/internal/db"
	"github.com/alexanderramin/clocklog/internal/domain"
	"github.com/google/uuid"
)

// SQLiteStore keeps activities in the tasks and records tables and journals
// every raw entry it accepts.
type SQLiteStore struct {
	uow   db.UnitOfWork
	clock clock.Clock
	mu    sync.Mutex
}

// NewSQLiteStore creates a store whose statements all run through uow, which
// must wrap an opened and migrated database.
func NewSQLiteStore(uow db.UnitOfWork, c clock.Clock) *SQLiteStore {
	return &SQLiteStore{uow: uow, clock: clock.Or(c)}
}

// storedActivities is an activity list loaded together with its row keys.
type storedActivities struct {
	acts      []domain.Activity
	taskKeys  []string
	recordIDs [][]string
}

func (s *SQLiteStore) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, err := db.Read(ctx, s.uow, loadStored)
	if err != nil {
		return nil, wrapErr("load", "", err)
	}
	return stored.acts, nil
}

func (s *SQLiteStore) AppendEntry(ctx context.Context, task domain.Task, record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		stored, err := loadStored(ctx, tx)
		if err != nil {
			return err
		}
		return insertRecord(ctx, tx, stored, task, record, s.clock.Now())
	})
	return wrapErr("append", "", err)
}

func (s *SQLiteStore) AppendRawEntry(ctx context.Context, text string, parseTime bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	entry, err := ParseEntry(text, parseTime, now)
	if err != nil {
		return wrapErr("append raw", "", err)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		stored, err := loadStored(ctx, tx)
		if err != nil {
			return err
		}
		task, err := resolveEntry(stored.acts, entry)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", text, err)
		}
		if err := insertRecord(ctx, tx, stored, task, domain.Record{StartTime: entry.Start}, now); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO raw_entries (id, text, parse_time, created_at) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), text, boolToInt(parseTime), timeString(now.UTC()))
		if err != nil {
			return fmt.Errorf("journaling raw entry: %w", err)
		}
		return nil
	})
	return wrapErr("append raw", "", err)
}

// RawEntries returns the journaled raw entry texts, oldest first.
func (s *SQLiteStore) RawEntries(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := db.Read(ctx, s.uow, listRawEntries)
	if err != nil {
		return nil, wrapErr("list raw", "", err)
	}
	return out, nil
}

func listRawEntries(ctx context.Context, q db.DBTX) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT text FROM raw_entries ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing raw entries: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning raw entry: %w", err)
		}
		out = append(out, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating raw entries: %w", err)
	}
	return out, nil
}

// insertRecord applies the append semantics against the database: running
// records are stopped, the task row is reused (gaining any new tags) or
// created, and the record row is inserted. now stamps a created task row.
func insertRecord(ctx context.Context, tx db.DBTX, stored storedActivities, task domain.Task, record domain.Record, now time.Time) error {
	for i := range stored.acts {
		for j := range stored.acts[i].Records {
			if !stored.acts[i].Records[j].Stop(record.StartTime) {
				continue
			}
			_, err := tx.ExecContext(ctx, `UPDATE records SET end_time = ? WHERE id = ?`,
				timeString(record.StartTime), stored.recordIDs[i][j])
			if err != nil {
				return fmt.Errorf("stopping running record: %w", err)
			}
		}
	}

	var taskKey string
	if i := domain.FindTask(stored.acts, task); i >= 0 {
		taskKey = stored.taskKeys[i]
		if stored.acts[i].MergeTags(task.Tags) {
			tags, err := json.Marshal(stored.acts[i].Task.Tags)
			if err != nil {
				return fmt.Errorf("encoding tags: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `UPDATE tasks SET tags = ? WHERE key = ?`, string(tags), taskKey); err != nil {
				return fmt.Errorf("updating task tags: %w", err)
			}
		}
	} else {
		taskKey = uuid.New().String()
		tags, err := json.Marshal(task.Tags)
		if err != nil {
			return fmt.Errorf("encoding tags: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO tasks (key, task_id, title, tags, seq, created_at)
			VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks), ?)`,
			taskKey, task.ID, task.Title, string(tags), timeString(now.UTC()))
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO records (id, task_key, start_time, end_time, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM records))`,
		uuid.New().String(), taskKey, timeString(record.StartTime), nullableTimeToString(record.EndTime))
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func loadStored(ctx context.Context, q db.DBTX) (storedActivities, error) {
	var stored storedActivities
	index := make(map[string]int)

	taskRows, err := q.QueryContext(ctx, `SELECT key, task_id, title, tags FROM tasks ORDER BY seq`)
	if err != nil {
		return stored, fmt.Errorf("listing tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var key, id, title, tagsJSON string
		if err := taskRows.Scan(&key, &id, &title, &tagsJSON); err != nil {
			return stored, fmt.Errorf("scanning task row: %w", err)
		}
		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			return stored, fmt.Errorf("%w: task %q tags: %v", ErrCorrupt, title, err)
		}
		index[key] = len(stored.acts)
		stored.acts = append(stored.acts, domain.NewActivity(domain.NewTask(title, tags, id)))
		stored.taskKeys = append(stored.taskKeys, key)
		stored.recordIDs = append(stored.recordIDs, nil)
	}
	if err := taskRows.Err(); err != nil {
		return stored, fmt.Errorf("iterating tasks: %w", err)
	}
	taskRows.Close()

	recordRows, err := q.QueryContext(ctx, `SELECT id, task_key, start_time, end_time FROM records ORDER BY seq`)
	if err != nil {
		return stored, fmt.Errorf("listing records: %w", err)
	}
	defer recordRows.Close()

	for recordRows.Next() {
		var id, taskKey, startStr string
		var endStr sql.NullString
		if err := recordRows.Scan(&id, &taskKey, &startStr, &endStr); err != nil {
			return stored, fmt.Errorf("scanning record row: %w", err)
		}
		i, ok := index[taskKey]
		if !ok {
			return stored, fmt.Errorf("%w: record %s references missing task", ErrCorrupt, id)
		}
		start, err := time.Parse(time.RFC3339Nano, startStr)
		if err != nil {
			return stored, fmt.Errorf("%w: parsing start_time: %v", ErrCorrupt, err)
		}
		end, err := parseNullableTime(endStr)
		if err != nil {
			return stored, fmt.Errorf("%w: parsing end_time: %v", ErrCorrupt, err)
		}
		rec, err := domain.NewRecord(start, end)
		if err != nil {
			return stored, fmt.Errorf("%w: record %s: %v", ErrCorrupt, id, err)
		}
		stored.acts[i].AddRecord(rec)
		stored.recordIDs[i] = append(stored.recordIDs[i], id)
	}
	if err := recordRows.Err(); err != nil {
		return stored, fmt.Errorf("iterating records: %w", err)
	}
	return stored, nil
}
