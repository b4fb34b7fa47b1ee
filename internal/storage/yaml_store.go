package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexanderramin/clocklog/internal/clock"
	"github.com/alexanderramin/clocklog/internal/domain"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Activities []yamlActivity `yaml:"activities"`
}

type yamlActivity struct {
	Task    yamlTask     `yaml:"task"`
	Records []yamlRecord `yaml:"records"`
}

type yamlTask struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags,flow,omitempty"`
	ID    string   `yaml:"id,omitempty"`
}

type yamlRecord struct {
	Start time.Time  `yaml:"start"`
	End   *time.Time `yaml:"end,omitempty"`
}

// YAMLStore keeps all activities in a single YAML document on disk.
type YAMLStore struct {
	path  string
	clock clock.Clock
	mu    sync.Mutex
}

// NewYAMLStore creates a store backed by the file at path. The file is
// created on the first append; a missing file loads as no activities.
func NewYAMLStore(path string, c clock.Clock) *YAMLStore {
	return &YAMLStore{path: path, clock: clock.Or(c)}
}

// Path returns the backing file path.
func (s *YAMLStore) Path() string { return s.path }

func (s *YAMLStore) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acts, err := s.load()
	return acts, wrapErr("load", s.path, err)
}

func (s *YAMLStore) AppendEntry(ctx context.Context, task domain.Task, record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wrapErr("append", s.path, s.update(func(acts []domain.Activity) ([]domain.Activity, error) {
		return appendTo(acts, task, record), nil
	}))
}

func (s *YAMLStore) AppendRawEntry(ctx context.Context, text string, parseTime bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, err := ParseEntry(text, parseTime, s.clock.Now())
	if err != nil {
		return wrapErr("append raw", s.path, err)
	}
	return wrapErr("append raw", s.path, s.update(func(acts []domain.Activity) ([]domain.Activity, error) {
		task, err := resolveEntry(acts, entry)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", text, err)
		}
		return appendTo(acts, task, domain.Record{StartTime: entry.Start}), nil
	}))
}

func (s *YAMLStore) update(fn func([]domain.Activity) ([]domain.Activity, error)) error {
	acts, err := s.load()
	if err != nil {
		return err
	}
	acts, err = fn(acts)
	if err != nil {
		return err
	}
	return s.save(acts)
}

func (s *YAMLStore) load() ([]domain.Activity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading activities: %w", err)
	}

	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	acts := make([]domain.Activity, 0, len(doc.Activities))
	for i, ya := range doc.Activities {
		if ya.Task.Title == "" {
			return nil, fmt.Errorf("%w: activity %d has no title", ErrCorrupt, i)
		}
		a := domain.NewActivity(domain.NewTask(ya.Task.Title, ya.Task.Tags, ya.Task.ID))
		for _, yr := range ya.Records {
			r, err := domain.NewRecord(yr.Start, yr.End)
			if err != nil {
				return nil, fmt.Errorf("%w: activity %q: %v", ErrCorrupt, ya.Task.Title, err)
			}
			a.AddRecord(r)
		}
		acts = append(acts, a)
	}
	return acts, nil
}

func (s *YAMLStore) save(acts []domain.Activity) error {
	doc := yamlFile{Activities: make([]yamlActivity, 0, len(acts))}
	for _, a := range acts {
		ya := yamlActivity{
			Task:    yamlTask{Title: a.Task.Title, Tags: a.Task.Tags, ID: a.Task.ID},
			Records: make([]yamlRecord, 0, len(a.Records)),
		}
		for _, r := range a.Records {
			ya.Records = append(ya.Records, yamlRecord{Start: r.StartTime, End: r.EndTime})
		}
		doc.Activities = append(doc.Activities, ya)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing activities: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing activities file: %w", err)
	}
	return nil
}
