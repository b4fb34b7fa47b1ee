package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Task identifies a kind of work that records are logged against.
type Task struct {
	Title string
	Tags  []string
	ID    string
}

// NewTask builds a Task with a normalised tag set: tags are trimmed, empty
// values dropped and duplicates removed, keeping first-seen order. Title,
// tags and ID are put in Unicode NFC so composed and decomposed input match.
func NewTask(title string, tags []string, id string) Task {
	return Task{
		Title: normalizeText(title),
		Tags:  normalizeTags(tags),
		ID:    normalizeText(id),
	}
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = normalizeText(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// HasTags reports whether the task carries every tag in required.
// Extra tags on the task are allowed; an empty requirement always matches.
func (t Task) HasTags(required []string) bool {
	for _, tag := range required {
		if !slices.Contains(t.Tags, normalizeText(tag)) {
			return false
		}
	}
	return true
}

// Matches reports whether t and other denote the same task. When both carry
// an ID the IDs decide; otherwise the title and tag set must be equal.
func (t Task) Matches(other Task) bool {
	if t.ID != "" && other.ID != "" {
		return t.ID == other.ID
	}
	if t.Title != other.Title {
		return false
	}
	return sameTagSet(t.Tags, other.Tags)
}

func sameTagSet(a, b []string) bool {
	a, b = normalizeTags(a), normalizeTags(b)
	if len(a) != len(b) {
		return false
	}
	for _, tag := range a {
		if !slices.Contains(b, tag) {
			return false
		}
	}
	return true
}

// Label renders the task the way it is typed in a raw entry.
func (t Task) Label() string {
	parts := make([]string, 0, len(t.Tags)+2)
	if t.Title != "" {
		parts = append(parts, t.Title)
	}
	for _, tag := range t.Tags {
		parts = append(parts, "+"+tag)
	}
	if t.ID != "" {
		parts = append(parts, "."+t.ID)
	}
	return strings.Join(parts, " ")
}
