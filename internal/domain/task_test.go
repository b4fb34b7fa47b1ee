package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_NormalizesTags(t *testing.T) {
	task := NewTask("  Review  ", []string{"work", " work", "", "code "}, " 42 ")
	assert.Equal(t, "Review", task.Title)
	assert.Equal(t, []string{"work", "code"}, task.Tags)
	assert.Equal(t, "42", task.ID)
}

func TestNewTask_ComposesUnicode(t *testing.T) {
	decomposed := NewTask("Cafe\u0301", []string{"re\u0301sume\u0301"}, "")
	composed := NewTask("Caf\u00e9", []string{"r\u00e9sum\u00e9"}, "")

	assert.Equal(t, composed, decomposed)
	assert.True(t, decomposed.Matches(composed))
	assert.True(t, composed.HasTags([]string{"re\u0301sume\u0301"}))
}

func TestTask_HasTags(t *testing.T) {
	task := NewTask("Entry", []string{"tag1", "tag2"}, "")

	cases := []struct {
		name     string
		required []string
		want     bool
	}{
		{"subset", []string{"tag1"}, true},
		{"exact", []string{"tag2", "tag1"}, true},
		{"repeated", []string{"tag1", "tag1"}, true},
		{"missing", []string{"tag1", "tag3"}, false},
		{"disjoint", []string{"other"}, false},
		{"empty", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, task.HasTags(tc.required))
		})
	}
}

func TestTask_HasTags_UntaggedNeverMatches(t *testing.T) {
	task := NewTask("Entry", nil, "")
	assert.False(t, task.HasTags([]string{"tag"}))
}

func TestTask_Matches(t *testing.T) {
	cases := []struct {
		name string
		a, b Task
		want bool
	}{
		{"same id different title", NewTask("A", nil, "1"), NewTask("B", nil, "1"), true},
		{"same title different id", NewTask("A", nil, "1"), NewTask("A", nil, "2"), false},
		{"one id missing falls back to title", NewTask("A", []string{"x"}, "1"), NewTask("A", []string{"x"}, ""), true},
		{"tag order ignored", NewTask("A", []string{"x", "y"}, ""), NewTask("A", []string{"y", "x"}, ""), true},
		{"tags differ", NewTask("A", []string{"x"}, ""), NewTask("A", []string{"y"}, ""), false},
		{"titles differ", NewTask("A", nil, ""), NewTask("B", nil, ""), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Matches(tc.b))
		})
	}
}

func TestTask_Label(t *testing.T) {
	task := NewTask("New Entry", []string{"dev"}, "123")
	assert.Equal(t, "New Entry +dev .123", task.Label())
}
