package domain

import "time"

// Activity pairs a task with the records logged against it. Records keep
// insertion order, which is not necessarily chronological.
type Activity struct {
	Task    Task
	Records []Record
}

// NewActivity creates an activity for task with the given records.
func NewActivity(task Task, records ...Record) Activity {
	return Activity{Task: task, Records: append([]Record(nil), records...)}
}

// AddRecord appends r to the activity.
func (a *Activity) AddRecord(r Record) {
	a.Records = append(a.Records, r)
}

// MergeTags adds the tags the task does not carry yet, keeping existing
// order. It reports whether the tag set changed.
func (a *Activity) MergeTags(tags []string) bool {
	merged := NewTask(a.Task.Title, append(append([]string(nil), a.Task.Tags...), tags...), a.Task.ID)
	if len(merged.Tags) == len(a.Task.Tags) {
		return false
	}
	a.Task = merged
	return true
}

// Duration sums the durations of all records.
func (a Activity) Duration(now time.Time) time.Duration {
	var total time.Duration
	for _, r := range a.Records {
		total += r.Duration(now)
	}
	return total
}

// RecordsOn returns the records starting on day's calendar date, in order.
func (a Activity) RecordsOn(day time.Time) []Record {
	var out []Record
	for _, r := range a.Records {
		if r.StartsOn(day) {
			out = append(out, r)
		}
	}
	return out
}

// StopRunning closes every running record that started at or before at.
// It returns the number of records closed.
func (a *Activity) StopRunning(at time.Time) int {
	n := 0
	for i := range a.Records {
		if a.Records[i].Stop(at) {
			n++
		}
	}
	return n
}

// StopRunningIn closes running records across all activities.
func StopRunningIn(activities []Activity, at time.Time) int {
	n := 0
	for i := range activities {
		n += activities[i].StopRunning(at)
	}
	return n
}

// FindTask returns the index of the activity whose task matches task, or -1.
func FindTask(activities []Activity, task Task) int {
	for i, a := range activities {
		if a.Task.Matches(task) {
			return i
		}
	}
	return -1
}

// FindTaskByID returns the index of the activity whose task has the given ID, or -1.
func FindTaskByID(activities []Activity, id string) int {
	if id == "" {
		return -1
	}
	for i, a := range activities {
		if a.Task.ID == id {
			return i
		}
	}
	return -1
}
