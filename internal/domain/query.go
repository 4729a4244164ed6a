package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter names a predicate narrowing the visible task set, independent of
// search and sort.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterActive       Filter = "active"       // Not completed
	FilterCompleted    Filter = "completed"    // Completed
	FilterHighPriority Filter = "highPriority" // Priority == high
	FilterDueSoon      Filter = "dueSoon"      // DueSoon flag set
)

// AllFilters returns all valid filters in cycling order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted, FilterHighPriority, FilterDueSoon}
}

// IsValid returns true if the filter is a known value.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted, FilterHighPriority, FilterDueSoon:
		return true
	default:
		return false
	}
}

// Next returns the following filter in cycling order.
func (f Filter) Next() Filter {
	all := AllFilters()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Display returns a human-readable representation of the filter.
func (f Filter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	case FilterHighPriority:
		return "High Priority"
	case FilterDueSoon:
		return "Due Soon"
	default:
		return string(f)
	}
}

// Match reports whether a task passes the filter predicate.
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterHighPriority:
		return t.Priority == PriorityHigh
	case FilterDueSoon:
		return t.DueSoon
	default:
		return true
	}
}

// ParseFilter converts a string into a Filter.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.IsValid() {
		return "", ErrInvalidFilter
	}
	return f, nil
}

// SortKey names the ordering applied to the visible task set.
type SortKey string

const (
	SortByDueDate  SortKey = "dueDate"  // Ascending chronological
	SortByPriority SortKey = "priority" // Descending rank, stable ties
	SortByTitle    SortKey = "title"    // Ascending locale-aware
	SortByCreated  SortKey = "created"  // Newest first (descending ID)
)

// AllSortKeys returns all valid sort keys in cycling order.
func AllSortKeys() []SortKey {
	return []SortKey{SortByDueDate, SortByPriority, SortByTitle, SortByCreated}
}

// IsValid returns true if the sort key is a known value.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByDueDate, SortByPriority, SortByTitle, SortByCreated:
		return true
	default:
		return false
	}
}

// Next returns the following sort key in cycling order.
func (k SortKey) Next() SortKey {
	all := AllSortKeys()
	for i, v := range all {
		if v == k {
			return all[(i+1)%len(all)]
		}
	}
	return SortByDueDate
}

// Display returns a human-readable representation of the sort key.
func (k SortKey) Display() string {
	switch k {
	case SortByDueDate:
		return "Due Date"
	case SortByPriority:
		return "Priority"
	case SortByTitle:
		return "Title"
	case SortByCreated:
		return "Created"
	default:
		return string(k)
	}
}

// ParseSortKey converts a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.IsValid() {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

// Query derives the visible subset of tasks from the store: filter, then
// free-text search, then a stable sort. Apply is a full re-derivation; it
// never mutates its input and the result shares the input's task pointers.
type Query struct {
	Search string
	Filter Filter
	Sort   SortKey
}

// DefaultQuery returns the query applied before the user changes anything.
func DefaultQuery() Query {
	return Query{Filter: FilterAll, Sort: SortByDueDate}
}

// IsDefault returns true if no filter, search, or non-default sort is active.
func (q Query) IsDefault() bool {
	return q == DefaultQuery()
}

// Apply runs the filter -> search -> sort pipeline over the given tasks.
func (q Query) Apply(tasks []*Task) []*Task {
	result := make([]*Task, 0, len(tasks))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, t := range tasks {
		if !q.Filter.Match(t) {
			continue
		}
		if term != "" && !matchesSearch(t, term) {
			continue
		}
		result = append(result, t)
	}
	q.sort(result)
	return result
}

// matchesSearch reports a case-insensitive substring match against the title,
// description, or any tag. term must already be lowercased.
func matchesSearch(t *Task, term string) bool {
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), term) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (q Query) sort(tasks []*Task) {
	switch q.Sort {
	case SortByDueDate:
		slices.SortStableFunc(tasks, func(a, b *Task) int {
			return a.DueDate.Compare(b.DueDate)
		})
	case SortByPriority:
		slices.SortStableFunc(tasks, func(a, b *Task) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	case SortByTitle:
		// Collator is stateful; build one per sort rather than sharing.
		c := collate.New(language.Und)
		slices.SortStableFunc(tasks, func(a, b *Task) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortByCreated:
		slices.SortStableFunc(tasks, func(a, b *Task) int {
			switch {
			case b.ID < a.ID:
				return -1
			case b.ID > a.ID:
				return 1
			default:
				return 0
			}
		})
	}
}
