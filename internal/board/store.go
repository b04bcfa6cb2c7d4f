package board

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/validation"
)

// BucketStore maps canonical date keys (YYYY-MM-DD) to ordered lists of
// events. Keys are created lazily; an absent key is an empty bucket. The
// store is the authoritative board state and is only mutated through its
// methods, each of which applies as a complete before/after transition.
//
// BucketStore is not safe for concurrent use; all mutations are expected to
// arrive one at a time from the UI loop.
type BucketStore struct {
	buckets map[string][]models.Event
}

func NewBucketStore() *BucketStore {
	return &BucketStore{
		buckets: make(map[string][]models.Event),
	}
}

// Get returns a copy of the bucket for dateKey, empty if absent.
func (s *BucketStore) Get(dateKey string) []models.Event {
	bucket := s.buckets[dateKey]
	out := make([]models.Event, len(bucket))
	copy(out, bucket)
	return out
}

// Len returns the number of events in the bucket for dateKey.
func (s *BucketStore) Len(dateKey string) int {
	return len(s.buckets[dateKey])
}

// CanAccept reports whether the bucket for dateKey can take one more event.
func (s *BucketStore) CanAccept(dateKey string) bool {
	return len(s.buckets[dateKey]) < constants.MaxEventsPerDay
}

// Find locates an event by id within a bucket, returning its index.
func (s *BucketStore) Find(dateKey, id string) (models.Event, int, bool) {
	for i, e := range s.buckets[dateKey] {
		if e.ID == id {
			return e, i, true
		}
	}
	return models.Event{}, -1, false
}

// Append adds an event to the end of a bucket, enforcing capacity.
func (s *BucketStore) Append(dateKey string, event models.Event) error {
	if !s.CanAccept(dateKey) {
		return fmt.Errorf("cannot add event to %s: %w", dateKey, ErrCapacityExceeded)
	}
	event.Date = dateKey
	s.buckets[dateKey] = append(s.buckets[dateKey], event)
	return nil
}

// ReplaceBucket swaps the entire bucket for dateKey in one step. Reorders
// and moves go through whole-bucket replacement so no intermediate state is
// ever observable. An empty list removes the key.
func (s *BucketStore) ReplaceBucket(dateKey string, events []models.Event) {
	if len(events) == 0 {
		delete(s.buckets, dateKey)
		return
	}
	bucket := make([]models.Event, len(events))
	copy(bucket, events)
	s.buckets[dateKey] = bucket
}

// PatchEvent merges the provided fields into the matching event. Returns
// false when the event is not in the bucket.
func (s *BucketStore) PatchEvent(dateKey, id string, patch models.EventPatch) bool {
	_, idx, ok := s.Find(dateKey, id)
	if !ok {
		return false
	}
	e := &s.buckets[dateKey][idx]
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Emoji != nil {
		e.Emoji = *patch.Emoji
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Theme != nil {
		e.Theme = *patch.Theme
	}
	if patch.Time != nil {
		e.Time = *patch.Time
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	return true
}

// ToggleCompleted flips the completed flag. Returns false when the event is
// not in the bucket.
func (s *BucketStore) ToggleCompleted(dateKey, id string) bool {
	_, idx, ok := s.Find(dateKey, id)
	if !ok {
		return false
	}
	s.buckets[dateKey][idx].Completed = !s.buckets[dateKey][idx].Completed
	return true
}

// RemoveEvent removes the matching event from a bucket. Removing an id that
// is already gone is a no-op.
func (s *BucketStore) RemoveEvent(dateKey, id string) {
	_, idx, ok := s.Find(dateKey, id)
	if !ok {
		return
	}
	bucket := s.buckets[dateKey]
	next := make([]models.Event, 0, len(bucket)-1)
	next = append(next, bucket[:idx]...)
	next = append(next, bucket[idx+1:]...)
	s.ReplaceBucket(dateKey, next)
}

// CreateEvent validates and appends a new event to the bucket for dateKey.
// A missing required field yields ErrIncompleteEvent; a full bucket yields
// ErrCapacityExceeded. The event's ID is assigned here when empty and its
// Date is set to the bucket key.
func (s *BucketStore) CreateEvent(dateKey string, event models.Event) (models.Event, error) {
	if err := validation.ValidateNewEvent(event); err != nil {
		return models.Event{}, fmt.Errorf("%w: %v", ErrIncompleteEvent, err)
	}
	if !s.CanAccept(dateKey) {
		return models.Event{}, fmt.Errorf("cannot add event to %s: %w", dateKey, ErrCapacityExceeded)
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.Date = dateKey
	s.buckets[dateKey] = append(s.buckets[dateKey], event)
	return event, nil
}

// Days returns the sorted keys of all non-empty buckets.
func (s *BucketStore) Days() []string {
	days := make([]string, 0, len(s.buckets))
	for day := range s.buckets {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Snapshot returns a deep copy of the whole board, the unit of persistence.
func (s *BucketStore) Snapshot() map[string][]models.Event {
	out := make(map[string][]models.Event, len(s.buckets))
	for day, bucket := range s.buckets {
		cp := make([]models.Event, len(bucket))
		copy(cp, bucket)
		out[day] = cp
	}
	return out
}

// Restore replaces the whole board from a persisted snapshot. Empty buckets
// are dropped so an absent key stays equivalent to an empty list.
func (s *BucketStore) Restore(snapshot map[string][]models.Event) {
	buckets := make(map[string][]models.Event, len(snapshot))
	for day, bucket := range snapshot {
		if len(bucket) == 0 {
			continue
		}
		cp := make([]models.Event, len(bucket))
		copy(cp, bucket)
		buckets[day] = cp
	}
	s.buckets = buckets
}
