package store

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"contentdesk/internal/content/model"
)

const (
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMinLen = 10
)

// ValidationError reports every field that failed validation, keyed by
// field name. The caller is expected to re-prompt and retry.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return "validation failed: " + strings.Join(keys, ", ")
}

// NotFoundError is returned when an update targets an id that is not in
// the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "content not found: " + e.ID
}

// ContentStore owns the in-memory ordered collection of Content records.
// Records are kept most-recently-created first; updates do not move a
// record, deletes remove it in place. All operations lock, because the
// HTTP host serves requests concurrently.
type ContentStore struct {
	mu       sync.RWMutex
	contents []model.Content
}

func NewContentStore() *ContentStore {
	return &ContentStore{contents: []model.Content{}}
}

// Validate checks the editable fields against the store's rules without
// touching the collection. Lengths are counted in runes after trimming.
// An empty map means the fields are acceptable.
func Validate(fields model.ContentFields) map[string]string {
	errs := make(map[string]string)

	title := strings.TrimSpace(fields.Title)
	if title == "" {
		errs["title"] = "Title is required"
	} else if n := utf8.RuneCountInString(title); n < titleMinLen || n > titleMaxLen {
		errs["title"] = fmt.Sprintf("Title must be between %d and %d characters", titleMinLen, titleMaxLen)
	}

	description := strings.TrimSpace(fields.Description)
	if description == "" {
		errs["description"] = "Description is required"
	} else if utf8.RuneCountInString(description) < descriptionMinLen {
		errs["description"] = fmt.Sprintf("Description must be at least %d characters", descriptionMinLen)
	}

	if !validCategory(fields.Category) {
		errs["category"] = "Category must be one of: " + strings.Join(model.Categories, ", ")
	}

	return errs
}

func validCategory(category string) bool {
	for _, c := range model.Categories {
		if category == c {
			return true
		}
	}
	return false
}

// List returns a snapshot of the collection in its maintained order.
func (s *ContentStore) List() []model.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Content, len(s.contents))
	copy(out, s.contents)
	return out
}

// Create validates the fields, assigns a fresh id and timestamps, and
// prepends the new record so the newest entry is listed first.
func (s *ContentStore) Create(fields model.ContentFields) (model.Content, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return model.Content{}, &ValidationError{Fields: errs}
	}

	id := generateContentID()
	if id == "" {
		return model.Content{}, errors.New("failed to generate content ID")
	}

	now := time.Now()
	content := model.Content{
		ID:          id,
		Title:       strings.TrimSpace(fields.Title),
		Description: strings.TrimSpace(fields.Description),
		Category:    fields.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = append([]model.Content{content}, s.contents...)
	return content, nil
}

// Update replaces the editable fields of the record with the given id,
// keeping its identity, creation time, and position. UpdatedAt advances
// to the current time.
func (s *ContentStore) Update(id string, fields model.ContentFields) (model.Content, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return model.Content{}, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contents {
		if s.contents[i].ID != id {
			continue
		}
		s.contents[i].Title = strings.TrimSpace(fields.Title)
		s.contents[i].Description = strings.TrimSpace(fields.Description)
		s.contents[i].Category = fields.Category
		s.contents[i].UpdatedAt = time.Now()
		return s.contents[i], nil
	}
	return model.Content{}, &NotFoundError{ID: id}
}

// Delete removes the record with the given id. Deleting an id that is
// not present is a no-op, so repeated deletes are safe.
func (s *ContentStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contents {
		if s.contents[i].ID == id {
			s.contents = append(s.contents[:i], s.contents[i+1:]...)
			return
		}
	}
}

// Seed installs a couple of demo records for local development.
func (s *ContentStore) Seed() {
	s.Create(model.ContentFields{
		Title:       "Welcome to ContentDesk",
		Description: "Create, edit, and delete content records from the dashboard.",
		Category:    model.CategoryNote,
	})
	s.Create(model.ContentFields{
		Title:       "Intro to CRUD",
		Description: "CRUD means Create Read Update Delete operations.",
		Category:    model.CategoryTutorial,
	})
}

func generateContentID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
