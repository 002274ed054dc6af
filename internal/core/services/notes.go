package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ensure NotesService implements the interface.
var _ driving.NotesStore = (*NotesService)(nil)

// NotesService owns the note collection.
type NotesService struct {
	mu        sync.RWMutex
	repo      driven.NoteRepository
	validator *validator.Validate
	logger    *zap.Logger
	notes     []domain.Note

	now   func() time.Time
	newID func() string
}

// NewNotesService loads stored notes.
func NewNotesService(
	ctx context.Context,
	repo driven.NoteRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) (*NotesService, error) {
	if repo == nil {
		return nil, domain.ErrNotImplemented
	}
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	notes, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}

	return &NotesService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		notes:     notes,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}, nil
}

// NotesForSubject returns notes for the subject in insertion order.
func (s *NotesService) NotesForSubject(_ context.Context, subjectCode string, semesterID int) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []domain.Note{}
	for i := range s.notes {
		if s.notes[i].BelongsTo(subjectCode, semesterID) {
			result = append(result, s.notes[i])
		}
	}
	return result, nil
}

// Note returns a single note.
func (s *NotesService) Note(_ context.Context, id string) (*domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	note := s.notes[idx]
	return &note, nil
}

// AllNotes returns every note in insertion order.
func (s *NotesService) AllNotes(_ context.Context) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Note, len(s.notes))
	copy(result, s.notes)
	return result, nil
}

// SearchNotes returns notes whose title or content contains query.
func (s *NotesService) SearchNotes(_ context.Context, query string) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []domain.Note{}
	for i := range s.notes {
		if s.notes[i].Matches(query) {
			result = append(result, s.notes[i])
		}
	}
	return result, nil
}

// AddNote creates a note with a fresh identifier.
func (s *NotesService) AddNote(ctx context.Context, input domain.NoteInput) (*domain.Note, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.SubjectCode = strings.TrimSpace(input.SubjectCode)
	if err := s.validator.Struct(input); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	note := domain.Note{
		ID:          s.newID(),
		Title:       input.Title,
		Content:     input.Content,
		SubjectCode: input.SubjectCode,
		SemesterID:  input.SemesterID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := make([]domain.Note, len(s.notes), len(s.notes)+1)
	copy(next, s.notes)
	next = append(next, note)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.logger.Debug("note added", zap.String("id", note.ID), zap.String("subject", note.SubjectCode))
	return &note, nil
}

// UpdateNote merges the non-nil fields of update.
func (s *NotesService) UpdateNote(ctx context.Context, id string, update domain.NoteUpdate) (*domain.Note, error) {
	if blank(update.Title) {
		return nil, fmt.Errorf("%w: note title cannot be empty", domain.ErrInvalidInput)
	}
	if err := s.validator.Struct(update); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	next := make([]domain.Note, len(s.notes))
	copy(next, s.notes)
	note := &next[idx]
	if update.Title != nil {
		note.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	note.UpdatedAt = s.now()

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	updated := *note
	return &updated, nil
}

// DeleteNote removes a note.
func (s *NotesService) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	next := make([]domain.Note, 0, len(s.notes)-1)
	next = append(next, s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Debug("note deleted", zap.String("id", id))
	return nil
}

// commit saves next and makes it current (caller must hold lock).
func (s *NotesService) commit(ctx context.Context, next []domain.Note) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	s.notes = next
	return nil
}

// indexOf returns the position of the note or -1 (caller must hold lock).
func (s *NotesService) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// refresh reloads the collection so writes committed by another process are
// kept by the next save (caller must hold lock).
func (s *NotesService) refresh(ctx context.Context) error {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading notes: %w", err)
	}
	s.notes = notes
	return nil
}
