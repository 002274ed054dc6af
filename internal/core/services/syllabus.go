package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ensure SyllabusService implements the interface.
var _ driving.SyllabusStore = (*SyllabusService)(nil)

// SyllabusService holds the semester collection and mutates subjects and units.
type SyllabusService struct {
	mu        sync.RWMutex
	repo      driven.SyllabusRepository
	validator *validator.Validate
	logger    *zap.Logger
	semesters []domain.Semester
}

// NewSyllabusService loads the stored curriculum. Empty storage is seeded
// with domain.DefaultCurriculum.
func NewSyllabusService(
	ctx context.Context,
	repo driven.SyllabusRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) (*SyllabusService, error) {
	if repo == nil {
		return nil, domain.ErrNotImplemented
	}
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	semesters, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading syllabus: %w", err)
	}
	if len(semesters) == 0 {
		semesters = domain.DefaultCurriculum()
		if err := repo.Save(ctx, semesters); err != nil {
			return nil, fmt.Errorf("seeding syllabus: %w", err)
		}
		logger.Debug("seeded default curriculum", zap.Int("semesters", len(semesters)))
	}

	return &SyllabusService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		semesters: semesters,
	}, nil
}

// Semesters returns a copy of all semesters in order.
func (s *SyllabusService) Semesters(_ context.Context) ([]domain.Semester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneSemesters(s.semesters), nil
}

// Semester returns a copy of one semester.
func (s *SyllabusService) Semester(_ context.Context, id int) (*domain.Semester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sem, ok := domain.FindSemester(s.semesters, id)
	if !ok {
		return nil, fmt.Errorf("semester %d: %w", id, domain.ErrNotFound)
	}
	clone := sem.Clone()
	return &clone, nil
}

// Subject returns a copy of one subject.
func (s *SyllabusService) Subject(_ context.Context, semesterID int, code string) (*domain.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subj, err := findSubject(s.semesters, semesterID, code)
	if err != nil {
		return nil, err
	}
	clone := subj.Clone()
	return &clone, nil
}

// UpdateSubject merges the non-nil fields of update into the subject.
func (s *SyllabusService) UpdateSubject(
	ctx context.Context, semesterID int, code string, update domain.SubjectUpdate,
) error {
	if blank(update.Name) {
		return fmt.Errorf("%w: subject name cannot be empty", domain.ErrInvalidInput)
	}
	if update.Credits != nil && *update.Credits < 0 {
		return fmt.Errorf("%w: credits cannot be negative", domain.ErrInvalidInput)
	}
	for i := range update.Units {
		if err := s.validator.Struct(update.Units[i]); err != nil {
			return validationError(err)
		}
	}
	return s.mutate(ctx, semesterID, code, func(subj *domain.Subject) error {
		subj.Apply(update)
		return nil
	})
}

// AddUnit appends a unit to the subject's unit list.
func (s *SyllabusService) AddUnit(ctx context.Context, semesterID int, code string, unit domain.Unit) error {
	if err := s.validator.Struct(unit); err != nil {
		return validationError(err)
	}
	return s.mutate(ctx, semesterID, code, func(subj *domain.Subject) error {
		subj.Units = append(subj.Units, unit)
		return nil
	})
}

// UpdateUnit replaces the unit at index.
func (s *SyllabusService) UpdateUnit(
	ctx context.Context, semesterID int, code string, index int, unit domain.Unit,
) error {
	if err := s.validator.Struct(unit); err != nil {
		return validationError(err)
	}
	return s.mutate(ctx, semesterID, code, func(subj *domain.Subject) error {
		if index < 0 || index >= len(subj.Units) {
			return fmt.Errorf("unit %d of %s: %w", index, code, domain.ErrInvalidIndex)
		}
		subj.Units[index] = unit
		return nil
	})
}

// DeleteUnit removes the unit at index; later units shift down by one.
func (s *SyllabusService) DeleteUnit(ctx context.Context, semesterID int, code string, index int) error {
	return s.mutate(ctx, semesterID, code, func(subj *domain.Subject) error {
		if index < 0 || index >= len(subj.Units) {
			return fmt.Errorf("unit %d of %s: %w", index, code, domain.ErrInvalidIndex)
		}
		subj.Units = append(subj.Units[:index], subj.Units[index+1:]...)
		return nil
	})
}

// mutate applies fn to a copy of the subject and commits the copy once the
// repository accepted it.
func (s *SyllabusService) mutate(
	ctx context.Context, semesterID int, code string, fn func(*domain.Subject) error,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return err
	}

	next := domain.CloneSemesters(s.semesters)
	subj, err := findSubject(next, semesterID, code)
	if err != nil {
		return err
	}
	if err := fn(subj); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving syllabus: %w", err)
	}
	s.semesters = next
	s.logger.Debug("subject updated",
		zap.Int("semester", semesterID),
		zap.String("subject", code),
		zap.Int("units", len(subj.Units)))
	return nil
}

func findSubject(semesters []domain.Semester, semesterID int, code string) (*domain.Subject, error) {
	sem, ok := domain.FindSemester(semesters, semesterID)
	if !ok {
		return nil, fmt.Errorf("semester %d: %w", semesterID, domain.ErrNotFound)
	}
	subj, _, ok := sem.Subject(code)
	if !ok {
		return nil, fmt.Errorf("subject %s in semester %d: %w", code, semesterID, domain.ErrNotFound)
	}
	return subj, nil
}

// refresh reloads the curriculum so edits committed by another process are
// kept by the next save (caller must hold lock). Empty storage keeps the
// current copy.
func (s *SyllabusService) refresh(ctx context.Context) error {
	semesters, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading syllabus: %w", err)
	}
	if len(semesters) > 0 {
		s.semesters = semesters
	}
	return nil
}
