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

// Ensure PDFService implements the interface.
var _ driving.PDFStore = (*PDFService)(nil)

// PDFService owns the PDF reference collection.
type PDFService struct {
	mu        sync.RWMutex
	repo      driven.PDFRepository
	validator *validator.Validate
	logger    *zap.Logger
	pdfs      []domain.PDFResource

	now   func() time.Time
	newID func() string
}

// NewPDFService loads stored PDF references.
func NewPDFService(
	ctx context.Context,
	repo driven.PDFRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) (*PDFService, error) {
	if repo == nil {
		return nil, domain.ErrNotImplemented
	}
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pdfs, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pdfs: %w", err)
	}

	return &PDFService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		pdfs:      pdfs,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}, nil
}

// PDFsForSubject returns references for the subject in insertion order.
func (s *PDFService) PDFsForSubject(
	_ context.Context, subjectCode string, semesterID int,
) ([]domain.PDFResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []domain.PDFResource{}
	for i := range s.pdfs {
		if s.pdfs[i].BelongsTo(subjectCode, semesterID) {
			result = append(result, s.pdfs[i])
		}
	}
	return result, nil
}

// PDF returns a single reference.
func (s *PDFService) PDF(_ context.Context, id string) (*domain.PDFResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("pdf %s: %w", id, domain.ErrNotFound)
	}
	pdf := s.pdfs[idx]
	return &pdf, nil
}

// AddPDF registers a reference with a fresh identifier.
func (s *PDFService) AddPDF(ctx context.Context, input domain.PDFInput) (*domain.PDFResource, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)
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
	pdf := domain.PDFResource{
		ID:          s.newID(),
		SubjectCode: input.SubjectCode,
		SemesterID:  input.SemesterID,
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := make([]domain.PDFResource, len(s.pdfs), len(s.pdfs)+1)
	copy(next, s.pdfs)
	next = append(next, pdf)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.logger.Debug("pdf added", zap.String("id", pdf.ID), zap.String("location", pdf.Location))
	return &pdf, nil
}

// UpdatePDF merges the non-nil fields of update.
func (s *PDFService) UpdatePDF(
	ctx context.Context, id string, update domain.PDFUpdate,
) (*domain.PDFResource, error) {
	if blank(update.Name) || blank(update.Location) {
		return nil, fmt.Errorf("%w: name and location cannot be empty", domain.ErrInvalidInput)
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
		return nil, fmt.Errorf("pdf %s: %w", id, domain.ErrNotFound)
	}

	next := make([]domain.PDFResource, len(s.pdfs))
	copy(next, s.pdfs)
	pdf := &next[idx]
	if update.Name != nil {
		pdf.Name = strings.TrimSpace(*update.Name)
	}
	if update.Location != nil {
		pdf.Location = strings.TrimSpace(*update.Location)
	}
	if update.Description != nil {
		pdf.Description = *update.Description
	}
	pdf.UpdatedAt = s.now()

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	updated := *pdf
	return &updated, nil
}

// DeletePDF removes a reference.
func (s *PDFService) DeletePDF(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("pdf %s: %w", id, domain.ErrNotFound)
	}

	next := make([]domain.PDFResource, 0, len(s.pdfs)-1)
	next = append(next, s.pdfs[:idx]...)
	next = append(next, s.pdfs[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Debug("pdf deleted", zap.String("id", id))
	return nil
}

func (s *PDFService) commit(ctx context.Context, next []domain.PDFResource) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving pdfs: %w", err)
	}
	s.pdfs = next
	return nil
}

func (s *PDFService) indexOf(id string) int {
	for i := range s.pdfs {
		if s.pdfs[i].ID == id {
			return i
		}
	}
	return -1
}

// refresh reloads the collection so writes committed by another process are
// kept by the next save (caller must hold lock).
func (s *PDFService) refresh(ctx context.Context) error {
	pdfs, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading pdfs: %w", err)
	}
	s.pdfs = pdfs
	return nil
}
