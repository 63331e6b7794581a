package book

import (
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// Service manages books, the root aggregate of the ledger.
type Service struct {
	Books domain.BookRepository
}

// NewService creates a new book Service instance
func NewService(books domain.BookRepository) *Service {
	return &Service{Books: books}
}

// CreateBook validates and persists a new book
func (s *Service) CreateBook(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.Books.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBook persists changes to a book
func (s *Service) UpdateBook(ctx context.Context, b *domain.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return s.Books.Update(ctx, b)
}

// DeleteBook removes a book; its records and transfers cascade at the
// schema level and its asset groups are detached.
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return s.Books.Delete(ctx, id)
}

// GetBook retrieves a book by ID
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	return s.Books.GetByID(ctx, id)
}

// ListBooks retrieves all books owned by a user
func (s *Service) ListBooks(ctx context.Context, userID uuid.UUID) ([]*domain.Book, error) {
	return s.Books.ListByUser(ctx, userID)
}
