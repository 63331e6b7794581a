package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// bookRepository implements domain.BookRepository
type bookRepository struct {
	db *DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *DB) domain.BookRepository {
	return &bookRepository{db: db}
}

// GetByID retrieves a book by its ID
func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	book, err := scanBook(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, note, monthly_goal FROM books WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get book by ID: %w", err)
	}
	return book, nil
}

// Create creates a new book
func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	var goal interface{}
	if book.MonthlyGoal != nil {
		goal = book.MonthlyGoal.String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (id, user_id, name, note, monthly_goal) VALUES ($1, $2, $3, $4, $5)`,
		book.ID, book.UserID, book.Name, book.Note, goal)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// Update persists changes to a book
func (r *bookRepository) Update(ctx context.Context, book *domain.Book) error {
	var goal interface{}
	if book.MonthlyGoal != nil {
		goal = book.MonthlyGoal.String()
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE books SET name = $2, note = $3, monthly_goal = $4 WHERE id = $1`,
		book.ID, book.Name, book.Note, goal)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return requireRowAffected(res, "book")
}

// Delete removes a book; records and transfers cascade, asset groups detach
func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return requireRowAffected(res, "book")
}

// ListByUser retrieves all books owned by a user
func (r *bookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, note, monthly_goal FROM books WHERE user_id = $1 ORDER BY name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var book domain.Book
	var goal sql.NullString

	if err := row.Scan(&book.ID, &book.UserID, &book.Name, &book.Note, &goal); err != nil {
		return nil, err
	}

	if goal.Valid {
		parsed, err := decimal.NewFromString(goal.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse monthly_goal: %w", err)
		}
		book.MonthlyGoal = &parsed
	}
	return &book, nil
}
