package database

import (
	"context"
	"fmt"

	"github.com/KirrtanaaNallathamby/book-tracker/internal/common"
	"github.com/google/uuid"
)

const listBooksQuery = `SELECT id, user_id, title, author, status, created_at, updated_at
FROM books
WHERE user_id = $1`

const listBooksOrder = `
ORDER BY created_at DESC`

type ListBooksParams struct {
	UserID uuid.UUID
	Status *ReadingStatus
	Search string
}

// ListBooks returns the user's books, most recently created first.
// An invalid filter combination is not possible here: status is already a
// parsed enum value and search is a plain substring.
func (q *Queries) ListBooks(ctx context.Context, arg ListBooksParams) ([]Book, error) {
	query := listBooksQuery
	args := []interface{}{arg.UserID}
	if arg.Status != nil {
		args = append(args, *arg.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if arg.Search != "" {
		args = append(args, arg.Search)
		query += fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR author ILIKE '%%' || $%d || '%%')", len(args), len(args))
	}
	query += listBooksOrder

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer common.CloseRows(rows)

	books := make([]Book, 0)
	for rows.Next() {
		b := Book{}
		err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

const getBookQuery = `SELECT id, user_id, title, author, status, created_at, updated_at
FROM books
WHERE user_id = $1 AND id = $2`

type GetBookParams struct {
	UserID uuid.UUID
	BookID uuid.UUID
}

// GetBook returns sql.ErrNoRows both for a missing book and for a book owned
// by another user.
func (q *Queries) GetBook(ctx context.Context, arg GetBookParams) (Book, error) {
	row := q.db.QueryRowContext(ctx, getBookQuery, arg.UserID, arg.BookID)
	b := Book{}
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const createBookQuery = `INSERT INTO books (user_id, title, author, status)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, title, author, status, created_at, updated_at`

type CreateBookParams struct {
	UserID uuid.UUID
	Title  string
	Author string
	Status ReadingStatus
}

func (q *Queries) CreateBook(ctx context.Context, arg CreateBookParams) (Book, error) {
	row := q.db.QueryRowContext(ctx, createBookQuery, arg.UserID, arg.Title, arg.Author, arg.Status)
	b := Book{}
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const updateBookStatusQuery = `UPDATE books
SET status = $3, updated_at = now()
WHERE user_id = $1 AND id = $2
RETURNING id, user_id, title, author, status, created_at, updated_at`

type UpdateBookStatusParams struct {
	UserID uuid.UUID
	BookID uuid.UUID
	Status ReadingStatus
}

// UpdateBookStatus returns sql.ErrNoRows when the book does not exist or
// belongs to another user.
func (q *Queries) UpdateBookStatus(ctx context.Context, arg UpdateBookStatusParams) (Book, error) {
	row := q.db.QueryRowContext(ctx, updateBookStatusQuery, arg.UserID, arg.BookID, arg.Status)
	b := Book{}
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const deleteBookQuery = `DELETE FROM books
WHERE user_id = $1 AND id = $2`

type DeleteBookParams struct {
	UserID uuid.UUID
	BookID uuid.UUID
}

// DeleteBook returns the number of removed rows; 0 means the book does not
// exist or belongs to another user.
func (q *Queries) DeleteBook(ctx context.Context, arg DeleteBookParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteBookQuery, arg.UserID, arg.BookID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
