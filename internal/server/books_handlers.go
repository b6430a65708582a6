package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/KirrtanaaNallathamby/book-tracker/internal/common"
	"github.com/KirrtanaaNallathamby/book-tracker/internal/database"
)

const (
	invalidStatusMessage = "Invalid status. Must be: Reading, Completed, or Wishlist"
	missingFieldsMessage = "Missing required fields: title, author, status"
	unknownBookMessage   = "Unknown book"
)

type dbBook struct {
	title  string
	author string
	status database.ReadingStatus
}

func parseBook(r *http.Request) (dbBook, error) {
	decoder := json.NewDecoder(r.Body)
	request := RequestBook{}
	err := decoder.Decode(&request)
	if err != nil {
		return dbBook{}, errors.New("Invalid request body")
	}
	title := strings.TrimSpace(request.Title)
	author := strings.TrimSpace(request.Author)
	if title == "" || author == "" || request.Status == "" {
		return dbBook{}, errors.New(missingFieldsMessage)
	}
	status, err := database.ParseReadingStatus(request.Status)
	if err != nil {
		return dbBook{}, errors.New(invalidStatusMessage)
	}
	return dbBook{title: title, author: author, status: status}, nil
}

func toResponseBook(book database.Book) ResponseBook {
	return ResponseBook{
		ID:        book.ID.String(),
		OwnerID:   book.UserID.String(),
		Title:     book.Title,
		Author:    book.Author,
		Status:    string(book.Status),
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// @Summary Ping the server
// @Description  Checks server health. Returns 200 OK if server is up.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {string} string
// @Router /ping [get]
func (cfg *ApiConfig) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// @Summary Get books
// @Description Gets the user's books from DB, most recently added first. Requires a Bearer access token.
// @Tags Books
// @Accept json
// @Produce json
// @Param status query string false "Reading status" Enums(Reading, Completed, Wishlist)
// @Param search query string false "Substring to match against title or author, case-insensitively"
// @Success 200 {object} ResponseBooks "User's books"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Router /books [get]
func (cfg *ApiConfig) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	userID, authErr := cfg.Auth.ResolveUser(r)
	if authErr != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	params := database.ListBooksParams{UserID: userID, Search: strings.TrimSpace(r.URL.Query().Get("search"))}
	if requestStatus := r.URL.Query().Get("status"); requestStatus != "" {
		// Unknown statuses are ignored, the full list is returned.
		if status, err := database.ParseReadingStatus(requestStatus); err == nil {
			params.Status = &status
		}
	}

	queries := database.New(cfg.DB)
	books, dbErr := queries.ListBooks(r.Context(), params)
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to get books")
		return
	}

	response := ResponseBooks{Data: make([]ResponseBook, 0, len(books))}
	for _, book := range books {
		response.Data = append(response.Data, toResponseBook(book))
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}

// @Summary Create book
// @Description Saves a new book owned by the user. Requires a Bearer access token.
// @Tags Books
// @Accept json
// @Produce json
// @Param request body RequestBook true "Book's title, author and reading status"
// @Success 201 {object} ResponseBookData "Created book"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Router /books [post]
func (cfg *ApiConfig) HandlePostBooks(w http.ResponseWriter, r *http.Request) {
	userID, authErr := cfg.Auth.ResolveUser(r)
	if authErr != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	book, err := parseBook(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	queries := database.New(cfg.DB)
	created, dbErr := queries.CreateBook(r.Context(), database.CreateBookParams{
		UserID: userID,
		Title:  book.title,
		Author: book.author,
		Status: book.status,
	})
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to create book")
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, ResponseBookData{Data: toResponseBook(created)})
}

// @Summary Get one book
// @Description Gets one of the user's books by id. Requires a Bearer access token.
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} ResponseBookData "Book"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown book"
// @Failure 500 {object} ErrorResponse
// @Router /books/{id} [get]
func (cfg *ApiConfig) HandleGetBooksId(w http.ResponseWriter, r *http.Request) {
	userID, authErr := cfg.Auth.ResolveUser(r)
	if authErr != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// A malformed id cannot name an existing book, so it gets the same
	// answer as a book owned by someone else.
	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, unknownBookMessage)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	queries := database.New(cfg.DB)
	book, dbErr := queries.GetBook(r.Context(), database.GetBookParams{UserID: userID, BookID: bookID})
	if dbErr == sql.ErrNoRows {
		common.RespondWithError(w, http.StatusNotFound, unknownBookMessage)
		return
	}
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to get book")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ResponseBookData{Data: toResponseBook(book)})
}

// @Summary Update book status
// @Description Updates the reading status of one of the user's books. Requires a Bearer access token.
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body RequestBookStatus true "New reading status"
// @Success 200 {object} ResponseBookData "Updated book"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown book"
// @Failure 500 {object} ErrorResponse
// @Router /books/{id} [patch]
func (cfg *ApiConfig) HandlePatchBooksId(w http.ResponseWriter, r *http.Request) {
	userID, authErr := cfg.Auth.ResolveUser(r)
	if authErr != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	decoder := json.NewDecoder(r.Body)
	request := RequestBookStatus{}
	if err := decoder.Decode(&request); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, err := database.ParseReadingStatus(request.Status)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, invalidStatusMessage)
		return
	}

	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, unknownBookMessage)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	queries := database.New(cfg.DB)
	book, dbErr := queries.UpdateBookStatus(r.Context(), database.UpdateBookStatusParams{
		UserID: userID,
		BookID: bookID,
		Status: status,
	})
	if dbErr == sql.ErrNoRows {
		common.RespondWithError(w, http.StatusNotFound, unknownBookMessage)
		return
	}
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to update book")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ResponseBookData{Data: toResponseBook(book)})
}

// @Summary Delete book
// @Description Deletes one of the user's books. Requires a Bearer access token.
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} ResponseMessage "Deleted successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown book"
// @Failure 500 {object} ErrorResponse
// @Router /books/{id} [delete]
func (cfg *ApiConfig) HandleDeleteBooksId(w http.ResponseWriter, r *http.Request) {
	userID, authErr := cfg.Auth.ResolveUser(r)
	if authErr != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, unknownBookMessage)
		return
	}

	if cfg.DB == nil {
		common.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	queries := database.New(cfg.DB)
	count, dbErr := queries.DeleteBook(r.Context(), database.DeleteBookParams{UserID: userID, BookID: bookID})
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}
	if count == 0 {
		common.RespondWithError(w, http.StatusNotFound, unknownBookMessage)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ResponseMessage{Message: "Book deleted"})
}
