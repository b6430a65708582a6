package server

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	PingPath  = "/ping"
	BooksPath = "/books"
)

// IdentityResolver resolves the calling user from request credentials.
// Handlers never proceed past a failed resolution.
type IdentityResolver interface {
	ResolveUser(r *http.Request) (uuid.UUID, error)
}

type ApiConfig struct {
	DB   *sql.DB
	Auth IdentityResolver
}

func Handle(sm *http.ServeMux, apiCfg *ApiConfig) {
	// Ping
	sm.HandleFunc("GET "+PingPath, apiCfg.HandlePing)

	// Books
	sm.HandleFunc("GET "+BooksPath, apiCfg.HandleGetBooks)
	sm.HandleFunc("POST "+BooksPath, apiCfg.HandlePostBooks)
	sm.HandleFunc(fmt.Sprintf("GET %v/{id}", BooksPath), apiCfg.HandleGetBooksId)
	sm.HandleFunc(fmt.Sprintf("PATCH %v/{id}", BooksPath), apiCfg.HandlePatchBooksId)
	sm.HandleFunc(fmt.Sprintf("DELETE %v/{id}", BooksPath), apiCfg.HandleDeleteBooksId)

	// Swagger
	sm.Handle("/swagger/", httpSwagger.WrapHandler)
}
