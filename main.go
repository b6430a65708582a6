package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/KirrtanaaNallathamby/book-tracker/internal/auth"
	"github.com/KirrtanaaNallathamby/book-tracker/internal/common"
	"github.com/KirrtanaaNallathamby/book-tracker/internal/database"
	"github.com/KirrtanaaNallathamby/book-tracker/internal/server"

	_ "github.com/KirrtanaaNallathamby/book-tracker/docs"

	_ "github.com/lib/pq"
)

// @title Book tracker Service API
// @version 1.0
// @description API for managing a personal reading list.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	db, err := common.SetupDB("./.env", "DB_URL")
	if err != nil {
		log.Fatal("Failed setup db ", err)
	}

	migrateErr := database.Migrate(context.Background(), db)
	if migrateErr != nil {
		log.Fatal("Failed to migrate db ", migrateErr)
	}

	sm := http.NewServeMux()
	apiCfg := server.ApiConfig{DB: db, Auth: auth.TokenResolver{SecretKey: os.Getenv("AUTH_SECRET_KEY")}}
	server.Handle(sm, &apiCfg)

	s := http.Server{
		Addr:    ":8080",
		Handler: common.CORSMiddleware(common.LoggingMiddleware(common.RecoverMiddleware(sm))),
	}
	serverErr := s.ListenAndServe()
	if serverErr != nil {
		log.Fatal("Failed starting server: ", serverErr)
	}
}
