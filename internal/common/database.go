package common

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// SetupDB loads the env file at envPath and opens a Postgres connection
// using the URL stored in the dbEnv variable.
func SetupDB(envPath string, dbEnv string) (*sql.DB, error) {
	err := godotenv.Load(envPath)
	if err != nil {
		return nil, err
	}
	dbUrl := os.Getenv(dbEnv)
	return sql.Open("postgres", dbUrl)
}

func CloseRows(rows *sql.Rows) {
	err := rows.Close()
	if err != nil {
		log.Print("Failed to close rows: ", err)
	}
}
