package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ReadingStatus string

const (
	ReadingStatusReading   ReadingStatus = "Reading"
	ReadingStatusCompleted ReadingStatus = "Completed"
	ReadingStatusWishlist  ReadingStatus = "Wishlist"
)

// ParseReadingStatus maps a raw string onto the closed status enum.
func ParseReadingStatus(status string) (ReadingStatus, error) {
	dbStatus := ReadingStatus(status)
	if dbStatus == ReadingStatusReading || dbStatus == ReadingStatusCompleted || dbStatus == ReadingStatusWishlist {
		return dbStatus, nil
	}
	return "", errors.New("unknown reading status")
}

type Book struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Author    string
	Status    ReadingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
