package server

import "time"

type RequestBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status"`
}

type RequestBookStatus struct {
	Status string `json:"status"`
}

type ResponseBook struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResponseBooks struct {
	Data []ResponseBook `json:"data"`
}

type ResponseBookData struct {
	Data ResponseBook `json:"data"`
}

type ResponseMessage struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
