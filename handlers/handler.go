package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/instructormatch/instructor_match/storage"
)

var validate = validator.New()

// Handler carries the injected storage used by every route.
type Handler struct {
	store storage.Storage
}

func New(store storage.Storage) *Handler {
	return &Handler{store: store}
}
