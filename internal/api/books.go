// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Hendrich/book-catalog/internal/auth"
	"github.com/Hendrich/book-catalog/internal/database"
	"github.com/Hendrich/book-catalog/internal/logging"
	"github.com/Hendrich/book-catalog/internal/models"
	"github.com/Hendrich/book-catalog/internal/validation"
)

// ownerID extracts the authenticated owner from the request context.
// The auth middleware guarantees claims are present on these routes.
func ownerID(r *http.Request) string {
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		return claims.UserID()
	}
	return ""
}

// ListBooks handles GET /api/books.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	q := r.URL.Query()

	params := models.ListBooksParams{
		Page:   validation.ParsePositiveInt(q.Get("page"), 1),
		Limit:  validation.ParsePositiveInt(q.Get("limit"), h.cfg.API.DefaultPageSize),
		Search: q.Get("search"),
	}
	if params.Limit > h.cfg.API.MaxPageSize {
		params.Limit = h.cfg.API.MaxPageSize
	}

	total, err := h.books.CountBooks(r.Context(), owner, params)
	if err != nil {
		respondInternalError(w, r, "Failed to fetch books", err)
		return
	}

	books, err := h.books.ListBooks(r.Context(), owner, params)
	if err != nil {
		respondInternalError(w, r, "Failed to fetch books", err)
		return
	}

	respondJSON(w, http.StatusOK, models.APIResponse{
		Success:    true,
		Data:       books,
		Pagination: models.NewPagination(params.Page, params.Limit, int(total)),
	})
}

// GetBook handles GET /api/books/{id}.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, verr := validation.ParseID("ID", chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	book, err := h.books.GetBook(r.Context(), ownerID(r), id)
	if err != nil {
		if errors.Is(err, database.ErrBookNotFound) {
			respondError(w, http.StatusNotFound, CodeNotFound, "Book not found")
			return
		}
		respondInternalError(w, r, "Failed to fetch book", err)
		return
	}

	respondData(w, http.StatusOK, book)
}

// CreateBook handles POST /api/books.
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookRequest
	if verr := decodeJSON(r, &req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	owner := ownerID(r)
	book, err := h.books.CreateBook(r.Context(), owner, *req.Title, *req.Author)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateBook) {
			respondError(w, http.StatusConflict, CodeConflict, "Book with this title and author already exists")
			return
		}
		respondInternalError(w, r, "Failed to create book", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("book_id", book.ID).
		Str("user_id", owner).
		Msg("Book created")

	respondJSON(w, http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    book,
		Message: "Book created successfully",
	})
}

// UpdateBook handles PUT /api/books/{id}.
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, verr := validation.ParseID("ID", chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	var req models.UpdateBookRequest
	if verr := decodeJSON(r, &req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if req.Title == nil && req.Author == nil {
		respondValidationError(w, validation.NewRequestValidationError(
			"at least one of title or author must be provided"))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	fields := models.BookFields{Title: req.Title, Author: req.Author}
	book, err := h.books.UpdateBook(r.Context(), ownerID(r), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrBookNotFound):
			respondError(w, http.StatusNotFound, CodeNotFound, "Book not found or unauthorized")
		case errors.Is(err, database.ErrDuplicateBook):
			respondError(w, http.StatusConflict, CodeConflict, "Book with this title and author already exists")
		default:
			respondInternalError(w, r, "Failed to update book", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    book,
		Message: "Book updated successfully",
	})
}

// DeleteBook handles DELETE /api/books/{id}.
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, verr := validation.ParseID("ID", chi.URLParam(r, "id"))
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	owner := ownerID(r)
	book, err := h.books.DeleteBook(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, database.ErrBookNotFound) {
			respondError(w, http.StatusNotFound, CodeNotFound, "Book not found or unauthorized")
			return
		}
		respondInternalError(w, r, "Failed to delete book", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("book_id", book.ID).
		Str("user_id", owner).
		Msg("Book deleted")

	respondJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    models.DeletedBook{ID: book.ID},
		Message: "Book deleted successfully",
	})
}
