package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ledgerhub/internal/app/service"
	"ledgerhub/internal/common"

	"github.com/go-chi/chi/v5"
)

// BookHandler serves the library catalog. These routes are deliberately
// unauthenticated, mirroring the original catalog service.
type BookHandler struct {
	libraryService *service.LibraryService
}

func NewBookHandler(libraryService *service.LibraryService) *BookHandler {
	return &BookHandler{libraryService: libraryService}
}

func (h *BookHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Put("/{titleSlug}/borrow", h.borrow)
	r.Put("/{titleSlug}/return", h.returnBook)
	r.Delete("/{titleSlug}", h.delete)
}

func (h *BookHandler) list(w http.ResponseWriter, r *http.Request) {
	books, err := h.libraryService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, books)
}

func (h *BookHandler) add(w http.ResponseWriter, r *http.Request) {
	var req service.AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	book, err := h.libraryService.Add(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Book '%s' added successfully!", book.Title))
}

func (h *BookHandler) borrow(w http.ResponseWriter, r *http.Request) {
	book, err := h.libraryService.Borrow(r.Context(), chi.URLParam(r, "titleSlug"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, fmt.Sprintf("You borrowed '%s'", book.Title))
}

func (h *BookHandler) returnBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.libraryService.Return(r.Context(), chi.URLParam(r, "titleSlug"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, fmt.Sprintf("You returned '%s'", book.Title))
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request) {
	titleSlug := chi.URLParam(r, "titleSlug")
	if err := h.libraryService.Delete(r.Context(), titleSlug); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Book '%s' deleted successfully!", titleSlug))
}
