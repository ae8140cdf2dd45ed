package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ledgerhub/internal/api/middleware"
	"ledgerhub/internal/app/service"
	"ledgerhub/internal/common"

	"github.com/go-chi/chi/v5"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/category/{categoryName}", h.listByCategory)
	r.Get("/{expenseID}", h.get)
	r.Put("/{expenseID}", h.update)
	r.Delete("/{expenseID}", h.delete)
}

// Summary is mounted separately at GET /summary.
func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	summary, err := h.expenseService.Summary(r.Context(), user.ID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, summary)
}

func (h *ExpenseHandler) list(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	expenses, err := h.expenseService.List(r.Context(), user.ID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) listByCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	expenses, err := h.expenseService.ListByCategory(r.Context(), user.ID, chi.URLParam(r, "categoryName"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	expense, err := h.expenseService.Get(r.Context(), user.ID, chi.URLParam(r, "expenseID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "Expense not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	expense, err := h.expenseService.Create(r.Context(), user.ID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Expense '%s' created successfully!", expense.Title))
}

func (h *ExpenseHandler) update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.expenseService.Update(r.Context(), user.ID, chi.URLParam(r, "expenseID"), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Expense updated successfully!")
}

func (h *ExpenseHandler) delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.expenseService.Delete(r.Context(), user.ID, chi.URLParam(r, "expenseID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Expense deleted successfully!")
}
