package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ledgerhub/internal/app/service"
	"ledgerhub/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("User '%s' registered successfully!", req.Username))
}

// login reads form-encoded credentials, matching the OAuth2 password
// flow shape: username and password fields in the body.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
