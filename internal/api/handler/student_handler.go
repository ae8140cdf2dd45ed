package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ledgerhub/internal/app/service"
	"ledgerhub/internal/common"

	"github.com/go-chi/chi/v5"
)

// StudentHandler serves the student roster, unauthenticated like the
// original roster service.
type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/top", h.top)
	r.Get("/{name}", h.get)
	r.Put("/{name}", h.update)
	r.Put("/{name}/grade", h.updateGrade)
	r.Delete("/{name}", h.delete)
}

func (h *StudentHandler) list(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) top(w http.ResponseWriter, r *http.Request) {
	top, err := h.studentService.Top(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, top)
}

func (h *StudentHandler) get(w http.ResponseWriter, r *http.Request) {
	student, err := h.studentService.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "Student not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	student, err := h.studentService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Student '%s' added successfully!", student.Name))
}

func (h *StudentHandler) update(w http.ResponseWriter, r *http.Request) {
	var req service.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.studentService.Update(r.Context(), name, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Student '%s' updated successfully!", name))
}

func (h *StudentHandler) updateGrade(w http.ResponseWriter, r *http.Request) {
	var req service.GradeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.studentService.UpdateGrade(r.Context(), name, req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Grade updated to %d for '%s'", req.Grade, name))
}

func (h *StudentHandler) delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.studentService.Delete(r.Context(), name); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK,
		fmt.Sprintf("Student '%s' deleted successfully!", name))
}
