package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasks-service/internal/platform/sanitize"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// TaskHandler handles HTTP requests for task operations. Mutations take the
// acting user from the user_id query parameter.
type TaskHandler struct {
	tasks     ports.TaskService
	sanitizer Sanitizer
}

// NewTaskHandler creates a TaskHandler. A nil sanitizer defaults to the
// strict plain-text policy.
func NewTaskHandler(tasks ports.TaskService, sanitizer Sanitizer) *TaskHandler {
	if sanitizer == nil {
		sanitizer = sanitize.NewText()
	}
	return &TaskHandler{tasks: tasks, sanitizer: sanitizer}
}

// ListTasks handles GET /api/v1/users/{userId}/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetTasks(r.Context(), ports.GetTasksQuery{UserID: chi.URLParam(r, "userId")})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.tasks.CreateTask(r.Context(), ports.CreateTaskCommand{
		UserID:      req.UserID,
		Title:       h.sanitizer.Clean(req.Title),
		Description: h.sanitizer.Clean(req.Description),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.tasks.GetTask(r.Context(), ports.GetTaskQuery{TaskID: chi.URLParam(r, "taskId")})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{taskId}?user_id=.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.tasks.UpdateTask(r.Context(), ports.UpdateTaskCommand{
		TaskID:      chi.URLParam(r, "taskId"),
		UserID:      actingUser(r),
		Title:       h.sanitizer.CleanPtr(req.Title),
		Description: h.sanitizer.CleanPtr(req.Description),
		Completed:   req.Completed,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// ToggleTask handles POST /api/v1/tasks/{taskId}/toggle?user_id=.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.tasks.ToggleTask(r.Context(), ports.ToggleTaskCommand{
		TaskID: chi.URLParam(r, "taskId"),
		UserID: actingUser(r),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(toggled))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}?user_id=.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	err := h.tasks.DeleteTask(r.Context(), ports.DeleteTaskCommand{
		TaskID: chi.URLParam(r, "taskId"),
		UserID: actingUser(r),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
