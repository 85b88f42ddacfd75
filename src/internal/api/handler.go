package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DeepanshuSagore/HackFinder/src/internal/api/apiErrors"
	"github.com/DeepanshuSagore/HackFinder/src/internal/derive"
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
	"github.com/DeepanshuSagore/HackFinder/src/internal/service"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc *service.Service
	log *zap.Logger
}

func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, log: logger}
}

func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/posts/list", withTimeout(h.listPosts))
	r.Post("/posts/create", withTimeout(h.createPost))
	r.Post("/interests/express", withTimeout(h.expressInterest))
	r.Post("/interests/respond", withTimeout(h.respondToInterest))
	r.Get("/dashboard", withTimeout(h.dashboard))
	r.Get("/timeline", withTimeout(h.timeline))
	r.Get("/users/get", withTimeout(h.getUser))
	r.Get("/users/me", withTimeout(h.currentUser))
	r.Post("/profile/update", withTimeout(h.updateProfile))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
}

func withTimeout(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := derive.Filters{
		Type:   q.Get("type"),
		Skills: q.Get("skills"),
		Roles:  q.Get("roles"),
		Work:   q.Get("work"),
	}
	posts := h.svc.Feed(r.Context(), filters)
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts, "count": len(posts)})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var draft model.PostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, apiErrors.InternalError, "invalid body")
		return
	}
	if draft.PostType == "" || draft.Title == "" || draft.Description == "" {
		writeError(w, http.StatusBadRequest, apiErrors.ValidationFailed, "post_type, title and description required")
		return
	}
	post, err := h.svc.CreatePost(r.Context(), draft)
	if err != nil {
		handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"post": post})
}

func (h *Handler) expressInterest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID  string   `json:"post_id"`
		Message string   `json:"message"`
		Roles   []string `json:"roles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PostID == "" {
		writeError(w, http.StatusBadRequest, apiErrors.InternalError, "post_id required")
		return
	}
	interest, err := h.svc.ExpressInterest(r.Context(), req.PostID, req.Message, req.Roles)
	if err != nil {
		handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "interest": interest})
}

func (h *Handler) respondToInterest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InterestID string               `json:"interest_id"`
		Status     model.InterestStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.InterestID == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, apiErrors.InternalError, "interest_id and status required")
		return
	}
	if err := h.svc.RespondToInterest(r.Context(), req.InterestID, req.Status); err != nil {
		handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard(r.Context()))
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	filter := derive.TimelineFilter(r.URL.Query().Get("filter"))
	switch filter {
	case "", derive.TimelineAll, derive.TimelinePosts, derive.TimelineReceived, derive.TimelineSent:
	default:
		writeError(w, http.StatusBadRequest, apiErrors.ValidationFailed, "filter must be one of all, posts, received, sent")
		return
	}
	events := h.svc.Timeline(r.Context(), filter)
	writeJSON(w, http.StatusOK, map[string]any{"events": events, "count": len(events)})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, apiErrors.InternalError, "user_id required")
		return
	}
	user, err := h.svc.UserByID(r.Context(), userID)
	if err != nil {
		handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"user": h.svc.CurrentUser(r.Context())})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil || update.UserID == "" {
		writeError(w, http.StatusBadRequest, apiErrors.InternalError, "user_id required")
		return
	}
	user, err := h.svc.UpdateProfile(r.Context(), update)
	if err != nil {
		handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user, "applied": user.ID != ""})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, errCode apiErrors.ErrorCode, message string) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{"code": errCode, "message": message},
	})
}

func handleSvcError(w http.ResponseWriter, err error) {
	var e apiErrors.APIError
	switch {
	case errors.As(err, &e):
		switch e.Code {
		case apiErrors.EmptyMessage, apiErrors.RoleRequired, apiErrors.InvalidStatus, apiErrors.ValidationFailed:
			writeError(w, http.StatusBadRequest, e.Code, e.Message)
		case apiErrors.AlreadyInterested, apiErrors.OwnPost:
			writeError(w, http.StatusConflict, e.Code, e.Message)
		case apiErrors.NotFound:
			writeError(w, http.StatusNotFound, e.Code, e.Message)
		default:
			writeError(w, http.StatusInternalServerError, apiErrors.InternalError, e.Message)
		}
	default:
		writeError(w, http.StatusInternalServerError, apiErrors.InternalError, err.Error())
	}
}
