package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	communitydomain "visionx-go/internal/domain/community"
	"visionx-go/internal/transport/httpserver/middleware"
)

// --- Discussion threads ---

type threadRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type threadResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toThreadResponse(thread *communitydomain.DiscussionThread) threadResponse {
	return threadResponse{
		ID:        thread.ID,
		Title:     thread.Title,
		Content:   thread.Content,
		AuthorID:  thread.AuthorID,
		CreatedAt: thread.CreatedAt,
		UpdatedAt: thread.UpdatedAt,
	}
}

func (h *Handlers) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.Community.ListThreads(r.Context())
	if err != nil {
		h.serviceError(w, "threads.list", err)
		return
	}

	items := make([]threadResponse, 0, len(threads))
	for i := range threads {
		items = append(items, toThreadResponse(&threads[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetThread(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	thread, err := h.Community.GetThread(r.Context(), id)
	if err != nil {
		h.serviceError(w, "threads.get", err, "thread_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toThreadResponse(thread))
}

func (h *Handlers) CreateThread(w http.ResponseWriter, r *http.Request) {
	var req threadRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	thread, err := h.Community.CreateThread(r.Context(), p, communitydomain.ThreadInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.serviceError(w, "threads.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toThreadResponse(thread))
}

func (h *Handlers) UpdateThread(w http.ResponseWriter, r *http.Request) {
	var req threadRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	thread, err := h.Community.UpdateThread(r.Context(), p, id, communitydomain.ThreadInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.serviceError(w, "threads.update", err, "user_id", p.ID, "thread_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toThreadResponse(thread))
}

func (h *Handlers) DeleteThread(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Community.DeleteThread(r.Context(), p, id); err != nil {
		h.serviceError(w, "threads.delete", err, "user_id", p.ID, "thread_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Thread replies ---

type createReplyRequest struct {
	ThreadID string `json:"thread_id" validate:"required,uuid4"`
	Content  string `json:"content" validate:"required"`
}

type replyResponse struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toReplyResponse(reply *communitydomain.ThreadReply) replyResponse {
	return replyResponse{
		ID:        reply.ID,
		ThreadID:  reply.ThreadID,
		AuthorID:  reply.AuthorID,
		Content:   reply.Content,
		CreatedAt: reply.CreatedAt,
	}
}

func toReplyResponses(replies []communitydomain.ThreadReply) []replyResponse {
	items := make([]replyResponse, 0, len(replies))
	for i := range replies {
		items = append(items, toReplyResponse(&replies[i]))
	}
	return items
}

func (h *Handlers) ListReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := h.Community.ListReplies(r.Context())
	if err != nil {
		h.serviceError(w, "replies.list", err)
		return
	}

	writeJSON(w, http.StatusOK, toReplyResponses(replies))
}

func (h *Handlers) ThreadReplies(w http.ResponseWriter, r *http.Request) {
	threadID := chi.URLParam(r, "id")

	replies, err := h.Community.ListRepliesByThread(r.Context(), threadID)
	if err != nil {
		h.serviceError(w, "replies.by_thread", err, "thread_id", threadID)
		return
	}

	writeJSON(w, http.StatusOK, toReplyResponses(replies))
}

func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
	var req createReplyRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	reply, err := h.Community.CreateReply(r.Context(), p, req.ThreadID, req.Content)
	if err != nil {
		h.serviceError(w, "replies.create", err, "user_id", p.ID, "thread_id", req.ThreadID)
		return
	}

	writeJSON(w, http.StatusCreated, toReplyResponse(reply))
}

type updateReplyRequest struct {
	ThreadID *string `json:"thread_id" validate:"omitempty,uuid4"`
	Content  *string `json:"content"`
}

func (h *Handlers) UpdateReply(w http.ResponseWriter, r *http.Request) {
	var req updateReplyRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	reply, err := h.Community.UpdateReply(r.Context(), p, communitydomain.UpdateReplyInput{
		ID:       id,
		ThreadID: req.ThreadID,
		Content:  req.Content,
	})
	if err != nil {
		h.serviceError(w, "replies.update", err, "user_id", p.ID, "reply_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toReplyResponse(reply))
}

func (h *Handlers) DeleteReply(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Community.DeleteReply(r.Context(), p, id); err != nil {
		h.serviceError(w, "replies.delete", err, "user_id", p.ID, "reply_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Resources ---

type resourceRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	FileURL     string `json:"file_url" validate:"required,url,max=512"`
}

type resourceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileURL      string    `json:"file_url"`
	UploadedByID *string   `json:"uploaded_by_id"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func toResourceResponse(resource *communitydomain.Resource) resourceResponse {
	return resourceResponse{
		ID:           resource.ID,
		Title:        resource.Title,
		Description:  resource.Description,
		FileURL:      resource.FileURL,
		UploadedByID: resource.UploadedByID,
		UploadedAt:   resource.UploadedAt,
	}
}

func (h *Handlers) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.Community.ListResources(r.Context())
	if err != nil {
		h.serviceError(w, "resources.list", err)
		return
	}

	items := make([]resourceResponse, 0, len(resources))
	for i := range resources {
		items = append(items, toResourceResponse(&resources[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resource, err := h.Community.GetResource(r.Context(), id)
	if err != nil {
		h.serviceError(w, "resources.get", err, "resource_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponse(resource))
}

func (h *Handlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req resourceRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	resource, err := h.Community.CreateResource(r.Context(), p, communitydomain.ResourceInput{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	})
	if err != nil {
		h.serviceError(w, "resources.create", err, "user_id", p.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toResourceResponse(resource))
}

type updateResourceRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url" validate:"omitempty,url,max=512"`
}

func (h *Handlers) UpdateResource(w http.ResponseWriter, r *http.Request) {
	var req updateResourceRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")
	resource, err := h.Community.UpdateResource(r.Context(), p, communitydomain.UpdateResourceInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	})
	if err != nil {
		h.serviceError(w, "resources.update", err, "user_id", p.ID, "resource_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponse(resource))
}

func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Community.DeleteResource(r.Context(), p, id); err != nil {
		h.serviceError(w, "resources.delete", err, "user_id", p.ID, "resource_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
