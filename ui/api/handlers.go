package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"postboard/storage"
	"postboard/ui/service"
)

// postRequest is the body of POST /api/posts and PUT /api/posts/{id}.
type postRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Media   []string `json:"media"`
}

// messageResponse is the envelope for all non-list responses.
type messageResponse struct {
	Message string        `json:"message"`
	Post    *storage.Post `json:"post,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes a JSON {message} response.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func (rt *router) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := rt.svc.ListPosts(r.Context())
	if err != nil {
		rt.logError("Error fetching posts", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []*storage.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (rt *router) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := rt.svc.CreatePost(r.Context(), req.Title, req.Content, req.Media)
	if errors.Is(err, service.ErrTitleRequired) {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if err != nil {
		rt.logError("Error creating post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "Post created successfully",
		Post:    post,
	})
}

func (rt *router) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := rt.svc.UpdatePost(r.Context(), id, req.Title, req.Content, req.Media)
	if errors.Is(err, service.ErrTitleRequired) {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if errors.Is(err, storage.ErrPostNotFound) {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		rt.logError("Error updating post", "post_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Post updated successfully",
		Post:    post,
	})
}

func (rt *router) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := rt.svc.DeletePost(r.Context(), id)
	if errors.Is(err, storage.ErrPostNotFound) {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		rt.logError("Error deleting post", "post_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	writeMessage(w, http.StatusOK, fmt.Sprintf("Post with id %s deleted successfully", id))
}

func (rt *router) handleDeleteAllPosts(w http.ResponseWriter, r *http.Request) {
	if err := rt.svc.DeleteAllPosts(r.Context()); err != nil {
		rt.logError("Error deleting all posts", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete all posts")
		return
	}

	writeMessage(w, http.StatusOK, "All posts deleted successfully")
}
