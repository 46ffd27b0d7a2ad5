package frontend

import (
	"html/template"
	"net/http"

	"postboard/storage"
)

// postView is a Post prepared for the server-rendered template.
type postView struct {
	*storage.Post
	ContentHTML template.HTML
}

func (r *router) handleIndex(w http.ResponseWriter, req *http.Request) {
	http.ServeFileFS(w, req, r.static, "index.html")
}

func (r *router) handlePostsPage(w http.ResponseWriter, req *http.Request) {
	posts, err := r.svc.ListPosts(req.Context())
	if err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Error("Error fetching posts for view", "error", err)
		}
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = postView{
			Post:        p,
			ContentHTML: renderMarkdown(p.Content),
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, "base", views); err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Error("Error rendering posts view", "error", err)
		}
	}
}
