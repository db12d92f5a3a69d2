package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Routes(m *Middleware, corsOrigins []string, metricsHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(m.RequestID)
	r.Use(m.RequestLogger)
	r.Use(m.Recoverer)
	r.Use(m.SecurityHeaders)
	r.Use(middleware.Compress(5))
	r.Use(m.Timeout(15 * time.Second))
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(m.CORS(corsOrigins))

	// Health and observability endpoints
	r.Get("/healthz", h.Healthz)
	r.Get("/readyz", h.Readyz)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	// Uploaded images
	if h.config != nil {
		fs := http.StripPrefix(h.config.Media.BaseURL+"/", http.FileServer(http.Dir(h.config.Media.RootDir)))
		r.Handle(h.config.Media.BaseURL+"/*", fs)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/forgot-password", h.ForgotPassword)

			r.Group(func(r chi.Router) {
				r.Use(m.Authenticate)
				r.Get("/me", h.GetMe)
				r.Put("/me", h.UpdateMe)
				r.Get("/{id}", h.GetUserProfile)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			// Public reads
			r.Get("/published", h.ListPublishedPosts)
			r.Get("/{slug}", h.GetPost)
			r.Get("/{id}/comments", h.ListComments)
			r.Get("/{id}/like-count", h.LikeCount)
			r.Get("/{id}/bookmark-count", h.BookmarkCount)

			r.Group(func(r chi.Router) {
				r.Use(m.Authenticate)
				r.Post("/", h.CreatePost)
				r.Put("/{id}", h.UpdatePost)
				r.Delete("/{id}", h.DeletePost)

				r.Post("/{id}/like", h.AddLike)
				r.Delete("/{id}/like", h.RemoveLike)
				r.Post("/{id}/bookmark", h.AddBookmark)
				r.Delete("/{id}/bookmark", h.RemoveBookmark)
				r.Post("/{id}/comments", h.AddComment)

				r.Group(func(r chi.Router) {
					r.Use(m.RequireAdmin)
					r.Get("/admin", h.ListAllPosts)
					r.Put("/{id}/status", h.TransitionPostStatus)
				})
			})
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", h.ListPublishedPromotions)
			r.Get("/{slug}", h.GetPromotion)

			r.Group(func(r chi.Router) {
				r.Use(m.Authenticate)
				r.Post("/", h.CreatePromotion)
				r.Put("/{id}", h.UpdatePromotion)
				r.Delete("/{id}", h.DeletePromotion)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(m.Authenticate)
			r.Delete("/{id}", h.DeleteComment)

			r.Group(func(r chi.Router) {
				r.Use(m.RequireAdmin)
				r.Post("/{id}/approve", h.ApproveComment)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(m.Authenticate)
			r.Get("/likes", h.ListLikes)
			r.Get("/bookmarks", h.ListBookmarks)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.ListNotifications)
				r.Post("/{id}/read", h.MarkNotificationRead)
				r.Post("/read-all", h.MarkAllNotificationsRead)
			})

			r.Post("/media", h.UploadMedia)
		})
	})

	return r
}
