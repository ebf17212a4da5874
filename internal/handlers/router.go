package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/VitaminP8/yatube/internal/auth"
)

// Router собирает все маршруты сайта. Пути со слешем на конце - часть
// внешнего контракта, редиректы на них полагаются.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.loggingMiddleware)
	r.Use(auth.AuthMiddleware)

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/follow/", auth.RequireAuth(h.FollowIndex)).Methods(http.MethodGet)
	r.HandleFunc("/group/{slug}/", h.GroupPosts).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/", h.Profile).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/follow/", auth.RequireAuth(h.ProfileFollow)).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/unfollow/", auth.RequireAuth(h.ProfileUnfollow)).Methods(http.MethodGet)
	r.HandleFunc("/create/", auth.RequireAuth(h.PostCreate)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}/", h.PostDetail).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id:[0-9]+}/", auth.RequireAuth(h.AddComment)).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}/comment/", auth.RequireAuth(h.AddComment)).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}/edit/", auth.RequireAuth(h.PostEdit)).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/auth/signup/", h.SignUp).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/auth/login/", h.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/auth/logout/", h.Logout).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request completed")
	})
}
