package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/cache"
	"github.com/VitaminP8/yatube/internal/comment"
	"github.com/VitaminP8/yatube/internal/follow"
	"github.com/VitaminP8/yatube/internal/group"
	"github.com/VitaminP8/yatube/internal/metrics"
	"github.com/VitaminP8/yatube/internal/post"
	"github.com/VitaminP8/yatube/internal/storage/files"
	"github.com/VitaminP8/yatube/internal/user"
	"github.com/VitaminP8/yatube/models"
	"github.com/VitaminP8/yatube/web"
)

// Handler обслуживает HTML-страницы сайта. Все зависимости инжектируются,
// глобального состояния в пакете нет.
type Handler struct {
	posts    post.PostStorage
	groups   group.GroupStorage
	comments comment.CommentStorage
	users    user.UserStorage
	follows  follow.FollowStorage
	images   files.ImageStorage
	cache    cache.PaginatorCache
	metrics  *metrics.Metrics
	logger   *logrus.Logger
	tmpl     *template.Template
}

type Deps struct {
	Posts    post.PostStorage
	Groups   group.GroupStorage
	Comments comment.CommentStorage
	Users    user.UserStorage
	Follows  follow.FollowStorage
	Images   files.ImageStorage
	Cache    cache.PaginatorCache
	Metrics  *metrics.Metrics
	Logger   *logrus.Logger
}

func New(deps Deps) (*Handler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse templates: %w", err)
	}

	return &Handler{
		posts:    deps.Posts,
		groups:   deps.Groups,
		comments: deps.Comments,
		users:    deps.Users,
		follows:  deps.Follows,
		images:   deps.Images,
		cache:    deps.Cache,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		tmpl:     tmpl,
	}, nil
}

// pageData собирает данные шаблона, добавляя текущего пользователя
// (nil для анонимного запроса) - он нужен навигации на каждой странице.
func (h *Handler) pageData(r *http.Request, data map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Viewer"] = h.currentUser(r)
	return data
}

func (h *Handler) currentUser(r *http.Request) *models.User {
	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		return nil
	}

	u, err := h.users.GetUserById(userID)
	if err != nil {
		return nil
	}
	return u
}

func (h *Handler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.WithError(err).WithField("template", name).Error("template rendering failed")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, page string) {
	h.metrics.NotFound.WithLabelValues(page).Inc()
	http.Error(w, "404 Not Found", http.StatusNotFound)
}

func (h *Handler) serverError(w http.ResponseWriter, err error, msg string) {
	h.logger.WithError(err).Error(msg)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// pageNumber читает ?page= из запроса. Невалидное значение - первая
// страница, выход за границы выравнивает сам пагинатор.
func pageNumber(r *http.Request) int {
	number, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return number
}

func postURL(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func profileURL(username string) string {
	return fmt.Sprintf("/profile/%s/", username)
}
