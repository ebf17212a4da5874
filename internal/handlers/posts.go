package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
)

// Лимит на размер формы с картинкой.
const maxFormSize = 10 << 20

// PostCreate - GET отдает форму, POST создает пост. Автор берется только
// из контекста запроса. Невалидная форма перерисовывается со статусом 200,
// успех - 302 на профиль автора.
func (h *Handler) PostCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "create_post.html", h.pageData(r, map[string]interface{}{
			"IsEdit": false,
		}))
		return
	}

	text, groupID, imagePath, err := h.parsePostForm(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if text == "" {
		h.render(w, "create_post.html", h.pageData(r, map[string]interface{}{
			"IsEdit": false,
			"Error":  "Текст поста не может быть пустым",
		}))
		return
	}

	if _, err := h.posts.CreatePost(r.Context(), text, groupID, imagePath); err != nil {
		h.serverError(w, err, "could not create post")
		return
	}

	h.metrics.PostsCreated.WithLabelValues("create").Inc()

	viewer := h.currentUser(r)
	if viewer == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, profileURL(viewer.Username), http.StatusFound)
}

// PostEdit редактирует пост. Не-автор молча перенаправляется на страницу
// поста - и на GET, и на POST; пост при этом не меняется.
func (h *Handler) PostEdit(w http.ResponseWriter, r *http.Request) {
	p, ok := h.postFromRequest(w, r, "post_edit")
	if !ok {
		return
	}

	viewerID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, auth.LoginURL, http.StatusFound)
		return
	}
	if viewerID != p.UserID {
		http.Redirect(w, r, postURL(p.ID), http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, "create_post.html", h.pageData(r, map[string]interface{}{
			"IsEdit": true,
			"Post":   p,
		}))
		return
	}

	text, groupID, imagePath, err := h.parsePostForm(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if text == "" {
		h.render(w, "create_post.html", h.pageData(r, map[string]interface{}{
			"IsEdit": true,
			"Post":   p,
			"Error":  "Текст поста не может быть пустым",
		}))
		return
	}

	if _, err := h.posts.UpdatePost(r.Context(), p.ID, text, groupID, imagePath); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotAuthor):
			http.Redirect(w, r, postURL(p.ID), http.StatusFound)
		case errors.Is(err, storage.ErrNotFound):
			h.notFound(w, "post_edit")
		default:
			h.serverError(w, err, "could not update post")
		}
		return
	}

	h.metrics.PostsCreated.WithLabelValues("edit").Inc()
	http.Redirect(w, r, postURL(p.ID), http.StatusFound)
}

// AddComment добавляет комментарий к посту. Пустой текст молча
// отбрасывается; в обоих случаях 302 обратно на страницу поста.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.postFromRequest(w, r, "add_comment")
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if text := strings.TrimSpace(r.FormValue("text")); text != "" {
		if _, err := h.comments.CreateComment(r.Context(), p.ID, text); err != nil {
			h.serverError(w, err, "could not create comment")
			return
		}
		h.metrics.CommentsCreated.WithLabelValues("post_detail").Inc()
	}

	http.Redirect(w, r, postURL(p.ID), http.StatusFound)
}

// parsePostForm разбирает форму поста (multipart или urlencoded):
// текст, опциональная группа, опциональная картинка. Картинка сразу
// сохраняется в хранилище файлов, в пост идет относительный путь.
func (h *Handler) parsePostForm(r *http.Request) (text string, groupID *uint, imagePath string, err error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormSize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		err = fmt.Errorf("could not parse post form: %w", err)
		return
	}

	text = strings.TrimSpace(r.FormValue("text"))

	if raw := r.FormValue("group"); raw != "" {
		id64, convErr := strconv.ParseUint(raw, 10, 32)
		if convErr != nil {
			err = fmt.Errorf("invalid group id %q: %w", raw, convErr)
			return
		}
		id := uint(id64)
		groupID = &id
	}

	file, header, fileErr := r.FormFile("image")
	if fileErr == nil {
		defer file.Close()
		imagePath, err = h.images.SaveImage(header.Filename, file)
		if err != nil {
			err = fmt.Errorf("could not save post image: %w", err)
			return
		}
	}

	return text, groupID, imagePath, nil
}
