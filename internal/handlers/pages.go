package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/cache"
	"github.com/VitaminP8/yatube/internal/pagination"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

// Index - главная страница: свежие посты всех авторов. Пагинатор целиком
// кэшируется на cache.IndexTTL, поэтому посты, созданные внутри этого
// окна, появляются на главной только после истечения TTL.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	paginator, ok := h.cache.Get(cache.IndexKey)
	if !ok {
		posts, err := h.posts.GetAllPosts()
		if err != nil {
			h.serverError(w, err, "could not load posts for index page")
			return
		}

		paginator = pagination.New(posts, pagination.PostsPerPage)
		h.cache.Add(cache.IndexKey, paginator)
	}

	h.metrics.PageViews.WithLabelValues("index").Inc()
	h.render(w, "index.html", h.pageData(r, map[string]interface{}{
		"PageObj": paginator.GetPage(pageNumber(r)),
	}))
}

// GroupPosts - страница сообщества. Набор постов исторически обрезается
// до одной страницы ДО пагинации, поэтому страницы дальше первой пусты.
func (h *Handler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	g, err := h.groups.GetGroupBySlug(mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.notFound(w, "group")
			return
		}
		h.serverError(w, err, "could not load group")
		return
	}

	posts, err := h.posts.GetPostsByGroup(g.ID)
	if err != nil {
		h.serverError(w, err, "could not load group posts")
		return
	}

	if len(posts) > pagination.PostsPerPage {
		posts = posts[:pagination.PostsPerPage]
	}
	paginator := pagination.New(posts, pagination.PostsPerPage)

	h.metrics.PageViews.WithLabelValues("group").Inc()
	h.render(w, "group_list.html", h.pageData(r, map[string]interface{}{
		"Group":   g,
		"PageObj": paginator.GetPage(pageNumber(r)),
	}))
}

// Profile - страница автора: его посты и общее их количество.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	author, err := h.users.GetUserByUsername(mux.Vars(r)["username"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.notFound(w, "profile")
			return
		}
		h.serverError(w, err, "could not load profile")
		return
	}

	posts, err := h.posts.GetPostsByAuthor(author.ID)
	if err != nil {
		h.serverError(w, err, "could not load author posts")
		return
	}

	paginator := pagination.New(posts, pagination.PostsPerPage)

	following := false
	isSelf := false
	if viewerID, err := auth.GetUserIDFromContext(r.Context()); err == nil {
		isSelf = viewerID == author.ID
		if !isSelf {
			following, err = h.follows.IsFollowing(viewerID, author.ID)
			if err != nil {
				h.serverError(w, err, "could not check follow state")
				return
			}
		}
	}

	h.metrics.PageViews.WithLabelValues("profile").Inc()
	h.render(w, "profile.html", h.pageData(r, map[string]interface{}{
		"Author":    author,
		"PageObj":   paginator.GetPage(pageNumber(r)),
		"PostCount": paginator.Count(),
		"Following": following,
		"IsSelf":    isSelf,
	}))
}

// PostDetail - страница поста с формой комментария. Список комментариев
// сознательно не ограничен текущим постом (поведение вынесено на ревью
// продукту) - выводятся все комментарии системы.
func (h *Handler) PostDetail(w http.ResponseWriter, r *http.Request) {
	p, ok := h.postFromRequest(w, r, "post_detail")
	if !ok {
		return
	}

	comments, err := h.comments.GetAllCommentsWithPosts()
	if err != nil {
		h.serverError(w, err, "could not load comments")
		return
	}

	isAuthor := false
	if viewerID, err := auth.GetUserIDFromContext(r.Context()); err == nil {
		isAuthor = viewerID == p.UserID
	}

	h.metrics.PageViews.WithLabelValues("post_detail").Inc()
	h.render(w, "post_detail.html", h.pageData(r, map[string]interface{}{
		"Post":     p,
		"Comments": comments,
		"IsAuthor": isAuthor,
	}))
}

// FollowIndex - лента постов авторов, на которых подписан пользователь.
// Лента сознательно без пагинации.
func (h *Handler) FollowIndex(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, auth.LoginURL, http.StatusFound)
		return
	}

	authorIds, err := h.follows.GetFollowedAuthorIds(userID)
	if err != nil {
		h.serverError(w, err, "could not load followed authors")
		return
	}

	posts, err := h.posts.GetPostsByAuthors(authorIds)
	if err != nil {
		h.serverError(w, err, "could not load follow feed")
		return
	}

	h.metrics.PageViews.WithLabelValues("follow").Inc()
	h.render(w, "follow.html", h.pageData(r, map[string]interface{}{
		"Posts": posts,
	}))
}

// ProfileFollow подписывает текущего пользователя на автора. Повторная
// подписка и самоподписка - no-op; в любом случае 302 на профиль.
func (h *Handler) ProfileFollow(w http.ResponseWriter, r *http.Request) {
	h.changeSubscription(w, r, "follow", h.follows.FollowAuthor)
}

// ProfileUnfollow - симметричная отписка, тоже идемпотентная.
func (h *Handler) ProfileUnfollow(w http.ResponseWriter, r *http.Request) {
	h.changeSubscription(w, r, "unfollow", h.follows.UnfollowAuthor)
}

func (h *Handler) changeSubscription(
	w http.ResponseWriter, r *http.Request,
	action string, change func(ctx context.Context, authorID uint) error,
) {
	username := mux.Vars(r)["username"]

	author, err := h.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.notFound(w, action)
			return
		}
		h.serverError(w, err, "could not load author")
		return
	}

	if err := change(r.Context(), author.ID); err != nil {
		h.serverError(w, err, "could not change subscription")
		return
	}

	h.metrics.FollowRequests.WithLabelValues(action).Inc()
	http.Redirect(w, r, profileURL(username), http.StatusFound)
}

// postFromRequest достает пост по id из пути, отдавая 404 на отсутствующий.
func (h *Handler) postFromRequest(w http.ResponseWriter, r *http.Request, page string) (*models.Post, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.notFound(w, page)
		return nil, false
	}

	p, err := h.posts.GetPostById(uint(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.notFound(w, page)
			return nil, false
		}
		h.serverError(w, err, "could not load post")
		return nil, false
	}

	return p, true
}
