package handlers

import (
	"net/http"
	"strings"

	"github.com/VitaminP8/yatube/internal/auth"
)

// SignUp регистрирует пользователя и сразу логинит его.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "signup.html", h.pageData(r, nil))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		h.render(w, "signup.html", h.pageData(r, map[string]interface{}{
			"Error": "Все поля обязательны",
		}))
		return
	}

	u, err := h.users.RegisterUser(username, email, password)
	if err != nil {
		h.logger.WithError(err).WithField("username", username).Info("signup rejected")
		h.render(w, "signup.html", h.pageData(r, map[string]interface{}{
			"Error": "Не удалось зарегистрировать пользователя",
		}))
		return
	}

	token, err := auth.GenerateToken(u)
	if err != nil {
		h.serverError(w, err, "could not issue auth token")
		return
	}

	h.setAuthCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login выдает JWT в cookie. Неверные учетные данные перерисовывают
// форму со статусом 200.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "login.html", h.pageData(r, nil))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	token, err := h.users.LoginUser(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		h.logger.WithError(err).Info("login rejected")
		h.render(w, "login.html", h.pageData(r, map[string]interface{}{
			"Error": "Неверное имя пользователя или пароль",
		}))
		return
	}

	h.setAuthCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout стирает cookie с токеном.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
