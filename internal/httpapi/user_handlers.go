package httpapi

import (
	"net/http"
	"time"

	"github.com/nikolayk812/marketplace/internal/auth"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/service"
)

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeSession(w http.ResponseWriter, status int, user domain.User, token string) {
	h.setSessionCookie(w, token)

	writeJSON(w, status, struct {
		Success bool    `json:"success"`
		User    userDTO `json:"user"`
		Token   string  `json:"token"`
	}{true, toUserDTO(user), token})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	user, token, err := h.users.Register(r.Context(), service.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   domain.Avatar{PublicID: req.Avatar.PublicID, URL: req.Avatar.URL},
	})
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	h.writeSession(w, http.StatusCreated, user, token)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	h.writeSession(w, http.StatusOK, user, token)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(r.Context(), tokenFrom(r)); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Logged Out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())

	writeJSON(w, http.StatusOK, struct {
		Success bool    `json:"success"`
		User    userDTO `json:"user"`
	}{true, toUserDTO(user)})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	if err := h.users.DeleteUser(r.Context(), userID); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{true})
}
