package auth

import (
	dto "bookshelf_backend/internal/api/dto/auth"
	"bookshelf_backend/internal/api/middleware"
	"bookshelf_backend/internal/config"
	"bookshelf_backend/internal/converter"
	"bookshelf_backend/internal/service"
	"bookshelf_backend/pkg/req"
	"bookshelf_backend/pkg/resp"
	"bookshelf_backend/pkg/token"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	refreshCookieName = "refreshToken"
	apiKeyHeader      = "API-KEY"
)

type HandlerDeps struct {
	Serv      service.AuthService
	JWTConfig config.JWTConfig
	CookieCfg config.CookieConfig
	Log       *slog.Logger
}

type Handler struct {
	serv      service.AuthService
	jwtConfig config.JWTConfig
	cookieCfg config.CookieConfig
	log       *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:      deps.Serv,
		jwtConfig: deps.JWTConfig,
		cookieCfg: deps.CookieCfg,
		log:       deps.Log,
	}
}

// Routes - маршруты /api/auth. Для части из них нужен пользователь из AuthGate
func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/token/refresh", h.Refresh)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Post("/logout", h.Logout)
		r.Patch("/update", h.Update)
		r.Post("/delete", h.Delete)
		r.Post("/token/validate", h.Validate)
		r.Get("/api-key", h.APIKey)
		r.Get("/user-info", h.UserInfo)
	})
}

// Signup регистрирует пользователя, API-KEY из заголовка необязателен
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.SignupRequest](r.Body)
	if err != nil {
		resp.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.Signup(r.Context(), converter.ToSignup(requestBody, r.Header.Get(apiKeyHeader)))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.Success(w, "signup succeeded", nil)
}

// Login отдаёт access токен в заголовке Authorization, refresh - в cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), converter.ToCredentials(requestBody))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", token.Header(data.AccessToken))
	h.setRefreshTokenCookie(w, data.RefreshToken)

	resp.Success(w, "login succeeded", dto.LoginResponse{UserID: requestBody.ID})
}

// Refresh выдаёт новый access токен по refresh токену из cookie
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(refreshCookieName)
	if err != nil || c.Value == "" {
		resp.Error(w, http.StatusBadRequest, "refresh token is missing")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), c.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", token.Header(accessToken))
	resp.Success(w, "access token reissued", nil)
}

// Logout закрывает refresh-сессию и стирает cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.serv.Logout(r.Context(), accessToken(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	deleteRefreshTokenCookie(w, h.cookieCfg.Secure())
	resp.Success(w, "logged out", nil)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.UpdateRequest](r.Body)
	if err != nil {
		resp.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.UpdateProfile(r.Context(), accessToken(r), converter.ToProfileUpdate(requestBody, r.Header.Get(apiKeyHeader)))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.Success(w, "profile updated", nil)
}

// Delete удаляет аккаунт после проверки пароля
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.DeleteRequest](r.Body)
	if err != nil {
		resp.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.DeleteAccount(r.Context(), accessToken(r), requestBody.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	deleteRefreshTokenCookie(w, h.cookieCfg.Secure())
	resp.Success(w, "account deleted", nil)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	userID, err := h.serv.ValidateAccessToken(r.Context(), accessToken(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.Success(w, "token is valid", dto.ValidateResponse{UserID: userID})
}

func (h *Handler) APIKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.serv.APIKey(r.Context(), accessToken(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.Success(w, "api key found", key)
}

// UserInfo - id и имя в теле, API ключ (если есть) в заголовке API-KEY
func (h *Handler) UserInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.serv.UserInfo(r.Context(), accessToken(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if info.APIKey != nil {
		w.Header().Set(apiKeyHeader, *info.APIKey)
	}
	resp.Success(w, "user info found", converter.ToUserInfoResponse(*info))
}

func accessToken(r *http.Request) string {
	raw, _ := token.FromHeader(r.Header.Get("Authorization"))
	return raw
}

// setRefreshTokenCookie устанавливает cookie с refresh токеном, срок равен TTL токена
func (h *Handler) setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieCfg.Secure(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.jwtConfig.RefreshTokenDuration().Seconds()),
	})
}

// deleteRefreshTokenCookie удаляет cookie с refresh токеном (Max-Age=0)
func deleteRefreshTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
