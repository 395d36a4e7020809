package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/api/metrics"
	"github.com/agrocampo/farm-system/internal/api/middleware"
	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

// CookieConfig carries the session-cookie settings the auth handler needs.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler exposes the login, logout, session-probe and password-change
// endpoints.
type AuthHandler struct {
	auth     ports.AuthService
	sessions middleware.SessionReader
	cookie   CookieConfig
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions middleware.SessionReader, cookie CookieConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookie: cookie, log: log}
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies the credential and issues a session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginRequest  true  "Login credentials"
// @Success      200          {object}  loginResponse
// @Failure      400          {object}  api.errorResponse
// @Failure      401          {object}  api.errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsIssuedTotal.Inc()

	c.SetCookie(h.sessionCookie(result.SessionID, h.cookie.TTL))

	return c.JSON(http.StatusOK, loginResponse{
		Message:      "login successful",
		Role:         result.Role,
		TempPassword: result.TempPassword,
	})
}

// Logout godoc
// @Summary      End the current session
// @Description  Clears the session server-side and expires the cookie. Always succeeds.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		_ = h.auth.Logout(c.Request().Context(), cookie.Value)
	}
	metrics.LogoutsTotal.Inc()

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}

// CheckLogin godoc
// @Summary      Probe the session state
// @Description  Reports whether the caller holds a valid session. Never rejects.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkLoginResponse
// @Router       /check_login [get]
func (h *AuthHandler) CheckLogin(c echo.Context) error {
	resp := checkLoginResponse{}

	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		session, err := h.sessions.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}
		if session != nil {
			resp.LoggedIn = true
			resp.Role = session.Role
			resp.TempPassword = session.TempPassword
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// CheckAccess godoc
// @Summary      Probe full record access
// @Description  Succeeds only when the caller passes the authentication and forced-change gates.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkLoginResponse
// @Failure      401  {object}  api.errorResponse
// @Failure      403  {object}  api.errorResponse
// @Router       /check_access [get]
func (h *AuthHandler) CheckAccess(c echo.Context) error {
	session := ctxSession(c)
	return c.JSON(http.StatusOK, checkLoginResponse{
		LoggedIn:     true,
		Role:         session.Role,
		TempPassword: session.TempPassword,
	})
}

// ChangePassword godoc
// @Summary      Change the password of the logged-in user
// @Description  Normal flow requires the current password; the forced flow for provisional credentials does not.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      changePasswordRequest  true  "Password change"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  api.errorResponse
// @Failure      401      {object}  api.errorResponse
// @Router       /api/alterar_senha [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.NewPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "nova_senha is required")
	}
	if !req.TempFlow && req.CurrentPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "senha_atual is required")
	}

	session := ctxSession(c)

	err := h.auth.ChangePassword(c.Request().Context(), ports.ChangePasswordInput{
		SessionID:       ctxSessionID(c),
		UserID:          session.UserID,
		NewPassword:     req.NewPassword,
		CurrentPassword: req.CurrentPassword,
		TempFlow:        req.TempFlow,
	})
	if err != nil {
		return err
	}

	flow := "normal"
	if req.TempFlow {
		flow = "forced"
	}
	metrics.PasswordChangesTotal.WithLabelValues(flow).Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "password changed successfully"})
}

// sessionCookie builds the session cookie. A non-positive ttl expires it.
func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	} else {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
