package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/api/middleware"
	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

const testCookieName = "farm_session"

type stubAuthService struct {
	loginResult *ports.LoginResult
	loginErr    error

	loggedOut      []string
	changeInput    ports.ChangePasswordInput
	changeErr      error
	changePassword bool
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, in ports.ChangePasswordInput) error {
	s.changePassword = true
	s.changeInput = in
	return s.changeErr
}

type stubSessionReader struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionReader) Get(_ context.Context, id string) (*domain.Session, error) {
	return s.sessions[id], nil
}

func newTestAuthHandler(auth *stubAuthService, sessions *stubSessionReader) *AuthHandler {
	if sessions == nil {
		sessions = &stubSessionReader{sessions: map[string]*domain.Session{}}
	}
	cookie := CookieConfig{Name: testCookieName, TTL: 12 * time.Hour}
	return NewAuthHandler(auth, sessions, cookie, zerolog.Nop())
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	e.Validator = NewValidator()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{loginResult: &ports.LoginResult{
		SessionID:    "sid-1",
		Role:         domain.RoleAdmin,
		TempPassword: false,
	}}
	h := newTestAuthHandler(auth, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"email":"maria@fazenda.com","senha":"s3cr3t"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Role != domain.RoleAdmin || body.TempPassword {
		t.Fatalf("unexpected body: %+v", body)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatalf("expected session cookie to be set")
	}
	if cookie.Value != "sid-1" {
		t.Fatalf("cookie carries %q, want session ID", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.MaxAge != int((12 * time.Hour).Seconds()) {
		t.Fatalf("unexpected cookie MaxAge: %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	auth := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := newTestAuthHandler(auth, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"email":"maria@fazenda.com","senha":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
	if cookie := sessionCookieFrom(rec); cookie != nil {
		t.Fatalf("no cookie may be set on a failed login")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, nil)

	for _, body := range []string{`{}`, `{"email":"maria@fazenda.com"}`, `{"senha":"x"}`, `{"email":"not-an-email","senha":"x"}`} {
		c, _ := newJSONContext(t, http.MethodPost, "/login", body)
		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
}

func TestAuthHandler_Logout_ClearsCookieAndSession(t *testing.T) {
	auth := &stubAuthService{}
	h := newTestAuthHandler(auth, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "sid-1"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(auth.loggedOut) != 1 || auth.loggedOut[0] != "sid-1" {
		t.Fatalf("expected session sid-1 to be cleared, got %v", auth.loggedOut)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatalf("expected expiring cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie not expired: value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("logout must always answer 200, got %d", rec.Code)
	}
}

func TestAuthHandler_CheckLogin_NoSession(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/check_login", "")
	if err := h.CheckLogin(c); err != nil {
		t.Fatalf("CheckLogin returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("probe must answer 200 when logged out, got %d", rec.Code)
	}

	var body checkLoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.LoggedIn || body.Role != "" || body.TempPassword {
		t.Fatalf("expected logged-out defaults, got %+v", body)
	}
}

func TestAuthHandler_CheckLogin_ActiveSession(t *testing.T) {
	sessions := &stubSessionReader{sessions: map[string]*domain.Session{
		"sid-1": {UserID: "u1", Role: domain.RoleManager, TempPassword: true},
	}}
	h := newTestAuthHandler(&stubAuthService{}, sessions)

	c, rec := newJSONContext(t, http.MethodGet, "/check_login", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "sid-1"})

	if err := h.CheckLogin(c); err != nil {
		t.Fatalf("CheckLogin returned error: %v", err)
	}

	var body checkLoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.LoggedIn || body.Role != domain.RoleManager || !body.TempPassword {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthHandler_CheckLogin_StaleCookie(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/check_login", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "expired"})

	if err := h.CheckLogin(c); err != nil {
		t.Fatalf("CheckLogin returned error: %v", err)
	}

	var body checkLoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.LoggedIn {
		t.Fatalf("a stale cookie must read as logged out")
	}
}

func TestAuthHandler_ChangePassword_NormalFlow(t *testing.T) {
	auth := &stubAuthService{}
	h := newTestAuthHandler(auth, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/alterar_senha",
		`{"nova_senha":"new-secret","senha_atual":"old-secret"}`)
	c.Set(middleware.ContextKeySession, &domain.Session{UserID: "u1"})
	c.Set(middleware.ContextKeySessionID, "sid-1")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !auth.changePassword {
		t.Fatalf("expected service call")
	}
	in := auth.changeInput
	if in.UserID != "u1" || in.SessionID != "sid-1" || in.TempFlow {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.NewPassword != "new-secret" || in.CurrentPassword != "old-secret" {
		t.Fatalf("passwords not forwarded: %+v", in)
	}
}

func TestAuthHandler_ChangePassword_ForcedFlow(t *testing.T) {
	auth := &stubAuthService{}
	h := newTestAuthHandler(auth, nil)

	c, _ := newJSONContext(t, http.MethodPost, "/api/alterar_senha",
		`{"nova_senha":"chosen","is_senha_temporaria":true}`)
	c.Set(middleware.ContextKeySession, &domain.Session{UserID: "u1", TempPassword: true})
	c.Set(middleware.ContextKeySessionID, "sid-1")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("forced flow must not require the current password: %v", err)
	}
	if !auth.changeInput.TempFlow {
		t.Fatalf("expected forced flow to be forwarded")
	}
}

func TestAuthHandler_ChangePassword_MissingFields(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, nil)

	cases := []string{
		`{}`,
		`{"senha_atual":"old"}`,
		`{"nova_senha":"new"}`, // normal flow without the current password
	}
	for _, body := range cases {
		c, _ := newJSONContext(t, http.MethodPost, "/api/alterar_senha", body)
		c.Set(middleware.ContextKeySession, &domain.Session{UserID: "u1"})

		err := h.ChangePassword(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
}

func TestAuthHandler_ChangePassword_WrongCurrentPropagates(t *testing.T) {
	auth := &stubAuthService{changeErr: domain.ErrInvalidCredentials}
	h := newTestAuthHandler(auth, nil)

	c, _ := newJSONContext(t, http.MethodPost, "/api/alterar_senha",
		`{"nova_senha":"new","senha_atual":"wrong"}`)
	c.Set(middleware.ContextKeySession, &domain.Session{UserID: "u1"})

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_CheckAccess(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/check_access", "")
	c.Set(middleware.ContextKeySession, &domain.Session{UserID: "u1", Role: domain.RoleOperator})

	if err := h.CheckAccess(c); err != nil {
		t.Fatalf("CheckAccess returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body checkLoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.LoggedIn || body.Role != domain.RoleOperator {
		t.Fatalf("unexpected body: %+v", body)
	}
}
