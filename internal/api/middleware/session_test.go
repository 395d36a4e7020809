package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrocampo/farm-system/internal/core/domain"
)

const testCookie = "farm_session"

type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	return s.sessions[id], nil
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newGateContext(t *testing.T, cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/animais", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeGateError(t *testing.T, rec *httptest.ResponseRecorder) gateError {
	t.Helper()
	var body gateError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestRequireLogin_NoCookie(t *testing.T) {
	gate := RequireLogin(testCookie, &stubSessions{sessions: map[string]*domain.Session{}})
	c, rec := newGateContext(t, "")

	if err := gate(okHandler)(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeGateError(t, rec)
	if body.Redirect != "/login" {
		t.Fatalf("expected redirect hint, got %q", body.Redirect)
	}
}

func TestRequireLogin_UnknownSession(t *testing.T) {
	gate := RequireLogin(testCookie, &stubSessions{sessions: map[string]*domain.Session{}})
	c, rec := newGateContext(t, "stale-id")

	if err := gate(okHandler)(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown session, got %d", rec.Code)
	}
}

func TestRequireLogin_ValidSessionPublishesContext(t *testing.T) {
	store := &stubSessions{sessions: map[string]*domain.Session{
		"sid-1": {UserID: "u1", Role: domain.RoleManager},
	}}
	gate := RequireLogin(testCookie, store)
	c, rec := newGateContext(t, "sid-1")

	called := false
	handler := func(c echo.Context) error {
		called = true
		sess, ok := c.Get(ContextKeySession).(*domain.Session)
		if !ok || sess.UserID != "u1" {
			t.Fatalf("session not published in context")
		}
		if id, _ := c.Get(ContextKeySessionID).(string); id != "sid-1" {
			t.Fatalf("session ID not published in context")
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := gate(handler)(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if !called {
		t.Fatalf("expected handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequirePasswordChanged_BlocksProvisional(t *testing.T) {
	c, rec := newGateContext(t, "")
	c.Set(ContextKeySession, &domain.Session{UserID: "u1", TempPassword: true})

	if err := RequirePasswordChanged()(okHandler)(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for provisional credential, got %d", rec.Code)
	}
	body := decodeGateError(t, rec)
	if body.Error != "password change required" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestRequirePasswordChanged_PassesChanged(t *testing.T) {
	c, rec := newGateContext(t, "")
	c.Set(ContextKeySession, &domain.Session{UserID: "u1"})

	if err := RequirePasswordChanged()(okHandler)(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_BlocksNonAdmin(t *testing.T) {
	for _, role := range []string{domain.RoleManager, domain.RoleOperator} {
		c, rec := newGateContext(t, "")
		c.Set(ContextKeySession, &domain.Session{UserID: "u1", Role: role})

		if err := RequireAdmin()(okHandler)(c); err != nil {
			t.Fatalf("gate returned error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %s: expected 403, got %d", role, rec.Code)
		}
	}
}

func TestRequireAdmin_PassesAdmin(t *testing.T) {
	c, rec := newGateContext(t, "")
	c.Set(ContextKeySession, &domain.Session{UserID: "u1", Role: domain.RoleAdmin})

	if err := RequireAdmin()(okHandler)(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_NoSessionInContext(t *testing.T) {
	c, _ := newGateContext(t, "")

	err := RequireAdmin()(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError without session, got %v", err)
	}
}
