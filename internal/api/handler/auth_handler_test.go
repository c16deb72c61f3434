package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

type stubAuthService struct {
	registered ports.RegisterInput
	user       *domain.User
	token      string
	err        error
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	s.registered = in
	return s.user, s.token, s.err
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func (s *stubAuthService) ValidateUser(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testUser() *domain.User {
	return &domain.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$notarealhash",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         domain.RoleUser,
		Active:       true,
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{user: testUser(), token: "jwt-token"}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"ada@example.com","password":"s3cret99","firstName":"Ada","lastName":"Lovelace"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registered.Email != "ada@example.com" || svc.registered.FirstName != "Ada" {
		t.Fatalf("service received wrong input: %+v", svc.registered)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if _, ok := resp["access_token"]; !ok {
		t.Errorf("response missing access_token")
	}
	// The password hash must never appear on the wire.
	if strings.Contains(rec.Body.String(), "notarealhash") ||
		strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Errorf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"s3cret99","firstName":"Ada","lastName":"Lovelace"}`},
		{"bad email", `{"email":"nope","password":"s3cret99","firstName":"Ada","lastName":"Lovelace"}`},
		{"short password", `{"email":"ada@example.com","password":"abc","firstName":"Ada","lastName":"Lovelace"}`},
		{"missing name", `{"email":"ada@example.com","password":"s3cret99"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{})
			c, _ := newTestContext(http.MethodPost, "/api/auth/register", tc.body)

			err := h.Register(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"email": `)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicatePassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})
	c, _ := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"ada@example.com","password":"s3cret99","firstName":"Ada","lastName":"Lovelace"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to pass through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: testUser(), token: "jwt-token"})
	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"s3cret99"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "jwt-token") {
		t.Fatalf("response missing token: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})
	c, _ := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"wrong1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: testUser()})
	c, rec := newTestContext(http.MethodGet, "/api/auth/profile", "")
	c.Set("user_id", "user-1")
	c.Set("role", domain.RoleUser)

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: testUser()})
	c, _ := newTestContext(http.MethodGet, "/api/auth/profile", "")

	err := h.Profile(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
