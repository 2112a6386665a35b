package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

type stubUserService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error)
	loginFn  func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubUserService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func newUserContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Signup_Success(t *testing.T) {
	stub := &stubUserService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
			if input.Name != "Ann" || input.Email != "a@x.com" || input.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{UserID: "user-1", Email: input.Email, Token: "tok"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(t, http.MethodPost, "/api/users/signup", `{"name":"Ann","email":"a@x.com","password":"secret1"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["userID"] != "user-1" || resp["email"] != "a@x.com" || resp["token"] != "tok" {
		t.Fatalf("unexpected auth payload: %+v", resp)
	}
}

func TestUserHandler_Signup_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	for _, body := range []string{
		`{"name":"Ann","email":"not-an-email","password":"secret1"}`,
		`{"name":"Ann","email":"a@x.com","password":"short"}`,
		`{"email":"a@x.com","password":"secret1"}`,
	} {
		c, _ := newUserContext(t, http.MethodPost, "/api/users/signup", body)
		err := h.Signup(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422 HTTPError, got %v", body, err)
		}
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{UserID: "user-1", Email: email, Token: "tok2"}, nil
		},
	})

	c, rec := newUserContext(t, http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newUserContext(t, http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"wrong1"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestUserHandler_List_NeverLeaksPasswordHash(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{{
				ID:           "user-1",
				Name:         "Ann",
				Email:        "a@x.com",
				PasswordHash: "$2a$12$abcdefgh",
				PlaceIDs:     []string{"place-1"},
			}}, nil
		},
	})

	c, rec := newUserContext(t, http.MethodGet, "/api/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "$2a$12$") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	users := resp["users"]
	if len(users) != 1 || users[0]["id"] != "user-1" {
		t.Fatalf("unexpected users payload: %v", resp)
	}
}
