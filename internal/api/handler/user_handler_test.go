package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foundever/reactions/internal/core/domain"
	"github.com/foundever/reactions/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, username string) error
	listFn   func(ctx context.Context, username string) ([]ports.UserView, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) UpdateUser(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, in)
}

func (s *stubUserService) DeleteUser(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

func (s *stubUserService) ListUsers(ctx context.Context, username string) ([]ports.UserView, error) {
	return s.listFn(ctx, username)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/api/v1/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

func expectHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
	return he
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Username != "bob_esponja" {
				t.Fatalf("unexpected username %q", in.Username)
			}
			if in.Role == nil || *in.Role != domain.RoleExternal {
				t.Fatalf("expected role external, got %v", in.Role)
			}
			if in.Reactions == nil || in.Reactions.Heart != 2 || in.Reactions.PlusOne != 0 {
				t.Fatalf("unexpected reactions %+v", in.Reactions)
			}
			if in.LastReactionAt == nil || !in.LastReactionAt.Equal(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)) {
				t.Fatalf("unexpected last_reaction_at %v", in.LastReactionAt)
			}
			return &domain.User{ID: "u-1", Username: in.Username}, nil
		},
	}
	h := NewUserHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost,
		`{"username":"bob_esponja","role":"external","reactions":{"heart":2},"last_reaction_at":"2024-06-01T10:30:00Z"}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["code_transaction"] != "OK" || resp["user_id"] != "u-1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Create_OptionalFieldsAbsent(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Role != nil || in.Reactions != nil || in.LastReactionAt != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			return &domain.User{ID: "u-2"}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"username":"calamardo"}`), rec)
	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_UsernameTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			return nil, &domain.UsernameAlreadyExistsError{Username: in.Username}
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"username":"bob_esponja"}`), rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-42")

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["code_transaction"] != "UNABLE_TO_CREATE_USER" {
		t.Fatalf("unexpected code: %+v", resp)
	}
	if resp["message"] != "The username 'bob_esponja' is already in use." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["request_id"] != "req-42" {
		t.Fatalf("expected request id to be echoed, got %v", resp["request_id"])
	}
}

func TestUserHandler_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing username", `{"role":"admin"}`, "username is required"},
		{"username too long", `{"username":"` + strings.Repeat("a", 40) + `"}`, "username must be at most 39"},
		{"unknown role", `{"username":"bob","role":"owner"}`, "role must be one of"},
		{"empty role", `{"username":"bob","role":""}`, "role must be one of"},
		{"negative counter", `{"username":"bob","reactions":{"rocket":-1}}`, "rocket must be greater than or equal to 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubUserService{
				createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
					t.Fatal("service must not be called")
					return nil, nil
				},
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, tt.body), rec)

			he := expectHTTPError(t, NewUserHandler(stub).Create(c), http.StatusUnprocessableEntity)
			if msg, _ := he.Message.(string); !strings.Contains(msg, tt.want) {
				t.Fatalf("expected message containing %q, got %q", tt.want, msg)
			}
		})
	}
}

func TestUserHandler_Create_MalformedJSON(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"username":`), rec)

	expectHTTPError(t, NewUserHandler(&stubUserService{}).Create(c), http.StatusBadRequest)
}

func TestUserHandler_Create_UnexpectedErrorPropagates(t *testing.T) {
	e := newTestEcho()
	boom := errors.New("connection reset")
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			return nil, boom
		},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"username":"bob"}`), rec)

	if err := NewUserHandler(stub).Create(c); !errors.Is(err, boom) {
		t.Fatalf("expected error to reach the central handler, got %v", err)
	}
}

func TestUserHandler_Update_RoleOnly(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			if in.Role == nil || *in.Role != domain.RoleAdmin {
				t.Fatalf("expected admin role, got %v", in.Role)
			}
			if in.Reactions != nil || in.LastReactionAt != nil {
				t.Fatalf("omitted fields must stay nil: %+v", in)
			}
			return &domain.User{ID: "u-1"}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, `{"username":"bob_esponja","role":"admin"}`), rec)
	if err := NewUserHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["user_id"] != "u-1" || resp["code_transaction"] != "OK" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Update_ZeroReactionsArePresent(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			if in.Reactions == nil || *in.Reactions != (domain.Reactions{}) {
				t.Fatalf("expected explicit zero reactions, got %+v", in.Reactions)
			}
			return &domain.User{ID: "u-1"}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, `{"username":"bob_esponja","reactions":{}}`), rec)
	if err := NewUserHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NoOptionalFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	for _, body := range []string{`{"username":"bob_esponja"}`, `{"username":"bob_esponja","role":null}`} {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPut, body), rec)

		he := expectHTTPError(t, NewUserHandler(stub).Update(c), http.StatusUnprocessableEntity)
		if msg, _ := he.Message.(string); !strings.Contains(msg, "at least one of") {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestUserHandler_Update_UnknownUser(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			return nil, fmt.Errorf("update user: %w", domain.ErrUserDoesNotExist)
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, `{"username":"ghost","role":"admin"}`), rec)
	if err := NewUserHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["code_transaction"] != "UNABLE_TO_UPDATE_USER" ||
		resp["message"] != "A user with the specified details does not exist." {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Delete_FormBody(t *testing.T) {
	e := newTestEcho()
	var got string
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username string) error {
			got = username
			return nil
		},
	}

	form := url.Values{"username": {"bob_esponja"}}
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	if err := NewUserHandler(stub).Delete(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != "bob_esponja" {
		t.Fatalf("expected bob_esponja, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["code_transaction"] != "OK" || resp["message"] != "OK" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Delete_QueryFallback(t *testing.T) {
	e := newTestEcho()
	var got string
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username string) error {
			got = username
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users?username=calamardo", nil)
	rec := httptest.NewRecorder()
	if err := NewUserHandler(stub).Delete(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != "calamardo" {
		t.Fatalf("expected calamardo, got %q", got)
	}
}

func TestUserHandler_Delete_MissingUsername(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	expectHTTPError(t, NewUserHandler(&stubUserService{}).Delete(e.NewContext(req, rec)), http.StatusUnprocessableEntity)
}

func TestUserHandler_Delete_UnknownUser(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username string) error {
			return domain.ErrUserDoesNotExist
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users?username=ghost", nil)
	rec := httptest.NewRecorder()
	if err := NewUserHandler(stub).Delete(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["code_transaction"] != "UNABLE_TO_DELETE_USER" ||
		resp["message"] != "A user with the specified details does not exist." {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	last := "2024-06-01T10:30:00Z"
	stub := &stubUserService{
		listFn: func(ctx context.Context, username string) ([]ports.UserView, error) {
			if username != "bob_esponja" {
				t.Fatalf("unexpected filter %q", username)
			}
			return []ports.UserView{{
				ID:             "u-1",
				Username:       "bob_esponja",
				Role:           "external",
				Reactions:      domain.Reactions{PlusOne: 3},
				LastReactionAt: &last,
				CreatedAt:      "2024-06-01T10:00:00Z",
				UpdatedAt:      "2024-06-01T10:00:00Z",
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username=bob_esponja", nil)
	rec := httptest.NewRecorder()
	if err := NewUserHandler(stub).List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one item in data, got %+v", resp)
	}
	item := data[0].(map[string]any)
	if item["username"] != "bob_esponja" || item["last_reaction_at"] != last {
		t.Fatalf("unexpected item: %+v", item)
	}
	reactions := item["reactions"].(map[string]any)
	if reactions["plus_one"] != float64(3) || reactions["eyes"] != float64(0) {
		t.Fatalf("unexpected reactions: %+v", reactions)
	}
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context, username string) ([]ports.UserView, error) {
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username=nobody", nil)
	rec := httptest.NewRecorder()
	if err := NewUserHandler(stub).List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
