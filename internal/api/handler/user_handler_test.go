package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

func TestUserHandler_Profile(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "u1" {
				t.Fatalf("expected caller id from claims, got %q", userID)
			}
			return &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleUser}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/api/v1/profile", "")

	if err := NewUserHandler(stub).Profile(c, domain.Claims{UserID: "u1", Role: domain.RoleUser}); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	stub := &stubUserService{
		updateProfileFn: func(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error) {
			if userID != "u1" || upd.Email != "new@example.com" || upd.Name != "" {
				t.Fatalf("unexpected update: %s %+v", userID, upd)
			}
			return &domain.User{ID: "u1", Email: upd.Email}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPut, "/api/v1/profile", `{"email":"new@example.com"}`)

	if err := NewUserHandler(stub).UpdateProfile(c, domain.Claims{UserID: "u1"}); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, actorID, userID string) error {
			if actorID != "admin-1" || userID != "u9" {
				t.Fatalf("unexpected ids: %s %s", actorID, userID)
			}
			return nil
		},
	}
	c, rec := newJSONContext(http.MethodDelete, "/api/v1/user/u9", "")
	c.SetParamNames("id")
	c.SetParamValues("u9")

	if err := NewUserHandler(stub).Delete(c, domain.Claims{UserID: "admin-1", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message == "" {
		t.Fatal("expected confirmation message")
	}
}

func TestUserHandler_UpdateRole(t *testing.T) {
	stub := &stubUserService{
		changeRoleFn: func(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
			if role != domain.RoleAdmin || userID != "u9" {
				t.Fatalf("unexpected args: %s %s", userID, role)
			}
			return &domain.User{ID: userID, Role: role}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPut, "/api/v1/update-cargo/u9", `{"cargo":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u9")

	if err := NewUserHandler(stub).UpdateRole(c, domain.Claims{UserID: "admin-1", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateRole_MissingCargo(t *testing.T) {
	stub := &stubUserService{
		changeRoleFn: func(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPut, "/api/v1/update-cargo/u9", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("u9")

	err := NewUserHandler(stub).UpdateRole(c, domain.Claims{UserID: "admin-1", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{{ID: "u1"}, {ID: "u2"}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/api/v1/users", "")

	if err := NewUserHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var users []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
