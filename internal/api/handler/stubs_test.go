package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	profileFn       func(ctx context.Context, userID string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error)
	listFn          func(ctx context.Context) ([]*domain.User, error)
	deleteFn        func(ctx context.Context, actorID, userID string) error
	changeRoleFn    func(ctx context.Context, actorID, userID, role string) (*domain.User, error)
}

func (s *stubUserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, upd)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Delete(ctx context.Context, actorID, userID string) error {
	return s.deleteFn(ctx, actorID, userID)
}

func (s *stubUserService) ChangeRole(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
	return s.changeRoleFn(ctx, actorID, userID, role)
}

type stubProductService struct {
	createFn func(ctx context.Context, actorID string, in ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	updateFn func(ctx context.Context, actorID, id string, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, actorID, id string) error
}

func (s *stubProductService) Create(ctx context.Context, actorID string, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, actorID, in)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Update(ctx context.Context, actorID, id string, patch domain.ProductPatch) (*domain.Product, error) {
	return s.updateFn(ctx, actorID, id, patch)
}

func (s *stubProductService) Delete(ctx context.Context, actorID, id string) error {
	return s.deleteFn(ctx, actorID, id)
}

type stubDashboard struct {
	stats domain.DashboardStats
	err   error
}

func (s *stubDashboard) Stats(context.Context) (domain.DashboardStats, error) {
	return s.stats, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// newJSONContext builds an echo context with the validator installed.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
