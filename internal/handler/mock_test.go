package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/handler"
	"github.com/awf1337/instantly/internal/httpserver"
	"github.com/awf1337/instantly/internal/model"
)

type emailServiceMock struct {
	CreateFunc      func(ctx context.Context, to string, cc, bcc *string, subject, body string) (int, error)
	ListFunc        func(ctx context.Context) ([]model.Email, error)
	GetFunc         func(ctx context.Context, id int) (*model.Email, error)
	ListByOwnerFunc func(ctx context.Context, owner string) ([]model.Email, error)
}

func (m *emailServiceMock) Create(ctx context.Context, to string, cc, bcc *string, subject, body string) (int, error) {
	return m.CreateFunc(ctx, to, cc, bcc, subject, body)
}

func (m *emailServiceMock) List(ctx context.Context) ([]model.Email, error) {
	return m.ListFunc(ctx)
}

func (m *emailServiceMock) Get(ctx context.Context, id int) (*model.Email, error) {
	return m.GetFunc(ctx, id)
}

func (m *emailServiceMock) ListByOwner(ctx context.Context, owner string) ([]model.Email, error) {
	return m.ListByOwnerFunc(ctx, owner)
}

type composeServiceMock struct {
	RouteFunc    func(ctx context.Context, prompt string) (model.Category, error)
	GenerateFunc func(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error)
}

func (m *composeServiceMock) Route(ctx context.Context, prompt string) (model.Category, error) {
	return m.RouteFunc(ctx, prompt)
}

func (m *composeServiceMock) Generate(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error) {
	return m.GenerateFunc(ctx, req)
}

func newTestEngine(emails handler.EmailService, compose handler.ComposeService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	emailHandler := handler.NewEmailHandler(emails, logger)
	aiHandler := handler.NewAIHandler(compose, logger)

	return httpserver.NewRouter(emailHandler, aiHandler, nil, nil).Engine
}
