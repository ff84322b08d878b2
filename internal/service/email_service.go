package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/model"
	"github.com/awf1337/instantly/pkg/metrics"
)

// Store is the persistence contract for composed emails.
type Store interface {
	Create(ctx context.Context, e *model.Email) (int, error)
	List(ctx context.Context) ([]model.Email, error)
	FindByID(ctx context.Context, id int) (*model.Email, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Email, error)
}

// EventPublisher publishes domain events. A nil publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// EmailCreatedPayload is the `email.created` event body.
type EmailCreatedPayload struct {
	EmailID   int       `json:"email_id"`
	UserFK    string    `json:"user_fk"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

type EmailService struct {
	store     Store
	publisher EventPublisher
	owner     string
	logger    *zap.Logger
}

// NewEmailService creates the email service. owner is the tenant reference
// stamped on every created record.
func NewEmailService(store Store, publisher EventPublisher, owner string, logger *zap.Logger) *EmailService {
	return &EmailService{
		store:     store,
		publisher: publisher,
		owner:     owner,
		logger:    logger,
	}
}

// Create persists the email and publishes `email.created`. A failed publish
// is logged, not returned: the created record and its id must not depend on
// broker health.
func (s *EmailService) Create(ctx context.Context, to string, cc, bcc *string, subject, body string) (int, error) {
	email := &model.Email{
		To:      to,
		CC:      cc,
		BCC:     bcc,
		Subject: subject,
		Body:    body,
		UserFK:  s.owner,
	}

	id, err := s.store.Create(ctx, email)
	if err != nil {
		return 0, err
	}

	metrics.IncrementEmailsCreated()

	if s.publisher != nil {
		payload := EmailCreatedPayload{
			EmailID:   id,
			UserFK:    s.owner,
			Subject:   subject,
			CreatedAt: time.Now(),
		}
		if err := s.publisher.Publish("email.created", payload); err != nil {
			s.logger.Warn("failed to publish email.created event",
				zap.Int("email_id", id),
				zap.Error(err),
			)
		}
	}

	return id, nil
}

func (s *EmailService) List(ctx context.Context) ([]model.Email, error) {
	return s.store.List(ctx)
}

func (s *EmailService) Get(ctx context.Context, id int) (*model.Email, error) {
	return s.store.FindByID(ctx, id)
}

func (s *EmailService) ListByOwner(ctx context.Context, owner string) ([]model.Email, error) {
	return s.store.ListByOwner(ctx, owner)
}
