package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "innkeeper/internal/delivery/context"
	"innkeeper/internal/domain/entity"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/usecase"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for newsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		logger:         params.Logger,
	}
}

func (srv *newsletterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe adds an email to the newsletter. The repository maps the unique
// index violation to the already-subscribed error, which also covers the
// race between two concurrent subscribes.
func (srv *newsletterService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	sub := &entity.NewsletterSubscription{
		Email: entity.NormalizeEmail(email),
	}

	if err := srv.newsletterRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Newsletter subscription added", slog.String("subscriptionId", sub.ID.String()))

	return sub, nil
}

// Unsubscribe removes an email from the newsletter. Removing an email that
// was never subscribed succeeds; unsubscribe is idempotent.
func (srv *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	err := srv.newsletterRepo.DeleteByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return errors.Wrap(err, "failed to unsubscribe")
	}

	return nil
}
