package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "innkeeper/internal/delivery/context"
	"innkeeper/internal/domain/entity"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/domain/service"
	"innkeeper/internal/usecase"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact persists a contact message and announces it best-effort.
func (srv *contactService) SubmitContact(ctx context.Context, input usecase.SubmitContactInput) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:    input.Name,
		Email:   entity.NormalizeEmail(input.Email),
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := srv.contactRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to store contact message")
	}

	srv.log(ctx).Info("Contact message received", slog.String("messageId", msg.ID.String()))

	if srv.publisher != nil {
		event := &service.ContactEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			Type:      service.EventTypeContactReceived,
			MessageID: msg.ID.String(),
			Email:     msg.Email,
			Subject:   msg.Subject,
		}
		if err := srv.publisher.PublishContactEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish contact event",
				slog.String("messageId", msg.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return msg, nil
}
