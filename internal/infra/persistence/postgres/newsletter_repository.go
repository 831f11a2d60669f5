package postgres

import (
	"context"

	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsletterRepository implements the repository.NewsletterRepository interface using GORM.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

// FindByEmail retrieves a subscription by normalized email.
func (repo *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	var subM model.NewsletterSubscriptionModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&subM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by email")
	}

	return toSubscriptionDomain(&subM), nil
}

// Create persists a new subscription. The unique index on email turns a
// concurrent double subscribe into the already-subscribed error.
func (repo *newsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	subM := &model.NewsletterSubscriptionModel{
		ID:    sub.ID,
		Email: entity.NormalizeEmail(sub.Email),
	}
	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadySubscribed
		}

		return errors.Wrap(err, "failed to create subscription")
	}

	sub.ID = subM.ID
	sub.SubscribedAt = subM.CreatedAt

	return nil
}

// DeleteByEmail removes the subscription for an email, if any.
func (repo *newsletterRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		Delete(&model.NewsletterSubscriptionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toSubscriptionDomain maps the persistence model to a pure domain entity.
func toSubscriptionDomain(subM *model.NewsletterSubscriptionModel) *entity.NewsletterSubscription {
	return &entity.NewsletterSubscription{
		ID:           subM.ID,
		Email:        subM.Email,
		SubscribedAt: subM.CreatedAt,
	}
}
