package postgres

import (
	"context"

	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID. The password digest stays out of the entity.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM, false), nil
}

// FindByEmail retrieves a single user by normalized email. The password digest stays out of the entity.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return toUserDomain(userM, false), nil
}

// FindByEmailWithDigest retrieves a user by normalized email including the
// password digest. Only the credential check during login should call this.
func (repo *userRepository) FindByEmailWithDigest(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return toUserDomain(userM, true), nil
}

func (repo *userRepository) findByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &userM, nil
}

// Create persists a new user. A duplicate normalized email violates the unique
// index and is reported as the registration conflict error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := toUserModel(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Propagate database-generated values back to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// toUserDomain maps the persistence model to a pure domain entity.
func toUserDomain(userM *model.UserModel, withDigest bool) *entity.User {
	user := &entity.User{
		ID:        userM.ID,
		Name:      userM.Name,
		Email:     userM.Email,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}
	if withDigest {
		user.PasswordDigest = userM.PasswordDigest
	}

	return user
}

// toUserModel maps a domain entity to the persistence model.
func toUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             user.ID,
		Name:           user.Name,
		Email:          entity.NormalizeEmail(user.Email),
		PasswordDigest: user.PasswordDigest,
	}
}
