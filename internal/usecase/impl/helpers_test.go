package impl

import (
	"io"
	"log/slog"

	"innkeeper/internal/mocks"
)

// discardLogger returns a logger that drops everything, keeping test output clean.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthFixture wires an authService with fresh mocks.
func newAuthFixture() (*mocks.TransactionManager, *mocks.UserRepository, *mocks.PasswordHasher, *mocks.TokenService, *authService) {
	userRepo := &mocks.UserRepository{}
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{Users: userRepo},
	}
	hasher := &mocks.PasswordHasher{}
	tokenService := &mocks.TokenService{}

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	}).(*authService)

	return txManager, userRepo, hasher, tokenService, svc
}
