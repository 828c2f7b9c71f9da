package usecases

import (
	"context"

	"reminder-api/apperrors"
	"reminder-api/entities"
	"reminder-api/repositories"

	"golang.org/x/exp/slog"
)

const (
	msgUserDuplicate      = "Usuário de mesmo nome já cadastrado :/"
	msgUserNotFound       = "Usuário não encontrado."
	msgInvalidCredentials = "Acesso negado: usuário ou senha inválidos."
)

// PasswordHasher is a salted one-way hash with a constant-time verify.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type RegisterUserInput struct {
	Username string `validate:"required,nodigits"`
	Password string `validate:"trimmin=4"`
}

type UserUseCase struct {
	repo   repositories.UserRepository
	hasher PasswordHasher
	logger *slog.Logger
	// legacyPasswordless lets a known username through when no password is sent.
	legacyPasswordless bool
}

func NewUserUseCase(repo repositories.UserRepository, hasher PasswordHasher, logger *slog.Logger, legacyPasswordless bool) *UserUseCase {
	if legacyPasswordless {
		logger.Warn("legacy passwordless Basic Auth is enabled")
	}
	return &UserUseCase{
		repo:               repo,
		hasher:             hasher,
		logger:             logger,
		legacyPasswordless: legacyPasswordless,
	}
}

// Register validates and stores a new user with a hashed password.
func (uc *UserUseCase) Register(ctx context.Context, in RegisterUserInput) (*entities.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindPersistence, "Ocorreu um erro ao cadastrar o usuário.")
	}

	user := &entities.User{Username: in.Username, PasswordHash: hash}
	if err := uc.repo.Create(ctx, user); err != nil {
		uc.logger.Warn("Erro ao cadastrar usuário", "username", in.Username, "error", err)
		return nil, apperrors.WrapDBError(err, msgUserNotFound, msgUserDuplicate)
	}
	uc.logger.Info("Usuário cadastrado", "username", user.Username, "id", user.ID)
	return user, nil
}

// Verify reports whether password matches the stored hash of username.
// Unknown users yield false.
func (uc *UserUseCase) Verify(ctx context.Context, username, password string) bool {
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return false
	}
	return uc.hasher.Verify(password, user.PasswordHash)
}

func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.WrapDBError(err, msgUserNotFound, msgUserDuplicate)
	}
	return user, nil
}

// Authenticate resolves the Basic Auth credentials to a user.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	if username == "" {
		return nil, apperrors.Auth(msgInvalidCredentials)
	}

	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindAuth, msgInvalidCredentials)
	}

	if password == "" {
		if uc.legacyPasswordless {
			uc.logger.Warn("passwordless login accepted", "username", username)
			return user, nil
		}
		return nil, apperrors.Auth(msgInvalidCredentials)
	}

	if !uc.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.Auth(msgInvalidCredentials)
	}
	return user, nil
}
