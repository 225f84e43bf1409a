package commands

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/queries"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrInvalidUserInput       = errs.New("invalid user input")
)

type RegisterParams struct {
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      UserRepository
	userReads  UserReader
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, userReads UserReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		userReads:  userReads,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	pass, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	hash, err := password.Hash(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(email, hash, user.RoleUser)
	id, err := a.users.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrStorageUnavailable)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.AuthorizedUserView{
		ID:    id,
		Email: email.Value(),
		Role:  entity.Role().String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	cred, err := a.userReads.FindByEmail(ctx, params.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// indistinguishable from a wrong password on purpose
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(cred.PasswordHash, params.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(cred.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(cred.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token: token,
		User: queries.AuthorizedUserView{
			ID:    cred.ID,
			Email: cred.Email,
			Role:  cred.Role,
		},
	}, nil
}
