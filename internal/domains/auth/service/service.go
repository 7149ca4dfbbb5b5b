package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/auth_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"canteen/config"
	"canteen/infras/otel"
	"canteen/infras/session"
	"canteen/internal/domains/auth/model/dto"
	userRepo "canteen/internal/domains/user/repository"
	"canteen/shared/constant"
	"canteen/shared/failure"
	"canteen/shared/password"
	"canteen/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Validate(ctx context.Context, token string) (*session.Claims, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
	session  session.Session
	hasher   *password.Hasher
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, session session.Session, hasher *password.Hasher) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
		session:  session,
		hasher:   hasher,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("username already registered")
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(digest)); err != nil {
		if errors.Is(err, userRepo.ErrDuplicate) {
			return failure.BadRequestFromString("username already registered")
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Username lookup is an exact, case-sensitive match.
	user, err := s.userRepo.Get(ctx, req.Username)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized("invalid username or password")
	}

	if err := s.hasher.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid username or password")
	}

	token, err := s.session.Issue(ctx, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")

		return res, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.Username, timezone.Now()); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res = dto.LoginResponse{
		Token:     token,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresIn: int64(s.cfg.Session.ExpireMin * 60),
	}

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err := s.session.Revoke(ctx, token); err != nil {
		log.Warn().Err(err).Msg("failed to revoke session")

		return failure.Unauthorized("invalid session")
	}

	return nil
}

// Validate checks the session token and then re-reads the user record to
// confirm the account still exists. The re-read happens on every call; the
// account check is deliberately uncached.
func (s *serviceImpl) Validate(ctx context.Context, token string) (claims *session.Claims, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err = s.session.Validate(ctx, token)
	if err != nil {
		return nil, failure.Unauthorized(err.Error())
	}

	user, err := s.userRepo.Get(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, failure.Unauthorized("account no longer exists")
		}

		log.Error().Err(err).Msg("failed to re-read user for session validation")

		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	// Role comes from the freshly read record, not the token.
	claims.Role = user.Role

	return claims, nil
}
