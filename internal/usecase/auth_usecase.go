package usecase

import (
	"context"
	"errors"

	"carenow/internal/converter"
	"carenow/internal/delivery/dto"
	"carenow/internal/domain/entity"
	"carenow/internal/domain/repository"
	"carenow/internal/service"
	"carenow/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("role must be patient or admin")
	ErrRegistrationFailed = errors.New("failed to create user profile")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

type authUsecase struct {
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
	telemetry   service.TelemetryService
}

func NewAuthUsecase(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
	telemetry service.TelemetryService,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		accountRepo: accountRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		telemetry:   telemetry,
	}
}

// Register creates a gateway account, then the matching profile document.
// A missing profile store degrades to a synthesized basic user instead of
// failing registration. Any other profile failure fails the registration and
// compensates by deleting the just-created account.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role != entity.RolePatient && req.Role != entity.RoleAdmin {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create account: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	user := &entity.User{
		ID:    account.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			u.log.Warn("Profile store not configured, creating basic user session")
			user = entity.BasicUser(account)
			user.Phone = req.Phone
			user.Role = req.Role
		} else {
			u.log.Warnf("Failed to create user profile: %+v", err)
			u.telemetry.CaptureException(err)
			// Compensate the orphaned account; a failure here leaves the
			// documented inconsistency and is only reported.
			if delErr := u.accountRepo.Delete(ctx, account.ID); delErr != nil {
				u.log.Errorf("Failed to delete orphaned account %s: %+v", account.ID, delErr)
				u.telemetry.CaptureException(delErr)
			}
			return nil, ErrRegistrationFailed
		}
	}

	tokens, err := u.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	u.telemetry.SetActor(user.ID, user.Email, user.Name)
	u.log.Infof("User registered: id=%s, role=%s", user.ID, user.Role)

	return &dto.AuthResponse{
		User:   *converter.UserToResponse(user),
		Tokens: *tokens,
	}, nil
}

// Login verifies credentials against the account store and resolves the
// profile document, tolerating a missing profile store.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := u.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find account by email: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := u.resolveProfile(ctx, account)
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	u.telemetry.SetActor(user.ID, user.Email, user.Name)

	return &dto.AuthResponse{
		User:   *converter.UserToResponse(user),
		Tokens: *tokens,
	}, nil
}

// Logout deletes the session tokens. Revoking tokens that no longer exist is
// not an error, so logging out without an active session is a no-op.
func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if err := u.sessionRepo.Revoke(ctx, repository.TokenKindAccess, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	if err := u.sessionRepo.Revoke(ctx, repository.TokenKindRefresh, refreshTokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}

	u.telemetry.ClearActor()
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.sessionRepo.Exists(ctx, repository.TokenKindRefresh, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	if err := u.sessionRepo.Revoke(ctx, repository.TokenKindRefresh, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
		return nil, err
	}

	user := &entity.User{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
	return u.issueSession(ctx, user)
}

// GetCurrentUser resolves the profile for an authenticated session, degrading
// to a basic patient-role user when the profile store is absent.
func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	account, err := u.accountRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find account by ID: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	user, err := u.resolveProfile(ctx, account)
	if err != nil {
		return nil, err
	}

	u.telemetry.SetActor(user.ID, user.Email, user.Name)
	return user, nil
}

// resolveProfile fetches the profile document for an account. When the profile
// store is not configured a basic user is synthesized from the account record
// with the patient role; a missing profile document is a hard error.
func (u *authUsecase) resolveProfile(ctx context.Context, account *entity.Account) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			u.log.Warn("Profile store not configured, using session data only")
			return entity.BasicUser(account), nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to load user profile: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) issueSession(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Store(ctx, repository.TokenKindAccess, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.sessionRepo.Store(ctx, repository.TokenKindRefresh, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
