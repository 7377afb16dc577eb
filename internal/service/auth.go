package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/client"
	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
)

const (
	// Session tokens live for a year, matching the cookie max age.
	tokenTTL = 365 * 24 * time.Hour
	// Reset tokens are 20 random bytes, valid for an hour.
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, string, error)
	Signin(ctx context.Context, email, password string) (*model.User, string, error)
	// Signout revokes the session behind the given token id. Unknown or
	// already-revoked sessions are not an error; the cookie gets cleared
	// either way.
	Signout(ctx context.Context, tokenID string) error
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) (*model.User, string, error)
	// Verify checks the token signature and the server-side session record,
	// returning the user id and session token id.
	Verify(ctx context.Context, token string) (string, string, error)
}

type authServiceImpl struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	mailClient  client.MailClient
	appSecret   []byte
	frontendURL string
	logger      zerolog.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	mailClient client.MailClient,
	appSecret string,
	frontendURL string,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mailClient:  mailClient,
		appSecret:   []byte(appSecret),
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	email = strings.ToLower(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("%w: email already in use", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Password:    string(hash),
		Permissions: []string{model.PermissionUser},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user signed up")
	return user, token, nil
}

func (s *authServiceImpl) Signin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: no such user found for email %s", ErrNotFound, email)
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn().Str("email", user.Email).Msg("failed signin attempt")
		return nil, "", fmt.Errorf("%w: invalid password", ErrValidation)
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authServiceImpl) Signout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	if err := s.sessionRepo.Revoke(ctx, tokenID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *authServiceImpl) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no such user found for email %s", ErrNotFound, email)
		}
		return fmt.Errorf("find user: %w", err)
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	resetToken := hex.EncodeToString(buf)

	if err := s.userRepo.SetResetToken(ctx, user.ID, resetToken, time.Now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	body := fmt.Sprintf(
		`Your password reset token is here! <a href="%s/reset?resetToken=%s">Click here to reset</a>`,
		s.frontendURL, resetToken,
	)
	if err := s.mailClient.Send(ctx, user.Email, "Your Password Reset Token", body); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	return nil
}

func (s *authServiceImpl) ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) (*model.User, string, error) {
	if password != confirmPassword {
		return nil, "", fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	user, err := s.userRepo.FindByResetToken(ctx, resetToken, time.Now().Add(-resetTokenTTL))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: this token is either invalid or expired", ErrValidation)
		}
		return nil, "", fmt.Errorf("find user by reset token: %w", err)
	}
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return nil, "", fmt.Errorf("%w: this token is either invalid or expired", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.ResetPassword(ctx, user.ID, string(hash)); err != nil {
		return nil, "", fmt.Errorf("store new password: %w", err)
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	updated, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("reload user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return updated, token, nil
}

func (s *authServiceImpl) Verify(ctx context.Context, token string) (string, string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.appSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", fmt.Errorf("%w: invalid session token", ErrNotAuthenticated)
	}

	session, err := s.sessionRepo.Find(ctx, claims.ID)
	if err != nil {
		return "", "", fmt.Errorf("%w: unknown session", ErrNotAuthenticated)
	}
	if session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return "", "", fmt.Errorf("%w: session no longer valid", ErrNotAuthenticated)
	}

	return claims.UserID, claims.ID, nil
}

// issueToken creates a session record and signs a JWT referencing it.
func (s *authServiceImpl) issueToken(ctx context.Context, userID string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	tokenID := uuid.NewString()

	if err := s.sessionRepo.Create(ctx, &model.Session{
		TokenID:   tokenID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.appSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}
