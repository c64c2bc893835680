package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	userrepo "github.com/muhammadheryan/marketplace/repository/user"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const directoryLimit = 50

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	GetEmail(ctx context.Context, userID uint64) (string, error)
	SearchUsers(ctx context.Context, search string) ([]model.UserDirectoryItem, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if user exists by email or phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	if existingUser != nil {
		return nil, cerr.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	if existingUser != nil {
		return nil, cerr.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	return &model.RegisterResponse{
		ID:    userEntity.ID,
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	filter := &model.UserFilter{}
	if isEmail(req.Identifier) {
		filter.Email = req.Identifier
	} else {
		filter.Phone = req.Identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}

	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidPassword)
	}

	return s.issueTokens(ctx, "[Login]", user)
}

// Refresh exchanges a refresh token for a new token pair. Refresh tokens are single use.
func (s *UserAppImpl) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.LoginResponse, error) {
	userID, err := s.redisRepo.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, redisrepo.ErrNotFound) {
			return nil, cerr.SetCustomError(constant.ErrInvalidRefreshToken)
		}
		logger.Error("[Refresh] err GetRefreshToken", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrUnavailable)
	}

	if err := s.redisRepo.DeleteRefreshToken(ctx, req.RefreshToken); err != nil {
		logger.Error("[Refresh] err DeleteRefreshToken", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrUnavailable)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Refresh] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidRefreshToken)
	}

	return s.issueTokens(ctx, "[Refresh]", user)
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return cerr.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrUnavailable)
	}
	return nil
}

// ValidateToken resolves an access token to its user id. A missing session is
// unauthenticated, an unreachable session store is unavailable.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, cerr.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, cerr.SetCustomErrorf(constant.ErrUnauthorize, "invalid user id in token")
	}

	if claims.ID == "" {
		return 0, cerr.SetCustomErrorf(constant.ErrUnauthorize, "token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, redisrepo.ErrNotFound) {
			return 0, cerr.SetCustomErrorf(constant.ErrUnauthorize, "invalid or expired session")
		}
		logger.Error("[ValidateToken] err GetSession", zap.String("error", err.Error()))
		return 0, cerr.SetCustomError(constant.ErrUnavailable)
	}

	if redisUserID != userID {
		return 0, cerr.SetCustomErrorf(constant.ErrUnauthorize, "token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) GetEmail(ctx context.Context, userID uint64) (string, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetEmail] err userRepo.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return "", cerr.FromStorage(err)
	}
	if user == nil || user.Email == "" {
		return "", cerr.SetCustomErrorf(constant.ErrNotFound, "user %d", userID)
	}
	return user.Email, nil
}

func (s *UserAppImpl) SearchUsers(ctx context.Context, search string) ([]model.UserDirectoryItem, error) {
	users, err := s.userRepo.Search(ctx, strings.TrimSpace(search), directoryLimit)
	if err != nil {
		logger.Error("[SearchUsers] err userRepo.Search", zap.String("error", err.Error()))
		return nil, cerr.FromStorage(err)
	}
	return users, nil
}

func (s *UserAppImpl) issueTokens(ctx context.Context, op string, user *model.UserEntity) (*model.LoginResponse, error) {
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error(op+" err generateJWT", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error(op+" err SetSession", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrUnavailable)
	}

	refreshToken := uuid.NewString()
	if err := s.redisRepo.SetRefreshToken(ctx, refreshToken, user.ID, s.config.Auth.RefreshExpTime); err != nil {
		logger.Error(op+" err SetRefreshToken", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrUnavailable)
	}

	return &model.LoginResponse{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}
