package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const defaultUserJWTExpireHours = 24

// UserJWTClaims 用户 JWT 声明，UserID 即请求的 actor
type UserJWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserTokenService 校验外部签发的用户令牌
type UserTokenService struct {
	cfg      config.JWTConfig
	userRepo repository.UserRepository
}

// NewUserTokenService 创建用户令牌服务
func NewUserTokenService(cfg config.JWTConfig, userRepo repository.UserRepository) *UserTokenService {
	return &UserTokenService{cfg: cfg, userRepo: userRepo}
}

// GenerateUserJWT 签发用户 JWT，供种子数据与测试使用
func (s *UserTokenService) GenerateUserJWT(user *models.User, expireHours int) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, fmt.Errorf("user is nil")
	}
	resolvedHours := expireHours
	if resolvedHours <= 0 {
		resolvedHours = s.cfg.ExpireHours
	}
	if resolvedHours <= 0 {
		resolvedHours = defaultUserJWTExpireHours
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(resolvedHours) * time.Hour)
	claims := UserJWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT
func (s *UserTokenService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveActor 解析令牌并确认用户仍存活
func (s *UserTokenService) ResolveActor(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ParseUserJWT(tokenString)
	if err != nil {
		return nil, err
	}
	if s.userRepo == nil {
		return &models.User{ID: claims.UserID, Username: claims.Username}, nil
	}
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", claims.UserID, err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
