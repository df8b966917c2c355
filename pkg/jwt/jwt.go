package jwt

import (
	"context"
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GrMNIII/perla-metro-stations-service/config"
	"github.com/GrMNIII/perla-metro-stations-service/pkg/redis"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
	ErrTokenRevoked = errors.New("token 已被吊销")
)

// Claims 自定义 JWT 声明
// Subject 使用 RegisteredClaims.Subject 承载调用方标识
type Claims struct {
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // 目前仅 "access"
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
// 作为生产环境的 Authorizer 实现，rdb 为 nil 时跳过黑名单检查（降级放行）
type Manager struct {
	secret         []byte
	accessTokenTTL time.Duration
	rdb            *redis.Client
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig, rdb *redis.Client) *Manager {
	return &Manager{
		secret:         []byte(cfg.JWTSecret),
		accessTokenTTL: cfg.AccessTokenTTL,
		rdb:            rdb,
	}
}

// GenerateAccessToken 生成 Access Token
// 供运维工具为调用方签发服务令牌
func (m *Manager) GenerateAccessToken(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:      role,
		TokenType: "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.accessTokenTTL)),
			Issuer:    "perla-metro-stations",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并验证 Token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// Authorize 实现 middleware.Authorizer
// 校验凭证并返回调用方标识与角色；任何失败均在仓储调用之前短路为 401
func (m *Manager) Authorize(ctx context.Context, credential string) (string, string, error) {
	claims, err := m.ParseToken(credential)
	if err != nil {
		return "", "", err
	}

	if claims.TokenType != "access" {
		return "", "", ErrTokenInvalid
	}

	if m.rdb != nil {
		blacklisted, err := m.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && blacklisted {
			return "", "", ErrTokenRevoked
		}
		// Redis 出错时降级放行，仅依赖签名校验
	}

	return claims.Subject, claims.Role, nil
}
