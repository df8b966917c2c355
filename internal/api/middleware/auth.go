package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GrMNIII/perla-metro-stations-service/pkg/response"
)

// Authorizer 鉴权能力接口（可插拔）
// 生产实现为 pkg/jwt.Manager；部署方可替换为自有的令牌/声明校验
type Authorizer interface {
	// Authorize 校验凭证，返回调用方标识与角色
	Authorize(ctx context.Context, credential string) (subject string, role string, err error)
}

// Auth 鉴权中间件
// 从 Authorization 头提取凭证（兼容 Bearer 前缀），校验失败即短路 401，
// 不触达任何仓储调用
func Auth(authorizer Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少认证头")
			c.Abort()
			return
		}

		credential := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			credential = parts[1]
		}

		subject, role, err := authorizer.Authorize(c.Request.Context(), credential)
		if err != nil {
			response.Unauthorized(c, "凭证无效或已过期")
			c.Abort()
			return
		}

		// 将调用方信息注入上下文，供请求日志使用
		c.Set("subject", subject)
		c.Set("role", role)

		c.Next()
	}
}

// ── 共享令牌实现（开发/过渡环境）──

var errStaticTokenMismatch = errors.New("共享令牌不匹配")

// StaticTokenAuthorizer 共享令牌鉴权
// 常数时间比对固定令牌；仅用于开发与过渡部署
type StaticTokenAuthorizer struct {
	token string
}

// NewStaticTokenAuthorizer 创建 StaticTokenAuthorizer
func NewStaticTokenAuthorizer(token string) *StaticTokenAuthorizer {
	return &StaticTokenAuthorizer{token: token}
}

// Authorize 实现 Authorizer
func (a *StaticTokenAuthorizer) Authorize(_ context.Context, credential string) (string, string, error) {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(a.token)) != 1 {
		return "", "", errStaticTokenMismatch
	}
	return "shared-token", "operator", nil
}
