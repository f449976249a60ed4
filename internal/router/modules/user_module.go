package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/putrafajarh/protospace/internal/container"
	handlers "github.com/putrafajarh/protospace/internal/interface/http"
	"github.com/putrafajarh/protospace/internal/interface/middleware"
	"github.com/putrafajarh/protospace/pkg/helpers"
)

// UserModule wires account HTTP handlers and JWT middleware into routes.
// Public: POST /api/signup, POST /api/login, POST /api/refresh, GET /api/users/:id
// Protected: POST /api/logout, GET /api/profile

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/refresh", m.Handler.Refresh)
	rg.GET("/users/:id", m.Handler.GetUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
