package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/putrafajarh/protospace/internal/container"
	handlers "github.com/putrafajarh/protospace/internal/interface/http"
	"github.com/putrafajarh/protospace/internal/interface/middleware"
	"github.com/putrafajarh/protospace/pkg/helpers"
)

// PrototypeModule wires prototype and comment routes.
//
// Browsing stays open to anonymous visitors; mutations resolve the current
// identity (or its absence) and let the authorization policy decide. The
// mutation routes use the optional authenticator on purpose: an anonymous
// update attempt must come back as a login redirect decided by the policy,
// not as a flat middleware 401.

type PrototypeModule struct {
	Prototypes *handlers.PrototypeHandler
	Comments   *handlers.CommentHandler
	JWT        *helpers.JWTManager
}

func NewPrototypeModule(p *handlers.PrototypeHandler, c *handlers.CommentHandler, jwt *helpers.JWTManager) *PrototypeModule {
	return &PrototypeModule{Prototypes: p, Comments: c, JWT: jwt}
}

func (m *PrototypeModule) Register(rg *gin.RouterGroup) {
	optional := middleware.AuthOptional(container.GetRedis(), m.JWT)

	rg.GET("/prototypes", m.Prototypes.List)
	rg.GET("/prototypes/:id", m.Prototypes.Get)
	rg.GET("/prototypes/:id/comments", m.Comments.List)

	rg.POST("/prototypes", optional, m.Prototypes.Create)
	rg.PUT("/prototypes/:id", optional, m.Prototypes.Update)
	rg.DELETE("/prototypes/:id", optional, m.Prototypes.Delete)
	rg.POST("/prototypes/:id/comments", optional, m.Comments.Create)
}
