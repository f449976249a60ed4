package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/putrafajarh/protospace/internal/application"
	"github.com/putrafajarh/protospace/internal/domain/entity"
	"github.com/putrafajarh/protospace/pkg/helpers"
	"github.com/putrafajarh/protospace/pkg/response"
	"github.com/putrafajarh/protospace/pkg/validation"
)

type UserHandler struct {
	Users      *application.UserService
	Prototypes *application.PrototypeService
	Logger     *logrus.Logger
	Cookies    *helpers.Manager
}

func NewUserHandler(users *application.UserService, prototypes *application.PrototypeService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Users: users, Prototypes: prototypes, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// signupRequest carries no binding rules on purpose: presence and format
// are domain rules, and the workflow reports them all at once rather than
// failing at the first missing field.
type signupRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Name                 string `json:"name"`
	Profile              string `json:"profile"`
	Occupation           string `json:"occupation"`
	Position             string `json:"position"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"profile":    u.Profile,
		"occupation": u.Occupation,
		"position":   u.Position,
		"created_at": u.CreatedAt,
	}
}

// Signup registers a new user. Open to anonymous visitors; on validation
// failure the submitted fields come back so the form keeps its input.
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	out := h.Users.Register(c.Request.Context(), entity.Registration{
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Name:                 req.Name,
		Profile:              req.Profile,
		Occupation:           req.Occupation,
		Position:             req.Position,
	})
	if out.State != application.StateCommitted {
		rejected(c, out, gin.H{
			"email":      req.Email,
			"name":       req.Name,
			"profile":    req.Profile,
			"occupation": req.Occupation,
			"position":   req.Position,
		})
		return
	}

	resp := response.Success(c, http.StatusCreated, userJSON(out.Entity), "signed up", nil)
	c.JSON(resp.Status, resp)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	res, pair, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		c.JSON(resp.Status, resp)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	resp := response.Success(c, http.StatusOK, res, "login successful", gin.H{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
	c.JSON(resp.Status, resp)
}

func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		resp := response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	pair, _, err := h.Users.Refresh(c.Request.Context(), refresh)
	if err != nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	resp := response.Success[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", gin.H{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
	c.JSON(resp.Status, resp)
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.Users.Logout(c.Request.Context(), c.GetString("userID"))
	h.Cookies.Clear(c)
	resp := response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
	c.JSON(resp.Status, resp)
}

// GetProfile returns the current user.
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Users.GetProfile(c.Request.Context(), uid)
	if err != nil {
		resp := response.Error[any](c, http.StatusNotFound, "user not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, userJSON(u), "profile", nil)
	c.JSON(resp.Status, resp)
}

// GetUser is the public user detail page: the profile plus the user's
// prototypes. Viewable by anyone, anonymous included.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Users.GetProfile(c.Request.Context(), id)
	if err != nil {
		resp := response.Error[any](c, http.StatusNotFound, "user not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	protos, err := h.Prototypes.ListByUser(c.Request.Context(), id)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	list := make([]gin.H, 0, len(protos))
	for _, p := range protos {
		list = append(list, prototypeJSON(p))
	}
	data := userJSON(u)
	delete(data, "email")
	data["prototypes"] = list
	resp := response.Success(c, http.StatusOK, data, "user", nil)
	c.JSON(resp.Status, resp)
}
