package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/putrafajarh/protospace/internal/application"
	"github.com/putrafajarh/protospace/internal/domain/authz"
	"github.com/putrafajarh/protospace/pkg/response"
)

// redirectTarget maps a policy redirect to the path the front-end should
// navigate to. An unauthenticated mutation attempt goes to login; an
// authenticated non-owner goes home.
func redirectTarget(kind authz.RedirectKind) string {
	switch kind {
	case authz.RedirectLogin:
		return "/login"
	case authz.RedirectHome:
		return "/"
	}
	return ""
}

// rejected writes the non-committed outcome states. data carries the
// preserved fields on validation failure so the form can be re-rendered
// without losing input.
func rejected[T any](c *gin.Context, o application.Outcome[T], data any) {
	switch o.State {
	case application.StateUnauthorized:
		status := http.StatusForbidden
		if o.Redirect == authz.RedirectLogin {
			status = http.StatusUnauthorized
		}
		resp := response.Error[any](c, status, "not allowed", gin.H{"redirect": redirectTarget(o.Redirect)})
		c.JSON(resp.Status, resp)
	case application.StateValidationFailed:
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", gin.H{
			"errors":    o.Errors,
			"messages":  o.Errors.Messages(),
			"preserved": data,
		})
		c.JSON(resp.Status, resp)
	case application.StateNotFound:
		resp := response.Error[any](c, http.StatusNotFound, "not found", nil)
		c.JSON(resp.Status, resp)
	default:
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
	}
}
