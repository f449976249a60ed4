package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/putrafajarh/protospace/internal/application"
	"github.com/putrafajarh/protospace/internal/domain/entity"
	"github.com/putrafajarh/protospace/pkg/response"
	"github.com/putrafajarh/protospace/pkg/validation"
)

type CommentHandler struct {
	Comments *application.CommentService
	Logger   *logrus.Logger
}

func NewCommentHandler(comments *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Comments: comments, Logger: logger}
}

type commentRequest struct {
	Content string `json:"content"`
}

func commentJSON(c *entity.Comment) gin.H {
	return gin.H{
		"id":           c.ID,
		"content":      c.Content,
		"user_id":      c.UserID,
		"author_name":  c.AuthorName,
		"prototype_id": c.PrototypeID,
		"created_at":   c.CreatedAt,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	out := h.Comments.SubmitCreate(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Content)
	if out.State != application.StateCommitted {
		rejected(c, out, gin.H{"content": req.Content})
		return
	}
	resp := response.Success(c, http.StatusCreated, commentJSON(out.Entity), "comment posted", nil)
	c.JSON(resp.Status, resp)
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.Comments.ListByPrototype(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	list := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		list = append(list, commentJSON(cm))
	}
	resp := response.Success(c, http.StatusOK, list, "comments", nil)
	c.JSON(resp.Status, resp)
}
