package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/putrafajarh/protospace/internal/application"
	"github.com/putrafajarh/protospace/internal/domain/entity"
	"github.com/putrafajarh/protospace/pkg/response"
)

type PrototypeHandler struct {
	Prototypes *application.PrototypeService
	Comments   *application.CommentService
	Logger     *logrus.Logger
}

func NewPrototypeHandler(prototypes *application.PrototypeService, comments *application.CommentService, logger *logrus.Logger) *PrototypeHandler {
	return &PrototypeHandler{Prototypes: prototypes, Comments: comments, Logger: logger}
}

func prototypeJSON(p *entity.Prototype) gin.H {
	return gin.H{
		"id":          p.ID,
		"title":       p.Title,
		"catch_copy":  p.CatchCopy,
		"concept":     p.Concept,
		"image_url":   p.ImageRef,
		"user_id":     p.UserID,
		"author_name": p.AuthorName,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

// preservedFields is what a failed submission echoes back: every proposed
// value except the image binary.
func preservedFields(p *entity.Prototype) gin.H {
	return gin.H{
		"title":      p.Title,
		"catch_copy": p.CatchCopy,
		"concept":    p.Concept,
		"image_url":  p.ImageRef,
	}
}

// input reads the multipart submission. The image part is optional; its
// absence is a domain concern, not a binding error.
func (h *PrototypeHandler) input(c *gin.Context) (application.PrototypeInput, io.Closer) {
	in := application.PrototypeInput{
		Title:     c.PostForm("title"),
		CatchCopy: c.PostForm("catch_copy"),
		Concept:   c.PostForm("concept"),
	}
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return in, nil
	}
	f, err := fh.Open()
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("image part open failed")
		}
		return in, nil
	}
	in.Image = f
	in.ImageFilename = fh.Filename
	in.ImageContentType = partContentType(fh)
	return in, f
}

func partContentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// List is the public index, newest first.
func (h *PrototypeHandler) List(c *gin.Context) {
	protos, err := h.Prototypes.List(c.Request.Context())
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	list := make([]gin.H, 0, len(protos))
	for _, p := range protos {
		list = append(list, prototypeJSON(p))
	}
	resp := response.Success(c, http.StatusOK, list, "prototypes", nil)
	c.JSON(resp.Status, resp)
}

// Get is the public detail page: the prototype and its comments.
func (h *PrototypeHandler) Get(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Prototypes.Get(c.Request.Context(), id)
	if err != nil {
		resp := response.Error[any](c, http.StatusNotFound, "not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	comments, err := h.Comments.ListByPrototype(c.Request.Context(), id)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
		return
	}
	data := prototypeJSON(p)
	list := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		list = append(list, commentJSON(cm))
	}
	data["comments"] = list
	resp := response.Success(c, http.StatusOK, data, "prototype", nil)
	c.JSON(resp.Status, resp)
}

func (h *PrototypeHandler) Create(c *gin.Context) {
	in, closer := h.input(c)
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	out := h.Prototypes.SubmitCreate(c.Request.Context(), c.GetString("userID"), in)
	if out.State != application.StateCommitted {
		var preserved gin.H
		if out.Entity != nil {
			preserved = preservedFields(out.Entity)
		}
		rejected(c, out, preserved)
		return
	}
	resp := response.Success(c, http.StatusCreated, prototypeJSON(out.Entity), "prototype created", nil)
	c.JSON(resp.Status, resp)
}

func (h *PrototypeHandler) Update(c *gin.Context) {
	in, closer := h.input(c)
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	out := h.Prototypes.SubmitUpdate(c.Request.Context(), c.GetString("userID"), c.Param("id"), in)
	if out.State != application.StateCommitted {
		var preserved gin.H
		if out.Entity != nil {
			preserved = preservedFields(out.Entity)
		}
		rejected(c, out, preserved)
		return
	}
	resp := response.Success(c, http.StatusOK, prototypeJSON(out.Entity), "prototype updated", nil)
	c.JSON(resp.Status, resp)
}

func (h *PrototypeHandler) Delete(c *gin.Context) {
	out := h.Prototypes.SubmitDelete(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if out.State != application.StateCommitted {
		rejected(c, out, nil)
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "prototype deleted", nil)
	c.JSON(resp.Status, resp)
}
