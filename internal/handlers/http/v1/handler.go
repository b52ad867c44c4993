package v1

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gfdmit/pastebin/internal/metrics"
	"github.com/gfdmit/pastebin/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	msgGetPastes     = "An error occurred when fetching pastes. Check server logs."
	msgCreatePaste   = "An error occurred when posting a paste. Check server logs."
	msgDeletePaste   = "An error occurred when deleting a paste. Check server logs."
	msgGetComments   = "An error occurred when fetching comments for that post. Check server logs."
	msgCreateComment = "An error occurred when posting a comment. Check server logs."
	msgDeleteComment = "An error occurred when deleting a comment. Check server logs."
)

type handler struct {
	svc     *service.Service
	metrics *metrics.Metrics
}

type createPasteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type createCommentRequest struct {
	Comment *string `json:"comment"`
}

// fail logs the cause and answers with a fixed sentence. The error itself
// never reaches the client.
func (h *handler) fail(c *gin.Context, op string, msg string, err error) {
	log.Printf("[HANDLER] %v (request %v): %v", op, c.GetString(requestIDKey), err)
	h.metrics.OperationFailed(op)
	c.String(http.StatusInternalServerError, msg)
}

// bindJSON decodes the body into obj. An empty body leaves obj untouched.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *handler) getPastes(c *gin.Context) {
	pastes, err := h.svc.GetPastes(c.Request.Context())
	if err != nil {
		h.fail(c, "get pastes", msgGetPastes, err)
		return
	}
	c.JSON(http.StatusOK, pastes)
}

func (h *handler) createPaste(c *gin.Context) {
	req := createPasteRequest{}
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, "create paste", msgCreatePaste, err)
		return
	}

	paste, err := h.svc.CreatePaste(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		h.fail(c, "create paste", msgCreatePaste, err)
		return
	}
	c.JSON(http.StatusOK, paste)
}

func (h *handler) deletePaste(c *gin.Context) {
	paste, err := h.svc.DeletePaste(c.Request.Context(), c.Param("pasteId"))
	if err != nil {
		h.fail(c, "delete paste", msgDeletePaste, err)
		return
	}
	// nil when no paste matched: 200 with a JSON null body.
	c.JSON(http.StatusOK, paste)
}

func (h *handler) getComments(c *gin.Context) {
	comments, err := h.svc.GetComments(c.Request.Context(), c.Param("pasteId"))
	if err != nil {
		h.fail(c, "get comments", msgGetComments, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *handler) createComment(c *gin.Context) {
	req := createCommentRequest{}
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, "create comment", msgCreateComment, err)
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), c.Param("pasteId"), req.Comment)
	if err != nil {
		h.fail(c, "create comment", msgCreateComment, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *handler) deleteComment(c *gin.Context) {
	comment, err := h.svc.DeleteComment(c.Request.Context(), c.Param("pasteId"), c.Param("commentId"))
	if err != nil {
		h.fail(c, "delete comment", msgDeleteComment, err)
		return
	}
	// nil when no comment matched: 200 with a JSON null body.
	c.JSON(http.StatusOK, comment)
}
