package handler

import (
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// ListForPost handles the threaded comment listing request.
func (h *CommentHandler) ListForPost(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	output, err := h.uc.ListForPost(c.Request().Context(), verdict, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles the comment creation request.
func (h *CommentHandler) Create(c echo.Context) error {
	var input usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	verdict := deliverycontext.GetVerdict(c)
	comment, err := h.uc.Create(c.Request().Context(), verdict, c.Param("slug"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// Approve handles the comment approval request.
func (h *CommentHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCommentNotFound
	}

	comment, err := h.uc.Approve(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment approved successfully")
}

// Delete handles the comment deletion request.
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCommentNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
