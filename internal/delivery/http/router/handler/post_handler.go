package handler

import (
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

// List handles the paged post listing request.
func (h *PostHandler) List(c echo.Context) error {
	var input usecase.ListPostsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	verdict := deliverycontext.GetVerdict(c)
	output, err := h.uc.ListPosts(c.Request().Context(), verdict, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get handles the single post request.
func (h *PostHandler) Get(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	post, err := h.uc.GetPost(c.Request().Context(), verdict, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// Create handles the post creation request.
func (h *PostHandler) Create(c echo.Context) error {
	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// Update handles the partial post update request.
func (h *PostHandler) Update(c echo.Context) error {
	var input usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), c.Param("slug"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// Delete handles the post deletion request.
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.uc.DeletePost(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}

// Categories handles the category index request.
func (h *PostHandler) Categories(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	counts, err := h.uc.Categories(c.Request().Context(), verdict)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "")
}

// ShareQR serves a PNG QR code for the post's public URL.
func (h *PostHandler) ShareQR(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	png, err := h.uc.ShareQR(c.Request().Context(), verdict, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
