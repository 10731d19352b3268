package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"blogpost/internal/adapters/httpapi/middleware"
	postPort "blogpost/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const notFoundText = "Post not found"

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, logger: logger}
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		ctl.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"posts": posts})
}

func (ctl *PostController) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{})
}

func (ctl *PostController) AddPost(c *gin.Context) {
	author, title, content := postForm(c)
	if _, err := ctl.pc.CreatePost(c.Request.Context(), author, title, content); err != nil {
		ctl.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (ctl *PostController) UpdateForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	post, err := ctl.pc.FindPostByID(c.Request.Context(), id)
	if err != nil {
		ctl.lookupError(c, err)
		return
	}
	c.HTML(http.StatusOK, "update.html", gin.H{"post": post})
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	author, title, content := postForm(c)
	if _, err := ctl.pc.UpdatePost(c.Request.Context(), id, author, title, content); err != nil {
		ctl.lookupError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	if err := ctl.pc.DeletePost(c.Request.Context(), id); err != nil {
		ctl.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Health reports how the store reads; the page stays up either way.
func (ctl *PostController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.pc.Inspect(c.Request.Context()))
}

func (ctl *PostController) lookupError(c *gin.Context, err error) {
	if errors.Is(err, postPort.ErrPostNotFound) {
		c.String(http.StatusNotFound, notFoundText)
		return
	}
	ctl.serverError(c, err)
}

func (ctl *PostController) serverError(c *gin.Context, err error) {
	ctl.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("requestID", c.GetString(middleware.RequestIDKey)),
		zap.Error(err))
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// postForm reads the three post fields; missing fields come back empty.
func postForm(c *gin.Context) (author, title, content string) {
	return c.PostForm("author"), c.PostForm("title"), c.PostForm("content")
}

// postID parses :id as a non-negative integer. Anything else is answered
// like an unmatched route.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.String(http.StatusNotFound, "404 page not found")
		return 0, false
	}
	return id, true
}
