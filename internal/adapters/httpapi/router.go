package httpapi

import (
	"context"
	"embed"
	"html/template"

	"blogpost/internal/adapters/httpapi/middleware"
	postPort "blogpost/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// PostUseCase is the inbound port the controllers depend on.
type PostUseCase interface {
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	CreatePost(ctx context.Context, author, title, content string) (*postPort.PostDTO, error)
	FindPostByID(ctx context.Context, id int) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, id int, author, title, content string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id int) error
	Inspect(ctx context.Context) *postPort.StoreHealthDTO
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// SetupRoutes wires the post pages; the use case is injected from outside.
func SetupRoutes(postUC PostUseCase, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(logger), gin.Recovery())
	r.SetHTMLTemplate(Templates())

	pc := NewPostController(postUC, logger)

	r.GET("/", pc.ListPosts)

	r.GET("/add", pc.AddForm)
	r.POST("/add", pc.AddPost)

	r.GET("/update/:id", pc.UpdateForm)
	r.POST("/update/:id", pc.UpdatePost)

	r.POST("/delete/:id", pc.DeletePost)

	r.GET("/healthz", pc.Health)
	return r
}
