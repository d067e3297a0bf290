// Package web serves the board page, the JSON API and the MCP endpoint
package web

import (
	"context"
	"html/template"
	"net/http"
	"reflect"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/domain/search"
	"github.com/honeycarbs/job-tracker/internal/export"
	"github.com/honeycarbs/job-tracker/internal/notify"
	"github.com/honeycarbs/job-tracker/internal/outreach"
	"github.com/honeycarbs/job-tracker/internal/referral"
	"github.com/honeycarbs/job-tracker/pkg/logging"
)

// JobReader fetches a single job
type JobReader interface {
	GetJob(ctx context.Context, id domain.JobID) (domain.Job, error)
}

// Deps are the services behind the routes; Search, Exports and MCP may be nil
type Deps struct {
	Board     *board.Board
	Jobs      JobReader
	Search    search.Service
	Referrals *referral.Service
	Outreach  *outreach.Service
	Exports   *export.Registry
	Feed      *notify.Feed
	MCP       http.Handler
	Logger    *logging.Logger
}

type handler struct {
	Deps
}

var bindingOnce sync.Once

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = logging.NewNop()
	}
	if d.Feed == nil {
		d.Feed = notify.NewFeed(0)
	}
	bindingOnce.Do(func() {
		binding.Validator = structValidator{}
	})

	h := &handler{Deps: d}

	r := gin.New()
	r.Use(gin.Recovery(), h.requestLog())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	r.SetHTMLTemplate(template.Must(template.New("").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html")))

	r.GET("/", h.boardPage)
	r.POST("/jobs/:id/move", h.movePage)
	r.POST("/jobs/:id/delete", h.deletePage)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		api.GET("/statuses", h.statuses)
		api.GET("/notifications", h.notifications)

		api.GET("/jobs", h.listJobs)
		api.POST("/jobs", h.createJob)
		api.GET("/jobs/:id", h.getJob)
		api.PATCH("/jobs/:id", h.updateJob)
		api.DELETE("/jobs/:id", h.deleteJob)
		api.POST("/jobs/:id/status", h.moveJob)
		api.POST("/board/drag", h.dragEnd)

		api.GET("/referrals", h.listReferrals)
		api.POST("/referrals", h.createReferral)
		api.PATCH("/referrals/:id", h.updateReferral)
		api.DELETE("/referrals/:id", h.deleteReferral)

		api.POST("/outreach/email", h.generateEmail)
		api.POST("/outreach/contacts", h.findContacts)
		api.POST("/automation/apply", h.autoApply)
		api.POST("/resume/customize", h.customizeResume)

		if d.Search != nil {
			api.GET("/search", h.searchJobs)
			api.POST("/search/save", h.saveSearchJob)
		}
		if d.Exports != nil {
			api.GET("/exports", h.exportTargets)
			api.POST("/exports/:target", h.exportBoard)
		}
	}

	if d.MCP != nil {
		r.Any("/mcp/stream", gin.WrapH(d.MCP))
	}

	return r
}

func (h *handler) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.Logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
		)
	}
}

// structValidator runs gin bindings through the shared domain validator so
// messages name json fields
type structValidator struct{}

func (structValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return domain.Validator().Struct(obj)
}

func (structValidator) Engine() any {
	return domain.Validator()
}
