package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	"clock": func(t time.Time) string { return t.Format("15:04:05") },
}

const (
	pageToasts = 5
	loadFailed = "Failed to load jobs"
)

type boardView struct {
	Filter   domain.JobFilter
	Statuses []domain.JobStatus
	Columns  []board.Column
	Toasts   []notify.Notification
	LoadErr  string
}

func (h *handler) boardPage(c *gin.Context) {
	page := boardView{Statuses: domain.Statuses()}

	// a bad query keeps the filter the board already has
	var filter domain.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		page.LoadErr = domain.ValidationMessage(err)
		if err := h.Board.Reload(c.Request.Context()); err != nil {
			page.LoadErr = loadFailed
		}
	} else if err := h.Board.SetFilter(c.Request.Context(), filter); err != nil {
		page.LoadErr = loadFailed
	}

	store := h.Board.Store()
	page.Filter = store.Filter()
	page.Columns = store.Columns()
	page.Toasts = lastN(h.Feed.Recent(), pageToasts)

	c.HTML(http.StatusOK, "board.html", page)
}

func (h *handler) movePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	status, valid := domain.ParseStatus(c.PostForm("status"))
	if !valid {
		detail(c, http.StatusBadRequest, "status is invalid")
		return
	}

	// the outcome reaches the page through the notification feed
	_, _ = h.Board.Move(c.Request.Context(), id, status)
	c.Redirect(http.StatusSeeOther, h.boardURL())
}

func (h *handler) deletePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	_, _ = h.Board.Delete(c.Request.Context(), id)
	c.Redirect(http.StatusSeeOther, h.boardURL())
}

// boardURL points back at the board with the current filter
func (h *handler) boardURL() string {
	f := h.Board.Store().Filter()
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Company != "" {
		q.Set("company", f.Company)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func lastN(ns []notify.Notification, n int) []notify.Notification {
	if len(ns) <= n {
		return ns
	}
	return ns[len(ns)-n:]
}
