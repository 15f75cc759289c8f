package view

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-web/internal/model"
	"todo-web/internal/session"
	pkgLog "todo-web/pkg/log"
)

//go:embed templates/*.html
var files embed.FS

// Template names.
const (
	PageLogin    = "login"
	PageSignup   = "signup"
	PageTodoList = "todo_list"
	PageTodoForm = "todo_form"
	PageNotFound = "not_found"
)

// KeyAuthenticated is set on the gin context by the auth guard. Pages
// rendered with it get the header region.
const KeyAuthenticated = "view.authenticated"

// Templates parses the embedded page set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(files, "templates/*.html")
}

// Install parses the page set into the engine.
func Install(r *gin.Engine) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)
	return nil
}

// Page is the value every template receives.
type Page struct {
	Title         string
	Authenticated bool
	Flashes       []session.Flash
	Data          any
}

// Renderer writes pages and drains the session's notifications into them.
type Renderer struct {
	notifier session.Notifier
	l        pkgLog.Logger
}

func NewRenderer(notifier session.Notifier, l pkgLog.Logger) *Renderer {
	return &Renderer{notifier: notifier, l: l}
}

func (r *Renderer) HTML(c *gin.Context, status int, name, title string, data any) {
	ctx := c.Request.Context()

	page := Page{
		Title:         title,
		Authenticated: c.GetBool(KeyAuthenticated),
		Data:          data,
	}
	if sc, ok := model.GetScopeFromContext(ctx); ok {
		page.Flashes = r.notifier.Pop(ctx, sc)
	}
	c.HTML(status, name, page)
}

// Redirect answers with 303 so a POST lands on a GET.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
	c.Abort()
}
