package pubsite

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(a.pageData(PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
	})))
}

func (a *App) handleIndex(c echo.Context) error {
	posts, err := a.Posts.List()
	if err != nil {
		c.Logger().Errorf("failed to load blog posts: %v", err)
		posts = nil
	}
	return Render(c, a.Views.Index(IndexData{
		PageData: a.pageData(PageMeta{
			Title:       "Posts | " + a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL, "posts"),
			OGType:      "website",
		}),
		Posts: posts,
	}))
}

// handlePost never fails the response: load and render errors become an
// inline message with status 200.
func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	p, err := a.Posts.Get(slug)
	if err != nil {
		c.Logger().Errorf("failed to load post %s: %v", slug, err)
		return Render(c, PostNotFound(slug))
	}

	b, err := renderBytes(c.Request().Context(), a.Views.Post(PostData{
		PageData: a.pageData(PageMeta{
			Title:       p.Title + " | " + a.Config.Name,
			Description: p.Excerpt,
			URL:         BuildURL(a.Config.URL, "posts", p.Slug),
			OGType:      "article",
		}),
		Post: p,
	}))
	if err != nil {
		c.Logger().Errorf("failed to render post template: %v", err)
		return Render(c, PostRenderError(err))
	}
	return c.HTMLBlob(http.StatusOK, b)
}

func (a *App) pageData(meta PageMeta) PageData {
	return PageData{Site: a.Config, Meta: meta}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		a.renderErrorPage(c, http.StatusNotFound, "Page not found")
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		a.renderErrorPage(c, code, http.StatusText(code))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// renderErrorPage falls back to the built-in page when the site's own
// template fails.
func (a *App) renderErrorPage(c echo.Context, code int, message string) {
	data := ErrorData{
		PageData: a.pageData(PageMeta{Title: message + " | " + a.Config.Name}),
		Message:  message,
	}
	page, fallback := a.Views.ServerError(data), ServerError()
	if code == http.StatusNotFound {
		page, fallback = a.Views.NotFound(data), NotFound()
	}
	if err := RenderStatus(c, code, page); err != nil {
		c.Logger().Errorf("failed to render %d page: %v", code, err)
		_ = RenderStatus(c, code, fallback)
	}
}
