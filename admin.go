package enginepages

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/enginepages/validation"
	"github.com/eringen/enginepages/views"
)

const topViewsLimit = 10

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.site(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	c.Logger().Warnf("failed admin login from %s", ip)
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(a.site(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// renderAdminDashboard audits the served table and lists the most viewed
// pages.
func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	counts, err := a.Store.TopViews(c.Request().Context(), topViewsLimit)
	if err != nil {
		return err
	}
	top := make([]views.PageViews, 0, len(counts))
	for _, v := range counts {
		top = append(top, views.PageViews{Path: v.Path, Views: v.Views})
	}
	return Render(c, a.Views.AdminDashboard(a.site(), views.AdminView{
		Report:   validation.Check(a.Table),
		TopViews: top,
		Message:  msg,
		CSRF:     CsrfToken(c),
	}))
}
