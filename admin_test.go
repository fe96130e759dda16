package enginepages

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminClient carries cookies between requests to the same App.
type adminClient struct {
	a       *App
	cookies map[string]*http.Cookie
}

func (c *adminClient) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.a.Echo.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *adminClient) get(target string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (c *adminClient) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *adminClient) csrf(t *testing.T) string {
	t.Helper()
	ck, ok := c.cookies["_csrf"]
	require.True(t, ok, "csrf cookie set")
	return ck.Value
}

func TestAdminLoginFlow(t *testing.T) {
	a := newTestApp(t)
	c := &adminClient{a: a, cookies: map[string]*http.Cookie{}}

	rec := c.get("/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="password"`)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	token := c.csrf(t)

	rec = c.post("/admin/login/", url.Values{"password": {"wrong"}, "_csrf": {token}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wrong password.")

	rec = c.post("/admin/login/", url.Values{"password": {"hunter2"}, "_csrf": {token}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get("Location"))

	get(a, "/engines/mclaren/m630/")
	rec = c.get("/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "8 pages checked, 0 issues.")
	assert.Contains(t, body, "All pages pass.")
	assert.Contains(t, body, "/engines/mclaren/m630/")

	rec = c.post("/admin/logout/", url.Values{"_csrf": {token}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	rec = c.get("/admin/")
	assert.Contains(t, rec.Body.String(), `name="password"`)
}

func TestAdminLoginRequiresCSRF(t *testing.T) {
	a := newTestApp(t)
	c := &adminClient{a: a, cookies: map[string]*http.Cookie{}}
	c.get("/admin/")

	rec := c.post("/admin/login/", url.Values{"password": {"hunter2"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminLoginRateLimited(t *testing.T) {
	a := newTestApp(t)
	c := &adminClient{a: a, cookies: map[string]*http.Cookie{}}
	c.get("/admin/")
	token := c.csrf(t)

	for i := 0; i < 5; i++ {
		rec := c.post("/admin/login/", url.Values{"password": {"nope"}, "_csrf": {token}})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := c.post("/admin/login/", url.Values{"password": {"hunter2"}, "_csrf": {token}})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
