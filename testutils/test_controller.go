package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

// TestController bundles the fake servers a controller needs in tests: a
// fake yahoo fantasy API and a fake oauth token endpoint. The token
// endpoint always succeeds and always returns a rotated refresh token, the
// way yahoo does.
type TestController struct {
	Clock       clock.Clock
	YahooConfig *oauth2.Config
	fakeYahoo   *FakeYahooServer
	fakeOAuth   *httptest.Server
}

// RotatedRefreshToken is the refresh token the fake oauth server hands out
// on every refresh.
const RotatedRefreshToken = "rotated-refresh-token"

func (c *TestController) Close() {
	c.fakeYahoo.Close()
	c.fakeOAuth.Close()
}

func (c *TestController) YahooURL() string {
	return c.fakeYahoo.URL()
}

func NewTestController(db *TestDB) *TestController {
	fakeOAuthServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{
			"access_token": "access_token",
			"refresh_token": "%s",
			"token_type": "bearer",
			"expires_in": 3600
		}`, RotatedRefreshToken)
	}))

	fakeYahooConfig := &oauth2.Config{
		ClientID:     "fakeClientID",
		ClientSecret: "fakeClientSecret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/auth", fakeOAuthServer.URL),
			TokenURL: fmt.Sprintf("%s/token", fakeOAuthServer.URL),
		},
		RedirectURL: fmt.Sprintf("%s/redirect", fakeOAuthServer.URL),
	}
	return &TestController{
		Clock:       db.Clock,
		YahooConfig: fakeYahooConfig,
		fakeYahoo:   NewFakeYahooServer(),
		fakeOAuth:   fakeOAuthServer,
	}
}
