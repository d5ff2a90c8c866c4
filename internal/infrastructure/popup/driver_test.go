package popup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/infrastructure/popup"
	"github.com/oneuniverse/onboard/internal/logging"
)

type recordingPoster struct {
	mu   sync.Mutex
	msgs []port.Message
}

func (r *recordingPoster) Post(msg port.Message) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return 1
}

func (r *recordingPoster) messages() []port.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]port.Message(nil), r.msgs...)
}

func TestDriver_ReportsImmediateRedirect(t *testing.T) {
	if testing.Short() {
		t.Skip("launches a browser")
	}
	bin, found := launcher.LookPath()
	if !found {
		t.Skip("no chromium available")
	}

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	redirectURL := srv.URL + "/oauth/callback"
	mux.HandleFunc("/authorize", func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		http.Redirect(w, r, redirectURL+"#access_token=instant&state="+state, http.StatusFound)
	})
	mux.HandleFunc("/oauth/callback", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	})

	poster := &recordingPoster{}
	driver := popup.NewDriver(popup.Config{
		BrowserBin:  bin,
		RedirectURL: redirectURL,
		Headless:    true,
	}, poster)
	defer func() { _ = driver.Close() }()

	ctx, cancel := context.WithTimeout(logging.WithContext(context.Background(), zerolog.Nop()), 30*time.Second)
	defer cancel()

	p, err := driver.Open(ctx, port.PopupRequest{URL: srv.URL + "/authorize?state=s1", Name: "OAuth", Width: 500, Height: 600})
	require.NoError(t, err)
	assert.Equal(t, 1, driver.OpenPopups())

	require.Eventually(t, func() bool { return len(poster.messages()) > 0 }, 10*time.Second, 20*time.Millisecond)
	msgs := poster.messages()
	require.Len(t, msgs, 1, "redirect reported once")
	assert.Equal(t, port.MessageOAuthSuccess, msgs[0].Type)
	assert.Equal(t, "instant", msgs[0].AccessToken)
	assert.Equal(t, "s1", msgs[0].State)

	require.NoError(t, p.Close())
	assert.Equal(t, 0, driver.OpenPopups())
}
