package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/models"
)

type stubEngine struct {
	name  string
	html  string
	err   error
	calls int
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Fetch(context.Context, *FetchRequest) (*FetchResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &FetchResult{HTML: s.html, StatusCode: 200}, nil
}

const productPage = `<html><head><title>Water Bottle</title></head><body><span id="productTitle">Water Bottle</span></body></html>`
const captchaPage = `<html><head><title>Amazon.com</title></head><body><form action="/errors/validateCaptcha"><input id="captchacharacters"></form></body></html>`

func TestDispatcherFallsThroughTiers(t *testing.T) {
	rod := &stubEngine{name: "rod", err: errors.New("browser crashed")}
	plain := &stubEngine{name: "http", html: productPage}
	mem := NewHostMemory(time.Hour)
	d := NewDispatcher(mem, rod, plain)

	res, err := d.Dispatch(context.Background(), &FetchRequest{URL: "https://www.amazon.com/dp/B000TEST01"})
	require.NoError(t, err)
	require.Equal(t, "http", res.EngineName)
	require.Equal(t, "http", mem.Get("www.amazon.com"))

	// The remembered tier goes first next time.
	_, err = d.Dispatch(context.Background(), &FetchRequest{URL: "https://www.amazon.com/s?k=bottle"})
	require.NoError(t, err)
	require.Equal(t, 1, rod.calls)
	require.Equal(t, 2, plain.calls)
}

func TestDispatcherTreatsChallengeAsFailure(t *testing.T) {
	plain := &stubEngine{name: "http", html: captchaPage}
	rod := &stubEngine{name: "rod", html: productPage}
	d := NewDispatcher(NewHostMemory(time.Hour), plain, rod)

	res, err := d.Dispatch(context.Background(), &FetchRequest{URL: "https://www.amazon.com/dp/B000TEST01"})
	require.NoError(t, err)
	require.Equal(t, "rod", res.EngineName)
}

func TestDispatcherAllFail(t *testing.T) {
	d := NewDispatcher(NewHostMemory(time.Hour), &stubEngine{name: "http", html: captchaPage})

	_, err := d.Dispatch(context.Background(), &FetchRequest{URL: "https://www.amazon.com/dp/B000TEST01"})
	var se *models.ScrapeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, models.ErrCodeBotChallenge, se.Code)
}

func TestDispatcherForgetsFailedMemory(t *testing.T) {
	mem := NewHostMemory(time.Hour)
	mem.Set("www.amazon.com", "http")
	plain := &stubEngine{name: "http", err: errors.New("503")}
	rod := &stubEngine{name: "rod", html: productPage}
	d := NewDispatcher(mem, rod, plain)

	res, err := d.Dispatch(context.Background(), &FetchRequest{URL: "https://www.amazon.com/dp/B000TEST01"})
	require.NoError(t, err)
	require.Equal(t, "rod", res.EngineName)
	require.Equal(t, 1, plain.calls)
	require.Equal(t, "rod", mem.Get("www.amazon.com"))
}

func TestHostMemoryExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mem := NewHostMemory(time.Minute)
	mem.now = func() time.Time { return now }

	mem.Set("www.amazon.de", "rod")
	require.Equal(t, "rod", mem.Get("www.amazon.de"))

	now = now.Add(2 * time.Minute)
	require.Equal(t, "", mem.Get("www.amazon.de"))
}

func TestIsChallenge(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		title string
		want  bool
	}{
		{"product page", productPage, "", false},
		{"captcha input", captchaPage, "", true},
		{"captcha image", `<img src="https://images-na.ssl-images-amazon.com/captcha/abc.jpg">`, "", true},
		{"robot check title", `<html><head><title>Robot Check</title></head></html>`, "", true},
		{"robot check reported title", "<html></html>", "Amazon.com - Robot Check", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChallenge(tt.html, tt.title); got != tt.want {
				t.Errorf("IsChallenge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPEngineFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "de-DE,de;q=0.9", r.Header.Get("Accept-Language"))
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		default:
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(productPage))
		}
	}))
	defer srv.Close()

	e := NewHTTPEngine("", "de-DE,de;q=0.9")
	res, err := e.Fetch(context.Background(), &FetchRequest{URL: srv.URL + "/dp/B000TEST01"})
	require.NoError(t, err)
	require.Equal(t, "Water Bottle", res.Title)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, err = e.Fetch(context.Background(), &FetchRequest{URL: srv.URL + "/json"})
	require.Error(t, err)
}
