package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var (
	linkCounter atomic.Uint64
	bodyPool    = sync.Pool{
		New: func() any {
			return make([]byte, 0, 96)
		},
	}
)

func ShortenTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	url := baseURL + "/shorten"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header

		n := linkCounter.Add(1)
		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"name":"bench %d","url":"https://example.com/%d"}`, n, n)
		t.Body = buf
		return nil
	}
}

func RedirectTargeter(baseURL string, slugs []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		slug := slugs[rand.IntN(len(slugs))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + slug
		t.Header = header
		return nil
	}
}

func MixedTargeter(baseURL string, slugs []string, shortenRatio float64, bypassSecret string) vegeta.Targeter {
	shortenTarget := ShortenTargeter(baseURL, bypassSecret)
	redirectTarget := RedirectTargeter(baseURL, slugs, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < shortenRatio {
			return shortenTarget(t)
		}
		return redirectTarget(t)
	}
}
