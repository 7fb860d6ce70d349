package e2etest

import (
	"net/http"
	"net/url"
	"sync"
)

// unsafeCookieJar stores cookies per host while ignoring the Secure attribute,
// so that sessions marked Secure still round-trip over the plain-HTTP test
// server. Never use it outside tests.
type unsafeCookieJar struct {
	mu      sync.Mutex
	cookies map[string]map[string]*http.Cookie
}

func newUnsafeCookieJar() *unsafeCookieJar {
	return &unsafeCookieJar{cookies: make(map[string]map[string]*http.Cookie)}
}

func (j *unsafeCookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	host := u.Hostname()
	byName, ok := j.cookies[host]
	if !ok {
		byName = make(map[string]*http.Cookie)
		j.cookies[host] = byName
	}

	for _, cookie := range cookies {
		if cookie.MaxAge < 0 {
			delete(byName, cookie.Name)
			continue
		}
		byName[cookie.Name] = cookie
	}
}

func (j *unsafeCookieJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	var cookies []*http.Cookie
	for _, cookie := range j.cookies[u.Hostname()] {
		cookies = append(cookies, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	return cookies
}
