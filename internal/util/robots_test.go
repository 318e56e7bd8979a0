package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRobotsChecker_CanFetch(t *testing.T) {
	var robotsHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsHits++
			w.Write([]byte("User-agent: *\nDisallow: /private/\nCrawl-delay: 2\n"))
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	checker := NewRobotsChecker("DuiLens/0.1", 5*time.Second)
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, server.URL+"/articles/one")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected /articles/one to be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("Expected 2s crawl delay, got %v", delay)
	}

	allowed, _, err = checker.CanFetch(ctx, server.URL+"/private/secret")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if allowed {
		t.Error("Expected /private/secret to be disallowed")
	}

	// Second lookup for the same host must come from the cache.
	if robotsHits != 1 {
		t.Errorf("Expected 1 robots.txt fetch, got %d", robotsHits)
	}
}

func TestRobotsChecker_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("DuiLens/0.1", 5*time.Second)

	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected everything allowed when robots.txt is missing")
	}
}

func TestRobotsChecker_Unreachable(t *testing.T) {
	checker := NewRobotsChecker("DuiLens/0.1", 500*time.Millisecond)

	// Nothing listens on this port; fetch failure falls back to allow.
	allowed, _, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/page")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected allow when robots.txt is unreachable")
	}
}

func TestNewProxyFunc(t *testing.T) {
	proxyFunc := NewProxyFunc("http://proxy.local:8080", "http://secure.local:8443", "")

	httpsReq, _ := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	proxyURL, err := proxyFunc(httpsReq)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if proxyURL == nil || proxyURL.Host != "secure.local:8443" {
		t.Errorf("Expected https proxy, got %v", proxyURL)
	}

	httpReq, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	proxyURL, err = proxyFunc(httpReq)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if proxyURL == nil || proxyURL.Host != "proxy.local:8080" {
		t.Errorf("Expected http proxy, got %v", proxyURL)
	}
}

func TestNewProxyFunc_Empty(t *testing.T) {
	proxyFunc := NewProxyFunc("", "", "")

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	got, err := proxyFunc(req)
	env, envErr := http.ProxyFromEnvironment(req)
	if (err == nil) != (envErr == nil) {
		t.Fatalf("Expected environment behavior, got err %v vs %v", err, envErr)
	}
	if (got == nil) != (env == nil) {
		t.Errorf("Expected environment proxy %v, got %v", env, got)
	}
}
