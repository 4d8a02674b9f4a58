// Package transport builds HTTP clients from resolver options and probes
// remote repositories with them.
package transport

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/mvnconf/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 15 * time.Second

// ProxyFunc is the signature of http.Transport.Proxy.
type ProxyFunc func(*http.Request) (*url.URL, error)

// NewClient returns an *http.Client whose proxy selection follows the options:
// https requests use the HTTPS proxy, http requests use the HTTP proxy, and an
// absent proxy means a direct connection.
func NewClient(opts *domain.ResolverOptions) (*http.Client, error) {
	proxy, err := NewProxyFunc(opts)
	if err != nil {
		return nil, err
	}

	//nolint:forcetypeassert // http.DefaultTransport is always an *http.Transport
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = proxy

	return &http.Client{
		Timeout:   httpClientTimeout,
		Transport: t,
	}, nil
}

// NewProxyFunc parses both proxies once and returns a selector by request scheme.
func NewProxyFunc(opts *domain.ResolverOptions) (ProxyFunc, error) {
	httpAddr, hasHTTP := opts.HTTPProxy()
	httpProxy, err := parseProxy(httpAddr, hasHTTP)
	if err != nil {
		return nil, zerr.With(err, "key", domain.HTTPProxyKey)
	}

	httpsAddr, hasHTTPS := opts.HTTPSProxy()
	httpsProxy, err := parseProxy(httpsAddr, hasHTTPS)
	if err != nil {
		return nil, zerr.With(err, "key", domain.HTTPSProxyKey)
	}

	return func(req *http.Request) (*url.URL, error) {
		switch req.URL.Scheme {
		case "https":
			return httpsProxy, nil
		case "http":
			return httpProxy, nil
		default:
			return nil, nil
		}
	}, nil
}

// ParseProxy validates a proxy address. An address without a scheme is taken
// to be an http proxy, as net/http does for HTTP_PROXY.
func ParseProxy(addr string) (*url.URL, error) {
	return parseProxy(addr, true)
}

func parseProxy(addr string, set bool) (*url.URL, error) {
	if !set || addr == "" {
		return nil, nil
	}

	raw := addr
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidProxy.Error()), "proxy", addr)
	}
	if u.Host == "" {
		return nil, zerr.With(domain.ErrInvalidProxy, "proxy", addr)
	}

	return u, nil
}
