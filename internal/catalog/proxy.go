package catalog

import (
	"net/http"
	"net/url"
)

// newProxyFunc routes catalog requests through the configured proxies.
// Without explicit proxies the standard HTTP_PROXY/HTTPS_PROXY/NO_PROXY variables apply.
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
