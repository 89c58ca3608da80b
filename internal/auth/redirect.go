package auth

import (
	"net/url"
	"strings"
)

// ResolveRedirect decides where to send the browser after sign-in.
// Same-origin deep links are honored; everything else falls back to the
// origin, which closes the open-redirect hole. The function is total:
// malformed input takes the fallback path.
func ResolveRedirect(target, origin string) string {
	if target == "" {
		return origin
	}

	// Relative path: resolve against the origin.
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return strings.TrimSuffix(origin, "/") + target
	}

	targetURL, err := url.Parse(target)
	if err != nil || !targetURL.IsAbs() {
		return origin
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return origin
	}

	if targetURL.Scheme == originURL.Scheme && targetURL.Host == originURL.Host {
		return target
	}

	return origin
}
