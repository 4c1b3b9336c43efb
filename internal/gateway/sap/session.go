package sap

import "strings"

// Cookie markers used by the B1 service layer.
const (
	sessionCookieMarker = "B1SESSION"
	routeCookieMarker   = "ROUTEID"
)

// Session carries the ERP session for the duration of one pipeline run. It is
// never cached or reused across calls.
type Session struct {
	// Cookie is the ready-to-send value of the Cookie header: the session
	// cookie and the route cookie joined with "; ".
	Cookie string
}

// sessionCookies scans Set-Cookie header values and returns the first value
// containing the session marker and the first containing the route marker,
// each cut at its first ';'. ok is false when either cookie is absent.
func sessionCookies(setCookie []string) (session, route string, ok bool) {
	session = firstCookie(setCookie, sessionCookieMarker)
	route = firstCookie(setCookie, routeCookieMarker)
	return session, route, session != "" && route != ""
}

func firstCookie(setCookie []string, marker string) string {
	for _, c := range setCookie {
		if strings.Contains(c, marker) {
			if i := strings.IndexByte(c, ';'); i >= 0 {
				return c[:i]
			}
			return c
		}
	}
	return ""
}
