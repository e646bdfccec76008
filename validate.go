package acctbatch

import "strings"

func isAlpha(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUserChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '.' || c == '_'
}

func all(s string, ok func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !ok(s[i]) {
			return false
		}
	}
	return true
}

// ValidName reports whether s is at least two ASCII letters and nothing else.
func ValidName(s string) bool {
	return len(s) >= 2 && all(s, isAlpha)
}

// ValidSSN reports whether s is exactly ten decimal digits.
func ValidSSN(s string) bool {
	return len(s) == 10 && all(s, isDigit)
}

// ValidEmail checks the user@host.domain form. The first '@' ends the user
// part and the last '.' starts the domain, so "a.b@host.com" keeps its dot
// in the user part.
func ValidEmail(e string) bool {
	at := strings.IndexByte(e, '@')
	dot := strings.LastIndexByte(e, '.')
	if at < 0 || dot < 0 || dot <= at+1 {
		return false
	}

	user, host, dom := e[:at], e[at+1:dot], e[dot+1:]
	if dom != "com" && dom != "edu" {
		return false
	}
	if len(host) < 4 || !all(host, isAlpha) {
		return false
	}
	return len(user) >= 4 && all(user, isUserChar)
}

// EmailDomain returns what follows the last '.', or "" when there is none.
func EmailDomain(e string) string {
	dot := strings.LastIndexByte(e, '.')
	if dot < 0 {
		return ""
	}
	return e[dot+1:]
}
