package static

import "github.com/gofiber/fiber/v2"

// LandingPage is the file served in place of the rewritten targets.
const LandingPage = "/frontend_test.html"

// rewrittenTargets are matched against the raw request target, query string
// included, so "/test?x=1" and "/test/" are served as-is.
var rewrittenTargets = map[string]struct{}{
	"/":     {},
	"/test": {},
}

// Rewrite returns the path to resolve for a request. Only GET requests whose
// target is exactly "/" or "/test" are rewritten to LandingPage.
func Rewrite(method, target string) (string, bool) {
	if method != fiber.MethodGet {
		return target, false
	}
	if _, ok := rewrittenTargets[target]; !ok {
		return target, false
	}
	return LandingPage, true
}
