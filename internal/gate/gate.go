// Package gate decides, per request, whether a path may be served without a
// session. It is the first routing decision in the app and is deliberately
// dumb: it looks at the path string and the presence of the session cookie,
// nothing else. Whether a present token actually resolves to a user is the
// handlers' problem.
package gate

import "strings"

type Action int

const (
	Pass Action = iota
	Redirect
)

type Decision struct {
	Action Action
	Target string // redirect target when Action == Redirect
}

func pass() Decision              { return Decision{Action: Pass} }
func redirect(to string) Decision { return Decision{Action: Redirect, Target: to} }

// class is the outcome of path classification before the session is consulted.
type class int

const (
	classSkipped class = iota // outside the gate's jurisdiction entirely
	classAuth                 // login/registration pages
	classPublic
	classProtected
)

// rule is one row of the ordered classification table. First match wins.
type rule struct {
	name  string
	match func(path string) bool
	class class
}

func prefixRule(name, prefix string, cl class) rule {
	return rule{name: name, class: cl, match: func(p string) bool {
		return p == prefix || strings.HasPrefix(p, prefix+"/")
	}}
}

func exactRule(name, path string, cl class) rule {
	return rule{name: name, class: cl, match: func(p string) bool { return p == path }}
}

type Gate struct {
	rules     []rule
	loginPath string
	homePath  string
}

// Default builds the gate for the app's route map. The rule order matters:
// the static and API namespaces are taken out of classification before any
// public prefix can shadow them (API routes authenticate inside their
// handlers), and anything not explicitly public falls through to PROTECTED.
func Default() *Gate {
	return &Gate{
		loginPath: "/login",
		homePath:  "/dashboard",
		rules: []rule{
			prefixRule("static", "/static", classSkipped),
			prefixRule("api", "/api", classSkipped),
			exactRule("favicon", "/favicon.ico", classSkipped),
			exactRule("healthz", "/healthz", classSkipped),
			exactRule("login", "/login", classAuth),
			exactRule("registro", "/registro", classAuth),
			prefixRule("storefront", "/u", classPublic),
			exactRule("landing", "/", classPublic),
			// no catch-all rule: unmatched paths are PROTECTED (fail closed)
		},
	}
}

// Decide classifies the path and applies the session transition table.
// Protected paths without a session redirect to login; auth pages with a
// session redirect to the authenticated home; everything else passes.
func (g *Gate) Decide(path string, hasSession bool) Decision {
	cl := classProtected
	for _, r := range g.rules {
		if r.match(path) {
			cl = r.class
			break
		}
	}
	switch cl {
	case classSkipped, classPublic:
		return pass()
	case classAuth:
		if hasSession {
			return redirect(g.homePath)
		}
		return pass()
	default:
		if hasSession {
			return pass()
		}
		return redirect(g.loginPath)
	}
}
