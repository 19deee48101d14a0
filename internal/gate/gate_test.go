package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitrine/internal/gate"
)

func TestDecide(t *testing.T) {
	g := gate.Default()

	tests := []struct {
		name    string
		path    string
		session bool
		want    gate.Decision
	}{
		{"storefront is public", "/u/acme", false, gate.Decision{Action: gate.Pass}},
		{"storefront with session", "/u/acme", true, gate.Decision{Action: gate.Pass}},
		{"landing is public", "/", false, gate.Decision{Action: gate.Pass}},
		{"login is public", "/login", false, gate.Decision{Action: gate.Pass}},
		{"registro is public", "/registro", false, gate.Decision{Action: gate.Pass}},

		{"protected without session", "/produtos", false, gate.Decision{Action: gate.Redirect, Target: "/login"}},
		{"protected with session", "/produtos", true, gate.Decision{Action: gate.Pass}},
		{"dashboard without session", "/dashboard", false, gate.Decision{Action: gate.Redirect, Target: "/login"}},

		{"logged in login page bounces home", "/login", true, gate.Decision{Action: gate.Redirect, Target: "/dashboard"}},
		{"logged in registro bounces home", "/registro", true, gate.Decision{Action: gate.Redirect, Target: "/dashboard"}},

		// default is protected: routes added later are never silently exposed
		{"unknown path fails closed", "/unknown-future-path", false, gate.Decision{Action: gate.Redirect, Target: "/login"}},
		{"unknown path with session", "/unknown-future-path", true, gate.Decision{Action: gate.Pass}},

		// namespaces outside the gate's jurisdiction pass untouched
		{"api skipped", "/api/v1/products/p1/click", false, gate.Decision{Action: gate.Pass}},
		{"api skipped with session", "/api/v1/catalog", true, gate.Decision{Action: gate.Pass}},
		{"static skipped", "/static/style.css", false, gate.Decision{Action: gate.Pass}},
		{"healthz skipped", "/healthz", false, gate.Decision{Action: gate.Pass}},
		{"favicon skipped", "/favicon.ico", false, gate.Decision{Action: gate.Pass}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Decide(tt.path, tt.session))
		})
	}
}

// The /u prefix must match as a path segment, not as a raw string prefix:
// /u/acme yes, /unknown no.
func TestPrefixMatchingIsSegmentAware(t *testing.T) {
	g := gate.Default()

	assert.Equal(t, gate.Pass, g.Decide("/u/acme", false).Action)
	assert.Equal(t, gate.Pass, g.Decide("/u", false).Action)
	assert.Equal(t, gate.Redirect, g.Decide("/ultimate", false).Action)
	assert.Equal(t, gate.Redirect, g.Decide("/loginx", false).Action)
	// nested auth-ish paths are not auth pages
	assert.Equal(t, gate.Redirect, g.Decide("/login/extra", false).Action)
}
