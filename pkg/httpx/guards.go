package httpx

import "net/http"

// Middleware decorates a single route handler
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Guards are the access checks a context's routes can ask for. They are
// built by the account context and handed to every RegisterRoutes.
type Guards struct {
	// Authenticated resolves the session and rejects anonymous callers
	Authenticated Middleware
	// ManageCatalog additionally requires the catalog management capability
	ManageCatalog Middleware
	// Shop additionally requires the shopping capability
	Shop Middleware
}

// Open returns guards that let every request through untouched
func Open() Guards {
	pass := func(next http.HandlerFunc) http.HandlerFunc { return next }
	return Guards{Authenticated: pass, ManageCatalog: pass, Shop: pass}
}
