// Package guard provides the navigation guard for the web application.
//
// The guard decides, per navigation, whether a protected view renders,
// redirects to the login view, or redirects home as unauthorized. It reads
// the session store on every request and keys role checks on the role names
// the backend reported at signin.
//
// The guard is a usability layer, not a security boundary: the remote IAM
// API authorizes every call it receives via the bearer token, independent
// of any decision made here.
//
// Usage:
//
//	g := guard.New(sessions, cookieName).
//		Public(login.Path, register.Path, logout.Path)
//	app.Use(g.Middleware)
//	app.Get("/admin/users", g.RequireRole(rbac.RoleAdmin), handler)
package guard
