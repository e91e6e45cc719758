// Package router provides an ordered route table that maps HTTP method and
// path pairs to handlers, extracting typed path parameters along the way.
//
// Path templates contain literal segments and named placeholders:
//
//	r := router.New()
//	r.Get("/users/{id:int}", getUser)
//	r.Get("/files/{name:string}", getFile)
//	r.Get("/things/{key}", getThing) // numeric segments coerce to int
//
// Placeholders match exactly one non-empty path segment. Typed placeholders
// resolve the coercion question at registration: {id:int} only matches
// numeric segments and yields an int parameter, {name:string} never coerces.
// Bare placeholders keep the legacy behavior of coercing fully numeric
// segments, so a numeric-looking value cannot be bound as a string through
// them.
//
// Matching walks routes in registration order and the first match wins.
// Register literal routes before parameterized ones that also cover them;
// the router detects provably shadowed registrations and logs a warning:
//
//	r.Get("/users/{id}", getUser)
//	r.Get("/users/me", getMe) // unreachable, warned at registration
//
// A missing route and a known route with a disallowed method both yield
// ErrNotFound; the dispatcher deliberately does not distinguish them.
package router
