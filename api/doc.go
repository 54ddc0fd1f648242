// Package api exposes the content service over HTTP. Owners arrive in the
// X-Owner-Id header set by the upstream authenticating proxy; every route
// is scoped to that owner.
package api
