// Package middleware contains HTTP middleware for the Fiber application.
//
//   - RayID: assigns every request an id, stored in c.Locals("ray_id") and
//     echoed in the X-Ray-ID response header, for log correlation.
//   - RequireAuth: accepts the static API key (X-API-Key) or a bearer token
//     issued by the login endpoint.
package middleware
