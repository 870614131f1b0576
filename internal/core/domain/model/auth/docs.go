// Package auth provides the actor model used for permission checks: who is
// performing an operation and what their role allows. Authentication itself
// happens outside this system; the HTTP adapter receives the actor identity
// and role and asks this package whether the action is permitted.
package auth
