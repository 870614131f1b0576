package http

import (
	"net/http"

	"comanda/internal/core/domain/model/auth"
	"comanda/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Header names identifying the acting staff member. Authentication itself
// lives at the gateway; this service only needs the verified identity and
// role to enforce capabilities and attribute audit entries.
const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the acting staff member from request headers and
// stores it on the request context. Requests without a valid actor identity
// are rejected before reaching any handler.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := kernel.UUIDFromString(ctx.Request().Header.Get(actorIDHeader))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + actorIDHeader + " header",
				})
			}

			role, err := auth.RoleFromString(ctx.Request().Header.Get(actorRoleHeader))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + actorRoleHeader + " header",
				})
			}

			actor, err := auth.NewActor(id, role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid actor identity",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom returns the actor resolved by ActorMiddleware.
func actorFrom(ctx echo.Context) (auth.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(auth.Actor)
	return actor, ok
}
