package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/ports"
)

// actorKey is where the resolved Actor lives in the echo context.
const actorKey = "actor"

// ActorMiddleware resolves the Authorization header into a ports.Actor and
// stores it on the request context. A missing header yields the anonymous
// actor so that guest checkout still works; a present but bad credential
// is rejected here, before any handler runs.
func ActorMiddleware(authorizer ports.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			credential := bearerToken(ctx.Request().Header.Get("Authorization"))

			actor, err := authorizer.Resolve(ctx.Request().Context(), credential)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid credentials",
				})
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimPrefix(header, prefix)
	}
	return ""
}

// actorFrom returns the Actor placed by ActorMiddleware, or the anonymous
// actor when the route was mounted without it.
func actorFrom(ctx echo.Context) ports.Actor {
	if actor, ok := ctx.Get(actorKey).(ports.Actor); ok {
		return actor
	}
	return ports.AnonymousActor()
}
