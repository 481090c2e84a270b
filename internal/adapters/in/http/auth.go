package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"studel/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorKey = "studel.actor"

var errMissingBearer = errors.New("missing bearer token")

// ActorResolver maps a verified token subject to the acting account.
type ActorResolver interface {
	Handle(ctx context.Context, subject string) (user.Actor, error)
}

// Authenticator verifies HS256 bearer tokens issued by the identity provider.
// Only the signature, expiry and subject are checked; credentials never reach
// this service.
type Authenticator struct {
	secret []byte
	actors ActorResolver
}

func NewAuthenticator(secret string, actors ActorResolver) *Authenticator {
	return &Authenticator{secret: []byte(secret), actors: actors}
}

// Subject returns the user id carried by a valid token.
func (a *Authenticator) Subject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// Issue signs a token for subject. Used by tests and local tooling.
func (a *Authenticator) Issue(subject string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject}).SignedString(a.secret)
}

// Middleware resolves the bearer token into an Actor stored on the echo context.
// Requests the skipper lets through carry no actor.
func (a *Authenticator) Middleware(skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper != nil && skipper(ctx) {
				return next(ctx)
			}

			token, err := bearer(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(ctx, err)
			}
			subject, err := a.Subject(token)
			if err != nil {
				return unauthorized(ctx, err)
			}
			actor, err := a.actors.Handle(ctx.Request().Context(), subject)
			if err != nil {
				code := statusOf(err)
				return ctx.JSON(code, Error{Code: code, Message: err.Error()})
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func bearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingBearer
	}
	return strings.TrimSpace(token), nil
}

func unauthorized(ctx echo.Context, err error) error {
	ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
}

// currentActor returns the actor set by the authentication middleware. Routes
// without authentication get the zero Actor, which every role check rejects.
func currentActor(ctx echo.Context) user.Actor {
	actor, _ := ctx.Get(actorKey).(user.Actor)
	return actor
}
