package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/propagation"

	"github.com/skillpath/roadmapper/internal/api/controllers"
	"github.com/skillpath/roadmapper/internal/api/response"
	"github.com/skillpath/roadmapper/internal/perrors"
)

var tracePropagator = propagation.TraceContext{}

func (s *Server) initRoutes() fasthttp.RequestHandler {
	r := router.New()

	// Liveness
	r.GET("/", func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set("content-type", "application/json")
		ctx.SetStatusCode(fasthttp.StatusOK)
		_, _ = ctx.Write([]byte(`{"message": "AI Learning Roadmap Generator API is running"}`))
	})

	controllers.RegisterAuthRoutes(r, s.services, s.auth)
	controllers.RegisterRoadmapRoutes(r, s.services)

	return s.withMiddlewares(r.Handler)
}

func (s *Server) withMiddlewares(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		s.applyCORS(ctx)
		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		start := time.Now()
		uri := ctx.URI()
		requestURI := string(uri.FullURI())
		slog.Info("Started processing", slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI))

		h := http.Header{}
		ctx.Request.Header.VisitAll(func(k, v []byte) {
			h[string(k)] = []string{string(v)}
		})
		traceCtx := tracePropagator.Extract(ctx, propagation.HeaderCarrier(h))
		ctx.SetUserValue("traceCtx", traceCtx)

		// Auth check: resolve the bearer token to a user record and store it
		// for downstream handlers. Every failure mode reads the same.
		if !isPublicRoute(ctx) {
			accessToken := strings.TrimPrefix(string(ctx.Request.Header.Peek("Authorization")), "Bearer ")

			subject, err := s.auth.VerifyAccessToken(accessToken)
			if err != nil {
				response.NewResponse[any](traceCtx, nil).
					WithError(perrors.NewErrUnauthorized("Could not validate credentials", err)).
					Write(ctx)
				return
			}

			u, err := s.services.User.GetByEmail(traceCtx, subject)
			if err != nil {
				response.NewResponse[any](traceCtx, nil).
					WithError(perrors.NewErrUnauthorized("Could not validate credentials", err)).
					Write(ctx)
				return
			}

			ctx.SetUserValue("currentUser", u)
		}

		next(ctx)

		slog.Info("Finished processing", slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI), slog.Duration("duration", time.Since(start)))
	}
}

// applyCORS reflects the request origin only when it is on the configured
// allow-list.
func (s *Server) applyCORS(ctx *fasthttp.RequestCtx) {
	origin := string(ctx.Request.Header.Peek("Origin"))
	if origin == "" || !s.originAllowed(origin) {
		return
	}

	allowHeaders := string(ctx.Request.Header.Peek("Access-Control-Request-Headers"))
	if allowHeaders == "" {
		allowHeaders = "Authorization,Content-Type"
	}

	headers := &ctx.Response.Header
	headers.Set("Access-Control-Allow-Origin", origin)
	headers.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS,PATCH")
	headers.Set("Access-Control-Allow-Headers", allowHeaders)
	headers.Set("Access-Control-Allow-Credentials", "true")
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.conf.ALLOWED_ORIGINS {
		if allowed == origin {
			return true
		}
	}
	return false
}

func isPublicRoute(ctx *fasthttp.RequestCtx) bool {
	path := string(ctx.Path())

	publicRoutes := []string{
		"/",
		"/api/v1/auth/signup",
		"/api/v1/auth/login",
	}

	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}
	return false
}
