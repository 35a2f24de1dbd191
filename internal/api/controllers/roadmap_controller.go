package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/skillpath/roadmapper/internal/perrors"
	"github.com/skillpath/roadmapper/internal/services"
	"github.com/skillpath/roadmapper/internal/services/roadmap"
)

func RegisterRoadmapRoutes(r *router.Router, svc *services.Services) {
	// Generate a plan and persist it
	r.POST("/api/v1/roadmap/generate", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		identity, err := currentUser(ctx)
		if err != nil {
			writeUnauthorized(ctx, stdCtx, err)
			return
		}

		var req roadmap.GenerateRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if req.Goal == "" {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Goal is required", errors.New("goal is required")))
			return
		}

		if req.DurationWeeks < 1 {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Duration must be a positive number of weeks", errors.New("duration_weeks must be positive")))
			return
		}

		rm, err := svc.Roadmap.Generate(stdCtx, identity.ID, req.Goal, req.DurationWeeks)
		if err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInternalServerError("Failed to save roadmap", err))
			return
		}

		writeOK(ctx, stdCtx, rm)
	})

	// All roadmaps owned by the caller, newest first
	r.GET("/api/v1/roadmap/history", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		identity, err := currentUser(ctx)
		if err != nil {
			writeUnauthorized(ctx, stdCtx, err)
			return
		}

		roadmaps, err := svc.Roadmap.History(stdCtx, identity.ID)
		if err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInternalServerError(err.Error(), err))
			return
		}

		writeOK(ctx, stdCtx, roadmaps)
	})

	// Toggle one week's completion flag
	r.PATCH("/api/v1/roadmap/{id}/progress", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		identity, err := currentUser(ctx)
		if err != nil {
			writeUnauthorized(ctx, stdCtx, err)
			return
		}

		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Invalid roadmap id", err))
			return
		}

		var req roadmap.ProgressRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		rm, err := svc.Roadmap.UpdateProgress(stdCtx, identity.ID, id, req.WeekNumber, req.IsCompleted)
		if err != nil {
			switch {
			case errors.Is(err, roadmap.ErrNotFound):
				writeError(ctx, stdCtx, perrors.NewErrNotFound("Roadmap not found", err))
			case errors.Is(err, roadmap.ErrWeekNotFound):
				writeError(ctx, stdCtx, perrors.NewErrNotFound("Week not found in roadmap", err))
			default:
				writeError(ctx, stdCtx, perrors.NewErrInternalServerError(err.Error(), err))
			}
			return
		}

		writeOK(ctx, stdCtx, rm)
	})
}
