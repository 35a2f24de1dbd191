package controllers

import (
	"context"
	"errors"
	"fmt"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/skillpath/roadmapper/internal/api/response"
	"github.com/skillpath/roadmapper/internal/perrors"
	"github.com/skillpath/roadmapper/internal/services/user"
)

// requestContext returns a baseline context for handlers. fasthttp does not
// provide a standard context, so the middleware stashes the extracted trace
// context as a user value.
func requestContext(ctx *fasthttp.RequestCtx) context.Context {
	if traceCtx, ok := ctx.UserValue("traceCtx").(context.Context); ok {
		return traceCtx
	}

	return context.Background()
}

// currentUser returns the identity the auth middleware resolved for this
// request.
func currentUser(ctx *fasthttp.RequestCtx) (*user.User, error) {
	u, ok := ctx.UserValue("currentUser").(*user.User)
	if !ok || u == nil {
		return nil, errors.New("no authenticated user on request")
	}

	return u, nil
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return json.Unmarshal(body, target)
}

func writeError(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	response.NewResponse[any](stdCtx, nil).WithError(err).Write(ctx)
}

func writeOK(ctx *fasthttp.RequestCtx, stdCtx context.Context, data any) {
	response.NewResponse(stdCtx, data).Write(ctx)
}

func pathParam(ctx *fasthttp.RequestCtx, key string) (string, error) {
	val := ctx.UserValue(key)
	if val == nil {
		return "", fmt.Errorf("%s is required", key)
	}

	return fmt.Sprint(val), nil
}

func pathParamUUID(ctx *fasthttp.RequestCtx, key string) (uuid.UUID, error) {
	val, err := pathParam(ctx, key)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(val)
}

func writeUnauthorized(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	writeError(ctx, stdCtx, perrors.NewErrUnauthorized("Could not validate credentials", err))
}
