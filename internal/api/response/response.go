package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/skillpath/roadmapper/internal/perrors"
)

// Response is the single place errors become HTTP status codes. Success
// bodies are written as-is; error bodies are `{"detail": "..."}` with the
// status taken from the error's perrors code.
type Response[T any] struct {
	ctx    context.Context
	data   T
	detail string
	status int
	isErr  bool
}

func NewResponse[T any](ctx context.Context, data T) *Response[T] {
	return &Response[T]{
		ctx:    ctx,
		data:   data,
		status: http.StatusOK,
	}
}

// WithError sets the error state for the response
func (r *Response[T]) WithError(err error) *Response[T] {
	var perr perrors.Err
	if !errors.As(err, &perr) {
		perr = perrors.NewErrInternalServerError(err.Error(), err).(perrors.Err)
	}

	r.status = perr.HttpStatus()
	r.detail = perr.Message
	r.isErr = true
	perr.Print(r.ctx)

	return r
}

// WithStatus will set the HTTP response status code.
//
// This is not a preferred way of setting status code.
//   - Try to use perrors.Err embedded with a status code whenever possible.
//   - Default is http.StatusOK and it need not be set explicitly.
func (r *Response[T]) WithStatus(code int) *Response[T] {
	r.status = code

	return r
}

// Write will set the `content-type` to `application/json` and write the response to the fasthttp context.
func (r *Response[T]) Write(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("content-type", "application/json")

	if r.isErr {
		if r.status == http.StatusUnauthorized {
			ctx.Response.Header.Set("WWW-Authenticate", "Bearer")
		}

		ctx.SetStatusCode(r.status)
		body, _ := json.Marshal(map[string]string{"detail": r.detail})
		ctx.SetBody(body)
		return
	}

	ctx.SetStatusCode(r.status)

	body, err := json.Marshal(r.data)
	if err != nil {
		slog.ErrorContext(r.ctx, "Unable to json encode response", slog.Any("error", err))
		ctx.SetStatusCode(http.StatusInternalServerError)
		return
	}

	ctx.SetBody(body)
}
