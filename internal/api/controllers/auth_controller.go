package controllers

import (
	"errors"
	"net/mail"
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/skillpath/roadmapper/internal/api/authenticator"
	"github.com/skillpath/roadmapper/internal/perrors"
	"github.com/skillpath/roadmapper/internal/services"
	"github.com/skillpath/roadmapper/internal/services/user"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public user view. The password hash never appears here.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func userView(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func RegisterAuthRoutes(r *router.Router, svc *services.Services, auth *authenticator.Authenticator) {
	r.POST("/api/v1/auth/signup", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		var req SignupRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if _, err := mail.ParseAddress(req.Email); err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Invalid email address", err))
			return
		}

		if req.Password == "" {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Password is required", errors.New("password is required")))
			return
		}

		u, err := svc.User.Register(stdCtx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				writeError(ctx, stdCtx, perrors.NewErrConflict("Email already registered", err))
				return
			}

			writeError(ctx, stdCtx, perrors.NewErrInternalServerError(err.Error(), err))
			return
		}

		writeOK(ctx, stdCtx, userView(u))
	})

	// Login is form-encoded (username/password), matching the OAuth2
	// password flow the frontend speaks.
	r.POST("/api/v1/auth/login", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		username := string(ctx.PostArgs().Peek("username"))
		password := string(ctx.PostArgs().Peek("password"))
		if username == "" || password == "" {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Username and password are required", errors.New("missing credentials")))
			return
		}

		// One generic message for both unknown user and bad password, so the
		// response does not reveal which field was wrong.
		u, err := svc.User.Authenticate(stdCtx, username, password)
		if err != nil {
			writeError(ctx, stdCtx, perrors.NewErrUnauthorized("Incorrect email or password", err))
			return
		}

		token, err := auth.CreateAccessToken(u.Email)
		if err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInternalServerError("Failed to generate token", err))
			return
		}

		writeOK(ctx, stdCtx, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        userView(u),
		})
	})
}
