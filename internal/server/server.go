package server

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/miteshrathod09/sick-fits/internal/config"
	"github.com/miteshrathod09/sick-fits/internal/graph"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

type Server struct {
	echo *echo.Echo
}

func NewServer(
	cfg *config.Config,
	schema *graphql.Schema,
	authService service.AuthService,
	userService service.UserService,
	logger zerolog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTP.RateLimit))))
	e.Use(requestLogger(logger))
	e.Use(sessionMiddleware(authService, userService, cfg.Environment.Name == "production", logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/graphql", echo.WrapHandler(&relay.Handler{Schema: schema}))

	return &Server{echo: e}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// sessionMiddleware resolves the session cookie into a user on the request
// context. Any failure leaves the request anonymous; public queries must
// still work.
func sessionMiddleware(
	authService service.AuthService,
	userService service.UserService,
	secureCookies bool,
	logger zerolog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := graph.WithCookieWriter(req.Context(), graph.NewCookieWriter(c.Response(), secureCookies))

			if cookie, err := c.Cookie("token"); err == nil && cookie.Value != "" {
				userID, tokenID, err := authService.Verify(ctx, cookie.Value)
				if err == nil {
					if user, err := userService.ByID(ctx, userID); err == nil {
						ctx = graph.WithUser(ctx, user)
						ctx = graph.WithSessionID(ctx, tokenID)
					}
				} else {
					logger.Debug().Err(err).Msg("session cookie rejected")
				}
			}

			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
