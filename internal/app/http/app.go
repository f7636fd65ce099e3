package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "galleria/internal/middleware"
	httprouters "galleria/internal/transport/http"
	"galleria/internal/transport/http/dto/response"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, sessionSecret string, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// adminSessionMiddleware gates editor endpoints on a live admin
// session, checked against both the token signature and the
// revocation registry.
func (s *Server) adminSessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := httprouters.SessionToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
		}

		if _, err := s.routers.SessionService.Validate(c.Request().Context(), token); err != nil {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	api := s.e.Group("/api/v1")
	{
		api.GET("/sections/:section/sliders", s.routers.GetSliders)
		api.GET("/content/:section_key", s.routers.GetContent)
		api.GET("/config", s.routers.GetConfig)

		api.POST("/admin/login", s.routers.Login)

		debug := s.e.Group("/debug")
		{
			debug.GET("/statsviz/", echo.WrapHandler(s.m))
			debug.GET("/statsviz/*", echo.WrapHandler(s.m))
		}

		s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

		swagger := s.e.Group("/swag")
		{
			swagger.GET("/swagger/*", echoSwagger.WrapHandler)
		}

		admin := api.Group("/admin", s.adminSessionMiddleware)
		{
			admin.GET("/session", s.routers.CheckSession)
			admin.POST("/logout", s.routers.Logout)
			admin.POST("/logout-all", s.routers.LogoutAll)

			admin.POST("/sliders", s.routers.CreateSlider)
			admin.GET("/sliders/:slider_id", s.routers.GetSlider)
			admin.DELETE("/sliders/:slider_id", s.routers.DeleteSlider)
			admin.POST("/sliders/:slider_id/items", s.routers.AddSliderItem)
			admin.PUT("/sliders/:slider_id/reorder", s.routers.ReorderSlider)
			admin.PATCH("/items/:item_id", s.routers.UpdateSliderItem)
			admin.POST("/items/:item_id/toggle", s.routers.ToggleSliderItem)
			admin.DELETE("/items/:item_id", s.routers.DeleteSliderItem)

			admin.PUT("/content", s.routers.UpsertContent)
			admin.PUT("/config", s.routers.UpsertConfig)
			admin.POST("/cache/invalidate", s.routers.InvalidateCache)
			admin.POST("/media/upload", s.routers.UploadMedia)
		}
	}
}
