package middleware

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"rentauth/config"
	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/util"

	"github.com/labstack/echo/v4"
)

// Query parameters that carry account secrets or identities.
var sensitiveQueryParams = map[string]func(string) string{
	"token": util.MaskToken,
	"email": util.MaskEmail,
}

// LoggerMiddleware logs one line per request. Every request is logged in
// debug mode; otherwise only server errors are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Render the error now so the logged status is the one sent.
			// The error handler skips responses that are already committed.
			c.Error(err)
		}

		if m.debug || c.Response().Status >= 500 {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

// redactQuery masks verification and reset tokens and email addresses.
func redactQuery(values url.Values) string {
	for key, vals := range values {
		mask, ok := sensitiveQueryParams[key]
		if !ok {
			continue
		}
		for i := range vals {
			vals[i] = mask(vals[i])
		}
	}

	return values.Encode()
}
