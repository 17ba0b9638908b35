package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers ping, liveness and readiness endpoints.
// Readiness runs every registered dependency check.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, healthService *HealthService) {
	e.GET("/ping", NewPingHandler(serviceName))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName

		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	})
}
