// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	announcementsfeature "github.com/dalemusser/classboard/internal/app/features/announcements"
	healthfeature "github.com/dalemusser/classboard/internal/app/features/health"
	"github.com/dalemusser/classboard/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The announcements service is a pure
// JSON API: one feature router for the announcement CRUD surface and a
// health endpoint for load balancers and orchestrators.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Access logging with request IDs.
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Announcement CRUD surface
	annHandler := announcementsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/announcements", announcementsfeature.Routes(annHandler))

	return r, nil
}
