// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	teacherstore "github.com/dalemusser/classboard/internal/app/store/teacher"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It applies timeout overrides from the environment and, when configured,
// seeds a teacher credential so a fresh database has at least one identity
// able to manage announcements.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("applied timeout overrides from environment", zap.Int("count", n))
	}

	if appCfg.SeedTeacherUsername != "" {
		teachers := teacherstore.New(deps.MongoDatabase)
		if err := teachers.Seed(ctx, appCfg.SeedTeacherUsername, appCfg.SeedTeacherPassword); err != nil {
			logger.Error("seed teacher failed", zap.Error(err),
				zap.String("teacher_username", appCfg.SeedTeacherUsername))
			return err
		}
		logger.Info("seed teacher ensured", zap.String("teacher_username", appCfg.SeedTeacherUsername))
	}

	return nil
}
