package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/bootstrap"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/connection"
)

// BuildApp opens the store, provisions schema and the default admin, and
// wires every module onto the router.
func BuildApp(router *gin.Engine, auditLogger bootstrap.AuditLogger) error {
	db, err := connection.OpenSQLite(os.Getenv("DB_PATH"))
	if err != nil {
		return err
	}
	zap.L().Info("database opened", zap.String("path", os.Getenv("DB_PATH")))

	hasher := auth.NewHasher(os.Getenv("HASH_SCHEME"))

	if err := bootstrap.Provision(context.Background(), db, hasher, auditLogger); err != nil {
		return err
	}
	zap.L().Info("schema provisioned")

	return registerModules(router, db, hasher)
}
