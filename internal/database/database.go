package database

import (
	"context"

	"github.com/wpwhiz/signalwire-woo/internal/config"
	"github.com/wpwhiz/signalwire-woo/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}
