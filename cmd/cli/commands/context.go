package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/clients/sheetsclient"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	OauthCfg     *config.OAuthClientConfig
	SheetsClient *sheetsclient.Client
	Database     db.Database
	Logger       *zap.Logger
	Ctx          context.Context
	Env          string
}
