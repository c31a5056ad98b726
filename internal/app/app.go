package app

import (
	"github.com/rs/zerolog"

	"saltsizer/internal/config"
)

type App struct {
	Cfg *config.Config
	Log zerolog.Logger
}

func New(cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Cfg: cfg,
		Log: log,
	}
}
