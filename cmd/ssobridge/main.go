package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/isle-stat/ssobridge/modules/welcome"
	"github.com/isle-stat/ssobridge/pkg/config"
	"github.com/isle-stat/ssobridge/pkg/httpserver"
	"github.com/isle-stat/ssobridge/pkg/logger"
	"github.com/isle-stat/ssobridge/pkg/requestid"
)

type appConfig struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`
}

func main() {
	var (
		appCfg     appConfig
		welcomeCfg welcome.Config
		serverCfg  httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&welcomeCfg)
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithLevel(appCfg.LogLevel),
		logger.WithFormat(appCfg.LogFormat),
		logger.WithAttr(slog.String("service", "ssobridge")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	if welcomeCfg.Diagnostic {
		log.Warn("diagnostic mode enabled; decoded identity values will be rendered on /diagnostic")
	}

	svc := welcome.NewService(welcomeCfg, nil, log)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Mount("/", svc.Handle())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
