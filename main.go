package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pgiorgini/deliveroo-explorer/pkg/ai"
	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/deliveroo"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
)

func main() {
	// for development purposes
	// we don't care about errors here
	_ = godotenv.Load(".env")
	conf := config.NewConfig()

	c := context.Background()
	ctx, cancel := context.WithCancel(c)

	logger := createLogger(conf)
	mon := prometheus.New()

	explorer := deliveroo.NewExplorer(conf, mon, logger)
	assistant := ai.NewAi(ctx, conf, explorer, mon, logger)

	StartServer(NewRouter(&HandlerRepository{
		explorer:  explorer,
		assistant: assistant,
		config:    conf,
		monitor:   mon,
		logger:    logger,
	}), conf.Port, cancel)
}

func createLogger(conf *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	if conf.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
