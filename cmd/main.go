package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/config"
	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/events"
	"github.com/savoria/savoria/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	config.Init()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := database.ConnectAndMigrate(); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	if err := events.Init(config.NATSURL()); err != nil {
		logrus.WithError(err).Error("event publishing disabled")
	}

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(config.ServerPort()); err != nil && err != http.ErrServerClosed {
			logrus.Panicf("server stopped, error: %v", err)
		}
	}()
	logrus.Printf("listening on %s", config.ServerPort())

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed!")
	}
	events.Close()
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}
	logrus.Info("system is shut ..zzz")
}
