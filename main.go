package main

import (
	"net/http"
	"os"

	"github.com/Rakhulsr/go-admin-catalog/app/cmd"
	"github.com/Rakhulsr/go-admin-catalog/app/configs"
	"github.com/Rakhulsr/go-admin-catalog/app/routes"
	"github.com/sirupsen/logrus"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(env.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := configs.OpenConnection()
	if err != nil {
		logger.Fatalf("DB connection failed: %v", err)
	}
	logger.Info("✅ Database connected.")

	router := routes.NewRouter(db, logger)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	logger.Infof("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
