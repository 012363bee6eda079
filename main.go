package main

import (
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/cmd"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/configs"
	"github.com/tikaramgahane2k4/Organic-Ecommerce/app/routes"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		logrus.Fatalf("DB connection failed: %v", err)
	}
	logrus.Info("database connected")

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		logrus.Fatalf("session keys not usable: %v", err)
	}

	router := routes.NewRouter(db, env, keys)

	server := &http.Server{
		Addr:         env.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logrus.Infof("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
