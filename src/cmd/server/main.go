package main

import (
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-alpha/src/server"
	"github.com/jiaming2012/options-alpha/src/utils"
)

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Warnf("continuing without .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := server.Setup()

	log.Infof("listening on :%s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
