package server

import (
	"github.com/gorilla/mux"

	"github.com/jiaming2012/options-alpha/src/handler"
)

func Setup() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/score", handler.Score).Methods("POST")
	router.HandleFunc("/simulate", handler.Simulate).Methods("POST")

	return router
}
