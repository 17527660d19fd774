package main

import (
	"os"

	skiff_http "github.com/jacksonzamorano/skiff/skiff-http"
)

func main() {
	log := skiff_http.NewZerologSink(os.Stdout)
	server := skiff_http.NewHttpServer(skiff_http.DefaultPort, skiff_http.DefaultRoutes(), log)
	if err := server.Initialize(); err != nil {
		os.Exit(1)
	}
	server.Run()
}
