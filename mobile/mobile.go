package mobile

import (
	"log"
	"net/http"

	"portalchess/internal/config"
	"portalchess/internal/server/game"
	httpserver "portalchess/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// configPath: game definition file; empty means standard chess
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, configPath string, port string) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		log.Printf("Failed to load config, using standard chess: %v", err)
		cfg = config.Default()
	}
	srv := httpserver.NewServer(httpserver.NewHandler(game.NewManager(), cfg), webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
