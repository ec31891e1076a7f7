package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"portalchess/internal/config"
	"portalchess/internal/server/game"
	httpserver "portalchess/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 没有图形界面时打不开也无所谓
}

func main() {
	addr := flag.String("addr", getenv("PORTALCHESS_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("PORTALCHESS_WEB", "./web"), "directory with index.html / js / svg")
	cfgPath := flag.String("config", getenv("PORTALCHESS_CONFIG", ""), "game definition (yaml or json); empty = standard chess")
	browser := flag.Bool("open", getenb("PORTALCHESS_OPEN", true), "open the default browser")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("game config: %dx%d, %d configured pieces, %d portals", cfg.BoardSize, cfg.BoardSize, cfg.PieceCount(), len(cfg.Portals))

	srv := httpserver.NewServer(httpserver.NewHandler(game.NewManager(), cfg), *webDir)
	log.Printf("listening on %s, serving static from %s", *addr, *webDir)

	if *browser {
		// 等 100ms 再开浏览器，否则服务可能还没起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
