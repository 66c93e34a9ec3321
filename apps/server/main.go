package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"blackjack-lite/apps/server/internal/gateway"
	"blackjack-lite/apps/server/internal/scores"
)

func main() {
	scoresService, scoresMode, err := scores.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[Server] Failed to init scores service: %v", err)
	}
	defer scoresService.Close()

	gw := gateway.New(scoresService)
	scoresHTTP := scores.NewHTTPHandler(scoresService)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	scoresHTTP.RegisterRoutes(mux)

	addr := listenAddrFromEnv()
	log.Printf("[Server] Scores mode: %s", scoresMode)
	log.Printf("[Server] Starting WebSocket server on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("[Server] Failed to start: %v", err)
	}
}

func listenAddrFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		return v
	}
	return ":8080"
}
