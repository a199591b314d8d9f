package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lexbridge/lexbridge/internal/api"
	"github.com/lexbridge/lexbridge/internal/config"
	"github.com/lexbridge/lexbridge/internal/model"
	"github.com/lexbridge/lexbridge/internal/translate"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}
	fmt.Println("lexbridge v0.1.0")
	fmt.Println("Usage: lexbridge serve")
}

func serve() {
	cfg, err := config.LoadDefault()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	var translator *translate.Translator
	if cfg.Translation.HasAPIKey() {
		llm, ok := model.BuildLLM(cfg.Translation)
		if !ok {
			slog.Error("unknown translation provider", "provider", cfg.Translation.Provider)
			os.Exit(1)
		}
		translator = translate.New(llm, cfg.Translation.Model,
			translate.WithMaxTextLength(cfg.Translation.MaxTextLength))
	} else {
		slog.Warn("no translation API key configured; translation disabled",
			"env", config.APIKeyEnvVars)
	}

	srv := api.NewServer(cfg, translator)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("starting lexbridge server", "addr", addr, "environment", cfg.Server.Environment)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
