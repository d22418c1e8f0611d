package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/simplejobbot/jobbot/internal/config"
	"github.com/simplejobbot/jobbot/internal/diagnostics"
	"github.com/simplejobbot/jobbot/internal/generator"
	"github.com/simplejobbot/jobbot/internal/handlers"
	"github.com/simplejobbot/jobbot/internal/llm"
)

var log = logrus.New()

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.OutputRoot, 0755); err != nil {
		log.Fatalf("create output root %s: %v", cfg.OutputRoot, err)
	}

	client := llm.NewOllamaClient(cfg.OllamaHost, cfg.Model, cfg.RequestTimeout, cfg.ConnectTimeout)

	deps := &handlers.Deps{
		Cfg:  cfg,
		Gen:  generator.New(client, cfg.OutputRoot, cfg.HostOutputRoot),
		Diag: diagnostics.New(),
	}

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	handlers.SetupRoutes(r, deps)

	log.Printf("jobbot listening on %s, model %s at %s", cfg.HTTPAddr, cfg.Model, cfg.OllamaHost)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
