// Main entry point for the Fotogrid desktop application.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"fotogrid/internal/backend"
	"fotogrid/internal/tagcache"
	"fotogrid/internal/ui"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Optional .env for OLLAMA_HOST / FOTOGRID_MODEL; absence is fine.
	_ = godotenv.Load()

	cache, err := tagcache.Open("", func(msg string) { klog.Info(msg) })
	if err != nil {
		klog.Fatalf("annotation cache: %v", err)
	}
	defer cache.Close()

	tagger, err := backend.NewOllamaTagger(os.Getenv("FOTOGRID_MODEL"))
	if err != nil {
		klog.Fatalf("ollama: %v", err)
	}
	if err := tagger.Check(context.Background()); err != nil {
		// Browsing works without the model; only tag generation needs it.
		klog.Warningf("%v", err)
	}

	ui.CreateApplication(backend.NewService(cache, tagger))
}
