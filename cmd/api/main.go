package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "cv-matcher/docs" // Swagger docs
	"cv-matcher/internal/api"
	"cv-matcher/internal/config"
	"cv-matcher/internal/cv"
	"cv-matcher/internal/llm"
	"cv-matcher/internal/logger"
	"cv-matcher/internal/matcher"
	"cv-matcher/internal/search"
	"cv-matcher/internal/store"
)

// @title CV Matcher API
// @version 1.0
// @description Matches candidate CVs against free-text job descriptions

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	cfg := config.Load()

	log, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("LOG_DEBUG") == "true")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	st := store.Open(cfg.DatabaseURL, log)
	defer st.Close()

	parser := cv.NewParser(cfg.UploadsDir)
	extractor := llm.NewFromConfig(cfg, log)
	ranker := search.NewRanker(log)

	m := matcher.New(parser, extractor, st, ranker, log)
	router := api.NewRouter(api.NewAPI(m, parser, log))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 2 * time.Minute,  // LLM extraction can be slow
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	log.Info("API server listening", zap.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed", zap.Error(err))
	}

	<-idleConnsClosed
}
