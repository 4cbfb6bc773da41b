package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/fridgebook/internal/app/server"
	grpcserver "github.com/atinyakov/fridgebook/internal/app/server/grpc"
	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/config"
	"github.com/atinyakov/fridgebook/internal/firestore"
	"github.com/atinyakov/fridgebook/internal/logger"
	"github.com/atinyakov/fridgebook/internal/mealdb"
	"github.com/atinyakov/fridgebook/internal/repository"
	"github.com/atinyakov/fridgebook/internal/storage"
	"github.com/atinyakov/fridgebook/internal/worker"
)

var buildVersion string
var buildDate string
var buildCommit string

const shutdownTimeout = 10 * time.Second

func main() {
	options, err := config.Parse()
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, options, log.Log); err != nil {
		log.Log.Error("server stopped with error", zap.Error(err))
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// run wires the application and blocks until ctx is cancelled or a server
// fails.
func run(ctx context.Context, options *config.Options, zapLogger *zap.Logger) error {
	store, closeStore, err := openStore(ctx, options, zapLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			zapLogger.Warn("closing storage", zap.Error(err))
		}
	}()

	secret := options.JWTSecret
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return err
		}
		zapLogger.Warn("no JWT secret configured, sessions will not survive a restart")
	}

	var verifier service.TokenVerifier
	if options.FirebaseProject != "" {
		fv, err := service.NewFirebaseVerifier(ctx, options.FirebaseProject)
		if err != nil {
			return err
		}
		verifier = fv
		zapLogger.Info("firebase sign-in enabled", zap.String("project", options.FirebaseProject))
	}

	deleter := worker.NewDeleteRecordWorker(zapLogger.Named("deleter"), store)
	workerDone := make(chan struct{})
	workerCtx, stopWorker := context.WithCancel(context.Background())
	go func() {
		defer close(workerDone)
		deleter.FlushRecords(workerCtx)
	}()
	defer func() {
		stopWorker()
		<-workerDone
	}()

	meals := mealdb.New(options.MealDBURL, zapLogger.Named("mealdb"))
	recipes := service.NewRecipeService(store, meals, zapLogger)
	deps := server.Deps{
		Auth:          service.NewAuth(secret, store),
		Verifier:      verifier,
		Bookmarks:     service.NewBookmarkService(store, recipes, zapLogger, options.FanOut),
		Recipes:       recipes,
		Fridges:       service.NewFridgeService(store, zapLogger, deleter.GetInChannel(), options.FanOut),
		Profiles:      service.NewProfileService(store, zapLogger),
		System:        service.NewSystemService(store),
		TrustedSubnet: options.TrustedSubnet,
	}

	g, gctx := errgroup.WithContext(ctx)

	srv := newHTTPServer(options, server.Init(zapLogger, options.EnablePprof, deps))
	g.Go(func() error {
		zapLogger.Info("Server is running",
			zap.String("addr", srv.Addr), zap.Bool("tls", options.EnableHTTPS))

		var err error
		if options.EnableHTTPS {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if options.GRPCAddress != "" {
		gs := grpcserver.New(options.GRPCAddress, options.TrustedSubnet, zapLogger.Named("grpc"), grpcserver.Services{
			Auth:      deps.Auth,
			Verifier:  verifier,
			Bookmarks: deps.Bookmarks,
			Recipes:   recipes,
			System:    deps.System,
		})
		g.Go(gs.Start)
		g.Go(func() error {
			<-gctx.Done()
			gs.GracefulStop()
			return nil
		})
	}

	err = g.Wait()
	zapLogger.Info("shutting down")
	return err
}

// openStore picks the backend: Firestore, then PostgreSQL, then the journal
// file, then memory.
func openStore(ctx context.Context, options *config.Options, zapLogger *zap.Logger) (service.Storage, func() error, error) {
	switch {
	case options.FirestoreProject != "":
		zapLogger.Info("using firestore", zap.String("project", options.FirestoreProject))
		s, err := firestore.New(ctx, options.FirestoreProject, zapLogger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case options.DatabaseDSN != "":
		zapLogger.Info("using db")
		db, err := repository.InitDB(ctx, options.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		zapLogger.Info("Database connected and table ready.")
		return repository.CreateDocumentRepository(db, zapLogger), db.Close, nil

	case options.FilePath != "":
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))
		s, err := storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	default:
		zapLogger.Info("using in memory storage")
		return storage.CreateMemoryStorage(), func() error { return nil }, nil
	}
}

func newHTTPServer(options *config.Options, h http.Handler) *http.Server {
	if !options.EnableHTTPS {
		return &http.Server{
			Addr:              options.ServerAddress,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	manager := &autocert.Manager{
		Cache:      autocert.DirCache("cache-dir"),
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(options.TLSHosts...),
	}
	return &http.Server{
		Addr:              ":443",
		Handler:           h,
		TLSConfig:         manager.TLSConfig(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating JWT secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
