package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/spherelab/constellation/internal/server"
	"github.com/spherelab/constellation/pkg/cache"
	"github.com/spherelab/constellation/pkg/pipeline"
	"github.com/spherelab/constellation/pkg/store"
)

const defaultServeAddr = ":8080"

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		redisURL   string
		mongoURI   string
		mongoDB    string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run the layout HTTP API.

Without flags the server computes layouts with a local file cache and keeps
stored layouts in memory. Point --redis-url at a Redis instance to share the
layout cache between replicas, and --mongo-uri at MongoDB to persist stored
layouts across restarts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = fileCfg.Server.Addr
			}
			if addr == "" {
				addr = defaultServeAddr
			}
			if redisURL == "" {
				redisURL = fileCfg.Server.RedisURL
			}
			if mongoURI == "" {
				mongoURI = fileCfg.Server.MongoURI
			}
			if mongoDB == "" {
				mongoDB = fileCfg.Server.MongoDB
			}
			if mongoDB == "" {
				mongoDB = appName
			}
			collection := fileCfg.Server.Collection
			if collection == "" {
				collection = "layouts"
			}

			return c.runServe(cmd.Context(), addr, redisURL, mongoURI, mongoDB, collection, noCache || fileCfg.Cache.Disabled)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./constellation.toml)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the shared layout cache")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for persistent layout storage")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")

	return cmd
}

// runServe builds the cache and store backends, then serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisURL, mongoURI, mongoDB, collection string, noCache bool) error {
	layoutCache, err := c.newServeCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}

	st, err := c.newServeStore(ctx, mongoURI, mongoDB, collection)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(closeCtx)
	}()

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(runner, st, c.Logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		c.Logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (c *CLI) newServeCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if redisURL != "" {
		rc, err := cache.NewRedisCacheFromURL(ctx, redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("using redis layout cache")
		return rc, nil
	}
	return newCache(noCache)
}

func (c *CLI) newServeStore(ctx context.Context, mongoURI, mongoDB, collection string) (store.Store, error) {
	if mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, mongoURI, mongoDB, collection)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		c.Logger.Info("using mongodb layout store", "db", mongoDB, "collection", collection)
		return ms, nil
	}
	c.Logger.Warn("no --mongo-uri given; stored layouts are kept in memory")
	return store.NewMemoryStore(), nil
}
