// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/snakevm/chain"
	"github.com/ava-labs/snakevm/cmd/snakevm/version"
	"github.com/ava-labs/snakevm/vm"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	cobra.EnablePrefixMatching = true
}

var rootCmd = &cobra.Command{
	Use:        "snakevm",
	Short:      "SnakeVM agent",
	SuggestFor: []string{"snakevm"},
	RunE:       runFunc,
}

func init() {
	rootCmd.PersistentFlags().String("http-addr", ":9090", "address the JSON-RPC server listens on")
	rootCmd.PersistentFlags().String("genesis-file", "", "path to a genesis JSON (defaults when empty)")
	rootCmd.PersistentFlags().Int("activity-cache-size", 128, "recent activity entries to keep in memory")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("snakevm")
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		version.NewCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "snakevm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func loadGenesis(path string) (*chain.Genesis, error) {
	g := chain.DefaultGenesis()
	if len(path) == 0 {
		return g, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, nil
}

func runFunc(cmd *cobra.Command, args []string) error {
	genesis, err := loadGenesis(viper.GetString("genesis-file"))
	if err != nil {
		return err
	}

	var config vm.Config
	config.SetDefaults()
	config.ActivityCacheSize = viper.GetInt("activity-cache-size")

	engine, err := vm.New(genesis, memdb.New(), config)
	if err != nil {
		return err
	}
	handlers, err := engine.CreateHandlers()
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.Handle(path, handler)
	}

	httpAddr := viper.GetString("http-addr")
	srv := &http.Server{
		Addr:    httpAddr,
		Handler: mux,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		log.Info("serving", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return g.Wait()
}
