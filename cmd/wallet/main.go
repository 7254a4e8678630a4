package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeweler/sui-pocket/internal/balance"
	"github.com/zeweler/sui-pocket/internal/config"
	"github.com/zeweler/sui-pocket/internal/controller"
	"github.com/zeweler/sui-pocket/internal/crypto"
	"github.com/zeweler/sui-pocket/internal/i18n"
	"github.com/zeweler/sui-pocket/internal/keystore"
	"github.com/zeweler/sui-pocket/internal/logger"
	"github.com/zeweler/sui-pocket/internal/session"
	"github.com/zeweler/sui-pocket/internal/suiclient"
	"github.com/zeweler/sui-pocket/internal/tui"
	"github.com/zeweler/sui-pocket/internal/vault"
	"github.com/zeweler/sui-pocket/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetWalletConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file in the data dir.
	log := logger.NewWalletLogger(cfg.DataDir)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	network := models.ParseNetwork(cfg.NetworkName)
	translator := i18n.NewManager(i18n.ParseLanguage(cfg.Language))

	v := vault.NewVault(cfg.DataDir, crypto.NewSecretCipher(), log)
	keys := keystore.NewStore(log)
	sess := session.NewSession(v, keys, cfg.SessionTimeout, log)

	client := suiclient.NewClient(suiclient.Config{Timeout: cfg.RequestTimeout}, log)
	refresher := balance.NewRefresher(client, log)

	ctrl := controller.New(network, v, keys, sess, refresher, translator, log)

	if cfg.AutoRefreshInterval > 0 {
		job := balance.NewJob(refresher, ctrl.RefreshTarget)
		job.Start(ctx, cfg.AutoRefreshInterval)
		defer job.Stop()
	}

	log.Info().
		Str("network", network.Name()).
		Str("data_dir", cfg.DataDir).
		Msg("wallet starting")

	if err := tui.Run(ctx, ctrl, translator); err != nil {
		log.Fatal().Err(err).Msg("ui run error")
	}

	log.Info().Msg("wallet stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
