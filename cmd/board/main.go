package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"technician-board/internal/board"
	"technician-board/internal/client"
	"technician-board/internal/config"
	"technician-board/internal/logger"
	"technician-board/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "board:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.Setup(cfg.LogLevel, logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.APIURL, cfg.RequestTimeout)
	if err := api.Health(ctx); err != nil {
		logrus.WithError(err).Warn("Board API not reachable at startup, starting offline")
	}

	lock := board.NewLockController(api, cfg.PinErrorDuration)
	var online atomic.Bool
	syncer := board.NewSyncer(api, lock, cfg.RefreshInterval, board.WithOnChange(func(s board.State) {
		if s.Loading || online.Swap(s.Online) == s.Online {
			return
		}
		logrus.WithFields(logrus.Fields{
			"online":     s.Online,
			"last_error": s.LastError,
		}).Info("Board connectivity changed")
	}))

	go func() {
		if err := syncer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logrus.WithError(err).Error("Board sync stopped")
		}
	}()

	logrus.WithField("api_url", cfg.APIURL).Info("Starting board")
	p := tea.NewProgram(tui.New(ctx, syncer), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
