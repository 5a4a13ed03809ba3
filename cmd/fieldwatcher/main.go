/**
 * fieldwatcher: a passive host-discovery sensor for SPAN/mirror ports.
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fieldwatcher/fieldwatcher/internal/config"
	"github.com/fieldwatcher/fieldwatcher/internal/logging"
	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/storage"
	"github.com/fieldwatcher/fieldwatcher/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	zlog := logging.New(cfg.Verbose)
	defer zlog.Sync()

	if cfg.Reset {
		return resetInventory(cfg.DBPath)
	}
	if cfg.List {
		return listInventory(cfg.DBPath)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sup, err := supervisor.New(cfg.Interfaces, cfg.DBPath, zlog)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				zlog.Errorf("metrics server: %v", err)
			}
		}()
	}

	zlog.Infof("fieldwatcher starting on interfaces %v, db %s", cfg.Interfaces, cfg.DBPath)
	return sup.Run(ctx)
}

func resetInventory(dbPath string) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Reset(context.Background())
}

func listInventory(dbPath string) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	assets, err := store.GetAllAssets(context.Background())
	if err != nil {
		return err
	}

	for _, a := range assets {
		hostname := a.Hostname
		if hostname == "" {
			hostname = "-"
		}
		vendor := a.Vendor
		if vendor == "" {
			vendor = "-"
		}
		fmt.Printf("%-18s %-15s %-20s %-20s vlan=%-5d %-6s last_seen=%s\n",
			a.MACAddress, a.IPAddress, hostname, vendor, a.VLANID, a.DiscoveryMethod, a.LastSeenAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
