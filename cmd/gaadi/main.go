package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/mygaadi/mygaadi/internal/buildinfo"
	"github.com/mygaadi/mygaadi/internal/client/alerts"
	"github.com/mygaadi/mygaadi/internal/client/assist"
	"github.com/mygaadi/mygaadi/internal/client/cli"
	"github.com/mygaadi/mygaadi/internal/client/config"
	"github.com/mygaadi/mygaadi/internal/client/files"
	"github.com/mygaadi/mygaadi/internal/client/session"
	"github.com/mygaadi/mygaadi/internal/client/storage"
	"github.com/mygaadi/mygaadi/internal/filex"
	"github.com/mygaadi/mygaadi/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.NewDefault()

	var adapter storage.Adapter
	var setStore alerts.SetStore

	switch cfg.Adapter {
	case config.AdapterRemote:
		m, err := storage.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("error connecting to document store: %v", err)
		}
		adapter = m
		// remote mode keeps no local db, so notified alerts live for the
		// session only
		setStore = alerts.NewMemorySetStore()
	default:
		dbPath := cfg.LocalDBPath
		if !filepath.IsAbs(dbPath) {
			dir, err := filex.EnsureDataDir("data")
			if err != nil {
				log.Fatalf("error preparing data directory: %v", err)
			}
			dbPath = filepath.Join(dir, dbPath)
		}
		s, err := storage.OpenSQLite(ctx, dbPath)
		if err != nil {
			log.Fatalf("error initializing database: %v", err)
		}
		adapter = s
		setStore = alerts.NewSQLiteSetStore(s.DB())
	}
	defer adapter.Close()

	sink := cli.PrintSink{Out: os.Stdout}
	sm := session.NewManager(cfg, adapter, setStore, sink, logger)

	ac := assist.NewClient(cfg.AssistEndpoint, cfg.AssistTimeout)
	fs := files.NewS3Storage(files.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})

	app := cli.NewApp(cfg, sm, ac, fs, logger)
	app.Run(ctx)
}
