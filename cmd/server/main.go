package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	keywordclassify "petverse/internal/adapter/classify/keyword"
	"petverse/internal/adapter/generation/llm"
	staticgen "petverse/internal/adapter/generation/static"
	httpadapter "petverse/internal/adapter/http"
	metricsinmem "petverse/internal/adapter/metrics/inmemory"
	filerepo "petverse/internal/adapter/repo/file"
	gormrepo "petverse/internal/adapter/repo/gorm"
	"petverse/internal/adapter/repo/memory"
	sqliterepo "petverse/internal/adapter/repo/sqlite"
	"petverse/internal/app/chat"
	"petverse/internal/app/companion"
	"petverse/internal/app/narrative"
	"petverse/internal/app/ports"
	"petverse/internal/app/session"
	"petverse/internal/app/status"
	"petverse/internal/app/tasks"
	"petverse/internal/app/tick"
	"petverse/internal/config"
	"petverse/internal/domain/game"
	"petverse/internal/domain/rng"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

func main() {
	cfg := config.FromEnv()
	hlog.SetLevel(logLevel(cfg.LogLevel))

	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	if cfg.MaxCompanions > 0 {
		tuning.MaxCompanions = cfg.MaxCompanions
	}

	backend, err := buildStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("build store: %v", err)
	}
	defer backend.close()

	kpiRecorder := metricsinmem.NewRecorder()
	engine := game.NewEngine(tuning, rng.NewSeeded(seed(cfg.Seed)), uuid.NewString)
	sess := session.Store{TxManager: backend.tx, Snapshots: backend.snapshots, Metrics: kpiRecorder}
	narrator := narrative.Enricher{Generator: buildGenerator(cfg), Timeout: cfg.LLMTimeout, Metrics: kpiRecorder}

	tickUC := tick.UseCase{Session: sess, Engine: engine, Narrator: narrator, Metrics: kpiRecorder, Now: time.Now}
	h := httpadapter.Handler{
		CompanionUC: companion.UseCase{Session: sess, Engine: engine, Classifier: keywordclassify.Classifier{}, Now: time.Now},
		ChatUC:      chat.UseCase{Session: sess, Engine: engine, Narrator: narrator, Now: time.Now},
		TasksUC:     tasks.UseCase{Session: sess, Engine: engine, Metrics: kpiRecorder, Now: time.Now},
		TickUC:      tickUC,
		StatusUC:    status.UseCase{Session: sess, Engine: engine, Now: time.Now},
		KPI:         kpiRecorder,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tick.Loop{UseCase: tickUC, Owners: backend.owners, Interval: cfg.TickInterval}.Run(ctx)

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("petverse server listening on %s (store=%s, tick=%s)", cfg.Addr, cfg.Store, cfg.TickInterval)
	s.Spin()
}

type storeBackend struct {
	tx        ports.TxManager
	snapshots ports.SnapshotStore
	owners    tick.OwnerLister
	close     func()
}

func buildStore(ctx context.Context, cfg config.Server) (storeBackend, error) {
	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		repo := memory.NewSnapshotRepo(store)
		return storeBackend{tx: memory.NewTxManager(store), snapshots: repo, owners: repo, close: func() {}}, nil
	case config.StoreFile:
		store, err := filerepo.NewStore(cfg.SnapshotDir)
		if err != nil {
			return storeBackend{}, err
		}
		return storeBackend{tx: store, snapshots: store, owners: store, close: func() {}}, nil
	case config.StoreSQLite:
		db, err := sqliterepo.Open(cfg.SQLitePath)
		if err != nil {
			return storeBackend{}, err
		}
		repo := sqliterepo.NewSnapshotRepo(db)
		return storeBackend{tx: sqliterepo.NewTxManager(db), snapshots: repo, owners: repo, close: closeDB(db)}, nil
	case config.StorePostgres:
		if cfg.DBDSN == "" {
			return storeBackend{}, fmt.Errorf("PETVERSE_DB_DSN is required for the postgres store")
		}
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return storeBackend{}, err
		}
		if err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			return storeBackend{}, fmt.Errorf("%w (is PETVERSE_MIGRATIONS_DIR set?)", err)
		}
		repo := gormrepo.NewSnapshotRepo(db)
		sqlDB, err := db.DB()
		if err != nil {
			return storeBackend{}, err
		}
		return storeBackend{tx: gormrepo.NewTxManager(db), snapshots: repo, owners: repo, close: closeDB(sqlDB)}, nil
	default:
		return storeBackend{}, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}
}

func buildGenerator(cfg config.Server) ports.Generator {
	if cfg.LLMURL == "" {
		return staticgen.Generator{}
	}
	g, err := llm.NewGenerator(llm.Config{BaseURL: cfg.LLMURL, Model: cfg.LLMModel, Timeout: cfg.LLMTimeout})
	if err != nil {
		log.Printf("llm generator unavailable, using static text: %v", err)
		return staticgen.Generator{}
	}
	return g
}

func seed(configured int64) int64 {
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}

func logLevel(name string) hlog.Level {
	switch name {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
