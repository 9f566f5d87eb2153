package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/adapters/storage/sqlite"
	"vet-clinic-records/internal/domain/usuarios"
	"vet-clinic-records/internal/platform/config"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/router"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx := context.Background()

	var (
		db     *sql.DB
		driver string
		err    error
	)
	if cfg.DBDSN != "" {
		driver = router.DriverPostgres
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("no se pudo conectar a postgres", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		err = pg.EnsureSchema(ctx, db)
	} else {
		driver = router.DriverSQLite
		db, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Error("no se pudo abrir la base sqlite", map[string]any{"error": err.Error(), "path": cfg.DBPath})
			os.Exit(1)
		}
		err = sqlite.EnsureSchema(ctx, db)
	}
	if err != nil {
		log.Error("no se pudo aplicar el esquema", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	// Admin inicial: solo si no existe ningún admin_sistema activo.
	if cfg.AdminPassword != "" {
		repos := router.NewRepos(db, driver)
		usuariosSvc := usuarios.NewService(repos.Usuarios)
		u, err := usuariosSvc.BootstrapAdmin(ctx, cfg.AdminUser, cfg.AdminPassword)
		if err != nil {
			log.Error("no se pudo crear el admin inicial", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		if u != nil {
			log.Info("admin inicial creado", map[string]any{"nombreUsuario": u.NombreUsuario})
		}
	} else {
		log.Warn("ADMIN_PASSWORD no viene seteado, se omite el admin inicial", nil)
	}

	r := router.NewRouter(router.Options{
		DB:     db,
		Driver: driver,
		Log:    log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("servidor iniciado", map[string]any{"addr": srv.Addr, "driver": driver})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("error del servidor", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
