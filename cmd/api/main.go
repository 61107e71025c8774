package main

import (
	"log"

	"jasarumah-backend/internal/config"
	"jasarumah-backend/internal/routes"
	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Env + Config
	cfg := config.Load()

	// 2. Connect DB (migrasi + seed admin awal)
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("Gagal koneksi database: ", err)
	}

	// 3. Init Firebase (opsional, push dilewati kalau credential kosong)
	utils.InitFCM()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 4. Init Router + Routes (middleware global dipasang di dalam SetupRoutes)
	r := gin.Default()
	routes.SetupRoutes(r, db)

	// 5. Run Server
	log.Println("Server berjalan di port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Gagal menjalankan server: ", err)
	}
}
