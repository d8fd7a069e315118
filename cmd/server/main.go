package main

import (
	"log"

	"github.com/alligatorO15/fin-dashboard/internal/api"
	"github.com/alligatorO15/fin-dashboard/internal/cache"
	"github.com/alligatorO15/fin-dashboard/internal/config"
	"github.com/alligatorO15/fin-dashboard/internal/database"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Ошибка выполнения миграций: %v", err)
	}

	// redis опционален: без него снимки считаются на каждый запрос
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("Redis недоступен, кэш аналитики выключен: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("Кэш аналитики: redis")
		}
	}
	snapshots := cache.NewSnapshotCache(redisClient, cfg.AnalyticsCacheTTL)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, snapshots, cfg)
	server := api.NewServer(cfg, services)

	log.Printf("Запуск сервера FinDashboard на порту %s (таймзона %s)", cfg.Port, cfg.Location)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
