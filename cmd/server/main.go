package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/VitaminP8/yatube/internal/cache"
	"github.com/VitaminP8/yatube/internal/comment"
	"github.com/VitaminP8/yatube/internal/config"
	"github.com/VitaminP8/yatube/internal/follow"
	"github.com/VitaminP8/yatube/internal/group"
	"github.com/VitaminP8/yatube/internal/handlers"
	"github.com/VitaminP8/yatube/internal/metrics"
	"github.com/VitaminP8/yatube/internal/post"
	"github.com/VitaminP8/yatube/internal/storage/files"
	"github.com/VitaminP8/yatube/internal/storage/memory"
	"github.com/VitaminP8/yatube/internal/storage/postgres"
	"github.com/VitaminP8/yatube/internal/user"
)

func main() {
	storageType := flag.String("storage", "memory", "Тип хранилища: memory или postgres")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	var postStore post.PostStorage
	var groupStore group.GroupStorage
	var commentStore comment.CommentStorage
	var userStore user.UserStorage
	var followStore follow.FollowStorage

	switch *storageType {
	case "postgres":
		if err := postgres.InitDB(); err != nil {
			logger.WithError(err).Fatal("не удалось подключиться к базе данных")
		}
		if err := postgres.MigrateSchema(); err != nil {
			logger.WithError(err).Fatal("не удалось выполнить миграцию схемы")
		}

		logger.Info("Используется PostgreSQL хранилище")
		postStore = postgres.NewPostPostgresStorage()
		groupStore = postgres.NewGroupPostgresStorage()
		commentStore = postgres.NewCommentPostgresStorage()
		userStore = postgres.NewUserPostgresStorage()
		followStore = postgres.NewFollowPostgresStorage()

	case "memory":
		logger.Info("Используется in-memory хранилище")
		memoryPosts := memory.NewPostMemoryStorage()
		postStore = memoryPosts
		groupStore = memory.NewGroupMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage(memoryPosts)
		userStore = memory.NewUserMemoryStorage()
		followStore = memory.NewFollowMemoryStorage()

	default:
		logger.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	mediaRoot := config.GetEnvDefault("MEDIA_ROOT", "media")

	h, err := handlers.New(handlers.Deps{
		Posts:    postStore,
		Groups:   groupStore,
		Comments: commentStore,
		Users:    userStore,
		Follows:  followStore,
		Images:   files.NewDiskImageStorage(mediaRoot),
		Cache:    cache.New(cache.IndexTTL),
		Metrics:  metrics.InitMetrics(),
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("не удалось инициализировать обработчики")
	}

	router := h.Router()
	// загруженные картинки постов
	router.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot))))

	addr := ":" + config.GetEnvDefault("PORT", "8080")
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// ListenAndServe блокирует поток до server.Shutdown() или фатальной
	// ошибки, поэтому запускаем в goroutine
	go func() {
		logger.Infof("Сервер запущен на http://localhost%s/", addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Ошибка сервера")
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Завершение...")

	if *storageType == "postgres" {
		if err := postgres.CloseDB(); err != nil {
			logger.WithError(err).Error("Ошибка при закрытии базы данных")
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		logger.WithError(err).Fatal("Ошибка при завершении сервера")
	}

	logger.Info("Сервер остановлен корректно")
}
