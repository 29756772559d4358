package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning-service/internal/config"
	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/lock"
	"learning-service/internal/repository"
	"learning-service/internal/selection"
	"learning-service/internal/service"
	"learning-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI)
	db.InitRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	// Consul service registry
	var registry *discovery.ServiceRegistry
	if cfg.Consul.Address != "" {
		var err error
		registry, err = discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Failed to create Consul client: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Printf("Warning: Consul registration failed: %v", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Learning Service is healthy")
	})

	database := db.Client.Database(cfg.MongoDB.Database)

	// Repositories
	questionRepo := repository.NewQuestionRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	moduleRepo := repository.NewModuleRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	streakRepo := repository.NewStreakRepository(database)

	// Shared infrastructure
	txRunner := db.NewTxRunner(db.Client)
	locker := lock.NewRedisLocker(db.RedisClient)
	pools := selection.NewPoolLoader(questionRepo, categoryRepo, answerRepo)
	sampler := selection.NewLevelSampler(nil)

	// Services
	progressService := service.NewProgressService(progressRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo, categoryRepo, answerRepo, progressService, txRunner, locker)
	streakService := service.NewStreakService(streakRepo, locker, db.RedisClient)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, moduleRepo)
	answerService := service.NewAnswerService(answerRepo, questionRepo)
	moduleService := service.NewModuleService(moduleRepo, categoryRepo, progressService)

	// Handlers
	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(quizService, streakService, pools, sampler)
	placementHandler := handlers.NewPlacementHandler(pools, sampler)
	streakHandler := handlers.NewStreakHandler(streakService)
	progressHandler := handlers.NewProgressHandler(progressService)
	moduleHandler := handlers.NewModuleHandler(moduleService)
	answerHandler := handlers.NewAnswerHandler(answerService)

	setupRoutes(r, publisher, questionHandler, quizHandler, placementHandler, streakHandler, progressHandler, moduleHandler, answerHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	log.Println("Shutting down...")
	if registry != nil {
		registry.Deregister()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

func setupRoutes(
	r *gin.Engine,
	publisher *event.EventPublisher,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
	placementHandler *handlers.PlacementHandler,
	streakHandler *handlers.StreakHandler,
	progressHandler *handlers.ProgressHandler,
	moduleHandler *handlers.ModuleHandler,
	answerHandler *handlers.AnswerHandler,
) {
	// Public routes - no identity required
	public := r.Group("/public/learning")
	{
		public.GET("/question", questionHandler.ListQuestions)
		public.GET("/question/:id", questionHandler.GetQuestion)
		public.GET("/question/category/:categoryId", questionHandler.GetQuestionsByCategory)
		public.GET("/placement", placementHandler.GetPlacementQuestions)
		public.GET("/module", moduleHandler.ListModules)
		public.GET("/module/:id", moduleHandler.GetModule)
	}

	// Protected routes - gateway injects the authenticated user id
	protected := r.Group("/protected/learning")
	protected.Use(requireUser())
	{
		protected.POST("/quiz/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.submitted", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/quiz/by-level", func(c *gin.Context) {
			quizHandler.QuestionsByLevel(c)
			if publisher != nil {
				publisher.Publish("quiz.pool.sampled", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/placement/sample", func(c *gin.Context) {
			placementHandler.SamplePlacement(c)
			if publisher != nil {
				publisher.Publish("placement.sampled", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/streak", streakHandler.GetStreak)
		protected.POST("/streak/update", func(c *gin.Context) {
			streakHandler.UpdateStreak(c)
			if publisher != nil {
				publisher.Publish("streak.updated", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/progress", progressHandler.GetUserProgress)
		protected.GET("/answers", answerHandler.ListUserAnswers)
		protected.GET("/answers/stats", answerHandler.GetUserStats)

		// Content management
		protected.POST("/question", questionHandler.CreateQuestion)
		protected.PUT("/question/:id", questionHandler.UpdateQuestion)
		protected.DELETE("/question/:id", questionHandler.DeleteQuestion)
	}
}

func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
