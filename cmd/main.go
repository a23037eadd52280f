package main

import (
	"context"
	"net/http"
	"time"

	"github.com/easylearn/easylearn/config"
	"github.com/easylearn/easylearn/database"
	_ "github.com/easylearn/easylearn/docs" // Swagger docs - auto-generated
	"github.com/easylearn/easylearn/internal/controller"
	adminctrl "github.com/easylearn/easylearn/internal/controller/admin"
	userctrl "github.com/easylearn/easylearn/internal/controller/user"
	"github.com/easylearn/easylearn/internal/logger"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/easylearn/easylearn/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title EasyLearn Student Portal API
// @version 1.0
// @description Course library, resources and timed multiple-choice quizzes for students.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,
			NewBlobStore,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewCourseRepository,
			repository.NewBookRepository,
			repository.NewResourceRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
		),

		// Services layer
		fx.Provide(
			func(userRepo repository.UserRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, cfg.JWTSecret)
			},
			service.NewQuizService,
			func(loader service.QuizService, submissionRepo repository.SubmissionRepository) service.SessionService {
				return service.NewSessionService(loader, submissionRepo)
			},
			service.NewLibraryService,
			service.NewDashboardService,
			service.NewAdminService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewLibraryController,
			adminctrl.NewQuizController,
			adminctrl.NewLibraryController,
			adminctrl.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewBlobStore wires the filesystem blob store that holds book and resource
// uploads.
func NewBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	return storage.NewFSStore(cfg.Storage.Dir, cfg.Storage.PublicBaseURL)
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	blobs storage.BlobStore,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	libraryCtrl *userctrl.LibraryController,
	adminQuizCtrl *adminctrl.QuizController,
	adminLibraryCtrl *adminctrl.LibraryController,
	adminUserCtrl *adminctrl.UserController,
) {
	// Uploaded files are served straight off the blob store directory.
	if fs, ok := blobs.(*storage.FSStore); ok {
		router.Static("/files", fs.Base())
	}

	api := router.Group("/api/v1")
	{
		api.POST("/auth/signup", authCtrl.SignUp)
		api.POST("/auth/signin", authCtrl.SignIn)
	}

	authed := api.Group("")
	authed.Use(controller.AuthRequired(authSvc))
	{
		authed.GET("/auth/me", authCtrl.Me)

		authed.GET("/dashboard", libraryCtrl.GetDashboard)
		authed.GET("/books", libraryCtrl.GetBooks)
		authed.GET("/courses", libraryCtrl.GetCourses)
		authed.GET("/resources", libraryCtrl.GetResources)

		authed.GET("/quizzes", quizCtrl.GetAvailableQuizzes)
		authed.POST("/quizzes/:quiz_id/session", quizCtrl.StartSession)
		authed.GET("/session", quizCtrl.GetSessionState)
		authed.POST("/session/answers", quizCtrl.SelectAnswer)
		authed.POST("/session/navigate", quizCtrl.Navigate)
		authed.POST("/session/submit", quizCtrl.SubmitSession)
		authed.GET("/my-submissions", quizCtrl.GetMySubmissions)
	}

	admin := api.Group("/admin")
	admin.Use(controller.AuthRequired(authSvc), controller.AdminRequired())
	{
		admin.GET("/courses", adminQuizCtrl.ListCourses)
		admin.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		admin.GET("/quizzes", adminQuizCtrl.ListQuizzes)
		admin.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
		admin.POST("/quizzes/:quiz_id/questions", adminQuizCtrl.AddQuestion)
		admin.GET("/quizzes/:quiz_id/questions", adminQuizCtrl.ListQuestions)
		admin.DELETE("/questions/:question_id", adminQuizCtrl.DeleteQuestion)

		admin.POST("/books", adminLibraryCtrl.UploadBook)
		admin.GET("/books", adminLibraryCtrl.ListAllBooks)
		admin.DELETE("/books/:book_id", adminLibraryCtrl.DeleteBook)
		admin.POST("/resources", adminLibraryCtrl.UploadResource)
		admin.DELETE("/resources/:resource_id", adminLibraryCtrl.DeleteResource)

		admin.GET("/users", adminUserCtrl.ListUsers)
		admin.PUT("/users/:user_id/admin", adminUserCtrl.SetAdmin)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EasyLearn API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Program{},
		&model.Course{},
		&model.User{},
		&model.Book{},
		&model.Resource{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizSubmission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
