package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/config"
	"github.com/ndmanh/learnhub/database"
	"github.com/ndmanh/learnhub/internal/controller"
	"github.com/ndmanh/learnhub/internal/logger"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/ndmanh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title LearnHub API
// @version 1.0
// @description Learning-management backend: courses, lessons, quizzes and gated course progress.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewCategoryRepository,
			repository.NewCourseRepository,
			repository.NewModuleRepository,
			repository.NewLessonRepository,
			repository.NewEnrollmentRepository,
			repository.NewReviewRepository,
			repository.NewQuizRepository,
			repository.NewQuizAttemptRepository,
			repository.NewCourseProgressRepository,
		),

		// Services
		fx.Provide(
			service.NewTokenService,
			service.NewUserService,
			service.NewCategoryService,
			service.NewCourseService,
			service.NewModuleService,
			service.NewLessonService,
			service.NewEnrollmentService,
			service.NewReviewService,
			service.NewQuizService,
			service.NewAttemptService,
			service.NewProgressService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewCategoryController,
			controller.NewCourseController,
			controller.NewModuleController,
			controller.NewLessonController,
			controller.NewEnrollmentController,
			controller.NewReviewController,
			controller.NewQuizController,
			controller.NewProgressController,
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

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	categoryCtrl *controller.CategoryController,
	courseCtrl *controller.CourseController,
	moduleCtrl *controller.ModuleController,
	lessonCtrl *controller.LessonController,
	enrollmentCtrl *controller.EnrollmentController,
	reviewCtrl *controller.ReviewController,
	quizCtrl *controller.QuizController,
	progressCtrl *controller.ProgressController,
) {
	api := router.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/categories", categoryCtrl.GetAllCategories)
	api.GET("/categories/:category_id", categoryCtrl.GetCategory)
	api.GET("/courses", courseCtrl.GetCourses)
	api.GET("/courses/:course_id", courseCtrl.GetCourse)
	api.GET("/courses/:course_id/modules", courseCtrl.GetCourseModules)
	api.GET("/courses/:course_id/reviews", reviewCtrl.GetCourseReviews)

	// Authenticated routes
	auth := api.Group("")
	auth.Use(controller.AuthMiddleware(tokens))
	{
		auth.GET("/users/:user_id", userCtrl.GetUser)
		auth.PUT("/users/:user_id", userCtrl.UpdateUser)
		auth.GET("/users/:user_id/enrollments", enrollmentCtrl.GetUserEnrollments)

		auth.GET("/modules/:module_id", moduleCtrl.GetModule)
		auth.GET("/modules/:module_id/lessons", moduleCtrl.GetModuleLessons)
		auth.GET("/lessons/:lesson_id", lessonCtrl.GetLesson)
		auth.GET("/lessons/:lesson_id/quizzes", lessonCtrl.GetLessonQuizzes)
		auth.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)
		auth.POST("/quizzes/:quiz_id/attempts", quizCtrl.SubmitAttempt)
		auth.GET("/quizzes/:quiz_id/attempts", quizCtrl.GetAttempts)

		auth.POST("/enrollments", enrollmentCtrl.Enroll)
		auth.DELETE("/enrollments/:enrollment_id", enrollmentCtrl.Unenroll)
		auth.GET("/courses/:course_id/enrollments", enrollmentCtrl.GetCourseEnrollments)

		auth.POST("/reviews", reviewCtrl.CreateReview)
		auth.PUT("/reviews/:review_id", reviewCtrl.UpdateReview)
		auth.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)

		auth.PUT("/enrollments/:enrollment_id/lessons/:lesson_id/progress", progressCtrl.UpdateProgress)
		auth.GET("/enrollments/:enrollment_id/progress", progressCtrl.GetCourseProgress)
		auth.GET("/enrollments/:enrollment_id/completion-rate", progressCtrl.GetCompletionRate)
	}

	// Instructor/admin routes
	staff := auth.Group("")
	staff.Use(controller.RequireRole(model.RoleInstructor, model.RoleAdmin))
	{
		staff.POST("/categories", categoryCtrl.CreateCategory)
		staff.PUT("/categories/:category_id", categoryCtrl.UpdateCategory)
		staff.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		staff.POST("/courses", courseCtrl.CreateCourse)
		staff.PUT("/courses/:course_id", courseCtrl.UpdateCourse)
		staff.DELETE("/courses/:course_id", courseCtrl.DeleteCourse)

		staff.POST("/modules", moduleCtrl.CreateModule)
		staff.PUT("/modules/:module_id", moduleCtrl.UpdateModule)
		staff.DELETE("/modules/:module_id", moduleCtrl.DeleteModule)

		staff.POST("/lessons", lessonCtrl.CreateLesson)
		staff.PUT("/lessons/:lesson_id", lessonCtrl.UpdateLesson)
		staff.DELETE("/lessons/:lesson_id", lessonCtrl.DeleteLesson)

		staff.POST("/lessons/:lesson_id/quizzes", lessonCtrl.CreateQuiz)
		staff.DELETE("/quizzes/:quiz_id", quizCtrl.DeleteQuiz)
	}

	admin := auth.Group("")
	admin.Use(controller.RequireRole(model.RoleAdmin))
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.DELETE("/users/:user_id", userCtrl.DeleteUser)
		admin.GET("/progress/analytics", progressCtrl.GetAnalytics)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LearnHub API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.Category{},
		&model.Course{},
		&model.Module{},
		&model.Lesson{},
		&model.Enrollment{},
		&model.Review{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.QuizAttempt{},
		&model.CourseProgress{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
