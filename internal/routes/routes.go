package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/auth"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/config"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/handlers"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/middleware"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/reports"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/store"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/utils"
)

func SetupRouter(client *mongo.Client, cfg config.Config, log *zap.Logger) *mux.Router {
	db := client.Database(cfg.DatabaseName)

	users := store.NewUsers(db, log)
	courses := store.NewCourses(db, log)
	enrollments := store.NewEnrollments(db, log)
	report := reports.NewReport(db, log)

	am := auth.NewManager(cfg.JWTSecret)
	mailer := utils.NewMailer(cfg.SMTP, log)

	userHandler := handlers.NewUserHandler(users, enrollments, am, mailer, log)
	courseHandler := handlers.NewCourseHandler(courses, log)
	reportHandler := handlers.NewReportHandler(report, log)

	instructorOnly := middleware.RequireRole(am, string(models.RoleInstructor))
	studentOnly := middleware.RequireRole(am, string(models.RoleStudent))
	anyUser := middleware.RequireRole(am)

	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	router.HandleFunc("/api/users/signup", userHandler.Signup).Methods("POST")
	router.HandleFunc("/api/users/signin", userHandler.Signin).Methods("POST")
	router.Handle("/api/users", anyUser(http.HandlerFunc(userHandler.GetUsers))).Methods("GET")
	router.Handle("/api/users/profile", anyUser(http.HandlerFunc(userHandler.UpdateProfile))).Methods("PUT")

	router.Handle("/api/courses", instructorOnly(http.HandlerFunc(courseHandler.CreateCourse))).Methods("POST")
	router.HandleFunc("/api/courses", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/api/courses/{id}", courseHandler.GetCourse).Methods("GET")
	router.Handle("/api/courses/{id}/publish", instructorOnly(http.HandlerFunc(courseHandler.PublishCourse))).Methods("PUT")

	router.Handle("/api/enrollments", studentOnly(http.HandlerFunc(userHandler.EnrollCourse))).Methods("POST")

	router.HandleFunc("/api/reports/enrollment-stats", reportHandler.EnrollmentStats).Methods("GET")

	return router
}
