package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/auth"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/middleware"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/store"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/utils"
)

type UserHandler struct {
	users       *store.Users
	enrollments *store.Enrollments
	auth        *auth.Manager
	mailer      *utils.Mailer
	log         *zap.Logger
}

func NewUserHandler(users *store.Users, enrollments *store.Enrollments, am *auth.Manager, mailer *utils.Mailer, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users:       users,
		enrollments: enrollments,
		auth:        am,
		mailer:      mailer,
		log:         log,
	}
}

// Signup handles user registration
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email     string          `json:"email"`
		FirstName string          `json:"first_name"`
		LastName  string          `json:"last_name"`
		Password  string          `json:"password"`
		Role      models.UserRole `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	// Validate required fields; the rest is rejected by the collection
	// validator if it does not match the schema.
	if payload.Email == "" || payload.FirstName == "" || payload.LastName == "" || payload.Password == "" {
		http.Error(w, "Email, first name, last name, and password are required", http.StatusBadRequest)
		return
	}
	if payload.Role == "" {
		payload.Role = models.RoleStudent
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user := models.User{
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Password:  string(hashedPassword),
		Role:      payload.Role,
	}

	// The unique email index makes a duplicate insert fail here; there is
	// no prior existence check.
	id, err := h.users.Create(ctx, user)
	if err != nil {
		h.log.Error("signup failed", zap.Error(err))
		http.Error(w, "Failed to create user", statusFor(err))
		return
	}
	user.ID = id
	user.Password = ""

	go func() {
		_ = h.mailer.SendWelcome(payload.Email, payload.FirstName)
	}()

	writeJSON(w, http.StatusCreated, user)
}

// Signin handles user login
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, credentials.Email)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if !user.IsActive {
		http.Error(w, "Account is inactive", http.StatusForbidden)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Path:     "/api",
	})

	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Optional ?role= filter uses the role index.
	var (
		users []models.User
		err   error
	)
	if role := r.URL.Query().Get("role"); role != "" {
		users, err = h.users.FindByRole(ctx, models.UserRole(role))
	} else {
		users, err = h.users.List(ctx)
	}
	if err != nil {
		http.Error(w, "Failed to fetch users", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// UpdateProfile applies a partial update to the authenticated user and
// reports how many documents were modified. An empty updates object
// reports zero.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	modified, err := h.users.UpdateProfile(ctx, objID, updates)
	if err != nil {
		http.Error(w, "Failed to update profile", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"modified_count": modified})
}

// EnrollCourse handles student enrollment in a course
func (h *UserHandler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CourseID string `json:"course_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	studentID, ok := middleware.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	studentObjID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}
	courseObjID, err := primitive.ObjectIDFromHex(payload.CourseID)
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Duplicate enrollments fail on the unique (student_id, course_id)
	// index, so two concurrent calls for the same pair cannot both succeed.
	enrollment, err := h.enrollments.Enroll(ctx, studentObjID, courseObjID)
	if err != nil {
		if statusFor(err) == http.StatusConflict {
			http.Error(w, "Student is already enrolled in this course", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to enroll in course", statusFor(err))
		return
	}

	writeJSON(w, http.StatusCreated, enrollment)
}
