package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/middleware"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/store"
)

type CourseHandler struct {
	courses *store.Courses
	log     *zap.Logger
}

func NewCourseHandler(courses *store.Courses, log *zap.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, log: log}
}

// CreateCourse handles creating a new course. The authenticated instructor
// becomes the course's instructor_id.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var newCourse models.Course
	if err := json.NewDecoder(r.Body).Decode(&newCourse); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if newCourse.Title == "" || newCourse.Category == "" || newCourse.Level == "" {
		http.Error(w, "Course title, category, and level are required", http.StatusBadRequest)
		return
	}

	instructorID, ok := middleware.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	instructorObjID, err := primitive.ObjectIDFromHex(instructorID)
	if err != nil {
		http.Error(w, "Invalid instructor ID", http.StatusBadRequest)
		return
	}
	newCourse.InstructorID = instructorObjID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// A negative price or bad level never reaches the data: the collection
	// validator rejects the insert.
	id, err := h.courses.Create(ctx, newCourse)
	if err != nil {
		h.log.Error("course creation failed", zap.Error(err))
		http.Error(w, "Failed to create course", statusFor(err))
		return
	}
	newCourse.ID = id

	writeJSON(w, http.StatusCreated, newCourse)
}

// GetCourses retrieves courses, all of them or only published ones when
// ?published=true is set.
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	publishedOnly := r.URL.Query().Get("published") == "true"

	courses, err := h.courses.List(ctx, publishedOnly)
	if err != nil {
		http.Error(w, "Failed to fetch courses", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// GetCourse returns one course together with its instructor.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	details, err := h.courses.GetWithInstructor(ctx, objID)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch course", statusFor(err))
		return
	}
	if details.Instructor != nil {
		details.Instructor.Password = ""
	}

	writeJSON(w, http.StatusOK, details)
}

// PublishCourse marks a course as published. Repeating the call is
// harmless: the course stays published and modified_count reports 0.
func (h *CourseHandler) PublishCourse(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	modified, err := h.courses.MarkPublished(ctx, objID)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to publish course", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"modified_count": modified})
}
