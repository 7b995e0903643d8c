package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

type Enrollments struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewEnrollments(db *mongo.Database, log *zap.Logger) *Enrollments {
	return &Enrollments{
		collection: db.Collection("enrollments"),
		log:        log,
	}
}

// Enroll inserts a new active enrollment. A second enrollment for the same
// (student, course) pair fails on the unique compound index and surfaces
// as storeerr.ErrIndexConflict; under concurrent calls for the same pair
// the index guarantees exactly one insert succeeds.
func (s *Enrollments) Enroll(ctx context.Context, studentID, courseID primitive.ObjectID) (models.Enrollment, error) {
	enrollment := NewEnrollment(studentID, courseID, time.Now())

	if _, err := s.collection.InsertOne(ctx, enrollment); err != nil {
		return models.Enrollment{}, storeerr.Translate(err)
	}

	s.log.Info("student enrolled",
		zap.String("student_id", studentID.Hex()),
		zap.String("course_id", courseID.Hex()))
	return enrollment, nil
}

// NewEnrollment builds the document Enroll inserts.
func NewEnrollment(studentID, courseID primitive.ObjectID, now time.Time) models.Enrollment {
	return models.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: now,
		Status:         models.StatusActive,
	}
}

// UpdateStatus moves an enrollment to the given status and returns the
// modified count. A missing enrollment is ErrNotFound.
func (s *Enrollments) UpdateStatus(ctx context.Context, studentID, courseID primitive.ObjectID, status models.EnrollmentStatus) (int64, error) {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"student_id": studentID, "course_id": courseID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, storeerr.Translate(err)
	}
	if res.MatchedCount == 0 {
		return 0, storeerr.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// ListByStudent returns all enrollments of one student.
func (s *Enrollments) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Enrollment, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, storeerr.Translate(err)
	}
	return enrollments, nil
}
