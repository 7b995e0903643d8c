package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

type Courses struct {
	collection *mongo.Collection
	users      *mongo.Collection
	log        *zap.Logger
}

func NewCourses(db *mongo.Database, log *zap.Logger) *Courses {
	return &Courses{
		collection: db.Collection("courses"),
		users:      db.Collection("users"),
		log:        log,
	}
}

// Create stamps the identifier and timestamps, then inserts. A negative
// price or missing field is rejected by the collection validator and
// surfaces as storeerr.ErrValidation.
func (s *Courses) Create(ctx context.Context, course models.Course) (primitive.ObjectID, error) {
	course.ID = primitive.NewObjectID()
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt

	if _, err := s.collection.InsertOne(ctx, course); err != nil {
		return primitive.NilObjectID, storeerr.Translate(err)
	}

	s.log.Info("course created", zap.String("id", course.ID.Hex()), zap.String("title", course.Title))
	return course.ID, nil
}

func (s *Courses) FindByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var course models.Course
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		return models.Course{}, storeerr.Translate(err)
	}
	return course, nil
}

// List returns courses, optionally only the published ones.
func (s *Courses) List(ctx context.Context, publishedOnly bool) ([]models.Course, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["is_published"] = true
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, storeerr.Translate(err)
	}
	return courses, nil
}

// MarkPublished sets is_published on an existing course and returns the
// modified count. A second call on an already published course matches but
// modifies nothing, so it reports 0. A missing course is ErrNotFound.
func (s *Courses) MarkPublished(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, PublishUpdate(time.Now()))
	if err != nil {
		return 0, storeerr.Translate(err)
	}
	if res.MatchedCount == 0 {
		return 0, storeerr.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// PublishUpdate builds the $set document for MarkPublished.
func PublishUpdate(now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"is_published": true,
			"updated_at":   now,
		},
	}
}

// GetWithInstructor returns a course joined with the user its
// instructor_id references. A missing course is ErrNotFound; a missing
// instructor leaves the Instructor field nil rather than failing, since
// the reference is by convention only.
func (s *Courses) GetWithInstructor(ctx context.Context, id primitive.ObjectID) (models.CourseDetails, error) {
	course, err := s.FindByID(ctx, id)
	if err != nil {
		return models.CourseDetails{}, err
	}

	details := models.CourseDetails{Course: course}

	var instructor models.User
	err = s.users.FindOne(ctx, bson.M{"_id": course.InstructorID}).Decode(&instructor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.log.Warn("course instructor not found",
				zap.String("course_id", course.ID.Hex()),
				zap.String("instructor_id", course.InstructorID.Hex()))
			return details, nil
		}
		return models.CourseDetails{}, storeerr.Translate(err)
	}

	details.Instructor = &instructor
	return details, nil
}
