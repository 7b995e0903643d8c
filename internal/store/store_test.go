package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
)

func TestProfileUpdateBuildsSet(t *testing.T) {
	doc := ProfileUpdate(map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})
	require.Equal(t, bson.M{"$set": bson.M{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	}}, doc)
}

func TestProfileUpdateDropsImmutableFields(t *testing.T) {
	doc := ProfileUpdate(map[string]any{
		"first_name":  "Ada",
		"_id":         "attacker-controlled",
		"id":          "attacker-controlled",
		"password":    "plaintext",
		"date_joined": "1843-01-01",
	})
	require.Equal(t, bson.M{"$set": bson.M{"first_name": "Ada"}}, doc)
}

func TestProfileUpdateEmptyIsNil(t *testing.T) {
	require.Nil(t, ProfileUpdate(nil))
	require.Nil(t, ProfileUpdate(map[string]any{}))
	// Only immutable fields means nothing to update either.
	require.Nil(t, ProfileUpdate(map[string]any{"password": "x"}))
}

func TestPublishUpdate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc := PublishUpdate(now)
	require.Equal(t, bson.M{"$set": bson.M{
		"is_published": true,
		"updated_at":   now,
	}}, doc)
}

func TestNewEnrollmentDefaults(t *testing.T) {
	studentID := primitive.NewObjectID()
	courseID := primitive.NewObjectID()
	now := time.Now()

	e := NewEnrollment(studentID, courseID, now)
	require.Equal(t, studentID, e.StudentID)
	require.Equal(t, courseID, e.CourseID)
	require.Equal(t, now, e.EnrollmentDate)
	require.Equal(t, models.StatusActive, e.Status)
}
