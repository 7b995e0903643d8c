package schema

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserIndexes returns the index models for the users collection: a unique
// index on email and a plain index on role.
func UserIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
		},
	}
}

// CourseIndexes returns the index models for the courses collection:
// title, category and tags.
func CourseIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
}

// EnrollmentIndexes returns the unique compound index guaranteeing at most
// one enrollment per (student_id, course_id) pair.
func EnrollmentIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "student_id", Value: 1},
				{Key: "course_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
}
