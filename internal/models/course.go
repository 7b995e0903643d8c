package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

type Course struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	InstructorID primitive.ObjectID `json:"instructor_id" bson:"instructor_id"`
	Category     string             `json:"category" bson:"category"`
	Level        CourseLevel        `json:"level" bson:"level"`
	Price        float64            `json:"price" bson:"price"`
	Tags         []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	IsPublished  bool               `json:"is_published" bson:"is_published"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// CourseDetails is a course joined with its instructor. Instructor is nil
// when no user matches the course's instructor_id.
type CourseDetails struct {
	Course     Course `json:"course"`
	Instructor *User  `json:"instructor,omitempty"`
}
