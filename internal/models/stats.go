package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CourseEnrollmentStats is one row of the enrollment report. The bson tags
// match the field names produced by the $project stage of the pipeline.
type CourseEnrollmentStats struct {
	CourseID         primitive.ObjectID `json:"course_id" bson:"courseId"`
	CourseTitle      string             `json:"course_title" bson:"courseTitle"`
	TotalEnrollments int64              `json:"total_enrollments" bson:"totalEnrollments"`
	ActiveStudents   int64              `json:"active_students" bson:"activeStudents"`
	EnrollmentRate   float64            `json:"enrollment_rate" bson:"enrollmentRate"`
}
