// Package reports computes enrollment statistics through an aggregation
// pipeline executed entirely by the engine.
package reports

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

type Report struct {
	enrollments *mongo.Collection
	log         *zap.Logger
}

func NewReport(db *mongo.Database, log *zap.Logger) *Report {
	return &Report{
		enrollments: db.Collection("enrollments"),
		log:         log,
	}
}

// EnrollmentStatsPipeline builds the four-stage pipeline:
//
//  1. group enrollments by course_id, counting totalEnrollments and
//     activeStudents;
//  2. lookup the matching course;
//  3. unwind the one-element lookup result — a group whose course is
//     missing drops out here, so courses with zero enrollments (or dangling
//     course_ids) never reach the projection;
//  4. project the five report fields, deriving enrollmentRate. Division is
//     safe: a group only exists if it holds at least one enrollment.
//
// Stage order matters; later stages reference fields the earlier ones
// introduce. No sort stage is added, row order is whatever the grouping
// produces.
func EnrollmentStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":              "$course_id",
			"totalEnrollments": bson.M{"$sum": 1},
			"activeStudents": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", string(models.StatusActive)}},
					1,
					0,
				},
			}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "courses",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "course",
		}}},
		bson.D{{Key: "$unwind", Value: "$course"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":              0,
			"courseId":         "$_id",
			"courseTitle":      "$course.title",
			"totalEnrollments": 1,
			"activeStudents":   1,
			"enrollmentRate": bson.M{
				"$divide": bson.A{"$activeStudents", "$totalEnrollments"},
			},
		}}},
	}
}

// ComputeEnrollmentStats runs the pipeline and returns one row per course
// that has at least one enrollment. An empty enrollment collection yields
// an empty table, not an error.
func (r *Report) ComputeEnrollmentStats(ctx context.Context) ([]models.CourseEnrollmentStats, error) {
	cursor, err := r.enrollments.Aggregate(ctx, EnrollmentStatsPipeline())
	if err != nil {
		if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
			return nil, fmt.Errorf("%w: %v", storeerr.ErrConnectivity, err)
		}
		return nil, fmt.Errorf("%w: %v", storeerr.ErrAggregation, err)
	}
	defer cursor.Close(ctx)

	rows := []models.CourseEnrollmentStats{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", storeerr.ErrAggregation, err)
	}

	r.log.Info("enrollment stats computed", zap.Int("courses", len(rows)))
	return rows, nil
}
