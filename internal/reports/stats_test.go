package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stage(t *testing.T, d bson.D, name string) bson.M {
	t.Helper()
	require.Len(t, d, 1)
	require.Equal(t, name, d[0].Key)
	m, ok := d[0].Value.(bson.M)
	require.True(t, ok)
	return m
}

func TestEnrollmentStatsPipelineStageOrder(t *testing.T) {
	p := EnrollmentStatsPipeline()
	require.Len(t, p, 4)

	require.Equal(t, "$group", p[0][0].Key)
	require.Equal(t, "$lookup", p[1][0].Key)
	require.Equal(t, "$unwind", p[2][0].Key)
	require.Equal(t, "$project", p[3][0].Key)
}

func TestEnrollmentStatsPipelineGroup(t *testing.T) {
	group := stage(t, EnrollmentStatsPipeline()[0], "$group")

	require.Equal(t, "$course_id", group["_id"])
	require.Equal(t, bson.M{"$sum": 1}, group["totalEnrollments"])

	// activeStudents counts only status == "active".
	active := group["activeStudents"].(bson.M)["$sum"].(bson.M)
	cond := active["$cond"].(bson.A)
	require.Equal(t, bson.M{"$eq": bson.A{"$status", "active"}}, cond[0])
	require.Equal(t, 1, cond[1])
	require.Equal(t, 0, cond[2])
}

func TestEnrollmentStatsPipelineLookupAndUnwind(t *testing.T) {
	p := EnrollmentStatsPipeline()

	lookup := stage(t, p[1], "$lookup")
	require.Equal(t, "courses", lookup["from"])
	require.Equal(t, "_id", lookup["localField"])
	require.Equal(t, "_id", lookup["foreignField"])
	require.Equal(t, "course", lookup["as"])

	// Plain $unwind without preserveNullAndEmptyArrays: a group whose
	// course is missing yields no row, so courses with zero enrollments
	// are absent from the report rather than present with zero counts.
	require.Equal(t, "$course", p[2][0].Value)
}

func TestEnrollmentStatsPipelineProjection(t *testing.T) {
	project := stage(t, EnrollmentStatsPipeline()[3], "$project")

	require.Equal(t, 0, project["_id"])
	require.Equal(t, "$_id", project["courseId"])
	require.Equal(t, "$course.title", project["courseTitle"])
	require.Equal(t, 1, project["totalEnrollments"])
	require.Equal(t, 1, project["activeStudents"])
	require.Equal(t,
		bson.M{"$divide": bson.A{"$activeStudents", "$totalEnrollments"}},
		project["enrollmentRate"])
}
