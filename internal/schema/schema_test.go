package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func jsonSchema(t *testing.T, c Collection) bson.M {
	t.Helper()
	v := c.Validator()
	js, ok := v["$jsonSchema"].(bson.M)
	require.True(t, ok, "validator must carry a $jsonSchema document")
	return js
}

func properties(t *testing.T, c Collection) bson.M {
	t.Helper()
	props, ok := jsonSchema(t, c)["properties"].(bson.M)
	require.True(t, ok)
	return props
}

func TestValidatorCompilesFieldConstraints(t *testing.T) {
	col := Collection{
		Name: "things",
		Fields: map[string]Field{
			"name":  {Required: true, Kind: KindString, Pattern: "^x"},
			"count": {Required: true, Kind: KindDouble, Minimum: minimum(0)},
			"state": {Kind: KindString, Enum: []string{"on", "off"}},
			"tags":  {Kind: KindArray, Items: KindString},
		},
	}

	js := jsonSchema(t, col)
	require.Equal(t, "object", js["bsonType"])
	// required is sorted so repeated compilation yields the same document.
	require.Equal(t, []string{"count", "name"}, js["required"])

	props := js["properties"].(bson.M)
	require.Equal(t, "^x", props["name"].(bson.M)["pattern"])
	require.Equal(t, float64(0), props["count"].(bson.M)["minimum"])
	require.Equal(t, []string{"on", "off"}, props["state"].(bson.M)["enum"])
	require.Equal(t, bson.M{"bsonType": "string"}, props["tags"].(bson.M)["items"])
}

func TestValidatorOmitsEmptyRequired(t *testing.T) {
	col := Collection{Name: "loose", Fields: map[string]Field{
		"note": {Kind: KindString},
	}}
	js := jsonSchema(t, col)
	_, present := js["required"]
	require.False(t, present)
}

func TestUsersSchema(t *testing.T) {
	col := Users()
	require.Equal(t, "users", col.Name)

	props := properties(t, col)
	email := props["email"].(bson.M)
	require.Equal(t, `^\S+@\S+$`, email["pattern"])

	role := props["role"].(bson.M)
	require.ElementsMatch(t, []string{"student", "instructor"}, role["enum"])

	require.Contains(t, jsonSchema(t, col)["required"], "date_joined")
	require.Contains(t, jsonSchema(t, col)["required"], "is_active")
	require.NotContains(t, jsonSchema(t, col)["required"], "password")
}

func TestCoursesSchema(t *testing.T) {
	col := Courses()
	props := properties(t, col)

	price := props["price"].(bson.M)
	require.Equal(t, "double", price["bsonType"])
	require.Equal(t, float64(0), price["minimum"])

	level := props["level"].(bson.M)
	require.ElementsMatch(t, []string{"beginner", "intermediate", "advanced"}, level["enum"])

	require.Equal(t, "objectId", props["instructor_id"].(bson.M)["bsonType"])
}

func TestEnrollmentsSchema(t *testing.T) {
	col := Enrollments()
	props := properties(t, col)

	status := props["status"].(bson.M)
	require.ElementsMatch(t, []string{"active", "completed", "dropped"}, status["enum"])

	require.Equal(t, []string{"course_id", "enrollment_date", "status", "student_id"},
		jsonSchema(t, col)["required"])
}

func TestUserIndexes(t *testing.T) {
	indexes := UserIndexes()
	require.Len(t, indexes, 2)

	email := indexes[0]
	require.Equal(t, bson.D{{Key: "email", Value: 1}}, email.Keys)
	require.NotNil(t, email.Options)
	require.True(t, *email.Options.Unique)

	role := indexes[1]
	require.Equal(t, bson.D{{Key: "role", Value: 1}}, role.Keys)
	require.Nil(t, role.Options)
}

func TestCourseIndexes(t *testing.T) {
	indexes := CourseIndexes()
	require.Len(t, indexes, 3)

	var keys []string
	for _, idx := range indexes {
		d := idx.Keys.(bson.D)
		require.Len(t, d, 1)
		keys = append(keys, d[0].Key)
		require.Nil(t, idx.Options)
	}
	require.Equal(t, []string{"title", "category", "tags"}, keys)
}

func TestEnrollmentIndexes(t *testing.T) {
	indexes := EnrollmentIndexes()
	require.Len(t, indexes, 1)

	compound := indexes[0]
	require.Equal(t, bson.D{
		{Key: "student_id", Value: 1},
		{Key: "course_id", Value: 1},
	}, compound.Keys)
	require.True(t, *compound.Options.Unique)
}
