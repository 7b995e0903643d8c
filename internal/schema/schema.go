// Package schema declares the structural validators and indexes for the
// eduhub collections and applies them to the store. Validation itself is
// enforced server-side; nothing here re-checks documents locally.
package schema

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/models"
)

// Kind is a bson type name as used in $jsonSchema bsonType clauses.
type Kind string

const (
	KindString   Kind = "string"
	KindDouble   Kind = "double"
	KindBool     Kind = "bool"
	KindDate     Kind = "date"
	KindObjectID Kind = "objectId"
	KindArray    Kind = "array"
)

// Field describes the constraints on a single document field.
type Field struct {
	Required    bool
	Kind        Kind
	Enum        []string
	Pattern     string
	Minimum     *float64
	Items       Kind // element type when Kind is KindArray
	Description string
}

// Collection is a named collection together with its field constraints.
// Instances are built once as data and compiled to a validator document.
type Collection struct {
	Name   string
	Fields map[string]Field
}

// Validator compiles the collection description into a $jsonSchema
// validator document accepted by create-collection and collMod.
func (c Collection) Validator() bson.M {
	properties := bson.M{}
	var required []string

	for name, f := range c.Fields {
		prop := bson.M{"bsonType": string(f.Kind)}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if f.Pattern != "" {
			prop["pattern"] = f.Pattern
		}
		if f.Minimum != nil {
			prop["minimum"] = *f.Minimum
		}
		if f.Kind == KindArray && f.Items != "" {
			prop["items"] = bson.M{"bsonType": string(f.Items)}
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		properties[name] = prop

		if f.Required {
			required = append(required, name)
		}
	}

	schema := bson.M{
		"bsonType":   "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sort.Strings(required)
		schema["required"] = required
	}

	return bson.M{"$jsonSchema": schema}
}

func minimum(v float64) *float64 { return &v }

// Users describes the users collection: unique email with a
// local@domain shape, a role enum, and creation-time stamps.
func Users() Collection {
	return Collection{
		Name: "users",
		Fields: map[string]Field{
			"email": {
				Required:    true,
				Kind:        KindString,
				Pattern:     `^\S+@\S+$`,
				Description: "must be a valid email address",
			},
			"first_name": {Required: true, Kind: KindString},
			"last_name":  {Required: true, Kind: KindString},
			"password":   {Kind: KindString},
			"role": {
				Required: true,
				Kind:     KindString,
				Enum:     []string{string(models.RoleStudent), string(models.RoleInstructor)},
			},
			"date_joined": {Required: true, Kind: KindDate},
			"is_active":   {Required: true, Kind: KindBool},
		},
	}
}

// Courses describes the courses collection. instructor_id references a
// user by convention only; the engine does not enforce it.
func Courses() Collection {
	return Collection{
		Name: "courses",
		Fields: map[string]Field{
			"title":         {Required: true, Kind: KindString},
			"instructor_id": {Required: true, Kind: KindObjectID},
			"category":      {Required: true, Kind: KindString},
			"level": {
				Required: true,
				Kind:     KindString,
				Enum: []string{
					string(models.LevelBeginner),
					string(models.LevelIntermediate),
					string(models.LevelAdvanced),
				},
			},
			"price": {
				Required:    true,
				Kind:        KindDouble,
				Minimum:     minimum(0),
				Description: "price must be a non-negative number",
			},
			"tags":         {Kind: KindArray, Items: KindString},
			"is_published": {Required: true, Kind: KindBool},
			"created_at":   {Required: true, Kind: KindDate},
			"updated_at":   {Required: true, Kind: KindDate},
		},
	}
}

// Enrollments describes the enrollments collection. Uniqueness of the
// (student_id, course_id) pair is enforced by the compound index, not here.
func Enrollments() Collection {
	return Collection{
		Name: "enrollments",
		Fields: map[string]Field{
			"student_id":      {Required: true, Kind: KindObjectID},
			"course_id":       {Required: true, Kind: KindObjectID},
			"enrollment_date": {Required: true, Kind: KindDate},
			"status": {
				Required: true,
				Kind:     KindString,
				Enum: []string{
					string(models.StatusActive),
					string(models.StatusCompleted),
					string(models.StatusDropped),
				},
			},
		},
	}
}
