package schema

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

// Manager applies collection validators and indexes to the store.
type Manager struct {
	db  *mongo.Database
	log *zap.Logger
}

func NewManager(db *mongo.Database, log *zap.Logger) *Manager {
	return &Manager{db: db, log: log}
}

// Setup creates the collection if it does not exist yet, then applies the
// compiled validator via collMod. Reapplying the same schema produces the
// same rule set, so repeated calls are a no-op in effect. Documents already
// in the collection are not retroactively validated by the engine.
func (m *Manager) Setup(ctx context.Context, col Collection) error {
	names, err := m.db.ListCollectionNames(ctx, bson.M{"name": col.Name})
	if err != nil {
		return fmt.Errorf("%w: list collections: %v", storeerr.ErrConnectivity, err)
	}

	if len(names) == 0 {
		m.log.Info("creating collection", zap.String("collection", col.Name))
		if err := m.db.CreateCollection(ctx, col.Name); err != nil {
			return m.setupErr(col.Name, err)
		}
	}

	m.log.Info("applying validator", zap.String("collection", col.Name))
	res := m.db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: col.Name},
		{Key: "validator", Value: col.Validator()},
	})
	if err := res.Err(); err != nil {
		return m.setupErr(col.Name, err)
	}

	return nil
}

func (m *Manager) setupErr(name string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: collection %s: %v", storeerr.ErrConnectivity, name, err)
	}
	return fmt.Errorf("%w: collection %s: %v", storeerr.ErrSchemaApplication, name, err)
}

// SetupAll applies the three built-in collection schemas.
func (m *Manager) SetupAll(ctx context.Context) error {
	for _, col := range []Collection{Users(), Courses(), Enrollments()} {
		if err := m.Setup(ctx, col); err != nil {
			return err
		}
	}
	return nil
}

// CreateIndexes declares the fixed index set. The unique email and unique
// (student_id, course_id) constraints live entirely in these indexes: a
// duplicate insert fails at the store boundary, not in application code.
// If existing data already violates a unique constraint the engine reports
// it and the error surfaces as ErrIndexConflict; no deduplication happens.
func (m *Manager) CreateIndexes(ctx context.Context) error {
	for name, indexes := range map[string][]mongo.IndexModel{
		"users":       UserIndexes(),
		"courses":     CourseIndexes(),
		"enrollments": EnrollmentIndexes(),
	} {
		m.log.Info("creating indexes", zap.String("collection", name), zap.Int("count", len(indexes)))
		if _, err := m.db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
				return fmt.Errorf("%w: indexes on %s: %v", storeerr.ErrConnectivity, name, err)
			}
			return fmt.Errorf("%w: indexes on %s: %v", storeerr.ErrIndexConflict, name, err)
		}
	}
	return nil
}
