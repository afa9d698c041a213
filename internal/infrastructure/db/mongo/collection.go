package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// document wraps a record so the record's own id doubles as _id while the
// record's fields stay at the top level of the stored document.
type document[T any] struct {
	ID     string `bson:"_id"`
	Record T      `bson:",inline"`
}

// Collection is a flat, string-keyed collection of T.
type Collection[T any] struct {
	col  *mongo.Collection
	idOf func(T) string
}

// NewCollection binds a collection; idOf extracts the document key from a record.
func NewCollection[T any](db *mongo.Database, name string, idOf func(T) string) *Collection[T] {
	return &Collection[T]{col: db.Collection(name), idOf: idOf}
}

// GetAll returns every document. Order is whatever the server yields.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.col.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		var doc document[T]
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.col.Name(), err)
		}
		out = append(out, doc.Record)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.col.Name(), err)
	}
	return out, nil
}

// SetByID upserts rec under id.
func (c *Collection[T]) SetByID(ctx context.Context, id string, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.col.ReplaceOne(ctx, bson.M{"_id": id}, document[T]{ID: id, Record: rec}, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", c.col.Name(), id, err)
	}
	return nil
}

// InsertByID creates rec under id. A duplicate _id yields domain.ErrIDTaken;
// a duplicate on any other unique index yields domain.ErrConflict.
func (c *Collection[T]) InsertByID(ctx context.Context, id string, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(ctx, document[T]{ID: id, Record: rec}); err != nil {
		if isDuplicateID(err) {
			return fmt.Errorf("insert %s/%s: %w", c.col.Name(), id, domain.ErrIDTaken)
		}
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert %s/%s: %w", c.col.Name(), id, domain.ErrConflict)
		}
		return fmt.Errorf("insert %s/%s: %w", c.col.Name(), id, err)
	}
	return nil
}

// DeleteByID removes the document under id; domain.ErrNotFound when none matched.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.col.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceAll deletes every document and writes recs in one transaction, so
// readers never observe a half-empty collection. Requires a replica set.
func (c *Collection[T]) ReplaceAll(ctx context.Context, recs []T) error {
	sess, err := c.col.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	docs := make([]interface{}, len(recs))
	for i, r := range recs {
		docs[i] = document[T]{ID: c.idOf(r), Record: r}
	}

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := c.col.DeleteMany(sc, bson.D{}); err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, nil
		}
		_, err := c.col.InsertMany(sc, docs)
		return nil, err
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("replace %s: %w", c.col.Name(), domain.ErrConflict)
		}
		return fmt.Errorf("replace %s: %w", c.col.Name(), err)
	}
	return nil
}

var errNilRecord = errors.New("nil record")

// duplicateKeyCode is the server error code for a unique index violation.
const duplicateKeyCode = 11000

// isDuplicateID reports whether err is a unique violation on the _id index.
func isDuplicateID(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCodeWithMessage(duplicateKeyCode, "index: _id_")
}
