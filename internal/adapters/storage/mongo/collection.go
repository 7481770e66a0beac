package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animal-shelter-api/internal/ports/docstore"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Collection struct {
	coll *mongo.Collection
}

func (c *Collection) Find(ctx context.Context, filter docstore.Filter, out any) error {
	cur, err := c.coll.Find(ctx, toBSON(filter))
	if err != nil {
		return fmt.Errorf("mongo: find in %s: %w", c.coll.Name(), err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("mongo: decode %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *Collection) FindOne(ctx context.Context, filter docstore.Filter, out any) error {
	err := c.coll.FindOne(ctx, toBSON(filter)).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return docstore.ErrNotFound
		}
		return fmt.Errorf("mongo: find one in %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *Collection) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("mongo: count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}

func (c *Collection) InsertOne(ctx context.Context, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("mongo: encode document: %w", err)
	}
	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("mongo: decode document: %w", err)
	}

	// Identidades como string (UUID) para que sean iguales en todos los stores.
	id, _ := m[docstore.IDField].(string)
	if strings.TrimSpace(id) == "" {
		id = docstore.NewID()
		m[docstore.IDField] = id
	}

	if _, err := c.coll.InsertOne(ctx, m); err != nil {
		return "", mapErr(fmt.Sprintf("insert into %s", c.coll.Name()), err)
	}
	return id, nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter docstore.Filter, set map[string]any) (docstore.UpdateResult, error) {
	fields := bson.M{}
	for k, v := range set {
		if k == docstore.IDField {
			continue
		}
		fields[k] = v
	}

	// $set vacío es un error en Mongo; solo informamos si matchea.
	if len(fields) == 0 {
		n, err := c.coll.CountDocuments(ctx, toBSON(filter), options.Count().SetLimit(1))
		if err != nil {
			return docstore.UpdateResult{}, fmt.Errorf("mongo: update %s: %w", c.coll.Name(), err)
		}
		return docstore.UpdateResult{Matched: n}, nil
	}

	res, err := c.coll.UpdateOne(ctx, toBSON(filter), bson.M{"$set": fields})
	if err != nil {
		return docstore.UpdateResult{}, mapErr(fmt.Sprintf("update %s", c.coll.Name()), err)
	}
	return docstore.UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("mongo: delete from %s: %w", c.coll.Name(), err)
	}
	return res.DeletedCount, nil
}

func (c *Collection) EnsureUniqueIndex(ctx context.Context, field string) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return mapErr(fmt.Sprintf("create unique index %s.%s", c.coll.Name(), field), err)
	}
	return nil
}

func toBSON(f docstore.Filter) bson.M {
	out := bson.M{}
	for k, v := range f {
		out[k] = v
	}
	return out
}

func mapErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("mongo: %s: %w", op, docstore.ErrDuplicateKey)
	}
	return fmt.Errorf("mongo: %s: %w", op, err)
}
