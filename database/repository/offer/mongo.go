package offerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering/database"
	"catering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	packageCollection  = "packages"
	menuItemCollection = "menu_items"
)

// mongoTable holds the collection plumbing shared by both catalog tables.
type mongoTable struct {
	db   *mongo.Database
	coll *mongo.Collection
	name string
}

func newMongoTable(db *mongo.Database, name string) mongoTable {
	t := mongoTable{db: db, coll: db.Collection(name), name: name}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := t.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		zap.L().Warn("failed to create catalog index", zap.String("collection", name), zap.Error(err))
	}
	return t
}

func (t mongoTable) findAll(ctx context.Context, out interface{}) error {
	cursor, err := t.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", t.name, err)
	}
	return nil
}

func (t mongoTable) findOne(ctx context.Context, id int64, out interface{}) error {
	err := t.coll.FindOne(ctx, bson.M{"id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return database.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch %s row %d: %w", t.name, id, err)
	}
	return nil
}

func (t mongoTable) insert(ctx context.Context, doc interface{}) error {
	if _, err := t.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}
	return nil
}

func (t mongoTable) replace(ctx context.Context, id int64, doc interface{}) error {
	result, err := t.coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to save %s row %d: %w", t.name, id, err)
	}
	if result.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (t mongoTable) setImage(ctx context.Context, id int64, url string) error {
	result, err := t.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"image": url}})
	if err != nil {
		return fmt.Errorf("failed to set %s image %d: %w", t.name, id, err)
	}
	if result.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (t mongoTable) delete(ctx context.Context, id int64) error {
	result, err := t.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s row %d: %w", t.name, id, err)
	}
	if result.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	table mongoTable
}

func NewMongoPackageRepo(db *mongo.Database) PackageRepository {
	return &MongoPackageRepo{table: newMongoTable(db, packageCollection)}
}

func (r *MongoPackageRepo) List(ctx context.Context) ([]models.CateringPackage, error) {
	packages := []models.CateringPackage{}
	if err := r.table.findAll(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *MongoPackageRepo) GetByID(ctx context.Context, id int64) (*models.CateringPackage, error) {
	var p models.CateringPackage
	if err := r.table.findOne(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoPackageRepo) Create(ctx context.Context, p *models.CateringPackage) error {
	id, err := database.NextSequence(ctx, r.table.db, packageCollection)
	if err != nil {
		return err
	}
	p.ID = id
	return r.table.insert(ctx, p)
}

func (r *MongoPackageRepo) Save(ctx context.Context, p *models.CateringPackage) error {
	return r.table.replace(ctx, p.ID, p)
}

func (r *MongoPackageRepo) SetImage(ctx context.Context, id int64, url string) error {
	return r.table.setImage(ctx, id, url)
}

func (r *MongoPackageRepo) Delete(ctx context.Context, id int64) error {
	return r.table.delete(ctx, id)
}

// MongoMenuItemRepo implements MenuItemRepository using MongoDB.
type MongoMenuItemRepo struct {
	table mongoTable
}

func NewMongoMenuItemRepo(db *mongo.Database) MenuItemRepository {
	return &MongoMenuItemRepo{table: newMongoTable(db, menuItemCollection)}
}

func (r *MongoMenuItemRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := r.table.findAll(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoMenuItemRepo) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var m models.MenuItem
	if err := r.table.findOne(ctx, id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MongoMenuItemRepo) Create(ctx context.Context, m *models.MenuItem) error {
	id, err := database.NextSequence(ctx, r.table.db, menuItemCollection)
	if err != nil {
		return err
	}
	m.ID = id
	return r.table.insert(ctx, m)
}

func (r *MongoMenuItemRepo) Save(ctx context.Context, m *models.MenuItem) error {
	return r.table.replace(ctx, m.ID, m)
}

func (r *MongoMenuItemRepo) SetImage(ctx context.Context, id int64, url string) error {
	return r.table.setImage(ctx, id, url)
}

func (r *MongoMenuItemRepo) Delete(ctx context.Context, id int64) error {
	return r.table.delete(ctx, id)
}
