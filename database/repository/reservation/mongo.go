package reservationRepo

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
	officialCollection = "official_reservations"
	stagedCollection   = "online_reservations"
)

var dateDescending = bson.D{{Key: "reservation_date", Value: -1}, {Key: "id", Value: -1}}

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMongoReservationRepo creates the official reservations repository and its indexes.
func NewMongoReservationRepo(db *mongo.Database) ReservationRepository {
	repo := &MongoReservationRepo{db: db, coll: db.Collection(officialCollection)}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create reservation indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reservation_date", Value: -1}}},
		{Keys: bson.D{{Key: "staged_id", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func dateFilter(dr models.DateRange) bson.M {
	cond := bson.M{}
	if dr.From != "" {
		cond["$gte"] = dr.From
	}
	if dr.To != "" {
		cond["$lte"] = dr.To
	}
	if len(cond) == 0 {
		return bson.M{}
	}
	return bson.M{"reservation_date": cond}
}

func (r *MongoReservationRepo) List(ctx context.Context, offset, limit int) ([]models.Reservation, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	opts := options.Find().
		SetSort(dateDescending).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, total, nil
}

func (r *MongoReservationRepo) ListByDateRange(ctx context.Context, dr models.DateRange) ([]models.Reservation, error) {
	cursor, err := r.coll.Find(ctx, dateFilter(dr), options.Find().SetSort(dateDescending))
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations by date: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (r *MongoReservationRepo) findOne(ctx context.Context, filter bson.M) (*models.Reservation, error) {
	var res models.Reservation
	err := r.coll.FindOne(ctx, filter).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (r *MongoReservationRepo) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoReservationRepo) GetByStagedID(ctx context.Context, stagedID int64) (*models.Reservation, error) {
	return r.findOne(ctx, bson.M{"staged_id": stagedID})
}

func (r *MongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	id, err := database.NextSequence(ctx, r.db, officialCollection)
	if err != nil {
		return err
	}
	res.ID = id
	res.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *MongoReservationRepo) Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation with id %d: %w", id, err)
	}
	return &updated, nil
}

func (r *MongoReservationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

// MongoStagedRepo implements StagedRepository using MongoDB.
type MongoStagedRepo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMongoStagedRepo creates the staging table repository.
func NewMongoStagedRepo(db *mongo.Database) StagedRepository {
	repo := &MongoStagedRepo{db: db, coll: db.Collection(stagedCollection)}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reservation_date", Value: 1}}},
	})
	if err != nil {
		zap.L().Warn("failed to create staged reservation indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoStagedRepo) find(ctx context.Context, filter bson.M) ([]models.StagedReservation, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "reservation_date", Value: 1}, {Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list staged reservations: %w", err)
	}
	defer cursor.Close(ctx)

	staged := []models.StagedReservation{}
	if err := cursor.All(ctx, &staged); err != nil {
		return nil, fmt.Errorf("failed to decode staged reservations: %w", err)
	}
	return staged, nil
}

func (r *MongoStagedRepo) List(ctx context.Context) ([]models.StagedReservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoStagedRepo) ListFrom(ctx context.Context, date string) ([]models.StagedReservation, error) {
	return r.find(ctx, bson.M{"reservation_date": bson.M{"$gte": date}})
}

func (r *MongoStagedRepo) GetByID(ctx context.Context, id int64) (*models.StagedReservation, error) {
	var s models.StagedReservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staged reservation: %w", err)
	}
	return &s, nil
}

func (r *MongoStagedRepo) Create(ctx context.Context, s *models.StagedReservation) error {
	id, err := database.NextSequence(ctx, r.db, stagedCollection)
	if err != nil {
		return err
	}
	s.ID = id
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create staged reservation: %w", err)
	}
	return nil
}

func (r *MongoStagedRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staged reservation with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoStagedRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"reservation_date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete staged reservations before %s: %w", date, err)
	}
	return result.DeletedCount, nil
}
