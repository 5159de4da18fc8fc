package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"roadtrip/internal/models"
)

// MongoUserStore implements UserStore on the "users" collection.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicate
		}
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("insert reported no id")
	}
	user.ID = oid
	return oid.Hex(), nil
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) PushDestination(ctx context.Context, userID string, dest models.Destination) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.col.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"destinations": dest},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) ReplaceDestination(ctx context.Context, userID string, dest models.Destination) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidID
	}

	// Positional update: the filter only matches when a destination with
	// the given id exists, so the write replaces exactly that entry and
	// concurrent writers cannot clobber each other's entries.
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "destinations.id": dest.ID},
		bson.M{"$set": bson.M{"destinations.$": dest}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoRegulationStore implements RegulationStore on "regulations".
type MongoRegulationStore struct {
	col *mongo.Collection
}

func NewMongoRegulationStore(db *mongo.Database) *MongoRegulationStore {
	return &MongoRegulationStore{col: db.Collection("regulations")}
}

func (s *MongoRegulationStore) Insert(ctx context.Context, regulation *models.RoadRegulation) error {
	if _, err := s.col.InsertOne(ctx, regulation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MongoRegulationStore) FindByCountry(ctx context.Context, countryName string) (*models.RoadRegulation, error) {
	var regulation models.RoadRegulation
	if err := s.col.FindOne(ctx, bson.M{"country_name": countryName}).Decode(&regulation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &regulation, nil
}

func (s *MongoRegulationStore) All(ctx context.Context) ([]models.RoadRegulation, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	regulations := []models.RoadRegulation{}
	if err := cursor.All(ctx, &regulations); err != nil {
		return nil, err
	}
	return regulations, nil
}

// MongoRoutePlanStore implements RoutePlanStore on "route_plans".
type MongoRoutePlanStore struct {
	col *mongo.Collection
}

func NewMongoRoutePlanStore(db *mongo.Database) *MongoRoutePlanStore {
	return &MongoRoutePlanStore{col: db.Collection("route_plans")}
}

func (s *MongoRoutePlanStore) Insert(ctx context.Context, plan *models.RoutePlan) (string, error) {
	res, err := s.col.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("insert reported no id")
	}
	plan.ID = oid
	return oid.Hex(), nil
}

func (s *MongoRoutePlanStore) FindByCreator(ctx context.Context, creatorID string) ([]models.RoutePlan, error) {
	cursor, err := s.col.Find(ctx, bson.M{"creator_id": creatorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []models.RoutePlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
