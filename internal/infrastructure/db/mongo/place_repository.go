package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

const collectionPlaces = "places"

type PlaceRepository struct {
	col *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{col: db.Collection(collectionPlaces)}
}

type placeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Address     string             `bson:"address"`
	Location    domain.Coordinates `bson:"location"`
	Image       string             `bson:"image,omitempty"`
	Creator     primitive.ObjectID `bson:"creator"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d placeDoc) toDomain() *domain.Place {
	return &domain.Place{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Address:     d.Address,
		Location:    d.Location,
		Image:       d.Image,
		OwnerID:     d.Creator.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts a new place document and returns the place with its
// assigned id.
func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	creator, err := primitive.ObjectIDFromHex(place.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := placeDoc{
		Title:       place.Title,
		Description: place.Description,
		Address:     place.Address,
		Location:    place.Location,
		Image:       place.Image,
		Creator:     creator,
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert place: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	var doc placeDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PlaceRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Place, error) {
	creator, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"creator": creator})
	if err != nil {
		return nil, fmt.Errorf("find places by owner: %w", err)
	}
	defer cur.Close(ctx)

	var places []*domain.Place
	for cur.Next(ctx) {
		var doc placeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode place: %w", err)
		}
		places = append(places, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find places by owner: %w", err)
	}
	return places, nil
}

// Update rewrites the mutable attributes of an existing place. The creator
// field is deliberately not part of the update document.
func (r *PlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	oid, err := primitive.ObjectIDFromHex(place.ID)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":       place.Title,
			"description": place.Description,
			"updated_at":  place.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// EnsureIndexes creates the creator index used by FindByOwner.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}},
	})
	return err
}
