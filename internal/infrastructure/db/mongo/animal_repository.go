package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

const animalsCollection = "animais"

type AnimalRepository struct {
	coll *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{coll: db.Collection(animalsCollection)}
}

type mongoAnimal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Code      string             `bson:"codigo"`
	Kind      string             `bson:"tipo"`
	Breed     string             `bson:"raca"`
	BirthDate *time.Time         `bson:"data_nascimento,omitempty"`
	WeightKg  float64            `bson:"peso"`
	Sex       string             `bson:"sexo"`
	Status    string             `bson:"status"`
	Notes     string             `bson:"observacoes"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (ma *mongoAnimal) toDomain() *domain.Animal {
	return &domain.Animal{
		ID:        ma.ID.Hex(),
		Code:      ma.Code,
		Kind:      ma.Kind,
		Breed:     ma.Breed,
		BirthDate: ma.BirthDate,
		WeightKg:  ma.WeightKg,
		Sex:       ma.Sex,
		Status:    ma.Status,
		Notes:     ma.Notes,
		CreatedAt: ma.CreatedAt,
		UpdatedAt: ma.UpdatedAt,
	}
}

func (r *AnimalRepository) List(ctx context.Context, limit, offset int) ([]*domain.Animal, error) {
	return r.find(ctx, bson.M{}, limit, offset)
}

func (r *AnimalRepository) Search(ctx context.Context, term string, limit, offset int) ([]*domain.Animal, error) {
	rx := primitive.Regex{Pattern: regexEscape(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"codigo": rx},
		bson.M{"tipo": rx},
		bson.M{"raca": rx},
		bson.M{"observacoes": rx},
	}}
	return r.find(ctx, filter, limit, offset)
}

func (r *AnimalRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]*domain.Animal, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "codigo", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer cur.Close(ctx)

	var animals []*domain.Animal
	for cur.Next(ctx) {
		var ma mongoAnimal
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode animal: %w", err)
		}
		animals = append(animals, ma.toDomain())
	}
	return animals, cur.Err()
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	var ma mongoAnimal
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("find animal: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AnimalRepository) Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error) {
	doc := mongoAnimal{
		Code:      a.Code,
		Kind:      a.Kind,
		Breed:     a.Breed,
		BirthDate: a.BirthDate,
		WeightKg:  a.WeightKg,
		Sex:       a.Sex,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert animal: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AnimalRepository) Update(ctx context.Context, id string, in ports.AnimalRecordUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnimalNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Code != nil {
		set["codigo"] = *in.Code
	}
	if in.Kind != nil {
		set["tipo"] = *in.Kind
	}
	if in.Breed != nil {
		set["raca"] = *in.Breed
	}
	if in.BirthDate != nil {
		set["data_nascimento"] = *in.BirthDate
	}
	if in.WeightKg != nil {
		set["peso"] = *in.WeightKg
	}
	if in.Sex != nil {
		set["sexo"] = *in.Sex
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Notes != nil {
		set["observacoes"] = *in.Notes
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnimalNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}

func (r *AnimalRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count animals: %w", err)
	}
	return n, nil
}

func (r *AnimalRepository) CountByKind(ctx context.Context) ([]domain.CountByGroup, error) {
	return countByField(ctx, r.coll, "$tipo")
}

func (r *AnimalRepository) CountByStatus(ctx context.Context) ([]domain.CountByGroup, error) {
	return countByField(ctx, r.coll, "$status")
}
