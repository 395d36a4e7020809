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

const farmsCollection = "fazendas"

type FarmRepository struct {
	coll *mongo.Collection
}

func NewFarmRepository(db *mongo.Database) *FarmRepository {
	return &FarmRepository{coll: db.Collection(farmsCollection)}
}

type mongoFarm struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"nome"`
	Address     string             `bson:"endereco"`
	City        string             `bson:"municipio"`
	State       string             `bson:"estado"`
	TotalArea   float64            `bson:"area_total"`
	PastureArea float64            `bson:"area_pastagem"`
	CapacityUA  float64            `bson:"capacidade_ua"`
	Manager     string             `bson:"responsavel"`
	Phone       string             `bson:"telefone"`
	Email       string             `bson:"email"`
	Notes       string             `bson:"observacoes"`
	Active      bool               `bson:"ativo"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mf *mongoFarm) toDomain() *domain.Farm {
	return &domain.Farm{
		ID:          mf.ID.Hex(),
		Name:        mf.Name,
		Address:     mf.Address,
		City:        mf.City,
		State:       mf.State,
		TotalArea:   mf.TotalArea,
		PastureArea: mf.PastureArea,
		CapacityUA:  mf.CapacityUA,
		Manager:     mf.Manager,
		Phone:       mf.Phone,
		Email:       mf.Email,
		Notes:       mf.Notes,
		Active:      mf.Active,
		CreatedAt:   mf.CreatedAt,
		UpdatedAt:   mf.UpdatedAt,
	}
}

func (r *FarmRepository) List(ctx context.Context, limit, offset int) ([]*domain.Farm, error) {
	return r.find(ctx, bson.M{}, limit, offset)
}

func (r *FarmRepository) Search(ctx context.Context, term string, limit, offset int) ([]*domain.Farm, error) {
	rx := primitive.Regex{Pattern: regexEscape(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"nome": rx},
		bson.M{"municipio": rx},
		bson.M{"estado": rx},
		bson.M{"responsavel": rx},
	}}
	return r.find(ctx, filter, limit, offset)
}

func (r *FarmRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]*domain.Farm, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "nome", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer cur.Close(ctx)

	var farms []*domain.Farm
	for cur.Next(ctx) {
		var mf mongoFarm
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode farm: %w", err)
		}
		farms = append(farms, mf.toDomain())
	}
	return farms, cur.Err()
}

func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFarmNotFound
	}

	var mf mongoFarm
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, fmt.Errorf("find farm: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FarmRepository) Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error) {
	doc := mongoFarm{
		Name:        f.Name,
		Address:     f.Address,
		City:        f.City,
		State:       f.State,
		TotalArea:   f.TotalArea,
		PastureArea: f.PastureArea,
		CapacityUA:  f.CapacityUA,
		Manager:     f.Manager,
		Phone:       f.Phone,
		Email:       f.Email,
		Notes:       f.Notes,
		Active:      f.Active,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert farm: %w", err)
	}

	created := *f
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *FarmRepository) Update(ctx context.Context, id string, in ports.FarmRecordUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFarmNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		set["nome"] = *in.Name
	}
	if in.Address != nil {
		set["endereco"] = *in.Address
	}
	if in.City != nil {
		set["municipio"] = *in.City
	}
	if in.State != nil {
		set["estado"] = *in.State
	}
	if in.TotalArea != nil {
		set["area_total"] = *in.TotalArea
	}
	if in.PastureArea != nil {
		set["area_pastagem"] = *in.PastureArea
	}
	if in.CapacityUA != nil {
		set["capacidade_ua"] = *in.CapacityUA
	}
	if in.Manager != nil {
		set["responsavel"] = *in.Manager
	}
	if in.Phone != nil {
		set["telefone"] = *in.Phone
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Notes != nil {
		set["observacoes"] = *in.Notes
	}
	if in.Active != nil {
		set["ativo"] = *in.Active
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update farm: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}

func (r *FarmRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFarmNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete farm: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}
