package specialties

import (
	"context"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SpecialtyMongoRepository struct {
	Collection *mongo.Collection
}

func NewSpecialtyMongoRepository(db *mongo.Client, dbName string) contracts.SpecialtyRepository {
	return &SpecialtyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSpecialties),
	}
}

func (r *SpecialtyMongoRepository) CreateSpecialty(ctx context.Context, specialty *models.Specialty) (string, error) {
	result, err := r.Collection.InsertOne(ctx, specialty)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SpecialtyMongoRepository) FindAll(ctx context.Context) ([]models.Specialty, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialties, nil
}

func (r *SpecialtyMongoRepository) FindByID(ctx context.Context, specialtyID string) (*models.Specialty, error) {
	objectID, err := primitive.ObjectIDFromHex(specialtyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var specialty models.Specialty
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&specialty)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &specialty, nil
}

func (r *SpecialtyMongoRepository) UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error {
	objectID, err := primitive.ObjectIDFromHex(specialty.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"name":        specialty.Name,
		"workingDays": specialty.WorkingDays,
		"windowStart": specialty.WindowStart,
		"windowEnd":   specialty.WindowEnd,
		"updatedAt":   specialty.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SpecialtyMongoRepository) DeleteSpecialty(ctx context.Context, specialtyID string) error {
	objectID, err := primitive.ObjectIDFromHex(specialtyID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
