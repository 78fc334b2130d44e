package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/patients"
	"github.com/ps-health/patient-service/store"
)

var Module = fx.Options(
	fx.Provide(
		store.NewConfig,
		store.NewClient,
		store.NewDatabase,
		store.NewMongoPinger,
		NewRepository,
	),
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (patients.Repository, error) {
	repo := &repository{
		collection: db.Collection(patients.CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

type document struct {
	Id             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Email          string    `bson:"email"`
	Address        string    `bson:"address"`
	DateOfBirth    time.Time `bson:"dateOfBirth"`
	RegisteredDate time.Time `bson:"registeredDate"`
}

func newDocument(patient patients.Patient) document {
	return document{
		Id:             patient.Id.String(),
		Name:           patient.Name,
		Email:          patient.Email,
		Address:        patient.Address,
		DateOfBirth:    patient.DateOfBirth,
		RegisteredDate: patient.RegisteredDate,
	}
}

func (d document) toPatient() (patients.Patient, error) {
	id, err := uuid.Parse(d.Id)
	if err != nil {
		return patients.Patient{}, fmt.Errorf("invalid patient id %q: %w", d.Id, err)
	}
	return patients.Patient{
		Id:             id,
		Name:           d.Name,
		Email:          d.Email,
		Address:        d.Address,
		DateOfBirth:    d.DateOfBirth.UTC(),
		RegisteredDate: d.RegisteredDate.UTC(),
	}, nil
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueEmail"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context) ([]patients.Patient, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	var documents []document
	if err = cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	list := make([]patients.Patient, 0, len(documents))
	for _, doc := range documents {
		patient, err := doc.toPatient()
		if err != nil {
			return nil, err
		}
		list = append(list, patient)
	}

	return list, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*patients.Patient, error) {
	doc := document{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, patients.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	patient, err := doc.toPatient()
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *repository) Save(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	if patient.IsNew() {
		patient.Id = uuid.New()
		if _, err := r.collection.InsertOne(ctx, newDocument(patient)); err != nil {
			return nil, r.translateWriteError("error creating patient", err)
		}
	} else {
		selector := bson.M{"_id": patient.Id.String()}
		opts := options.Replace().SetUpsert(true)
		if _, err := r.collection.ReplaceOne(ctx, selector, newDocument(patient), opts); err != nil {
			return nil, r.translateWriteError("error updating patient", err)
		}
	}

	return r.Get(ctx, patient.Id)
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id.String()}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking patient existence: %w", err)
	}
	return count > 0, nil
}

func (r *repository) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return patients.ErrNotFound
	}

	return nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking patient email: %w", err)
	}
	return count > 0, nil
}

func (r *repository) translateWriteError(message string, err error) error {
	if store.IsDuplicateKeyError(err) {
		r.logger.Debugw("rejected duplicate patient email", "error", err)
		return patients.ErrDuplicateEmail
	}
	return fmt.Errorf("%s: %w", message, err)
}
