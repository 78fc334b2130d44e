package repository_test

import (
	"context"
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/patients"
	patientsRepository "github.com/ps-health/patient-service/patients/repository"
	patientsTest "github.com/ps-health/patient-service/patients/test"
	dbTest "github.com/ps-health/patient-service/store/test"
)

var _ = Describe("Patients Repository", func() {
	var repo patients.Repository
	var database *mongo.Database
	var collection *mongo.Collection

	BeforeEach(func() {
		var err error
		database = dbTest.GetTestDatabase()
		collection = database.Collection(patients.CollectionName)
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = patientsRepository.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Initialize", func() {
		It("creates a unique index on email", func() {
			cursor, err := collection.Indexes().List(context.Background())
			Expect(err).ToNot(HaveOccurred())

			var indexes []bson.M
			Expect(cursor.All(context.Background(), &indexes)).To(Succeed())

			var found bool
			for _, index := range indexes {
				if index["name"] == "UniqueEmail" {
					found = true
					Expect(index["unique"]).To(BeTrue())
				}
			}
			Expect(found).To(BeTrue())
		})
	})

	Describe("Save", func() {
		It("assigns a new id to a new patient", func() {
			patient := patientsTest.RandomPatient()

			result, err := repo.Save(context.Background(), patient)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result.Id).ToNot(Equal(uuid.Nil))
			Expect(result.Name).To(Equal(patient.Name))
			Expect(result.Email).To(Equal(patient.Email))
			Expect(result.Address).To(Equal(patient.Address))
			Expect(result.DateOfBirth).To(Equal(patient.DateOfBirth))
			Expect(result.RegisteredDate).To(Equal(patient.RegisteredDate))
		})

		It("replaces the stored patient when the id is set", func() {
			created, err := repo.Save(context.Background(), patientsTest.RandomPatient())
			Expect(err).ToNot(HaveOccurred())

			updated := *created
			updated.Address = "2 Updated Street"
			result, err := repo.Save(context.Background(), updated)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Id).To(Equal(created.Id))
			Expect(result.Address).To(Equal("2 Updated Street"))

			count, err := collection.CountDocuments(context.Background(), bson.M{})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(BeEquivalentTo(1))
		})

		It("rejects a second patient with the same email", func() {
			first := patientsTest.RandomPatient()
			_, err := repo.Save(context.Background(), first)
			Expect(err).ToNot(HaveOccurred())

			second := patientsTest.RandomPatient()
			second.Email = first.Email
			result, err := repo.Save(context.Background(), second)
			Expect(err).To(MatchError(patients.ErrDuplicateEmail))
			Expect(result).To(BeNil())
		})
	})

	Context("with stored patients", func() {
		var stored []patients.Patient

		BeforeEach(func() {
			stored = nil
			for i := 0; i < 5; i++ {
				result, err := repo.Save(context.Background(), patientsTest.RandomPatient())
				Expect(err).ToNot(HaveOccurred())
				stored = append(stored, *result)
			}
		})

		Describe("List", func() {
			It("returns every stored patient", func() {
				list, err := repo.List(context.Background())
				Expect(err).ToNot(HaveOccurred())
				Expect(list).To(ConsistOf(stored))
			})
		})

		Describe("Get", func() {
			It("returns the patient with the given id", func() {
				result, err := repo.Get(context.Background(), stored[2].Id)
				Expect(err).ToNot(HaveOccurred())
				Expect(*result).To(Equal(stored[2]))
			})

			It("returns not found for an unknown id", func() {
				result, err := repo.Get(context.Background(), uuid.New())
				Expect(err).To(MatchError(patients.ErrNotFound))
				Expect(result).To(BeNil())
			})
		})

		Describe("Exists", func() {
			It("is true for a stored id", func() {
				Expect(repo.Exists(context.Background(), stored[0].Id)).To(BeTrue())
			})

			It("is false for an unknown id", func() {
				Expect(repo.Exists(context.Background(), uuid.New())).To(BeFalse())
			})
		})

		Describe("ExistsByEmail", func() {
			It("is true for a stored email", func() {
				Expect(repo.ExistsByEmail(context.Background(), stored[1].Email)).To(BeTrue())
			})

			It("is false for an unused email", func() {
				Expect(repo.ExistsByEmail(context.Background(), "unused-"+uuid.NewString()+"@example.com")).To(BeFalse())
			})
		})

		Describe("Remove", func() {
			It("removes the patient", func() {
				Expect(repo.Remove(context.Background(), stored[3].Id)).To(Succeed())

				_, err := repo.Get(context.Background(), stored[3].Id)
				Expect(err).To(MatchError(patients.ErrNotFound))

				list, err := repo.List(context.Background())
				Expect(err).ToNot(HaveOccurred())
				Expect(list).To(HaveLen(len(stored) - 1))
			})

			It("returns not found for an unknown id and leaves storage unchanged", func() {
				Expect(repo.Remove(context.Background(), uuid.New())).To(MatchError(patients.ErrNotFound))

				list, err := repo.List(context.Background())
				Expect(err).ToNot(HaveOccurred())
				Expect(list).To(HaveLen(len(stored)))
			})

			It("reports exactly one successful removal under concurrent deletes", func() {
				var wg sync.WaitGroup
				var removed atomic.Int32
				for i := 0; i < 8; i++ {
					wg.Add(1)
					go func() {
						defer GinkgoRecover()
						defer wg.Done()
						if err := repo.Remove(context.Background(), stored[4].Id); err == nil {
							removed.Add(1)
						} else {
							Expect(err).To(MatchError(patients.ErrNotFound))
						}
					}()
				}
				wg.Wait()
				Expect(removed.Load()).To(BeEquivalentTo(1))
			})
		})
	})
})
