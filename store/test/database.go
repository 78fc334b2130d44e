package test

import (
	"context"
	"fmt"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ps-health/patient-service/store"
	"github.com/ps-health/patient-service/test"
)

const (
	mongoTestHost = "mongodb://127.0.0.1:27017"
	mongoTimeout  = time.Second * 5
)

var (
	database *mongo.Database
)

// SetupDatabase connects to the mongo instance named by TEST_MONGO_URI (or a local
// default) and skips the suite when it cannot be reached.
func SetupDatabase() {
	uri := MongoURI()
	client, err := store.Connect(uri)
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		Skip(fmt.Sprintf("mongo is not reachable at %s: %v", uri, err))
	}

	databaseName := fmt.Sprintf("patients_test_%s_%d", test.Faker.Letter(), GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func MongoURI() string {
	if uri := os.Getenv("TEST_MONGO_URI"); uri != "" {
		return uri
	}
	return mongoTestHost
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	Expect(database).ToNot(BeNil())
	return database
}
