package test

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// Date returns midnight UTC of a random day between the start of fromYear and the end
// of toYear.
func Date(fromYear, toYear int) time.Time {
	year := Faker.IntBetween(fromYear, toYear)
	month := time.Month(Faker.IntBetween(1, 12))
	day := Faker.IntBetween(1, 28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// UniqueEmail prefixes a random email with a counter so fixtures never collide on
// unique email constraints.
func UniqueEmail() string {
	return fmt.Sprintf("%d.%s", emailSequence.Add(1), Faker.Internet().Email())
}

var emailSequence atomic.Int64
