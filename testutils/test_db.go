package testutils

import (
	"context"
	"log"

	"github.com/itbasis/go-clock"
	"github.com/mww/yahoo_sync/containers"
	"github.com/mww/yahoo_sync/crypt"
	"github.com/mww/yahoo_sync/db"
)

// TestEncryptionKey is a fixed 256-bit key (base64) used by all tests so
// that encrypted fixtures round-trip across packages.
const TestEncryptionKey = "YWFhYWFhYWFhYWFhYWFhYWFhYWFhYWFhYWFhYWFhYWE="

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
	Codec     *crypt.Codec
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	codec, err := crypt.New(TestEncryptionKey)
	if err != nil {
		log.Fatalf("error creating codec for test db: %v", err)
	}

	db, err := db.New(context.Background(), container.ConnectionString(), codec, clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
		Codec:     codec,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}
