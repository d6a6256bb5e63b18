// Package store holds the process-wide in-memory stores. There is no
// persistence: a restart discards every mutation, including placed bids and
// created listings.
package store

import (
	"log"
	"time"

	"nectar-house-api/internal/domain/artifacts"
	"nectar-house-api/internal/domain/auctions"
	"nectar-house-api/internal/domain/tokenization"
	"nectar-house-api/internal/domain/users"
)

var (
	Artifacts    *artifacts.Store
	Auctions     *auctions.Store
	Tokenization *tokenization.Store
	Users        *users.Store
)

// Init creates fresh stores and loads the seed data. Calling it again
// resets all state, which tests rely on.
func Init() {
	Artifacts = artifacts.NewStore()
	Auctions = auctions.NewStore()
	Tokenization = tokenization.NewStore(tokenization.NewMockLedger(time.Now().UnixNano()))
	Users = users.NewStore()

	seed()
	log.Println("In-memory stores initialized with seed data")
}
