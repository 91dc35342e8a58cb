// Package mongo implements the storage contracts over a MongoDB database.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/admin-api/internal/storage"
)

// Collection names owned by the platform backend. This service only reads
// them (plus targeted user writes); schema ownership stays with the writers.
const (
	collUsers        = "users"
	collGraduates    = "graduates"
	collCompanies    = "companies"
	collJobs         = "jobs"
	collMatches      = "matches"
	collApplications = "applications"
)

// Provider owns the MongoDB client and hands out entity stores bound to one
// database.
type Provider struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewProvider connects to MongoDB and verifies the connection with a ping.
func NewProvider(ctx context.Context, uri string, dbName string) (*Provider, error) {
	clientOpts := options.Client().ApplyURI(uri)
	if clientOpts.ConnectTimeout == nil {
		clientOpts.SetConnectTimeout(10 * time.Second)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return &Provider{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Stores returns the per-entity stores backed by this provider.
func (p *Provider) Stores() *storage.Stores {
	companies := &companyStore{coll: p.db.Collection(collCompanies)}
	return &storage.Stores{
		Users:        &userStore{coll: p.db.Collection(collUsers)},
		Graduates:    &graduateStore{coll: p.db.Collection(collGraduates)},
		Companies:    companies,
		Jobs:         &jobStore{coll: p.db.Collection(collJobs), companies: companies},
		Matches:      &matchStore{coll: p.db.Collection(collMatches)},
		Applications: &applicationStore{coll: p.db.Collection(collApplications)},
	}
}

// Ping verifies the connection is still alive. Used by the health endpoint.
func (p *Provider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (p *Provider) Close(ctx context.Context) error {
	return p.client.Disconnect(ctx)
}
