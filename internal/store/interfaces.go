// Package store implements the entity store the reconciliation engine writes
// through: a mapping from slash-joined key paths ("notes/<id>",
// "categories/<name>") to JSON values, with an explicit durable flush.
//
// Two backends are provided. The JSON-file store mirrors the layout of the
// original litejsondb database so an existing db.json can be served as-is;
// the SQLite store keeps the same contract on a single key/value table for
// deployments that prefer a real database file.
package store

import (
	"context"
	"encoding/json"
)

// EntityStore is the five-operation contract consumed by the engine.
//
// A key addresses either a single record ("notes/<id>") or, without the
// second segment, a whole collection ("notes"), in which case Get and Set
// exchange the collection as one JSON object keyed by record id.
//
// Get returns (nil, nil) for a missing key. Mutations may be buffered;
// SaveNow forces every prior Set and Delete onto durable storage, and a
// restart after SaveNow must observe them.
type EntityStore interface {
	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	SaveNow(ctx context.Context) error
}
