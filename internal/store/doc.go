// Package store holds the persistence adapters behind the matching service:
// notification settings and the sent-notification ledger in PostgreSQL, a
// Redis cache in front of the settings, and opportunity search in
// Elasticsearch.
package store
