// Package videostore persists video resources in Pebble under the
// video/{id} keyspace. Videos are stored as JSON; writes overwrite by id.
package videostore
