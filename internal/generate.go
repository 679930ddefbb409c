// Package internal hosts the ent codegen directive. Generated code lands
// in internal/repo and is not committed.
package internal

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo --feature sql/upsert,sql/lock ./schema
