// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: AggregateModel, the columns shared by every table
// - identity.go: User accounts
// - hostel.go: Rooms, tenants, bills and complaints
package models
