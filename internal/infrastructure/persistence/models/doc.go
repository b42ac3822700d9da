// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel and AggregateModel
//   - identity.go: users
//   - catalog.go: technologies and time zones
//   - profile.go: skills and certifications
//   - job.go: postings (with technology and time zone rows), invitations, proposals, milestones
//   - contract.go: contracts and timesheets
//
// AllModels lists every model in dependency order for AutoMigrate.
package models
