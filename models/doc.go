// Package models defines the document structs of the case-management
// collections for typed callers. Field names follow the stored snake_case
// record fields through their JSON tags.
package models
