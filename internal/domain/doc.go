// Package domain contains the types shared by every resource: the generic
// Record, the authenticated Principal, and the sentinel errors that inbound
// adapters map to response codes. Field rules live in domain/validation and
// the per-resource field tables in domain/schema.
package domain
