// Package services holds the client application services: sign-in and
// session handling, the entry write path, and backups.
package services
