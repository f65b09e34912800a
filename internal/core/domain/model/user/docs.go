// Package user contains the User account entity and its Role value object.
// Users authenticate with email and password and carry a role (ADMIN or
// STAFF) that gates access to order operations. The core treats users as
// read-only: they are looked up during login and never mutated.
package user
