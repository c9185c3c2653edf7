// Package main provides the entry point for the IAM admin front-end.
// It initializes and runs a web server using the Fiber framework that lets
// operators sign in against a remote identity-and-access-management API and
// manage users, roles, and the audit trail through a web interface. All
// durable state lives behind that API; the server keeps only browser
// sessions in a pluggable key-value store.
package main
