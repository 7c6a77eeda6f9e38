// Package service implements the provider registry: registration, lookup,
// intent-based discovery and tool execution routing by "service.tool" ID.
package service
