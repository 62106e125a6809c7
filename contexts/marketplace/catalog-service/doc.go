// Package catalogservice owns the product catalog inside the marketplace
// context.
//
// The module holds every listing in one in-memory store, allocates monotonic
// product ids under the store lock, and answers the three buyer-facing
// queries (name substring, category substring, maximum price). Inventory
// adjustments and review write-backs from the other marketplace services
// enter through the Inventory and Reviews ports so the sold-out flag is
// always recomputed next to the quantity change.
package catalogservice
