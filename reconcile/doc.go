// Package reconcile merges a platform's saved-post listing with the
// records already enriched for an owner.
package reconcile
