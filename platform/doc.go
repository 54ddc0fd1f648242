// Package platform abstracts the external media platform: listing an
// owner's saved posts and downloading post media. The real Graph API
// client lives in the instagram subpackage; SimulatedSource stands in for
// the saved-post listing the API does not expose.
package platform
