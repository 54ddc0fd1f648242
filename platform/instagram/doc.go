// Package instagram is a thin client for the Instagram Graph API: user
// info, the user's media listing, and the long-lived token exchange.
package instagram
