// Package populate orchestrates sermon harvesting: it walks the
// registered channels, assesses their recent uploads against the
// sermon criteria and inserts the accepted videos, cross-linked to
// their channel and church.
package populate
