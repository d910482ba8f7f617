// Package links synthesises search-provider links for places without an
// explicit URL.
package links

import (
	"net/url"

	"github.com/alexanderramin/londonapp/internal/domain"
)

const (
	DefaultSearch    = "https://www.tripadvisor.com/Search"
	DefaultMapSearch = "https://www.google.com/maps"
)

// Providers holds the base URLs of the fallback search providers.
type Providers struct {
	Search    string
	MapSearch string
}

// DefaultProviders returns the travel-search and map-search defaults.
func DefaultProviders() Providers {
	return Providers{Search: DefaultSearch, MapSearch: DefaultMapSearch}
}

// General returns explicit, or a travel-search query for "<name> London".
func (p Providers) General(name, explicit string) string {
	return domain.CoalesceStr(explicit, query(p.Search, name+" London"))
}

// Map returns explicit, or a map-search query for "<name>, London". The
// comma differs from General on purpose: marker popups have always
// searched the place as "<name>, London".
func (p Providers) Map(name, explicit string) string {
	return domain.CoalesceStr(explicit, query(p.MapSearch, name+", London"))
}

func query(base, q string) string {
	return base + "?q=" + url.QueryEscape(q)
}
