package storage

// Persisted state layout: one JSON-encoded blob per entity kind, each
// independently overwritten whenever its in-memory counterpart changes.
const (
	KeyCompanies     = "companies"
	KeyProducts      = "products"
	KeyInvoices      = "invoices"
	KeySales         = "sales"
	KeyNotifications = "notifications"
	KeySettings      = "settings"
	KeyPriceLists    = "priceLists"
	KeyUsers         = "users"
	KeySessionUser   = "user"
)

// KV is the persistence surface the store writes through: JSON values
// addressed by string key. Implementations must tolerate absent keys.
type KV interface {
	// Get unmarshals the value stored under key into out. It returns false
	// when the key has never been written.
	Get(key string, out interface{}) (bool, error)
	// Set marshals v and overwrites the value stored under key.
	Set(key string, v interface{}) error
	// Delete removes the value stored under key, if any.
	Delete(key string) error
}
