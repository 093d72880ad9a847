package models

// Account is a signed-up user. Accounts live outside the per-tenant
// namespace; the account ID doubles as the tenant id for inventory data.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}
