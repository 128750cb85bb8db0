package domain

// User models a credential record. Accounts are provisioned out-of-band;
// this service only reads them during login.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
