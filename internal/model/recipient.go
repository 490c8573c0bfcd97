package model

// Staff : internal user, referenced by integer id
type Staff struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// Client : agency client, referenced by an opaque string id
type Client struct {
	ID           string `db:"id" json:"id"`
	BusinessName string `db:"business_name" json:"name"`
	Email        string `db:"email" json:"email"`
}
