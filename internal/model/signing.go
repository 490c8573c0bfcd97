package model

import "time"

// SessionStatus : lifecycle of a signing session on the server
type SessionStatus string

const (
	SessionCreated   SessionStatus = "created"
	SessionDelivered SessionStatus = "delivered"
)

// SigningSession : server-side record addressed by an opaque bearer token
type SigningSession struct {
	UUID             string        `db:"uuid" json:"uuid"`
	Token            string        `db:"token" json:"token"`
	FilenameOriginal string        `db:"filename_original" json:"filename_original"`
	SizeBytes        int64         `db:"size_bytes" json:"size_bytes"`
	Sha256           string        `db:"sha256" json:"sha256"`
	StoragePath      string        `db:"storage_path" json:"storage_path"`
	PageCount        int           `db:"page_count" json:"page_count"`
	Fields           FieldList     `db:"fields" json:"fields"`
	Status           SessionStatus `db:"status" json:"status"`
	CreatedBy        string        `db:"created_by" json:"created_by"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	DeliveredAt      *time.Time    `db:"delivered_at" json:"delivered_at,omitempty"`
}

// SignPath : relative capability path handed back to the client
func (s *SigningSession) SignPath() string {
	return "/sign/" + s.Token
}

// RecipientType : which directory a delivery recipient belongs to
type RecipientType string

const (
	RecipientStaff  RecipientType = "staff"
	RecipientClient RecipientType = "client"
)

func (t RecipientType) Valid() bool {
	return t == RecipientStaff || t == RecipientClient
}

// Delivery : association of an issued token with a staff or client record.
// Exactly one of StaffID / ClientID is set, matching RecipientType.
type Delivery struct {
	UUID          string        `db:"uuid" json:"uuid"`
	SessionToken  string        `db:"session_token" json:"session_token"`
	FileName      string        `db:"file_name" json:"file_name"`
	RecipientType RecipientType `db:"recipient_type" json:"recipient_type"`
	StaffID       *int64        `db:"staff_id" json:"staff_id,omitempty"`
	ClientID      *string       `db:"client_id" json:"client_id,omitempty"`
	CreatedBy     string        `db:"created_by" json:"created_by"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// UploadedDocument : document bytes received with a link request
type UploadedDocument struct {
	FileName string
	MimeType string
	Data     []byte
}
