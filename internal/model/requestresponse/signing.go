package requestresponse

import (
	"encoding/json"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
)

// GenerateSignLinkResponse : relative capability path of a new signing session
type GenerateSignLinkResponse struct {
	Link string `json:"link" example:"/sign/9f2c4e0b7a1d4c3e8b6f5a2d1c0e9b8a"`
}

// SaveToFilesRequest : associates an issued token with a staff or client record.
// recipientId is a JSON number for staff and a JSON string for clients.
type SaveToFilesRequest struct {
	TokenID       string          `json:"tokenId" example:"9f2c4e0b7a1d4c3e8b6f5a2d1c0e9b8a"`
	FileName      string          `json:"fileName" example:"contract.pdf"`
	RecipientType string          `json:"recipientType" example:"staff"`
	RecipientID   json.RawMessage `json:"recipientId" swaggertype:"string" example:"42"`
}

// MessageResponse : confirmation or error message
type MessageResponse struct {
	Message string `json:"message" example:"Saved to files"`
}

// ErrorResponse : error envelope written by util.HandleError
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"at least one signature field is required"`
	Code    int    `json:"code" example:"400"`
}

// SigningSessionResponse : what a token holder sees
type SigningSessionResponse struct {
	Data SigningSessionData `json:"data"`
}

type SigningSessionData struct {
	FileName    string        `json:"fileName" example:"contract.pdf"`
	PageCount   int           `json:"pageCount" example:"2"`
	Fields      []model.Field `json:"fields"`
	Status      string        `json:"status" example:"created"`
	DocumentURL string        `json:"documentUrl"`
	CreatedAt   string        `json:"createdAt" example:"2025-08-23T12:34:56Z"`
	ExpiresIn   string        `json:"expiresIn,omitempty" example:"300"`
}

// SigningSessionResponseFromModel : converts model.SigningSession for the JSON response
func SigningSessionResponseFromModel(session *model.SigningSession, documentURL string, expiresIn string) SigningSessionResponse {
	fields := []model.Field(session.Fields)
	if fields == nil {
		fields = []model.Field{}
	}
	return SigningSessionResponse{
		Data: SigningSessionData{
			FileName:    session.FilenameOriginal,
			PageCount:   session.PageCount,
			Fields:      fields,
			Status:      string(session.Status),
			DocumentURL: documentURL,
			CreatedAt:   session.CreatedAt.Format(time.RFC3339),
			ExpiresIn:   expiresIn,
		},
	}
}
