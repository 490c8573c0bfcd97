package requestresponse

import "github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"

// StaffOption : entry of the staff recipient picker
type StaffOption struct {
	ID   int64  `json:"id" example:"42"`
	Name string `json:"name" example:"Jane Doe"`
}

// ClientOption : entry of the client recipient picker
type ClientOption struct {
	ID   string `json:"id" example:"clx9a8b7c6d5e4f3"`
	Name string `json:"name" example:"Acme Roofing"`
}

// ListStaffResponse : GET /api/admin/users
type ListStaffResponse struct {
	Data []StaffOption `json:"data"`
}

// ListClientsResponse : GET /api/admin/clients
type ListClientsResponse struct {
	Data []ClientOption `json:"data"`
}

func StaffOptionsFromModel(staff []model.Staff) []StaffOption {
	out := make([]StaffOption, 0, len(staff))
	for _, s := range staff {
		name := s.Name
		if name == "" {
			name = s.Email
		}
		out = append(out, StaffOption{ID: s.ID, Name: name})
	}
	return out
}

func ClientOptionsFromModel(clients []model.Client) []ClientOption {
	out := make([]ClientOption, 0, len(clients))
	for _, c := range clients {
		name := c.BusinessName
		if name == "" {
			name = c.Email
		}
		out = append(out, ClientOption{ID: c.ID, Name: name})
	}
	return out
}
