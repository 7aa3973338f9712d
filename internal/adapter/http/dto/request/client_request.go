package request

import "strings"

// ClientRequest is the payload for creating or updating a client.
type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

func (r ClientRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r ClientRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}

func (r ClientRequest) ResolveEmail() *string {
	if e := strings.TrimSpace(r.Email); e != "" {
		return &e
	}
	return nil
}
