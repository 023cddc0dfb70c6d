package dto

import "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/user"

// UserDTO is the public shape of a user; the password hash never leaves
// the domain layer.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:       u.ID(),
		Username: u.Username(),
		Role:     u.Role().String(),
	}
}

func ToUserDTOList(users []*user.User) []*UserDTO {
	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}
