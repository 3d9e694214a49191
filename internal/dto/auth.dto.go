package dto

type AuthUserDTO struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type AuthResultDTO struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}
