package handlers

import "github.com/oksasatya/go-ddd-auth/internal/domain/entity"

type userResource struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResource(u *entity.User) userResource {
	p := u.ToPrimitives()
	return userResource{ID: p.ID, Name: p.Name, Email: p.Email, Roles: p.Roles}
}

func toUserSummary(u *entity.User) userSummary {
	return userSummary{ID: u.ID().Value(), Name: u.Name().Value(), Email: u.Email().Value()}
}
