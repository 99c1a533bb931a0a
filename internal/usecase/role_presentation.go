package usecase

import "rentauth/internal/domain/entity"

// RolePresentation tells the client where to land after login.
type RolePresentation struct {
	RedirectPath    string `json:"redirectPath"`
	IsBusinessUser  bool   `json:"isBusinessUser"`
	HasBusinessInfo bool   `json:"hasBusinessInfo"`
}

const defaultRedirectPath = "/dashboard"

var roleRedirectPaths = map[entity.Role]string{
	entity.RoleCustomer:   "/customer-dashboard",
	entity.RoleOwner:      "/owner-dashboard",
	entity.RoleBusiness:   "/business-dashboard",
	entity.RoleAdmin:      "/admin-dashboard",
	entity.RoleSuperAdmin: "/super-admin-dashboard",
}

// PresentationFor resolves the presentation data for an account from the role table.
func PresentationFor(account *entity.Account) RolePresentation {
	path, ok := roleRedirectPaths[account.Role]
	if !ok {
		path = defaultRedirectPath
	}

	return RolePresentation{
		RedirectPath:    path,
		IsBusinessUser:  account.IsBusinessUser(),
		HasBusinessInfo: account.HasBusinessInfo(),
	}
}
