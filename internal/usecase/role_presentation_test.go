package usecase

import (
	"testing"

	"rentauth/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPresentationFor(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		want    RolePresentation
	}{
		{
			name:    "customer",
			account: &entity.Account{Role: entity.RoleCustomer},
			want:    RolePresentation{RedirectPath: "/customer-dashboard"},
		},
		{
			name: "owner with business info",
			account: &entity.Account{
				Role:            entity.RoleOwner,
				BusinessName:    "Tools",
				BusinessLicense: "L-1",
				BusinessType:    "TOOLS",
			},
			want: RolePresentation{RedirectPath: "/owner-dashboard", IsBusinessUser: true, HasBusinessInfo: true},
		},
		{
			name:    "business without license",
			account: &entity.Account{Role: entity.RoleBusiness, BusinessName: "Rent Co"},
			want:    RolePresentation{RedirectPath: "/business-dashboard", IsBusinessUser: true},
		},
		{
			name:    "super admin",
			account: &entity.Account{Role: entity.RoleSuperAdmin},
			want:    RolePresentation{RedirectPath: "/super-admin-dashboard"},
		},
		{
			name:    "unknown role falls back",
			account: &entity.Account{Role: entity.Role("GUEST")},
			want:    RolePresentation{RedirectPath: "/dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PresentationFor(tt.account))
		})
	}
}
