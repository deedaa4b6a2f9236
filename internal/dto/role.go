package dto

import "github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"

type PermissionDTO struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params" swaggertype:"object"`
}

type RoleDTO struct {
	ID          string          `json:"id"`
	Permissions []PermissionDTO `json:"permissions"`
}

func RoleFromEntity(role ledger.Role) (RoleDTO, error) {
	perms := make([]PermissionDTO, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		params := p.Params
		if params == nil {
			params = map[string]any{}
		}
		perms = append(perms, PermissionDTO{Name: p.Name, Params: params})
	}
	return RoleDTO{ID: role.ID, Permissions: perms}, nil
}
