package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Point permissions
	PermissionPointRead   Permission = "points.read"
	PermissionPointWrite  Permission = "points.write"
	PermissionPointDelete Permission = "points.delete"

	// Image permissions
	PermissionImageWrite Permission = "images.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleCustomer: {
		PermissionPointRead,
	},
	RoleSeller: {
		PermissionPointRead,
		PermissionPointWrite,
		PermissionPointDelete,
		PermissionImageWrite,
	},
}

// IsValidRole verifica se o valor é um role conhecido
func IsValidRole(r Role) bool {
	return r == RoleCustomer || r == RoleSeller
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
