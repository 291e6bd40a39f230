package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// DefaultRole é atribuído quando a criação não informa um papel
const DefaultRole = RoleUser

// IsValid verifica se o role pertence à enumeração conhecida
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Status representa a situação da conta do usuário
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// DefaultStatus é atribuído quando a criação não informa um status
const DefaultStatus = StatusActive

// IsValid verifica se o status pertence à enumeração conhecida
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}
