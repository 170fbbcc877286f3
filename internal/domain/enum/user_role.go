package enum

import "encoding/json"

// UserRole represents the role of a back-office user
type UserRole int

const (
	UserRoleAdmin    UserRole = 0
	UserRoleManager  UserRole = 1
	UserRoleEmployee UserRole = 2
)

// ParseUserRole maps a wire value back to its role. The second return is
// false for unknown values.
func ParseUserRole(s string) (UserRole, bool) {
	switch s {
	case "admin":
		return UserRoleAdmin, true
	case "manager":
		return UserRoleManager, true
	case "employee":
		return UserRoleEmployee, true
	}
	return UserRoleEmployee, false
}

func (r UserRole) String() string {
	return [...]string{"admin", "manager", "employee"}[r]
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = UserRole(i)
		return nil
	}
	switch str {
	case "admin":
		*r = UserRoleAdmin
	case "manager":
		*r = UserRoleManager
	case "employee":
		*r = UserRoleEmployee
	}
	return nil
}
