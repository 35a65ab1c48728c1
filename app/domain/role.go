package domain

import "strings"

// WildcardAccountID is the all-zeros account id meaning "all
// accounts". Roles under it may only be granted to admin identities.
var WildcardAccountID = strings.Repeat("0", IDLength)

// DefaultRoleName is granted to every identity at signup.
const DefaultRoleName = "user"

// SignupRoleName is the role carried by the service token used to
// provision the downstream account during signup.
const SignupRoleName = "id_create"

// Role is a named scope of permissions.
type Role struct {
	ID   uint   `json:"role_id"`
	Name string `json:"name"`
}

// RoleGrant joins an identity to a role for one account. Grants are
// only ever inserted or removed, never mutated.
type RoleGrant struct {
	IdentityID string `json:"identity_id"`
	AccountID  string `json:"account_id"`
	RoleID     uint   `json:"role_id"`
}

// AccountRoles groups the role names an identity holds per account.
type AccountRoles struct {
	AccountID string   `json:"account_id"`
	Roles     []string `json:"roles"`
}
