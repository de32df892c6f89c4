package model

import (
	"errors"
	"fmt"
	"strings"
)

// Resource is one of the permissioned collections.
type Resource string

const (
	ResourceUsers           Resource = "users"
	ResourceRoles           Resource = "roles"
	ResourceDispensaries    Resource = "dispensaries"
	ResourceServiceRequests Resource = "serviceRequests"
	ResourceInvoices        Resource = "invoices"
)

// Verb is a CRUD action on a resource.
type Verb string

const (
	VerbCreate Verb = "create"
	VerbRead   Verb = "read"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

var (
	allResources = []Resource{ResourceUsers, ResourceRoles, ResourceDispensaries, ResourceServiceRequests, ResourceInvoices}
	allVerbs     = []Verb{VerbCreate, VerbRead, VerbUpdate, VerbDelete}
)

// Permission is a (resource, verb) pair. Using a struct instead of a raw
// "resource.verb" string means a typo'd token cannot reach a membership check.
type Permission struct {
	Resource Resource
	Verb     Verb
}

// Perm is shorthand for building a Permission at a route definition.
func Perm(r Resource, v Verb) Permission {
	return Permission{Resource: r, Verb: v}
}

// Token renders the permission in its wire form, e.g. "invoices.read".
func (p Permission) Token() string {
	return string(p.Resource) + "." + string(p.Verb)
}

var ErrInvalidPermission = errors.New("invalid permission token")

// ParsePermission parses a "resource.verb" token against the closed sets.
func ParsePermission(token string) (Permission, error) {
	dot := strings.LastIndex(token, ".")
	if dot < 0 {
		return Permission{}, fmt.Errorf("%w: %q", ErrInvalidPermission, token)
	}
	p := Permission{Resource: Resource(token[:dot]), Verb: Verb(token[dot+1:])}
	if !validResource(p.Resource) || !validVerb(p.Verb) {
		return Permission{}, fmt.Errorf("%w: %q", ErrInvalidPermission, token)
	}
	return p, nil
}

func validResource(r Resource) bool {
	for _, known := range allResources {
		if known == r {
			return true
		}
	}
	return false
}

func validVerb(v Verb) bool {
	for _, known := range allVerbs {
		if known == v {
			return true
		}
	}
	return false
}

// AllPermissions returns every (resource, verb) pair in a fixed order.
func AllPermissions() []Permission {
	perms := make([]Permission, 0, len(allResources)*len(allVerbs))
	for _, r := range allResources {
		for _, v := range allVerbs {
			perms = append(perms, Permission{Resource: r, Verb: v})
		}
	}
	return perms
}

// rolePermissions is the static role-to-permission-set table. It is defined
// once at startup and never edited at runtime. Each role's set contains the
// whole set of the role below it.
var rolePermissions = map[string]map[Permission]struct{}{}

func init() {
	userPerms := []Permission{
		Perm(ResourceDispensaries, VerbRead),
		Perm(ResourceServiceRequests, VerbRead),
		Perm(ResourceServiceRequests, VerbCreate),
		Perm(ResourceInvoices, VerbRead),
	}
	managerPerms := append([]Permission{
		Perm(ResourceUsers, VerbRead),
		Perm(ResourceRoles, VerbRead),
		Perm(ResourceDispensaries, VerbCreate),
		Perm(ResourceDispensaries, VerbUpdate),
		Perm(ResourceServiceRequests, VerbUpdate),
		Perm(ResourceInvoices, VerbCreate),
		Perm(ResourceInvoices, VerbUpdate),
	}, userPerms...)

	rolePermissions[RoleUser] = permSet(userPerms)
	rolePermissions[RoleManager] = permSet(managerPerms)
	rolePermissions[RoleAdmin] = permSet(AllPermissions())
}

func permSet(perms []Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// RoleHasPermission reports whether the role's permission set contains p.
// Unknown roles have no permissions. Membership is exact, no wildcards.
func RoleHasPermission(roleCode string, p Permission) bool {
	set, ok := rolePermissions[roleCode]
	if !ok {
		return false
	}
	_, ok = set[p]
	return ok
}

// PermissionTokens returns the role's permission tokens in the fixed
// AllPermissions order, for login and validate-token responses.
func PermissionTokens(roleCode string) []string {
	tokens := []string{}
	for _, p := range AllPermissions() {
		if RoleHasPermission(roleCode, p) {
			tokens = append(tokens, p.Token())
		}
	}
	return tokens
}
