package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/session"
	"go-secadmin-ws/pkg/jwt"
)

func TestAnonymousDeniesEverything(t *testing.T) {
	t.Parallel()

	anon := session.Anonymous()
	require.False(t, anon.IsAuthenticated())
	for _, p := range model.AllPermissions() {
		require.False(t, anon.HasPermission(p), "anonymous granted %s", p.Token())
	}
}

func TestZeroValueIsAnonymous(t *testing.T) {
	t.Parallel()

	var s session.Session
	require.False(t, s.IsAuthenticated())
	require.False(t, s.HasPermission(model.Perm(model.ResourceUsers, model.VerbRead)))
}

func TestFromClaimsFollowsRoleTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		roleCode string
		allowed  model.Permission
		denied   model.Permission
	}{
		{
			name:     "admin deletes users",
			roleCode: model.RoleAdmin,
			allowed:  model.Perm(model.ResourceUsers, model.VerbDelete),
			denied:   model.Permission{}, // admin has the full set; check nothing extra
		},
		{
			name:     "manager updates invoices but cannot delete users",
			roleCode: model.RoleManager,
			allowed:  model.Perm(model.ResourceInvoices, model.VerbUpdate),
			denied:   model.Perm(model.ResourceUsers, model.VerbDelete),
		},
		{
			name:     "user reads dispensaries but cannot update them",
			roleCode: model.RoleUser,
			allowed:  model.Perm(model.ResourceDispensaries, model.VerbRead),
			denied:   model.Perm(model.ResourceDispensaries, model.VerbUpdate),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := session.FromClaims(&jwt.Claims{
				UserID:   uuid.New(),
				Email:    "someone@myers.security",
				RoleCode: tt.roleCode,
			})
			require.True(t, sess.IsAuthenticated())
			require.True(t, sess.HasPermission(tt.allowed))
			if (tt.denied != model.Permission{}) {
				require.False(t, sess.HasPermission(tt.denied))
			}
		})
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	t.Parallel()

	sess := session.FromClaims(&jwt.Claims{UserID: uuid.New(), RoleCode: "owner"})
	require.True(t, sess.IsAuthenticated())
	for _, p := range model.AllPermissions() {
		require.False(t, sess.HasPermission(p))
	}
}
