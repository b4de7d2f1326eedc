package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActor(t *testing.T) {
	t.Run("StartsPending", func(t *testing.T) {
		actor, err := NewActor("Ana", "Ana@Example.com", "hash", RoleVolunteer, 100)

		assert.NoError(t, err)
		assert.Equal(t, ApprovalPending, actor.Status)
		assert.Equal(t, int64(100), actor.Balance)
		assert.Equal(t, "ana@example.com", actor.Email)
	})

	t.Run("AdminRoleRejected", func(t *testing.T) {
		_, err := NewActor("Mallory", "m@example.com", "hash", RoleAdmin, 0)
		assert.Error(t, err)
	})

	t.Run("NegativeGrantRejected", func(t *testing.T) {
		_, err := NewActor("Ana", "ana@example.com", "hash", RoleVolunteer, -1)
		assert.Error(t, err)
	})
}

func TestActor_Resolve(t *testing.T) {
	actor, _ := NewActor("Ana", "ana@example.com", "hash", RolePartner, 100)

	assert.NoError(t, actor.Resolve(ApprovalApproved))
	assert.True(t, actor.IsPubliclyVisible())

	// Explicit admin flip of a resolved decision is allowed.
	assert.NoError(t, actor.Resolve(ApprovalRejected))
	assert.False(t, actor.IsPubliclyVisible())

	assert.Error(t, actor.Resolve(ApprovalPending))
}

func TestActor_IsPubliclyVisible(t *testing.T) {
	admin := &Actor{Role: RoleAdmin, Status: ApprovalPending}
	assert.True(t, admin.IsPubliclyVisible())

	pending := &Actor{Role: RoleVolunteer, Status: ApprovalPending}
	assert.False(t, pending.IsPubliclyVisible())
}
