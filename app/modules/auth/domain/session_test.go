package authdomain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionHasRole(t *testing.T) {
	judge := &Session{UserID: 4, Role: RoleJudge}
	admin := &Session{UserID: 1, Role: RoleAdmin}
	var none *Session

	assert.True(t, judge.HasRole(RoleJudge))
	assert.False(t, judge.HasRole(RoleOrganizer, RoleSponsor))
	assert.True(t, admin.HasRole(RoleOrganizer))
	assert.False(t, none.HasRole(RoleParticipant))

	assert.True(t, judge.IsUser(4))
	assert.False(t, judge.IsUser(5))
	assert.True(t, admin.IsUser(5))
	assert.False(t, none.IsUser(4))
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), &Session{UserID: 9, Role: RoleParticipant})
	s, ok := SessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(9), s.UserID)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("judge")
	assert.True(t, ok)
	assert.Equal(t, RoleJudge, r)

	_, ok = ParseRole("Spectator")
	assert.False(t, ok)
}
