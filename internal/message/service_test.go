// AngelaMos | 2026
// service_test.go

package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/core/coretest"
	"github.com/carterperez-dev/travel-marketplace/internal/user"
)

func setup(t *testing.T) (*Service, Repository, func(name, role string) int64) {
	t.Helper()
	db := coretest.NewDatabase(t)
	users := user.NewRepository(db.DB)

	newUser := func(name, role string) int64 {
		u := &user.User{
			Username:     name,
			PasswordHash: "h",
			Email:        name + "@example.com",
			FullName:     "Full " + name,
			Role:         role,
		}
		require.NoError(t, users.Create(context.Background(), u))
		return u.ID
	}

	repo := NewRepository(db.DB)
	return NewService(repo), repo, newUser
}

func send(t *testing.T, svc *Service, from, to int64, content string) *Message {
	t.Helper()
	m, err := svc.Send(context.Background(), from, SendMessageRequest{ReceiverID: to, Content: content})
	require.NoError(t, err)
	return m
}

func TestConversationIsBidirectionalAndOrdered(t *testing.T) {
	svc, _, newUser := setup(t)
	a := newUser("a", user.RoleTraveler)
	b := newUser("b", user.RoleAgency)
	c := newUser("c", user.RoleTraveler)

	send(t, svc, a, b, "hello")
	send(t, svc, b, a, "hi, how can we help?")
	send(t, svc, c, b, "unrelated")
	send(t, svc, a, b, "a trip to Goa")

	conv, err := svc.Conversation(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, conv, 3)
	assert.Equal(t, "hello", conv[0].Content)
	assert.Equal(t, "hi, how can we help?", conv[1].Content)
	assert.Equal(t, "a trip to Goa", conv[2].Content)

	mirror, err := svc.Conversation(context.Background(), b, a)
	require.NoError(t, err)
	assert.Equal(t, conv, mirror)

	empty, err := svc.Conversation(context.Background(), a, c)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestSendToUnknownReceiver(t *testing.T) {
	svc, _, newUser := setup(t)
	a := newUser("a", user.RoleTraveler)

	_, err := svc.Send(context.Background(), a, SendMessageRequest{ReceiverID: 999, Content: "?"})
	assert.True(t, core.IsConstraintError(err), "got %v", err)
}

func TestMarkReadReceiverOnly(t *testing.T) {
	ctx := context.Background()
	svc, repo, newUser := setup(t)
	a := newUser("a", user.RoleTraveler)
	b := newUser("b", user.RoleAgency)
	m := send(t, svc, a, b, "ping")
	assert.False(t, m.Read)

	_, err := svc.MarkRead(ctx, m.ID, a)
	assert.ErrorIs(t, err, core.ErrNotFound)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, stored.Read)

	read, err := svc.MarkRead(ctx, m.ID, b)
	require.NoError(t, err)
	assert.True(t, read.Read)

	_, err = svc.MarkRead(ctx, 12345, b)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestContactsAndInbox(t *testing.T) {
	ctx := context.Background()
	svc, _, newUser := setup(t)
	a := newUser("a", user.RoleTraveler)
	b := newUser("b", user.RoleAgency)
	c := newUser("c", user.RoleAgency)
	newUser("d", user.RoleTraveler)

	send(t, svc, a, b, "to b")
	send(t, svc, c, a, "from c")
	send(t, svc, a, b, "again")

	contacts, err := svc.Contacts(ctx, a)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, Contact{ID: b, Username: "b", FullName: "Full b", Role: user.RoleAgency}, contacts[0])
	assert.Equal(t, "c", contacts[1].Username)

	inbox, err := svc.Inbox(ctx, a)
	require.NoError(t, err)
	assert.Len(t, inbox, 3)

	bContacts, err := svc.Contacts(ctx, b)
	require.NoError(t, err)
	require.Len(t, bContacts, 1)
	assert.Equal(t, a, bContacts[0].ID)
}
