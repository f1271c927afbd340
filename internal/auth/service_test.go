package auth

import (
	"context"
	"testing"

	"github.com/architect/city-events/internal/common/errors"
	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	failLogin bool
	sessions  map[string]*User
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sessions: make(map[string]*User)}
}

func (p *fakeProvider) Login(ctx context.Context, username string) (*User, string, error) {
	if p.failLogin {
		return nil, "", errors.Internal("login failed", "")
	}
	user := &User{ID: "id-" + username, Username: username, DisplayName: username}
	token := "token-" + username
	p.sessions[token] = user
	return user, token, nil
}

func (p *fakeProvider) Logout(ctx context.Context, token string) error {
	delete(p.sessions, token)
	return nil
}

func (p *fakeProvider) UserForToken(ctx context.Context, token string) (*User, error) {
	return p.sessions[token], nil
}

func TestService_Login_SetsCurrentUser(t *testing.T) {
	service := NewService(newFakeProvider())

	user, token, err := service.Login(context.Background(), "sam")

	assert.NoError(t, err)
	assert.Equal(t, "sam", user.Username)
	assert.NotEmpty(t, token)
	assert.Equal(t, user, service.CurrentUser())
	assert.Equal(t, token, service.Token())
}

func TestService_Login_NotifiesLoadingThenSignedIn(t *testing.T) {
	service := NewService(newFakeProvider())

	var transitions []State
	service.OnAuthStateChange(func(state State) {
		transitions = append(transitions, state)
	})

	_, _, err := service.Login(context.Background(), "sam")
	assert.NoError(t, err)

	assert.Len(t, transitions, 2)
	assert.True(t, transitions[0].IsLoading)
	assert.Nil(t, transitions[0].User)
	assert.False(t, transitions[1].IsLoading)
	assert.Equal(t, "sam", transitions[1].User.Username)
}

func TestService_Login_FailureRevertsToSignedOut(t *testing.T) {
	provider := newFakeProvider()
	provider.failLogin = true
	service := NewService(provider)

	var last State
	service.OnAuthStateChange(func(state State) { last = state })

	_, _, err := service.Login(context.Background(), "sam")

	assert.Error(t, err)
	assert.Nil(t, service.CurrentUser())
	assert.Nil(t, last.User)
	assert.False(t, last.IsLoading)
}

func TestService_Logout_ClearsCurrentUser(t *testing.T) {
	service := NewService(newFakeProvider())
	_, _, err := service.Login(context.Background(), "sam")
	assert.NoError(t, err)

	var last State
	service.OnAuthStateChange(func(state State) { last = state })

	assert.NoError(t, service.Logout(context.Background()))
	assert.Nil(t, service.CurrentUser())
	assert.Empty(t, service.Token())
	assert.Nil(t, last.User)
}

func TestService_OnAuthStateChange_Unsubscribe(t *testing.T) {
	service := NewService(newFakeProvider())

	calls := 0
	unsubscribe := service.OnAuthStateChange(func(State) { calls++ })
	unsubscribe()

	_, _, err := service.Login(context.Background(), "sam")
	assert.NoError(t, err)
	assert.Zero(t, calls)
}

func TestService_ResolveToken(t *testing.T) {
	service := NewService(newFakeProvider())
	_, token, err := service.Login(context.Background(), "sam")
	assert.NoError(t, err)

	userID, ok := service.ResolveToken(token)
	assert.True(t, ok)
	assert.Equal(t, "id-sam", userID)

	_, ok = service.ResolveToken("bogus")
	assert.False(t, ok)
}
