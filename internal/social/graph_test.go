package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

func user(id string) *models.User {
	return &models.User{
		ID:               id,
		Friends:          []string{},
		IncomingRequests: []string{},
		OutgoingRequests: []string{},
	}
}

func TestSendRequest(t *testing.T) {
	a, b := user("a"), user("b")

	pair, err := SendRequest(a, b)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, pair.First.OutgoingRequests)
	assert.Equal(t, []string{"a"}, pair.Second.IncomingRequests)
	assert.Empty(t, pair.First.Friends)
	assert.Empty(t, pair.Second.Friends)

	// Inputs are never mutated; the caller decides what to persist.
	assert.Empty(t, a.OutgoingRequests)
	assert.Empty(t, b.IncomingRequests)
}

func TestSendRequestRejections(t *testing.T) {
	tests := []struct {
		name    string
		sender  func() *models.User
		target  func() *models.User
		wantErr error
	}{
		{
			name:    "to yourself",
			sender:  func() *models.User { return user("a") },
			target:  func() *models.User { return user("a") },
			wantErr: ErrSelfRequest,
		},
		{
			name: "already friends",
			sender: func() *models.User {
				u := user("a")
				u.Friends = []string{"b"}
				return u
			},
			target:  func() *models.User { return user("b") },
			wantErr: ErrAlreadyFriends,
		},
		{
			name: "duplicate request",
			sender: func() *models.User {
				u := user("a")
				u.OutgoingRequests = []string{"b"}
				return u
			},
			target:  func() *models.User { return user("b") },
			wantErr: ErrDuplicateRequest,
		},
		{
			name: "reciprocal request",
			sender: func() *models.User {
				u := user("a")
				u.IncomingRequests = []string{"b"}
				return u
			},
			target:  func() *models.User { return user("b") },
			wantErr: ErrReciprocalRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, target := tt.sender(), tt.target()
			senderBefore, targetBefore := sender.Clone(), target.Clone()

			_, err := SendRequest(sender, target)
			require.ErrorIs(t, err, tt.wantErr)

			// A rejected operation leaves both records completely unmodified.
			assert.Equal(t, senderBefore, sender)
			assert.Equal(t, targetBefore, target)
		})
	}
}

func TestSendThenReciprocalSendFails(t *testing.T) {
	a, b := user("a"), user("b")

	pair, err := SendRequest(a, b)
	require.NoError(t, err)

	_, err = SendRequest(pair.Second, pair.First)
	assert.ErrorIs(t, err, ErrReciprocalRequest, "a counter-request must not create a second pending edge")
}

func TestAcceptRequest(t *testing.T) {
	a, b := user("a"), user("b")

	sent, err := SendRequest(a, b)
	require.NoError(t, err)

	accepted, err := AcceptRequest(sent.Second, sent.First)
	require.NoError(t, err)

	accepter, requester := accepted.First, accepted.Second
	assert.Equal(t, []string{"a"}, accepter.Friends)
	assert.Equal(t, []string{"b"}, requester.Friends)
	assert.Empty(t, accepter.IncomingRequests)
	assert.Empty(t, accepter.OutgoingRequests)
	assert.Empty(t, requester.IncomingRequests)
	assert.Empty(t, requester.OutgoingRequests)
}

func TestAcceptWithoutPendingRequest(t *testing.T) {
	a, b := user("a"), user("b")

	_, err := AcceptRequest(a, b)
	assert.ErrorIs(t, err, ErrNoPendingRequest)
}

func TestAcceptWrongDirection(t *testing.T) {
	a, b := user("a"), user("b")

	sent, err := SendRequest(a, b)
	require.NoError(t, err)

	// The sender cannot accept their own request.
	_, err = AcceptRequest(sent.First, sent.Second)
	assert.ErrorIs(t, err, ErrNoPendingRequest)
}

func TestDeclineRequest(t *testing.T) {
	a, b := user("a"), user("b")

	sent, err := SendRequest(a, b)
	require.NoError(t, err)

	declined, err := DeclineRequest(sent.Second, sent.First)
	require.NoError(t, err)

	assert.Empty(t, declined.First.IncomingRequests)
	assert.Empty(t, declined.Second.OutgoingRequests)

	// Nothing is recorded about the decline: the requester may re-send.
	_, err = SendRequest(declined.Second, declined.First)
	assert.NoError(t, err)
}

func TestCancelRequestRoundTrip(t *testing.T) {
	a, b := user("a"), user("b")

	sent, err := SendRequest(a, b)
	require.NoError(t, err)

	canceled, err := CancelRequest(sent.First, sent.Second)
	require.NoError(t, err)

	// Cancel restores the exact pre-request state on both records.
	assert.Equal(t, a, canceled.First)
	assert.Equal(t, b, canceled.Second)
}

func TestCancelWithoutPendingRequest(t *testing.T) {
	a, b := user("a"), user("b")

	_, err := CancelRequest(a, b)
	assert.ErrorIs(t, err, ErrNoPendingRequest)
}

func TestPairStateIsAlwaysConsistent(t *testing.T) {
	// Walk the full lifecycle and check the mirror invariant at every step:
	// if a has b in outgoing, b has a in incoming, and so on.
	a, b := user("a"), user("b")

	sent, err := SendRequest(a, b)
	require.NoError(t, err)
	assert.Contains(t, sent.First.OutgoingRequests, "b")
	assert.Contains(t, sent.Second.IncomingRequests, "a")

	accepted, err := AcceptRequest(sent.Second, sent.First)
	require.NoError(t, err)
	assert.Contains(t, accepted.First.Friends, "a")
	assert.Contains(t, accepted.Second.Friends, "b")

	// Once friends, further requests in either direction are rejected.
	_, err = SendRequest(accepted.Second, accepted.First)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}
