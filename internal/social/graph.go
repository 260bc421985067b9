// Package social owns the friend-request state machine. The relation between
// any two users is always in exactly one of {none, pending in one direction,
// friends}, mirrored across both users' records. Every operation validates
// first and then mutates deep copies of both records, so callers either get
// two consistently updated records or their inputs untouched.
package social

import (
	"errors"
	"slices"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

var (
	// ErrSelfRequest is returned when a user targets themselves.
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrAlreadyFriends is returned when the two users are already friends.
	ErrAlreadyFriends = errors.New("users are already friends")
	// ErrDuplicateRequest is returned when the sender already has a pending
	// request toward the target.
	ErrDuplicateRequest = errors.New("friend request already sent")
	// ErrReciprocalRequest is returned when the target has already sent the
	// sender a request; the sender should accept that one instead.
	ErrReciprocalRequest = errors.New("this user has already sent you a request")
	// ErrNoPendingRequest is returned by accept/decline/cancel when no pending
	// request exists in the required direction.
	ErrNoPendingRequest = errors.New("no pending friend request between these users")
)

// Pair is the result of a relationship operation: both affected records,
// updated together. First is the user the operation was issued by.
type Pair struct {
	First  *models.User
	Second *models.User
}

// SendRequest moves the (sender, target) relation from none to
// sender-to-target pending. The sender gains the target in outgoing requests
// and the target gains the sender in incoming requests.
func SendRequest(sender, target *models.User) (Pair, error) {
	switch {
	case sender.ID == target.ID:
		return Pair{}, ErrSelfRequest
	case slices.Contains(sender.Friends, target.ID):
		return Pair{}, ErrAlreadyFriends
	case slices.Contains(sender.OutgoingRequests, target.ID):
		return Pair{}, ErrDuplicateRequest
	case slices.Contains(sender.IncomingRequests, target.ID):
		return Pair{}, ErrReciprocalRequest
	}

	s, t := sender.Clone(), target.Clone()
	s.OutgoingRequests = append(s.OutgoingRequests, t.ID)
	t.IncomingRequests = append(t.IncomingRequests, s.ID)
	return Pair{First: s, Second: t}, nil
}

// AcceptRequest confirms a pending request from the requester to the
// accepter. Both users gain each other as friends and the pending entries
// are removed from both sides.
func AcceptRequest(accepter, requester *models.User) (Pair, error) {
	if !slices.Contains(accepter.IncomingRequests, requester.ID) {
		return Pair{}, ErrNoPendingRequest
	}

	a, r := accepter.Clone(), requester.Clone()
	a.Friends = append(a.Friends, r.ID)
	a.IncomingRequests = remove(a.IncomingRequests, r.ID)
	r.Friends = append(r.Friends, a.ID)
	r.OutgoingRequests = remove(r.OutgoingRequests, a.ID)
	return Pair{First: a, Second: r}, nil
}

// DeclineRequest drops a pending request from the requester to the decliner,
// returning the pair to the none state. Nothing is recorded about the
// decline; the requester may send again later.
func DeclineRequest(decliner, requester *models.User) (Pair, error) {
	if !slices.Contains(decliner.IncomingRequests, requester.ID) {
		return Pair{}, ErrNoPendingRequest
	}

	d, r := decliner.Clone(), requester.Clone()
	d.IncomingRequests = remove(d.IncomingRequests, r.ID)
	r.OutgoingRequests = remove(r.OutgoingRequests, d.ID)
	return Pair{First: d, Second: r}, nil
}

// CancelRequest withdraws a pending request the canceler sent to the target,
// returning the pair to the none state.
func CancelRequest(canceler, target *models.User) (Pair, error) {
	if !slices.Contains(canceler.OutgoingRequests, target.ID) {
		return Pair{}, ErrNoPendingRequest
	}

	c, t := canceler.Clone(), target.Clone()
	c.OutgoingRequests = remove(c.OutgoingRequests, t.ID)
	t.IncomingRequests = remove(t.IncomingRequests, c.ID)
	return Pair{First: c, Second: t}, nil
}

func remove(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}
