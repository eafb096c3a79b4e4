package models

// RawFriend is the wire shape of a friend relationship: the relationship
// fields plus the embedded recipient user, as sent by friend events and by
// the friend endpoints.
type RawFriend struct {
	Status    FriendStatus `json:"status"`
	CreatedAt int64        `json:"createdAt"`
	UserID    int64        `json:"userId,string"`
	Recipient User         `json:"recipient"`
}
