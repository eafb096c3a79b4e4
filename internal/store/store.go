package store

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrUnknownAction means Dispatch received an action type the reducer has no
// case for. That only happens when a new action type is added without wiring
// it, so it should fail loudly instead of being swallowed.
var ErrUnknownAction = errors.New("unknown action")

// Context owns every entity store for one client session. All mutations go
// through Dispatch; reads go through the store accessors. A single Dispatch
// call is the batching boundary: every action in the call is applied under
// one lock and subscribers run once afterwards, so a multi-store write can
// never be observed half-applied.
type Context struct {
	mu    sync.RWMutex
	sugar *zap.SugaredLogger

	Users    *Users
	Servers  *Servers
	Channels *Channels
	Friends  *Friends
	Inbox    *Inbox
	Roles    *ServerRoles
	Account  *Account

	subMutex    sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

func NewContext(sugar *zap.SugaredLogger) *Context {
	c := &Context{
		sugar:       sugar,
		subscribers: make(map[int]func()),
	}
	c.Users = newUsers(c)
	c.Servers = newServers(c)
	c.Channels = newChannels(c)
	c.Friends = newFriends(c)
	c.Inbox = newInbox(c)
	c.Roles = newServerRoles(c)
	c.Account = newAccount(c)
	return c
}

// Dispatch applies the given actions in order as one atomic batch. Unknown
// action types abort the batch at the point they are hit; everything applied
// before that stays applied, matching the throw-on-unknown contract.
func (c *Context) Dispatch(actions ...Action) error {
	if len(actions) == 0 {
		return nil
	}

	c.mu.Lock()
	applied := false
	var err error
	for _, action := range actions {
		c.sugar.Debugw("dispatch", "action", action.ActionName(), "payload", action)
		if applyErr := c.apply(action); applyErr != nil {
			err = applyErr
			break
		}
		applied = true
	}
	c.mu.Unlock()

	if applied {
		c.notify()
	}
	return err
}

func (c *Context) apply(action Action) error {
	switch a := action.(type) {
	case AddUser:
		c.Users.add(a.User)
	case AddUsers:
		for _, user := range a.Users {
			c.Users.add(user)
		}
	case UpdateUser:
		c.Users.update(a.ID, a.Patch)
	case DeleteUser:
		c.Users.delete(a.ID)
	case UpdateUserPresence:
		c.Users.mergePresence(a.Update)
	case SetUserInboxChannel:
		c.Users.setInboxChannel(a.UserID, a.ChannelID)

	case AddServer:
		c.Servers.add(a.Server)
	case AddServers:
		for _, server := range a.Servers {
			c.Servers.add(server)
		}
	case UpdateServer:
		c.Servers.update(a.ID, a.Patch)
	case DeleteServer:
		c.deleteServerCascade(a.ID)

	case AddChannel:
		c.Channels.add(a.Channel)
	case AddChannels:
		for _, channel := range a.Channels {
			c.Channels.add(channel)
		}
	case UpdateChannel:
		c.Channels.update(a.ID, a.Patch)
	case DeleteChannel:
		c.deleteChannelCascade(a.ID)

	case AddFriend:
		c.Friends.add(a.Friend)
	case AddFriends:
		for _, friend := range a.Friends {
			c.Friends.add(friend)
		}
	case UpdateFriend:
		c.Friends.update(a.RecipientID, a.Patch)
	case DeleteFriend:
		c.Friends.delete(a.RecipientID)

	case AddInboxEntry:
		c.Inbox.add(a.Entry)
	case AddInboxEntries:
		for _, entry := range a.Entries {
			c.Inbox.add(entry)
		}
	case UpdateInboxEntry:
		c.Inbox.update(a.ChannelID, a.Patch)
	case DeleteInboxEntry:
		c.Inbox.delete(a.ChannelID)

	case AddServerRole:
		c.Roles.add(a.Role)
	case AddServerRoles:
		for _, role := range a.Roles {
			c.Roles.add(role)
		}
	case UpdateServerRole:
		c.Roles.update(a.ID, a.Patch)
	case DeleteServerRole:
		c.Roles.delete(a.ID)

	case SetAccount:
		c.Account.set(a.Account)
	case UpdateAccount:
		c.Account.update(a.Patch)
	case SetAuthenticationError:
		c.Account.setAuthenticationError(a.Error)
	case SetServerOrder:
		c.Account.setServerOrder(a.ServerIDs)
	case SetServerSettings:
		c.Account.setServerSettings(a.Settings)
	case SetAllServerSettings:
		c.Account.setAllServerSettings(a.Settings)
	case UpdateServerSettings:
		c.Account.updateServerSettings(a.ServerID, a.Patch)
	case AddConnection:
		c.Account.addConnection(a.Connection)
	case RemoveConnection:
		c.Account.removeConnection(a.ConnectionID)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
	return nil
}

// deleteChannelCascade removes the channel and clears the inbox pointer on
// any user still referencing it. The inbox entry itself is deleted by the
// caller's batch, the pointer clear is the store-level invariant.
func (c *Context) deleteChannelCascade(channelID int64) {
	if !c.Channels.delete(channelID) {
		return
	}
	c.Users.clearInboxChannel(channelID)
}

func (c *Context) deleteServerCascade(serverID int64) {
	if !c.Servers.delete(serverID) {
		return
	}
	for _, channel := range c.Channels.byServerLocked(serverID) {
		c.deleteChannelCascade(channel.ID)
	}
	c.Roles.deleteByServer(serverID)
	c.Account.deleteServerSettings(serverID)
}

// Subscribe registers fn to run after every applied batch. The returned
// function cancels the subscription.
func (c *Context) Subscribe(fn func()) func() {
	c.subMutex.Lock()
	defer c.subMutex.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.subMutex.Lock()
		defer c.subMutex.Unlock()
		delete(c.subscribers, id)
	}
}

func (c *Context) notify() {
	c.subMutex.Lock()
	fns := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.subMutex.Unlock()

	for _, fn := range fns {
		fn()
	}
}
