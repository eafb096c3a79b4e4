package services

import (
	"context"
	"fmt"
	"net/http"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

type serverOrderRequest struct {
	ServerIDs models.IDList `json:"serverIds" validate:"required"`
}

// UpdateServerOrder pushes the sidebar order and replaces the local
// ordered-id list, same as SERVER_ORDER_UPDATED.
func (c *Client) UpdateServerOrder(ctx context.Context, serverIDs []int64) error {
	body := serverOrderRequest{ServerIDs: serverIDs}
	if err := c.do(ctx, http.MethodPost, "/servers/order", body, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(store.SetServerOrder{ServerIDs: serverIDs})
}

type updateServerSettingsRequest struct {
	NotificationSoundMode *int  `json:"notificationSoundMode,omitempty" validate:"omitempty,min=0,max=2"`
	NotificationPingMode  *int  `json:"notificationPingMode,omitempty" validate:"omitempty,min=0,max=2"`
	Muted                 *bool `json:"muted,omitempty"`
}

func (c *Client) UpdateServerSettings(ctx context.Context, serverID int64, patch models.ServerSettingsPatch) error {
	body := updateServerSettingsRequest{
		NotificationSoundMode: patch.NotificationSoundMode,
		NotificationPingMode:  patch.NotificationPingMode,
		Muted:                 patch.Muted,
	}
	path := fmt.Sprintf("/servers/%d/settings", serverID)
	if err := c.do(ctx, http.MethodPost, path, body, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(store.UpdateServerSettings{ServerID: serverID, Patch: patch})
}

// LeaveServer leaves the server and drops it locally with the full cascade
// (channels, roles, settings).
func (c *Client) LeaveServer(ctx context.Context, serverID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/servers/%d", serverID), nil, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(store.DeleteServer{ID: serverID})
}
