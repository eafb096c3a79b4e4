package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

func seedAccount(t *testing.T, st *store.Context) {
	t.Helper()
	require.NoError(t, st.Dispatch(store.SetAccount{Account: models.Account{
		User: &models.SelfUser{User: models.User{ID: 1, Username: "self"}},
	}}))
}

func orderedIDs(servers []models.Server) []int64 {
	ids := make([]int64, len(servers))
	for i, server := range servers {
		ids[i] = server.ID
	}
	return ids
}

func TestOrderedSortsByCreatedAt(t *testing.T) {
	st := newContext()
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: 3, Name: "c", CreatedAt: 30},
		{ID: 1, Name: "a", CreatedAt: 10},
		{ID: 2, Name: "b", CreatedAt: 20},
	}}))

	assert.Equal(t, []int64{1, 2, 3}, orderedIDs(st.Servers.Ordered()))
}

func TestOrderedFollowsAccountOrder(t *testing.T) {
	st := newContext()
	seedAccount(t, st)
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: 1, Name: "a", CreatedAt: 10},
		{ID: 2, Name: "b", CreatedAt: 20},
		{ID: 3, Name: "c", CreatedAt: 30},
	}}))

	require.NoError(t, st.Dispatch(store.SetServerOrder{ServerIDs: []int64{3, 1, 2}}))

	assert.Equal(t, []int64{3, 1, 2}, orderedIDs(st.Servers.Ordered()))
}

// An id absent from the order list sorts before one present in it. This is
// deliberately asymmetric ("missing sorts first", not last) and pinned here
// as a compatibility contract.
func TestOrderedUnlistedSortsBeforeListed(t *testing.T) {
	st := newContext()
	seedAccount(t, st)
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: 1, Name: "a", CreatedAt: 10},
		{ID: 2, Name: "b", CreatedAt: 20},
	}}))

	// listing only the older server pushes it behind the unlisted one
	require.NoError(t, st.Dispatch(store.SetServerOrder{ServerIDs: []int64{1}}))

	assert.Equal(t, []int64{2, 1}, orderedIDs(st.Servers.Ordered()))
}

func TestOrderedKeepsRelativeOrderForUnlisted(t *testing.T) {
	st := newContext()
	seedAccount(t, st)
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: 1, Name: "a", CreatedAt: 10},
		{ID: 2, Name: "b", CreatedAt: 20},
		{ID: 3, Name: "c", CreatedAt: 30},
	}}))

	require.NoError(t, st.Dispatch(store.SetServerOrder{ServerIDs: []int64{3}}))

	// 1 and 2 are unlisted and keep createdAt order, both ahead of 3
	assert.Equal(t, []int64{1, 2, 3}, orderedIDs(st.Servers.Ordered()))
}

func TestOrderedToleratesUnknownIds(t *testing.T) {
	st := newContext()
	seedAccount(t, st)
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: 2, Name: "b", CreatedAt: 20},
		{ID: 1, Name: "a", CreatedAt: 10},
	}}))

	// 99 was a server this account left; it must be skipped, not
	// resurrected
	require.NoError(t, st.Dispatch(store.SetServerOrder{ServerIDs: []int64{99, 2, 1}}))

	assert.Equal(t, []int64{2, 1}, orderedIDs(st.Servers.Ordered()))
}

func TestOrderedIsDeterministicAndMemoized(t *testing.T) {
	st := newContext()
	seedAccount(t, st)
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: 1, Name: "a", CreatedAt: 1},
		{ID: 2, Name: "b", CreatedAt: 2},
	}}))
	require.NoError(t, st.Dispatch(store.SetServerOrder{ServerIDs: []int64{2}}))

	first := st.Servers.Ordered()
	second := st.Servers.Ordered()

	assert.Equal(t, []int64{1, 2}, orderedIDs(first))
	assert.Equal(t, first, second)
	// unchanged inputs hand back the memoized slice, not a recomputation
	assert.Same(t, &first[0], &second[0])

	require.NoError(t, st.Dispatch(store.AddServer{Server: models.Server{ID: 3, Name: "c", CreatedAt: 3}}))
	assert.Equal(t, []int64{1, 3, 2}, orderedIDs(st.Servers.Ordered()))
}

func TestOrderedFallsBackToSnowflakeTimestamp(t *testing.T) {
	st := newContext()

	// ids carry their creation time; the older snowflake sorts first even
	// though neither payload had a createdAt
	older := int64(100) << 22
	newer := int64(200) << 22
	require.NoError(t, st.Dispatch(store.AddServers{Servers: []models.Server{
		{ID: newer, Name: "newer"},
		{ID: older, Name: "older"},
	}}))

	assert.Equal(t, []int64{older, newer}, orderedIDs(st.Servers.Ordered()))
}
