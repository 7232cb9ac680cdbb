package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_Create(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	team, err := svc.Create(ctx, strPtr("  Alpha "), rawJSON(t, []string{" ann", "bob "}))

	require.NoError(t, err)
	assert.Equal(t, 1, team.ID)
	assert.Equal(t, "Alpha", team.Teamname)
	assert.Equal(t, []string{"ann", "bob"}, team.Members)
}

func TestTeamService_Create_MissingFields(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, strPtr("   "), nil)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "All fields are required and members must be a non-empty array of strings", vErr.Message)
	assert.Contains(t, vErr.MissingFields, "teamname")
	assert.Contains(t, vErr.MissingFields, "members")
}

func TestTeamService_Create_MembersNotArray(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	for _, members := range []string{`"ann"`, `[]`, `{"a":1}`, `null`} {
		_, err := svc.Create(context.Background(), strPtr("Alpha"), []byte(members))

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, members)
		assert.Equal(t, map[string]string{"members": "Members are required and must be a non-empty array"}, vErr.MissingFields, members)
	}
}

func TestTeamService_Create_CollectsAllInvalidMembers(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	_, err := svc.Create(context.Background(), strPtr("Alpha"), []byte(`["", "ann", " ", 5]`))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "All members must be non-empty strings", vErr.Message)
	assert.Equal(t, []any{"", " ", float64(5)}, vErr.InvalidMembers)
}

func TestTeamService_Create_DuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, strPtr("Alpha"), rawJSON(t, []string{"ann"}))
	require.NoError(t, err)

	_, err = svc.Create(ctx, strPtr("alpha"), rawJSON(t, []string{"bob"}))

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "A team with this title already exists", cErr.Message)
	assert.Equal(t, "alpha", cErr.Value)
}

func TestTeamService_IDsFollowHighestStoredID(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, strPtr(name), rawJSON(t, []string{"ann"}))
		require.NoError(t, err)
	}
	require.NoError(t, svc.Delete(ctx, 2))

	team, err := svc.Create(ctx, strPtr("D"), rawJSON(t, []string{"ann"}))
	require.NoError(t, err)
	assert.Equal(t, 4, team.ID)

	require.NoError(t, svc.Delete(ctx, 4))
	team, err = svc.Create(ctx, strPtr("E"), rawJSON(t, []string{"ann"}))
	require.NoError(t, err)
	assert.Equal(t, 4, team.ID)
}

func TestTeamService_GetByID_NotFound(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	_, err := svc.GetByID(context.Background(), 999)

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Team with ID 999 not found", nfErr.Error())
}

func TestTeamService_List_EmptyIsNotNil(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	teams, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}

func TestTeamService_Update_MembersOnly(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, strPtr("Alpha"), rawJSON(t, []string{"ann"}))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, nil, rawJSON(t, []string{" carl "}))
	require.NoError(t, err)
	assert.Equal(t, "Alpha", updated.Teamname)
	assert.Equal(t, []string{"carl"}, updated.Members)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestTeamService_Update_KeepsOrderByID(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, strPtr(name), rawJSON(t, []string{"ann"}))
		require.NoError(t, err)
	}

	_, err := svc.Update(ctx, 1, strPtr("A2"), nil)
	require.NoError(t, err)

	teams, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{teams[0].ID, teams[1].ID, teams[2].ID})
	assert.Equal(t, "A2", teams[0].Teamname)
}

func TestTeamService_Update_Validation(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, strPtr("Alpha"), rawJSON(t, []string{"ann"}))
	require.NoError(t, err)

	tests := []struct {
		name     string
		teamname *string
		members  string
		message  string
	}{
		{"blank name", strPtr("   "), "", "Team name cannot be empty"},
		{"empty members", nil, `[]`, "Members must be a non-empty array of strings"},
		{"members not array", nil, `"ann"`, "Members must be a non-empty array of strings"},
		{"blank member", nil, `["ann", " "]`, "All members must be non-empty strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, created.ID, tt.teamname, []byte(tt.members))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.message, vErr.Message)
		})
	}

	unchanged, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)
}

func TestTeamService_Update_NotFoundBeforeValidation(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	_, err := svc.Update(context.Background(), 7, strPtr("  "), []byte(`[]`))

	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestTeamService_Delete_NotFound(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	err := svc.Delete(context.Background(), 1)

	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
