package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminkit/internal/application/user/usecases"
	"adminkit/internal/domain/user"
	"adminkit/internal/interfaces/http/handlers/testutil"
	"adminkit/internal/shared/errors"
)

type mockListUsersUC struct {
	result   *usecases.ListUsersResult
	err      error
	gotQuery usecases.ListUsersQuery
}

func (m *mockListUsersUC) Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockGetUserUC struct {
	user *user.User
	err  error
}

func (m *mockGetUserUC) Execute(ctx context.Context, userID uint) (*user.User, error) {
	return m.user, m.err
}

type mockCreateUserUC struct {
	result *user.User
	err    error
}

func (m *mockCreateUserUC) Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*user.User, error) {
	return m.result, m.err
}

type mockUpdateUserUC struct {
	result *user.User
	err    error
	gotCmd usecases.UpdateUserCommand
}

func (m *mockUpdateUserUC) Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*user.User, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteUserUC struct {
	err error
}

func (m *mockDeleteUserUC) Execute(ctx context.Context, userID uint) error {
	return m.err
}

type mockChangePasswordUC struct {
	err    error
	gotCmd usecases.ChangePasswordCommand
}

func (m *mockChangePasswordUC) Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockGetProfileUC struct {
	result *usecases.UserProfileResult
	err    error
}

func (m *mockGetProfileUC) Execute(ctx context.Context, userID uint) (*usecases.UserProfileResult, error) {
	return m.result, m.err
}

func newUserHandler(
	listUC listUsersUseCase,
	getUC getUserUseCase,
	updateUC updateUserUseCase,
	changePasswordUC changePasswordUseCase,
	profileUC getUserProfileUseCase,
) *UserHandler {
	return NewUserHandler(
		listUC,
		getUC,
		&mockCreateUserUC{},
		updateUC,
		&mockDeleteUserUC{},
		changePasswordUC,
		profileUC,
		testutil.NewMockLogger(),
	)
}

func TestUserHandler_ListUsers(t *testing.T) {
	listUC := &mockListUsersUC{
		result: &usecases.ListUsersResult{Users: []*user.User{testUser()}, Total: 27},
	}
	h := newUserHandler(listUC, &mockGetUserUC{}, &mockUpdateUserUC{}, &mockChangePasswordUC{}, &mockGetProfileUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users", nil)
	testutil.SetQueryParams(c, map[string]string{"search": "jane", "sortBy": "email", "sortOrder": "desc"})
	h.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane", listUC.gotQuery.Search)
	assert.Equal(t, "email", listUC.gotQuery.SortBy)

	resp, err := testutil.ParseResponse(w)
	require.NoError(t, err)

	var data struct {
		Users      []UserResponse `json:"users"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Users, 1)
	assert.Equal(t, "janedoe", data.Users[0].Username)
	assert.Equal(t, int64(27), data.Pagination.TotalItems)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	h := newUserHandler(&mockListUsersUC{}, &mockGetUserUC{}, &mockUpdateUserUC{}, &mockChangePasswordUC{}, &mockGetProfileUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	h.GetUser(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateUser_PartialFields(t *testing.T) {
	updateUC := &mockUpdateUserUC{result: testUser()}
	h := newUserHandler(&mockListUsersUC{}, &mockGetUserUC{}, updateUC, &mockChangePasswordUC{}, &mockGetProfileUC{})

	c, w := testutil.NewTestContext(http.MethodPut, "/api/users/1", map[string]string{
		"firstName": "Janet",
	})
	testutil.SetURLParam(c, "id", "1")
	h.UpdateUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updateUC.gotCmd.FirstName)
	assert.Equal(t, "Janet", *updateUC.gotCmd.FirstName)
	assert.Nil(t, updateUC.gotCmd.Email)
	assert.Nil(t, updateUC.gotCmd.Username)
}

func TestUserHandler_ChangePassword_WrongCurrent(t *testing.T) {
	changeUC := &mockChangePasswordUC{err: errors.NewUnauthorizedError("Current password is incorrect")}
	h := newUserHandler(&mockListUsersUC{}, &mockGetUserUC{}, &mockUpdateUserUC{}, changeUC, &mockGetProfileUC{})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/users/1/password", map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "newsupersecret",
	})
	testutil.SetURLParam(c, "id", "1")
	h.ChangePassword(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp, err := testutil.ParseResponse(w)
	require.NoError(t, err)
	assert.Equal(t, "Current password is incorrect", resp.Message)
	assert.Equal(t, uint(1), changeUC.gotCmd.UserID)
}

func TestUserHandler_GetUserProfile(t *testing.T) {
	profileUC := &mockGetProfileUC{
		result: &usecases.UserProfileResult{
			User: testUser(),
			Stats: &user.SessionStats{
				TotalSessions:  4,
				ActiveSessions: 1,
			},
		},
	}
	h := newUserHandler(&mockListUsersUC{}, &mockGetUserUC{}, &mockUpdateUserUC{}, &mockChangePasswordUC{}, profileUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users/1/profile", nil)
	testutil.SetURLParam(c, "id", "1")
	h.GetUserProfile(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.ParseResponse(w)
	require.NoError(t, err)

	var data struct {
		User         UserResponse         `json:"user"`
		SessionStats SessionStatsResponse `json:"sessionStats"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "janedoe", data.User.Username)
	assert.Equal(t, int64(4), data.SessionStats.TotalSessions)
	assert.Equal(t, "jane@example.com", data.User.Email)
}
