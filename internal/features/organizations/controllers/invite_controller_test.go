package organizations_controllers

import (
	"net/http"
	"testing"

	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_testing "teamhub/internal/features/organizations/testing"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InviteLifecycle_CreatePreviewAccept_MemberJoined(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	invitee := users_testing.CreateTestUser()

	// Owner issues the invite.
	var invite organizations_dto.InviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/invites",
		owner.AccessToken,
		organizations_dto.CreateInviteRequestDTO{
			Email: invitee.Email,
			Role:  organizations_enums.OrgRoleMember,
		},
		http.StatusCreated,
		&invite,
	)

	require.NotEmpty(t, invite.Token)
	assert.Equal(t, invitee.Email, invite.Email)

	// Anyone holding the link can preview it without logging in.
	var info organizations_dto.InviteInfoResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invites/"+invite.Token,
		"",
		http.StatusOK,
		&info,
	)

	assert.Equal(t, organization.Name, info.OrganizationName)
	assert.Equal(t, organization.Slug, info.OrganizationSlug)
	assert.Equal(t, invitee.Email, info.Email)

	// The invitee accepts and becomes a member.
	var accepted organizations_dto.AcceptInviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invites/"+invite.Token+"/accept",
		invitee.AccessToken,
		nil,
		http.StatusOK,
		&accepted,
	)

	assert.Equal(t, organization.ID, accepted.Organization.ID)
	assert.Equal(t, organizations_enums.OrgRoleMember, accepted.Organization.Role)

	// Membership is real: the organization resolves by slug now.
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug,
		invitee.AccessToken,
		http.StatusOK,
	)
}

func Test_AcceptInvite_Twice_SecondAcceptFails(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	firstUser := users_testing.CreateTestUser()
	secondUser := users_testing.CreateTestUser()

	var invite organizations_dto.InviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/invites",
		owner.AccessToken,
		organizations_dto.CreateInviteRequestDTO{
			Email: firstUser.Email,
			Role:  organizations_enums.OrgRoleMember,
		},
		http.StatusCreated,
		&invite,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.Token+"/accept",
		firstUser.AccessToken,
		nil,
		http.StatusOK,
	)

	// The token is single use. A second redemption looks like an unknown token.
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.Token+"/accept",
		secondUser.AccessToken,
		nil,
		http.StatusNotFound,
	)
}

func Test_AcceptInvite_WhenAlreadyMember_ReturnsConflict(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)

	var invite organizations_dto.InviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/invites",
		owner.AccessToken,
		organizations_dto.CreateInviteRequestDTO{
			Email: "someone@example.com",
			Role:  organizations_enums.OrgRoleMember,
		},
		http.StatusCreated,
		&invite,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.Token+"/accept",
		owner.AccessToken,
		nil,
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "already a member")
}

func Test_CreateInvite_AsPlainMember_ReturnsForbidden(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)

	member := users_testing.CreateTestUser()
	organizations_testing.AddMember(member.ID, organization.ID, organizations_enums.OrgRoleMember)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/invites",
		member.AccessToken,
		organizations_dto.CreateInviteRequestDTO{
			Email: "forbidden@example.com",
			Role:  organizations_enums.OrgRoleMember,
		},
		http.StatusForbidden,
	)
}

func Test_CreateInvite_WithOwnerRole_ReturnsBadRequest(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)

	// An invite can hand out admin or member, never ownership.
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/invites",
		owner.AccessToken,
		organizations_dto.CreateInviteRequestDTO{
			Email: "newowner@example.com",
			Role:  organizations_enums.OrgRoleOwner,
		},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "admin or member")
}

func Test_Invite_WhenExpired_PreviewAndAcceptReturnNotFound(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	invitee := users_testing.CreateTestUser()

	invite := organizations_testing.CreateExpiredInvite(organization.ID, owner.ID, invitee.Email)

	// An expired token behaves exactly like an unknown one.
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/invites/"+invite.Token,
		"",
		http.StatusNotFound,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.Token+"/accept",
		invitee.AccessToken,
		nil,
		http.StatusNotFound,
	)
}

func Test_AcceptInvite_WhenTokenSpentElsewhere_ReturnsNotFound(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	invitee := users_testing.CreateTestUser()

	var invite organizations_dto.InviteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/invites",
		owner.AccessToken,
		organizations_dto.CreateInviteRequestDTO{
			Email: invitee.Email,
			Role:  organizations_enums.OrgRoleMember,
		},
		http.StatusCreated,
		&invite,
	)

	// A redemption that lands between the preview and the accept must make
	// the accept fail: the token is consumed at most once.
	organizations_testing.MarkInviteUsed(invite.Token)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invites/"+invite.Token+"/accept",
		invitee.AccessToken,
		nil,
		http.StatusNotFound,
	)
}

func Test_GetInviteInfo_WithUnknownToken_ReturnsNotFound(t *testing.T) {
	router := createOrganizationTestRouter()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/invites/deadbeefdeadbeefdeadbeefdeadbeef",
		"",
		http.StatusNotFound,
	)
}
