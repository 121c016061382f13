package organizations_services

import (
	"teamhub/internal/features/emails"
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	users_repositories "teamhub/internal/features/users/repositories"
)

var organizationRepository = &organizations_repositories.OrganizationRepository{}
var memberRepository = &organizations_repositories.MemberRepository{}
var inviteRepository = &organizations_repositories.InviteRepository{}
var userRepository = &users_repositories.UserRepository{}

var organizationService = &OrganizationService{
	organizationRepository: organizationRepository,
	memberRepository:       memberRepository,
	userRepository:         userRepository,
}

var inviteService = &InviteService{
	organizationRepository: organizationRepository,
	memberRepository:       memberRepository,
	inviteRepository:       inviteRepository,
	userRepository:         userRepository,
	emailService:           emails.GetEmailService(),
}

func GetOrganizationService() *OrganizationService {
	return organizationService
}

func GetInviteService() *InviteService {
	return inviteService
}
