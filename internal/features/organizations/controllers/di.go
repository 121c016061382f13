package organizations_controllers

import (
	organizations_services "teamhub/internal/features/organizations/services"
)

var organizationController = &OrganizationController{
	organizationService: organizations_services.GetOrganizationService(),
}

var inviteController = &InviteController{
	inviteService: organizations_services.GetInviteService(),
}

func GetOrganizationController() *OrganizationController {
	return organizationController
}

func GetInviteController() *InviteController {
	return inviteController
}
