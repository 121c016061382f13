package usercontext

import (
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_repositories "teamhub/internal/features/projects/repositories"
	projects_services "teamhub/internal/features/projects/services"
	users_repositories "teamhub/internal/features/users/repositories"
)

var contextService = &ContextService{
	userRepository:         &users_repositories.UserRepository{},
	organizationRepository: &organizations_repositories.OrganizationRepository{},
	memberRepository:       &organizations_repositories.MemberRepository{},
	projectRepository:      &projects_repositories.ProjectRepository{},
	permissionService:      projects_services.GetPermissionService(),
}

var contextController = &ContextController{
	contextService: contextService,
}

func GetContextService() *ContextService {
	return contextService
}

func GetContextController() *ContextController {
	return contextController
}
