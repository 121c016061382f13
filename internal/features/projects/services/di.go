package projects_services

import (
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_repositories "teamhub/internal/features/projects/repositories"
	users_repositories "teamhub/internal/features/users/repositories"
)

var organizationRepository = &organizations_repositories.OrganizationRepository{}
var memberRepository = &organizations_repositories.MemberRepository{}
var projectRepository = &projects_repositories.ProjectRepository{}
var projectMemberRepository = &projects_repositories.ProjectMemberRepository{}
var userRepository = &users_repositories.UserRepository{}

var permissionService = &PermissionService{
	memberRepository:        memberRepository,
	projectMemberRepository: projectMemberRepository,
}

var projectService = &ProjectService{
	organizationRepository:  organizationRepository,
	memberRepository:        memberRepository,
	projectRepository:       projectRepository,
	projectMemberRepository: projectMemberRepository,
	userRepository:          userRepository,
	permissionService:       permissionService,
}

func GetPermissionService() *PermissionService {
	return permissionService
}

func GetProjectService() *ProjectService {
	return projectService
}
