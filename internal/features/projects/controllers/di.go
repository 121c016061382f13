package projects_controllers

import (
	projects_services "teamhub/internal/features/projects/services"
)

var projectController = &ProjectController{
	projectService: projects_services.GetProjectService(),
}

func GetProjectController() *ProjectController {
	return projectController
}
