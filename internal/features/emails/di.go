package emails

import (
	"teamhub/internal/config"
	"teamhub/internal/util/logger"
)

var emailService = &EmailService{
	worker: NewEmailWorker(createSender(), logger.GetLogger()),
	appURL: config.GetEnv().AppURL,
}

func GetEmailService() *EmailService {
	return emailService
}
