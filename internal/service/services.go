package service

import (
	"time"

	"github.com/MKhiriev/go-forum/internal/config"
	"github.com/MKhiriev/go-forum/internal/crypto"
	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/internal/utils"
	"github.com/MKhiriev/go-forum/models"
)

type Services struct {
	IdentityService   IdentityService
	DiscussionService DiscussionService
	PostService       PostService
	AppInfoService    AppInfoService
}

// NewServices builds every service over storages and puts the validation
// wrappers in front of them.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	identity := NewIdentityService(
		storages.AccountRepository,
		crypto.NewBcryptHasher(cfg.App.BcryptCost),
		utils.NewTokenGenerator(),
		cfg.App,
		logger,
	)
	discussions := NewDiscussionService(storages.DiscussionRepository, logger)
	posts := NewPostService(storages.PostRepository, storages.DiscussionRepository, cfg.App, time.Now, logger)

	return &Services{
		IdentityService:   NewIdentityValidationService().Wrap(identity),
		DiscussionService: NewDiscussionValidationService().Wrap(discussions),
		PostService:       NewPostValidationService().Wrap(posts),
		AppInfoService:    NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
