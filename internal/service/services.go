package service

import (
	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	CaseService    CaseService
	FileService    FileService
	AppInfoService AppInfoService
}

// NewServices wires the business services over storages. Case events go
// to events; a nil sink drops them.
func NewServices(storages *store.Storages, events EventSink, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	caseService := NewCaseValidationService().Wrap(
		NewCaseService(storages.CaseRepository, events, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		CaseService:    caseService,
		FileService:    NewFileService(storages.FileRepository, storages.BlobStorage, cfg.Storage.Files.MaxUploadSize, logger),
		AppInfoService: appInfo,
	}, nil
}
