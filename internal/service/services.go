package service

import (
	"github.com/atomwalk/hrm-client/internal/adapter"
	"github.com/atomwalk/hrm-client/internal/crypto"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/store"
	"github.com/atomwalk/hrm-client/internal/validators"
)

// ClientServices bundles the long-lived services shared across UI screens.
// The auth gate and intake workflows are created per surface via
// [NewAuthGate] and [NewIntakeWorkflow] because they carry UI-scoped state.
type ClientServices struct {
	Session    SessionManager
	Profiles   ProfileService
	Activities ActivityService
}

func NewClientServices(localStore *store.ClientStorages, backendAdapter adapter.BackendAdapter, keychain crypto.KeyChainService, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Session:    NewSessionManager(localStore, backendAdapter, keychain, logger),
		Profiles:   NewProfileService(localStore, backendAdapter, logger),
		Activities: NewActivityService(backendAdapter, validators.NewIntakeValidator(), logger),
	}
}
