package service

import (
	"context"
	"errors"

	"wellnest/wellness-service/internal/models"
)

// Mock repositories

type mockUserRepository struct {
	getByIDFunc            func(ctx context.Context, id string) (*models.User, error)
	getByEmailFunc         func(ctx context.Context, email string) (*models.User, error)
	createFunc             func(ctx context.Context, user *models.User) error
	updateFunc             func(ctx context.Context, user *models.User) error
	setMedicalApprovalFunc func(ctx context.Context, id string, approved bool) error
	listFunc               func(ctx context.Context, page, perPage int32) ([]*models.User, int32, error)
	deleteFunc             func(ctx context.Context, id string) error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) SetMedicalApproval(ctx context.Context, id string, approved bool) error {
	if m.setMedicalApprovalFunc != nil {
		return m.setMedicalApprovalFunc(ctx, id, approved)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) List(ctx context.Context, page, perPage int32) ([]*models.User, int32, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, perPage)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockModuleRepository struct {
	getByNameFunc     func(ctx context.Context, name string) (*models.Module, error)
	createFunc        func(ctx context.Context, module *models.Module) error
	updateFunc        func(ctx context.Context, module *models.Module) error
	listFunc          func(ctx context.Context, page, perPage int32) ([]*models.Module, int32, error)
	deleteCascadeFunc func(ctx context.Context, name string) error
}

func (m *mockModuleRepository) GetByName(ctx context.Context, name string) (*models.Module, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, errors.New("not implemented")
}

func (m *mockModuleRepository) Create(ctx context.Context, module *models.Module) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, module)
	}
	return errors.New("not implemented")
}

func (m *mockModuleRepository) Update(ctx context.Context, module *models.Module) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, module)
	}
	return errors.New("not implemented")
}

func (m *mockModuleRepository) List(ctx context.Context, page, perPage int32) ([]*models.Module, int32, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, perPage)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockModuleRepository) DeleteCascade(ctx context.Context, name string) error {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, name)
	}
	return errors.New("not implemented")
}

type mockChallengeRepository struct {
	getByNameFunc     func(ctx context.Context, name string) (*models.Challenge, error)
	getByModuleFunc   func(ctx context.Context, moduleName string) ([]*models.Challenge, error)
	createFunc        func(ctx context.Context, challenge *models.Challenge) error
	updateFunc        func(ctx context.Context, challenge *models.Challenge) error
	searchByNameFunc  func(ctx context.Context, term string) ([]*models.ChallengeWithModule, error)
	deleteCascadeFunc func(ctx context.Context, name string) error
}

func (m *mockChallengeRepository) GetByName(ctx context.Context, name string) (*models.Challenge, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) GetByModule(ctx context.Context, moduleName string) ([]*models.Challenge, error) {
	if m.getByModuleFunc != nil {
		return m.getByModuleFunc(ctx, moduleName)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, challenge)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, challenge)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) SearchByName(ctx context.Context, term string) ([]*models.ChallengeWithModule, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, term)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) DeleteCascade(ctx context.Context, name string) error {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, name)
	}
	return errors.New("not implemented")
}

type mockAwardRepository struct {
	getByIDFunc       func(ctx context.Context, id uint64) (*models.Award, error)
	createFunc        func(ctx context.Context, award *models.Award) (uint64, error)
	updateFunc        func(ctx context.Context, award *models.Award) error
	listFunc          func(ctx context.Context, page, perPage int32) ([]*models.Award, int32, error)
	deleteCascadeFunc func(ctx context.Context, id uint64) error
}

func (m *mockAwardRepository) GetByID(ctx context.Context, id uint64) (*models.Award, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAwardRepository) Create(ctx context.Context, award *models.Award) (uint64, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, award)
	}
	return 0, errors.New("not implemented")
}

func (m *mockAwardRepository) Update(ctx context.Context, award *models.Award) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, award)
	}
	return errors.New("not implemented")
}

func (m *mockAwardRepository) List(ctx context.Context, page, perPage int32) ([]*models.Award, int32, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, perPage)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockAwardRepository) DeleteCascade(ctx context.Context, id uint64) error {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockRedeemableRepository struct {
	getByKeyFunc             func(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error)
	createFunc               func(ctx context.Context, redeemable *models.Redeemable) error
	createBatchFunc          func(ctx context.Context, redeemables []*models.Redeemable) error
	updateLimitDaysFunc      func(ctx context.Context, key models.RedeemableKey, limitDays int32) error
	deleteFunc               func(ctx context.Context, key models.RedeemableKey) error
	deleteByChallengeFunc    func(ctx context.Context, challengeName string) error
	getByChallengeFunc       func(ctx context.Context, challengeName string) ([]*models.Redeemable, error)
	getAwardsByChallengeFunc func(ctx context.Context, challengeName string) ([]*models.Award, error)
}

func (m *mockRedeemableRepository) GetByKey(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
	if m.getByKeyFunc != nil {
		return m.getByKeyFunc(ctx, key)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRedeemableRepository) Create(ctx context.Context, redeemable *models.Redeemable) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, redeemable)
	}
	return errors.New("not implemented")
}

func (m *mockRedeemableRepository) CreateBatch(ctx context.Context, redeemables []*models.Redeemable) error {
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, redeemables)
	}
	return errors.New("not implemented")
}

func (m *mockRedeemableRepository) UpdateLimitDays(ctx context.Context, key models.RedeemableKey, limitDays int32) error {
	if m.updateLimitDaysFunc != nil {
		return m.updateLimitDaysFunc(ctx, key, limitDays)
	}
	return errors.New("not implemented")
}

func (m *mockRedeemableRepository) Delete(ctx context.Context, key models.RedeemableKey) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return errors.New("not implemented")
}

func (m *mockRedeemableRepository) DeleteByChallenge(ctx context.Context, challengeName string) error {
	if m.deleteByChallengeFunc != nil {
		return m.deleteByChallengeFunc(ctx, challengeName)
	}
	return errors.New("not implemented")
}

func (m *mockRedeemableRepository) GetByChallenge(ctx context.Context, challengeName string) ([]*models.Redeemable, error) {
	if m.getByChallengeFunc != nil {
		return m.getByChallengeFunc(ctx, challengeName)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRedeemableRepository) GetAwardsByChallenge(ctx context.Context, challengeName string) ([]*models.Award, error) {
	if m.getAwardsByChallengeFunc != nil {
		return m.getAwardsByChallengeFunc(ctx, challengeName)
	}
	return nil, nil
}

type mockParticipationRepository struct {
	registerFunc    func(ctx context.Context, challengeName, userID string) (bool, error)
	confirmFunc     func(ctx context.Context, challengeName, userID string) (bool, error)
	getStateFunc    func(ctx context.Context, challengeName, userID string) (models.ParticipationState, error)
	listByStateFunc func(ctx context.Context, challengeName string, state models.ParticipationState) ([]*models.Participant, error)
}

func (m *mockParticipationRepository) Register(ctx context.Context, challengeName, userID string) (bool, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, challengeName, userID)
	}
	return false, errors.New("not implemented")
}

func (m *mockParticipationRepository) Confirm(ctx context.Context, challengeName, userID string) (bool, error) {
	if m.confirmFunc != nil {
		return m.confirmFunc(ctx, challengeName, userID)
	}
	return false, errors.New("not implemented")
}

func (m *mockParticipationRepository) GetState(ctx context.Context, challengeName, userID string) (models.ParticipationState, error) {
	if m.getStateFunc != nil {
		return m.getStateFunc(ctx, challengeName, userID)
	}
	return "", errors.New("not implemented")
}

func (m *mockParticipationRepository) ListByState(ctx context.Context, challengeName string, state models.ParticipationState) ([]*models.Participant, error) {
	if m.listByStateFunc != nil {
		return m.listByStateFunc(ctx, challengeName, state)
	}
	return nil, errors.New("not implemented")
}
