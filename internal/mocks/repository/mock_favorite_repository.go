package repository

import (
	"context"

	"holocron/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a testify mock for the FavoriteRepository interface.
type MockFavoriteRepository struct {
	mock.Mock
}

type MockFavoriteRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFavoriteRepository) EXPECT() *MockFavoriteRepository_Expecter {
	return &MockFavoriteRepository_Expecter{mock: &_m.Mock}
}

// AddCharacter provides a mock function with given fields: ctx, userID, characterID
func (_m *MockFavoriteRepository) AddCharacter(ctx context.Context, userID uint, characterID uint) error {
	ret := _m.Called(ctx, userID, characterID)

	if len(ret) == 0 {
		panic("no return value specified for AddCharacter")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) error); ok {
		return rf(ctx, userID, characterID)
	}

	r0 := ret.Error(0)

	return r0
}

// MockFavoriteRepository_AddCharacter_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddCharacter'
type MockFavoriteRepository_AddCharacter_Call struct {
	*mock.Call
}

// AddCharacter is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) AddCharacter(ctx any, userID any, characterID any) *MockFavoriteRepository_AddCharacter_Call {
	return &MockFavoriteRepository_AddCharacter_Call{Call: _e.mock.On("AddCharacter", ctx, userID, characterID)}
}

func (_c *MockFavoriteRepository_AddCharacter_Call) Run(run func(ctx context.Context, userID uint, characterID uint)) *MockFavoriteRepository_AddCharacter_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint), args[2].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_AddCharacter_Call) Return(_a0 error) *MockFavoriteRepository_AddCharacter_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFavoriteRepository_AddCharacter_Call) RunAndReturn(run func(context.Context, uint, uint) error) *MockFavoriteRepository_AddCharacter_Call {
	_c.Call.Return(run)

	return _c
}

// AddPlanet provides a mock function with given fields: ctx, userID, planetID
func (_m *MockFavoriteRepository) AddPlanet(ctx context.Context, userID uint, planetID uint) error {
	ret := _m.Called(ctx, userID, planetID)

	if len(ret) == 0 {
		panic("no return value specified for AddPlanet")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) error); ok {
		return rf(ctx, userID, planetID)
	}

	r0 := ret.Error(0)

	return r0
}

// MockFavoriteRepository_AddPlanet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddPlanet'
type MockFavoriteRepository_AddPlanet_Call struct {
	*mock.Call
}

// AddPlanet is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) AddPlanet(ctx any, userID any, planetID any) *MockFavoriteRepository_AddPlanet_Call {
	return &MockFavoriteRepository_AddPlanet_Call{Call: _e.mock.On("AddPlanet", ctx, userID, planetID)}
}

func (_c *MockFavoriteRepository_AddPlanet_Call) Run(run func(ctx context.Context, userID uint, planetID uint)) *MockFavoriteRepository_AddPlanet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint), args[2].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_AddPlanet_Call) Return(_a0 error) *MockFavoriteRepository_AddPlanet_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFavoriteRepository_AddPlanet_Call) RunAndReturn(run func(context.Context, uint, uint) error) *MockFavoriteRepository_AddPlanet_Call {
	_c.Call.Return(run)

	return _c
}

// RemoveCharacter provides a mock function with given fields: ctx, userID, characterID
func (_m *MockFavoriteRepository) RemoveCharacter(ctx context.Context, userID uint, characterID uint) error {
	ret := _m.Called(ctx, userID, characterID)

	if len(ret) == 0 {
		panic("no return value specified for RemoveCharacter")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) error); ok {
		return rf(ctx, userID, characterID)
	}

	r0 := ret.Error(0)

	return r0
}

// MockFavoriteRepository_RemoveCharacter_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveCharacter'
type MockFavoriteRepository_RemoveCharacter_Call struct {
	*mock.Call
}

// RemoveCharacter is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) RemoveCharacter(ctx any, userID any, characterID any) *MockFavoriteRepository_RemoveCharacter_Call {
	return &MockFavoriteRepository_RemoveCharacter_Call{Call: _e.mock.On("RemoveCharacter", ctx, userID, characterID)}
}

func (_c *MockFavoriteRepository_RemoveCharacter_Call) Run(run func(ctx context.Context, userID uint, characterID uint)) *MockFavoriteRepository_RemoveCharacter_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint), args[2].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_RemoveCharacter_Call) Return(_a0 error) *MockFavoriteRepository_RemoveCharacter_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFavoriteRepository_RemoveCharacter_Call) RunAndReturn(run func(context.Context, uint, uint) error) *MockFavoriteRepository_RemoveCharacter_Call {
	_c.Call.Return(run)

	return _c
}

// RemovePlanet provides a mock function with given fields: ctx, userID, planetID
func (_m *MockFavoriteRepository) RemovePlanet(ctx context.Context, userID uint, planetID uint) error {
	ret := _m.Called(ctx, userID, planetID)

	if len(ret) == 0 {
		panic("no return value specified for RemovePlanet")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) error); ok {
		return rf(ctx, userID, planetID)
	}

	r0 := ret.Error(0)

	return r0
}

// MockFavoriteRepository_RemovePlanet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemovePlanet'
type MockFavoriteRepository_RemovePlanet_Call struct {
	*mock.Call
}

// RemovePlanet is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) RemovePlanet(ctx any, userID any, planetID any) *MockFavoriteRepository_RemovePlanet_Call {
	return &MockFavoriteRepository_RemovePlanet_Call{Call: _e.mock.On("RemovePlanet", ctx, userID, planetID)}
}

func (_c *MockFavoriteRepository_RemovePlanet_Call) Run(run func(ctx context.Context, userID uint, planetID uint)) *MockFavoriteRepository_RemovePlanet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint), args[2].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_RemovePlanet_Call) Return(_a0 error) *MockFavoriteRepository_RemovePlanet_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFavoriteRepository_RemovePlanet_Call) RunAndReturn(run func(context.Context, uint, uint) error) *MockFavoriteRepository_RemovePlanet_Call {
	_c.Call.Return(run)

	return _c
}

// ListCharacters provides a mock function with given fields: ctx, userID
func (_m *MockFavoriteRepository) ListCharacters(ctx context.Context, userID uint) ([]*entity.Character, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListCharacters")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint) ([]*entity.Character, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []*entity.Character
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Character)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockFavoriteRepository_ListCharacters_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCharacters'
type MockFavoriteRepository_ListCharacters_Call struct {
	*mock.Call
}

// ListCharacters is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) ListCharacters(ctx any, userID any) *MockFavoriteRepository_ListCharacters_Call {
	return &MockFavoriteRepository_ListCharacters_Call{Call: _e.mock.On("ListCharacters", ctx, userID)}
}

func (_c *MockFavoriteRepository_ListCharacters_Call) Run(run func(ctx context.Context, userID uint)) *MockFavoriteRepository_ListCharacters_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_ListCharacters_Call) Return(_a0 []*entity.Character, _a1 error) *MockFavoriteRepository_ListCharacters_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFavoriteRepository_ListCharacters_Call) RunAndReturn(run func(context.Context, uint) ([]*entity.Character, error)) *MockFavoriteRepository_ListCharacters_Call {
	_c.Call.Return(run)

	return _c
}

// ListPlanets provides a mock function with given fields: ctx, userID
func (_m *MockFavoriteRepository) ListPlanets(ctx context.Context, userID uint) ([]*entity.Planet, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListPlanets")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint) ([]*entity.Planet, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []*entity.Planet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Planet)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockFavoriteRepository_ListPlanets_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPlanets'
type MockFavoriteRepository_ListPlanets_Call struct {
	*mock.Call
}

// ListPlanets is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) ListPlanets(ctx any, userID any) *MockFavoriteRepository_ListPlanets_Call {
	return &MockFavoriteRepository_ListPlanets_Call{Call: _e.mock.On("ListPlanets", ctx, userID)}
}

func (_c *MockFavoriteRepository_ListPlanets_Call) Run(run func(ctx context.Context, userID uint)) *MockFavoriteRepository_ListPlanets_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_ListPlanets_Call) Return(_a0 []*entity.Planet, _a1 error) *MockFavoriteRepository_ListPlanets_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFavoriteRepository_ListPlanets_Call) RunAndReturn(run func(context.Context, uint) ([]*entity.Planet, error)) *MockFavoriteRepository_ListPlanets_Call {
	_c.Call.Return(run)

	return _c
}

// Exists provides a mock function with given fields: ctx, userID, kind, targetID
func (_m *MockFavoriteRepository) Exists(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) (bool, error) {
	ret := _m.Called(ctx, userID, kind, targetID)

	if len(ret) == 0 {
		panic("no return value specified for Exists")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint, entity.FavoriteKind, uint) (bool, error)); ok {
		return rf(ctx, userID, kind, targetID)
	}

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

// MockFavoriteRepository_Exists_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Exists'
type MockFavoriteRepository_Exists_Call struct {
	*mock.Call
}

// Exists is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) Exists(ctx any, userID any, kind any, targetID any) *MockFavoriteRepository_Exists_Call {
	return &MockFavoriteRepository_Exists_Call{Call: _e.mock.On("Exists", ctx, userID, kind, targetID)}
}

func (_c *MockFavoriteRepository_Exists_Call) Run(run func(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint)) *MockFavoriteRepository_Exists_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint), args[2].(entity.FavoriteKind), args[3].(uint))
	})

	return _c
}

func (_c *MockFavoriteRepository_Exists_Call) Return(_a0 bool, _a1 error) *MockFavoriteRepository_Exists_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFavoriteRepository_Exists_Call) RunAndReturn(run func(context.Context, uint, entity.FavoriteKind, uint) (bool, error)) *MockFavoriteRepository_Exists_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository. It registers a cleanup that asserts the expectations.
func NewMockFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
