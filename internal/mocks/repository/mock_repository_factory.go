package repository

import (
	"holocron/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock for the RepositoryFactory interface.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewUserRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewUserRepository")
	}

	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		return rf()
	}

	var r0 repository.UserRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.UserRepository)
	}

	return r0
}

// MockRepositoryFactory_NewUserRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewUserRepository'
type MockRepositoryFactory_NewUserRepository_Call struct {
	*mock.Call
}

// NewUserRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewUserRepository() *MockRepositoryFactory_NewUserRepository_Call {
	return &MockRepositoryFactory_NewUserRepository_Call{Call: _e.mock.On("NewUserRepository")}
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) Run(run func()) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Return(run)

	return _c
}

// NewCharacterRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewCharacterRepository() repository.CharacterRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewCharacterRepository")
	}

	if rf, ok := ret.Get(0).(func() repository.CharacterRepository); ok {
		return rf()
	}

	var r0 repository.CharacterRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.CharacterRepository)
	}

	return r0
}

// MockRepositoryFactory_NewCharacterRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewCharacterRepository'
type MockRepositoryFactory_NewCharacterRepository_Call struct {
	*mock.Call
}

// NewCharacterRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewCharacterRepository() *MockRepositoryFactory_NewCharacterRepository_Call {
	return &MockRepositoryFactory_NewCharacterRepository_Call{Call: _e.mock.On("NewCharacterRepository")}
}

func (_c *MockRepositoryFactory_NewCharacterRepository_Call) Run(run func()) *MockRepositoryFactory_NewCharacterRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_NewCharacterRepository_Call) Return(_a0 repository.CharacterRepository) *MockRepositoryFactory_NewCharacterRepository_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_NewCharacterRepository_Call) RunAndReturn(run func() repository.CharacterRepository) *MockRepositoryFactory_NewCharacterRepository_Call {
	_c.Call.Return(run)

	return _c
}

// NewPlanetRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewPlanetRepository() repository.PlanetRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewPlanetRepository")
	}

	if rf, ok := ret.Get(0).(func() repository.PlanetRepository); ok {
		return rf()
	}

	var r0 repository.PlanetRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.PlanetRepository)
	}

	return r0
}

// MockRepositoryFactory_NewPlanetRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewPlanetRepository'
type MockRepositoryFactory_NewPlanetRepository_Call struct {
	*mock.Call
}

// NewPlanetRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewPlanetRepository() *MockRepositoryFactory_NewPlanetRepository_Call {
	return &MockRepositoryFactory_NewPlanetRepository_Call{Call: _e.mock.On("NewPlanetRepository")}
}

func (_c *MockRepositoryFactory_NewPlanetRepository_Call) Run(run func()) *MockRepositoryFactory_NewPlanetRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_NewPlanetRepository_Call) Return(_a0 repository.PlanetRepository) *MockRepositoryFactory_NewPlanetRepository_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_NewPlanetRepository_Call) RunAndReturn(run func() repository.PlanetRepository) *MockRepositoryFactory_NewPlanetRepository_Call {
	_c.Call.Return(run)

	return _c
}

// NewFavoriteRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewFavoriteRepository")
	}

	if rf, ok := ret.Get(0).(func() repository.FavoriteRepository); ok {
		return rf()
	}

	var r0 repository.FavoriteRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.FavoriteRepository)
	}

	return r0
}

// MockRepositoryFactory_NewFavoriteRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewFavoriteRepository'
type MockRepositoryFactory_NewFavoriteRepository_Call struct {
	*mock.Call
}

// NewFavoriteRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewFavoriteRepository() *MockRepositoryFactory_NewFavoriteRepository_Call {
	return &MockRepositoryFactory_NewFavoriteRepository_Call{Call: _e.mock.On("NewFavoriteRepository")}
}

func (_c *MockRepositoryFactory_NewFavoriteRepository_Call) Run(run func()) *MockRepositoryFactory_NewFavoriteRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_NewFavoriteRepository_Call) Return(_a0 repository.FavoriteRepository) *MockRepositoryFactory_NewFavoriteRepository_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_NewFavoriteRepository_Call) RunAndReturn(run func() repository.FavoriteRepository) *MockRepositoryFactory_NewFavoriteRepository_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It registers a cleanup that asserts the expectations.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
