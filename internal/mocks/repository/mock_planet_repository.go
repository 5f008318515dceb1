package repository

import (
	"context"

	"holocron/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPlanetRepository is a testify mock for the PlanetRepository interface.
type MockPlanetRepository struct {
	mock.Mock
}

type MockPlanetRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPlanetRepository) EXPECT() *MockPlanetRepository_Expecter {
	return &MockPlanetRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockPlanetRepository) FindByID(ctx context.Context, id uint) (*entity.Planet, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint) (*entity.Planet, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Planet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Planet)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockPlanetRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockPlanetRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
func (_e *MockPlanetRepository_Expecter) FindByID(ctx any, id any) *MockPlanetRepository_FindByID_Call {
	return &MockPlanetRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockPlanetRepository_FindByID_Call) Run(run func(ctx context.Context, id uint)) *MockPlanetRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})

	return _c
}

func (_c *MockPlanetRepository_FindByID_Call) Return(_a0 *entity.Planet, _a1 error) *MockPlanetRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPlanetRepository_FindByID_Call) RunAndReturn(run func(context.Context, uint) (*entity.Planet, error)) *MockPlanetRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockPlanetRepository) List(ctx context.Context) ([]*entity.Planet, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Planet, error)); ok {
		return rf(ctx)
	}

	var r0 []*entity.Planet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Planet)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockPlanetRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockPlanetRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
func (_e *MockPlanetRepository_Expecter) List(ctx any) *MockPlanetRepository_List_Call {
	return &MockPlanetRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockPlanetRepository_List_Call) Run(run func(ctx context.Context)) *MockPlanetRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockPlanetRepository_List_Call) Return(_a0 []*entity.Planet, _a1 error) *MockPlanetRepository_List_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPlanetRepository_List_Call) RunAndReturn(run func(context.Context) ([]*entity.Planet, error)) *MockPlanetRepository_List_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, planet
func (_m *MockPlanetRepository) Create(ctx context.Context, planet *entity.Planet) error {
	ret := _m.Called(ctx, planet)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Planet) error); ok {
		return rf(ctx, planet)
	}

	r0 := ret.Error(0)

	return r0
}

// MockPlanetRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockPlanetRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockPlanetRepository_Expecter) Create(ctx any, planet any) *MockPlanetRepository_Create_Call {
	return &MockPlanetRepository_Create_Call{Call: _e.mock.On("Create", ctx, planet)}
}

func (_c *MockPlanetRepository_Create_Call) Run(run func(ctx context.Context, planet *entity.Planet)) *MockPlanetRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Planet))
	})

	return _c
}

func (_c *MockPlanetRepository_Create_Call) Return(_a0 error) *MockPlanetRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPlanetRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Planet) error) *MockPlanetRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockPlanetRepository creates a new instance of MockPlanetRepository. It registers a cleanup that asserts the expectations.
func NewMockPlanetRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlanetRepository {
	m := &MockPlanetRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
