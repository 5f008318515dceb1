package repository

import (
	"context"

	"holocron/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCharacterRepository is a testify mock for the CharacterRepository interface.
type MockCharacterRepository struct {
	mock.Mock
}

type MockCharacterRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCharacterRepository) EXPECT() *MockCharacterRepository_Expecter {
	return &MockCharacterRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockCharacterRepository) FindByID(ctx context.Context, id uint) (*entity.Character, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uint) (*entity.Character, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Character
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Character)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockCharacterRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockCharacterRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
func (_e *MockCharacterRepository_Expecter) FindByID(ctx any, id any) *MockCharacterRepository_FindByID_Call {
	return &MockCharacterRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockCharacterRepository_FindByID_Call) Run(run func(ctx context.Context, id uint)) *MockCharacterRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uint))
	})

	return _c
}

func (_c *MockCharacterRepository_FindByID_Call) Return(_a0 *entity.Character, _a1 error) *MockCharacterRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCharacterRepository_FindByID_Call) RunAndReturn(run func(context.Context, uint) (*entity.Character, error)) *MockCharacterRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockCharacterRepository) List(ctx context.Context) ([]*entity.Character, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Character, error)); ok {
		return rf(ctx)
	}

	var r0 []*entity.Character
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Character)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockCharacterRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockCharacterRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
func (_e *MockCharacterRepository_Expecter) List(ctx any) *MockCharacterRepository_List_Call {
	return &MockCharacterRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockCharacterRepository_List_Call) Run(run func(ctx context.Context)) *MockCharacterRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCharacterRepository_List_Call) Return(_a0 []*entity.Character, _a1 error) *MockCharacterRepository_List_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCharacterRepository_List_Call) RunAndReturn(run func(context.Context) ([]*entity.Character, error)) *MockCharacterRepository_List_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, character
func (_m *MockCharacterRepository) Create(ctx context.Context, character *entity.Character) error {
	ret := _m.Called(ctx, character)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Character) error); ok {
		return rf(ctx, character)
	}

	r0 := ret.Error(0)

	return r0
}

// MockCharacterRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockCharacterRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockCharacterRepository_Expecter) Create(ctx any, character any) *MockCharacterRepository_Create_Call {
	return &MockCharacterRepository_Create_Call{Call: _e.mock.On("Create", ctx, character)}
}

func (_c *MockCharacterRepository_Create_Call) Run(run func(ctx context.Context, character *entity.Character)) *MockCharacterRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Character))
	})

	return _c
}

func (_c *MockCharacterRepository_Create_Call) Return(_a0 error) *MockCharacterRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockCharacterRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Character) error) *MockCharacterRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockCharacterRepository creates a new instance of MockCharacterRepository. It registers a cleanup that asserts the expectations.
func NewMockCharacterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCharacterRepository {
	m := &MockCharacterRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
