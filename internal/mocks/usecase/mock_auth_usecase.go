package usecase

import (
	"context"

	"holocron/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock for the AuthUsecase interface.
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}

	var r0 *usecase.LoginOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockAuthUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAuthUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
func (_e *MockAuthUsecase_Expecter) Login(ctx any, input any) *MockAuthUsecase_Login_Call {
	return &MockAuthUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAuthUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockAuthUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LoginInput))
	})

	return _c
}

func (_c *MockAuthUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAuthUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)) *MockAuthUsecase_Login_Call {
	_c.Call.Return(run)

	return _c
}

// Authenticate provides a mock function with given fields: ctx, tokenString
func (_m *MockAuthUsecase) Authenticate(ctx context.Context, tokenString string) (uint, error) {
	ret := _m.Called(ctx, tokenString)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (uint, error)); ok {
		return rf(ctx, tokenString)
	}

	r0 := ret.Get(0).(uint)
	r1 := ret.Error(1)

	return r0, r1
}

// MockAuthUsecase_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockAuthUsecase_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
func (_e *MockAuthUsecase_Expecter) Authenticate(ctx any, tokenString any) *MockAuthUsecase_Authenticate_Call {
	return &MockAuthUsecase_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, tokenString)}
}

func (_c *MockAuthUsecase_Authenticate_Call) Run(run func(ctx context.Context, tokenString string)) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAuthUsecase_Authenticate_Call) Return(_a0 uint, _a1 error) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAuthUsecase_Authenticate_Call) RunAndReturn(run func(context.Context, string) (uint, error)) *MockAuthUsecase_Authenticate_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It registers a cleanup that asserts the expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
