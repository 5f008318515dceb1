package service

import (
	"time"

	"holocron/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// GenerateAccessToken provides a mock function with given fields: userID
func (_m *MockTokenService) GenerateAccessToken(userID uint) (string, time.Time, error) {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateAccessToken")
	}

	if rf, ok := ret.Get(0).(func(uint) (string, time.Time, error)); ok {
		return rf(userID)
	}

	r0 := ret.Get(0).(string)
	var r1 time.Time
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(time.Time)
	}
	r2 := ret.Error(2)

	return r0, r1, r2
}

// MockTokenService_GenerateAccessToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateAccessToken'
type MockTokenService_GenerateAccessToken_Call struct {
	*mock.Call
}

// GenerateAccessToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) GenerateAccessToken(userID any) *MockTokenService_GenerateAccessToken_Call {
	return &MockTokenService_GenerateAccessToken_Call{Call: _e.mock.On("GenerateAccessToken", userID)}
}

func (_c *MockTokenService_GenerateAccessToken_Call) Run(run func(userID uint)) *MockTokenService_GenerateAccessToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uint))
	})

	return _c
}

func (_c *MockTokenService_GenerateAccessToken_Call) Return(_a0 string, _a1 time.Time, _a2 error) *MockTokenService_GenerateAccessToken_Call {
	_c.Call.Return(_a0, _a1, _a2)

	return _c
}

func (_c *MockTokenService_GenerateAccessToken_Call) RunAndReturn(run func(uint) (string, time.Time, error)) *MockTokenService_GenerateAccessToken_Call {
	_c.Call.Return(run)

	return _c
}

// ValidateToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for ValidateToken")
	}

	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(tokenString)
	}

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// MockTokenService_ValidateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateToken'
type MockTokenService_ValidateToken_Call struct {
	*mock.Call
}

// ValidateToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) ValidateToken(tokenString any) *MockTokenService_ValidateToken_Call {
	return &MockTokenService_ValidateToken_Call{Call: _e.mock.On("ValidateToken", tokenString)}
}

func (_c *MockTokenService_ValidateToken_Call) Run(run func(tokenString string)) *MockTokenService_ValidateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_ValidateToken_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_ValidateToken_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It registers a cleanup that asserts the expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
