// Package schedulermock has testify mocks for the scheduler package interfaces.
package schedulermock

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/slok/checkmycrypto/internal/scheduler"
)

// MockScheduler is a mock type for the scheduler.Scheduler type.
type MockScheduler struct {
	mock.Mock
}

// After provides a mock function with given fields: d, fn.
func (_m *MockScheduler) After(d time.Duration, fn func()) scheduler.Handle {
	ret := _m.Called(d, fn)

	if rf, ok := ret.Get(0).(func(time.Duration, func()) scheduler.Handle); ok {
		return rf(d, fn)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(scheduler.Handle)
}

// Every provides a mock function with given fields: d, fn.
func (_m *MockScheduler) Every(d time.Duration, fn func()) scheduler.Handle {
	ret := _m.Called(d, fn)

	if rf, ok := ret.Get(0).(func(time.Duration, func()) scheduler.Handle); ok {
		return rf(d, fn)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(scheduler.Handle)
}

// MockHandle is a mock type for the scheduler.Handle type.
type MockHandle struct {
	mock.Mock
}

// Cancel provides a mock function with no fields.
func (_m *MockHandle) Cancel() {
	_m.Called()
}
