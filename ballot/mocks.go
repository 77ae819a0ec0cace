package ballot

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/ballotpaper/go-ballotpaper/contract"
)

// MockcontractAPI is a mock of contractAPI interface.
type MockcontractAPI struct {
	ctrl     *gomock.Controller
	recorder *MockcontractAPIMockRecorder
}

// MockcontractAPIMockRecorder is the mock recorder for MockcontractAPI.
type MockcontractAPIMockRecorder struct {
	mock *MockcontractAPI
}

// NewMockcontractAPI creates a new mock instance.
func NewMockcontractAPI(ctrl *gomock.Controller) *MockcontractAPI {
	mock := &MockcontractAPI{ctrl: ctrl}
	mock.recorder = &MockcontractAPIMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockcontractAPI) EXPECT() *MockcontractAPIMockRecorder {
	return m.recorder
}

// Call mocks base method.
func (m *MockcontractAPI) Call(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Call", ctx, signer, inv)
	ret0, _ := ret[0].(*contract.Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Call indicates an expected call of Call.
func (mr *MockcontractAPIMockRecorder) Call(ctx any, signer any, inv any) *MockcontractAPICallCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Call", reflect.TypeOf((*MockcontractAPI)(nil).Call), ctx, signer, inv)
	return &MockcontractAPICallCall{Call: call}
}

// MockcontractAPICallCall wrap *gomock.Call.
type MockcontractAPICallCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockcontractAPICallCall) Return(arg0 *contract.Receipt, arg1 error) *MockcontractAPICallCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockcontractAPICallCall) Do(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Receipt, error)) *MockcontractAPICallCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockcontractAPICallCall) DoAndReturn(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Receipt, error)) *MockcontractAPICallCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Test mocks base method.
func (m *MockcontractAPI) Test(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Test", ctx, signer, inv)
	ret0, _ := ret[0].(*contract.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Test indicates an expected call of Test.
func (mr *MockcontractAPIMockRecorder) Test(ctx any, signer any, inv any) *MockcontractAPITestCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Test", reflect.TypeOf((*MockcontractAPI)(nil).Test), ctx, signer, inv)
	return &MockcontractAPITestCall{Call: call}
}

// MockcontractAPITestCall wrap *gomock.Call.
type MockcontractAPITestCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockcontractAPITestCall) Return(arg0 *contract.Response, arg1 error) *MockcontractAPITestCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockcontractAPITestCall) Do(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error)) *MockcontractAPITestCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockcontractAPITestCall) DoAndReturn(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error)) *MockcontractAPITestCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
