package contract

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

// MockNode is a mock of Node interface.
type MockNode struct {
	ctrl     *gomock.Controller
	recorder *MockNodeMockRecorder
}

// MockNodeMockRecorder is the mock recorder for MockNode.
type MockNodeMockRecorder struct {
	mock *MockNode
}

// NewMockNode creates a new mock instance.
func NewMockNode(ctrl *gomock.Controller) *MockNode {
	mock := &MockNode{ctrl: ctrl}
	mock.recorder = &MockNodeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNode) EXPECT() *MockNodeMockRecorder {
	return m.recorder
}

// ContractCode mocks base method.
func (m *MockNode) ContractCode(ctx context.Context, id types.AccountID) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ContractCode", ctx, id)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ContractCode indicates an expected call of ContractCode.
func (mr *MockNodeMockRecorder) ContractCode(ctx any, id any) *MockNodeContractCodeCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ContractCode", reflect.TypeOf((*MockNode)(nil).ContractCode), ctx, id)
	return &MockNodeContractCodeCall{Call: call}
}

// MockNodeContractCodeCall wrap *gomock.Call.
type MockNodeContractCodeCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockNodeContractCodeCall) Return(arg0 []byte, arg1 error) *MockNodeContractCodeCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockNodeContractCodeCall) Do(f func(context.Context, types.AccountID) ([]byte, error)) *MockNodeContractCodeCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockNodeContractCodeCall) DoAndReturn(f func(context.Context, types.AccountID) ([]byte, error)) *MockNodeContractCodeCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetAccount mocks base method.
func (m *MockNode) GetAccount(ctx context.Context, id types.AccountID) (*types.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", ctx, id)
	ret0, _ := ret[0].(*types.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockNodeMockRecorder) GetAccount(ctx any, id any) *MockNodeGetAccountCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockNode)(nil).GetAccount), ctx, id)
	return &MockNodeGetAccountCall{Call: call}
}

// MockNodeGetAccountCall wrap *gomock.Call.
type MockNodeGetAccountCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockNodeGetAccountCall) Return(arg0 *types.Account, arg1 error) *MockNodeGetAccountCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockNodeGetAccountCall) Do(f func(context.Context, types.AccountID) (*types.Account, error)) *MockNodeGetAccountCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockNodeGetAccountCall) DoAndReturn(f func(context.Context, types.AccountID) (*types.Account, error)) *MockNodeGetAccountCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Query mocks base method.
func (m *MockNode) Query(ctx context.Context, contract types.AccountID, req client.QueryRequest) (*client.QueryResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Query", ctx, contract, req)
	ret0, _ := ret[0].(*client.QueryResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Query indicates an expected call of Query.
func (mr *MockNodeMockRecorder) Query(ctx any, contract any, req any) *MockNodeQueryCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Query", reflect.TypeOf((*MockNode)(nil).Query), ctx, contract, req)
	return &MockNodeQueryCall{Call: call}
}

// MockNodeQueryCall wrap *gomock.Call.
type MockNodeQueryCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockNodeQueryCall) Return(arg0 *client.QueryResponse, arg1 error) *MockNodeQueryCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockNodeQueryCall) Do(f func(context.Context, types.AccountID, client.QueryRequest) (*client.QueryResponse, error)) *MockNodeQueryCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockNodeQueryCall) DoAndReturn(f func(context.Context, types.AccountID, client.QueryRequest) (*client.QueryResponse, error)) *MockNodeQueryCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// SendTransaction mocks base method.
func (m *MockNode) SendTransaction(ctx context.Context, tx client.Transaction) (*client.TxReceipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendTransaction", ctx, tx)
	ret0, _ := ret[0].(*client.TxReceipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendTransaction indicates an expected call of SendTransaction.
func (mr *MockNodeMockRecorder) SendTransaction(ctx any, tx any) *MockNodeSendTransactionCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendTransaction", reflect.TypeOf((*MockNode)(nil).SendTransaction), ctx, tx)
	return &MockNodeSendTransactionCall{Call: call}
}

// MockNodeSendTransactionCall wrap *gomock.Call.
type MockNodeSendTransactionCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockNodeSendTransactionCall) Return(arg0 *client.TxReceipt, arg1 error) *MockNodeSendTransactionCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockNodeSendTransactionCall) Do(f func(context.Context, client.Transaction) (*client.TxReceipt, error)) *MockNodeSendTransactionCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockNodeSendTransactionCall) DoAndReturn(f func(context.Context, client.Transaction) (*client.TxReceipt, error)) *MockNodeSendTransactionCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// MockSigner is a mock of Signer interface.
type MockSigner struct {
	ctrl     *gomock.Controller
	recorder *MockSignerMockRecorder
}

// MockSignerMockRecorder is the mock recorder for MockSigner.
type MockSignerMockRecorder struct {
	mock *MockSigner
}

// NewMockSigner creates a new mock instance.
func NewMockSigner(ctrl *gomock.Controller) *MockSigner {
	mock := &MockSigner{ctrl: ctrl}
	mock.recorder = &MockSignerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSigner) EXPECT() *MockSignerMockRecorder {
	return m.recorder
}

// AccountID mocks base method.
func (m *MockSigner) AccountID() types.AccountID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountID")
	ret0, _ := ret[0].(types.AccountID)
	return ret0
}

// AccountID indicates an expected call of AccountID.
func (mr *MockSignerMockRecorder) AccountID() *MockSignerAccountIDCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountID", reflect.TypeOf((*MockSigner)(nil).AccountID))
	return &MockSignerAccountIDCall{Call: call}
}

// MockSignerAccountIDCall wrap *gomock.Call.
type MockSignerAccountIDCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockSignerAccountIDCall) Return(arg0 types.AccountID) *MockSignerAccountIDCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockSignerAccountIDCall) Do(f func() types.AccountID) *MockSignerAccountIDCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockSignerAccountIDCall) DoAndReturn(f func() types.AccountID) *MockSignerAccountIDCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Sign mocks base method.
func (m *MockSigner) Sign(d signing.Domain, m_2 []byte) types.EdSignature {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sign", d, m_2)
	ret0, _ := ret[0].(types.EdSignature)
	return ret0
}

// Sign indicates an expected call of Sign.
func (mr *MockSignerMockRecorder) Sign(d any, m_2 any) *MockSignerSignCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockSigner)(nil).Sign), d, m_2)
	return &MockSignerSignCall{Call: call}
}

// MockSignerSignCall wrap *gomock.Call.
type MockSignerSignCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockSignerSignCall) Return(arg0 types.EdSignature) *MockSignerSignCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockSignerSignCall) Do(f func(signing.Domain, []byte) types.EdSignature) *MockSignerSignCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockSignerSignCall) DoAndReturn(f func(signing.Domain, []byte) types.EdSignature) *MockSignerSignCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
