package session

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
)

// MockClient is a mock of Client interface.
type MockClient struct {
	ctrl     *gomock.Controller
	recorder *MockClientMockRecorder
}

// MockClientMockRecorder is the mock recorder for MockClient.
type MockClientMockRecorder struct {
	mock *MockClient
}

// NewMockClient creates a new mock instance.
func NewMockClient(ctrl *gomock.Controller) *MockClient {
	mock := &MockClient{ctrl: ctrl}
	mock.recorder = &MockClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClient) EXPECT() *MockClientMockRecorder {
	return m.recorder
}

// ContractCode mocks base method.
func (m *MockClient) ContractCode(ctx context.Context, id types.AccountID) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ContractCode", ctx, id)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ContractCode indicates an expected call of ContractCode.
func (mr *MockClientMockRecorder) ContractCode(ctx any, id any) *MockClientContractCodeCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ContractCode", reflect.TypeOf((*MockClient)(nil).ContractCode), ctx, id)
	return &MockClientContractCodeCall{Call: call}
}

// MockClientContractCodeCall wrap *gomock.Call.
type MockClientContractCodeCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockClientContractCodeCall) Return(arg0 []byte, arg1 error) *MockClientContractCodeCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockClientContractCodeCall) Do(f func(context.Context, types.AccountID) ([]byte, error)) *MockClientContractCodeCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockClientContractCodeCall) DoAndReturn(f func(context.Context, types.AccountID) ([]byte, error)) *MockClientContractCodeCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// GetAccount mocks base method.
func (m *MockClient) GetAccount(ctx context.Context, id types.AccountID) (*types.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", ctx, id)
	ret0, _ := ret[0].(*types.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockClientMockRecorder) GetAccount(ctx any, id any) *MockClientGetAccountCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockClient)(nil).GetAccount), ctx, id)
	return &MockClientGetAccountCall{Call: call}
}

// MockClientGetAccountCall wrap *gomock.Call.
type MockClientGetAccountCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockClientGetAccountCall) Return(arg0 *types.Account, arg1 error) *MockClientGetAccountCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockClientGetAccountCall) Do(f func(context.Context, types.AccountID) (*types.Account, error)) *MockClientGetAccountCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockClientGetAccountCall) DoAndReturn(f func(context.Context, types.AccountID) (*types.Account, error)) *MockClientGetAccountCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// PollAccounts mocks base method.
func (m *MockClient) PollAccounts(ctx context.Context, id types.AccountID, handlers client.AccountHandlers) (client.Subscription, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PollAccounts", ctx, id, handlers)
	ret0, _ := ret[0].(client.Subscription)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PollAccounts indicates an expected call of PollAccounts.
func (mr *MockClientMockRecorder) PollAccounts(ctx any, id any, handlers any) *MockClientPollAccountsCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PollAccounts", reflect.TypeOf((*MockClient)(nil).PollAccounts), ctx, id, handlers)
	return &MockClientPollAccountsCall{Call: call}
}

// MockClientPollAccountsCall wrap *gomock.Call.
type MockClientPollAccountsCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockClientPollAccountsCall) Return(arg0 client.Subscription, arg1 error) *MockClientPollAccountsCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockClientPollAccountsCall) Do(f func(context.Context, types.AccountID, client.AccountHandlers) (client.Subscription, error)) *MockClientPollAccountsCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockClientPollAccountsCall) DoAndReturn(f func(context.Context, types.AccountID, client.AccountHandlers) (client.Subscription, error)) *MockClientPollAccountsCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// PollConsensus mocks base method.
func (m *MockClient) PollConsensus(ctx context.Context, handlers client.ConsensusHandlers) (client.Subscription, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PollConsensus", ctx, handlers)
	ret0, _ := ret[0].(client.Subscription)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PollConsensus indicates an expected call of PollConsensus.
func (mr *MockClientMockRecorder) PollConsensus(ctx any, handlers any) *MockClientPollConsensusCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PollConsensus", reflect.TypeOf((*MockClient)(nil).PollConsensus), ctx, handlers)
	return &MockClientPollConsensusCall{Call: call}
}

// MockClientPollConsensusCall wrap *gomock.Call.
type MockClientPollConsensusCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockClientPollConsensusCall) Return(arg0 client.Subscription, arg1 error) *MockClientPollConsensusCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockClientPollConsensusCall) Do(f func(context.Context, client.ConsensusHandlers) (client.Subscription, error)) *MockClientPollConsensusCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockClientPollConsensusCall) DoAndReturn(f func(context.Context, client.ConsensusHandlers) (client.Subscription, error)) *MockClientPollConsensusCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Query mocks base method.
func (m *MockClient) Query(ctx context.Context, contract types.AccountID, req client.QueryRequest) (*client.QueryResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Query", ctx, contract, req)
	ret0, _ := ret[0].(*client.QueryResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Query indicates an expected call of Query.
func (mr *MockClientMockRecorder) Query(ctx any, contract any, req any) *MockClientQueryCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Query", reflect.TypeOf((*MockClient)(nil).Query), ctx, contract, req)
	return &MockClientQueryCall{Call: call}
}

// MockClientQueryCall wrap *gomock.Call.
type MockClientQueryCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockClientQueryCall) Return(arg0 *client.QueryResponse, arg1 error) *MockClientQueryCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockClientQueryCall) Do(f func(context.Context, types.AccountID, client.QueryRequest) (*client.QueryResponse, error)) *MockClientQueryCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockClientQueryCall) DoAndReturn(f func(context.Context, types.AccountID, client.QueryRequest) (*client.QueryResponse, error)) *MockClientQueryCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// SendTransaction mocks base method.
func (m *MockClient) SendTransaction(ctx context.Context, tx client.Transaction) (*client.TxReceipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendTransaction", ctx, tx)
	ret0, _ := ret[0].(*client.TxReceipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendTransaction indicates an expected call of SendTransaction.
func (mr *MockClientMockRecorder) SendTransaction(ctx any, tx any) *MockClientSendTransactionCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendTransaction", reflect.TypeOf((*MockClient)(nil).SendTransaction), ctx, tx)
	return &MockClientSendTransactionCall{Call: call}
}

// MockClientSendTransactionCall wrap *gomock.Call.
type MockClientSendTransactionCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockClientSendTransactionCall) Return(arg0 *client.TxReceipt, arg1 error) *MockClientSendTransactionCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockClientSendTransactionCall) Do(f func(context.Context, client.Transaction) (*client.TxReceipt, error)) *MockClientSendTransactionCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockClientSendTransactionCall) DoAndReturn(f func(context.Context, client.Transaction) (*client.TxReceipt, error)) *MockClientSendTransactionCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// MockContract is a mock of Contract interface.
type MockContract struct {
	ctrl     *gomock.Controller
	recorder *MockContractMockRecorder
}

// MockContractMockRecorder is the mock recorder for MockContract.
type MockContractMockRecorder struct {
	mock *MockContract
}

// NewMockContract creates a new mock instance.
func NewMockContract(ctrl *gomock.Controller) *MockContract {
	mock := &MockContract{ctrl: ctrl}
	mock.recorder = &MockContractMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContract) EXPECT() *MockContractMockRecorder {
	return m.recorder
}

// Call mocks base method.
func (m *MockContract) Call(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Call", ctx, signer, inv)
	ret0, _ := ret[0].(*contract.Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Call indicates an expected call of Call.
func (mr *MockContractMockRecorder) Call(ctx any, signer any, inv any) *MockContractCallCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Call", reflect.TypeOf((*MockContract)(nil).Call), ctx, signer, inv)
	return &MockContractCallCall{Call: call}
}

// MockContractCallCall wrap *gomock.Call.
type MockContractCallCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockContractCallCall) Return(arg0 *contract.Receipt, arg1 error) *MockContractCallCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockContractCallCall) Do(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Receipt, error)) *MockContractCallCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockContractCallCall) DoAndReturn(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Receipt, error)) *MockContractCallCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Init mocks base method.
func (m *MockContract) Init(ctx context.Context) (*types.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Init", ctx)
	ret0, _ := ret[0].(*types.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Init indicates an expected call of Init.
func (mr *MockContractMockRecorder) Init(ctx any) *MockContractInitCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Init", reflect.TypeOf((*MockContract)(nil).Init), ctx)
	return &MockContractInitCall{Call: call}
}

// MockContractInitCall wrap *gomock.Call.
type MockContractInitCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockContractInitCall) Return(arg0 *types.Account, arg1 error) *MockContractInitCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockContractInitCall) Do(f func(context.Context) (*types.Account, error)) *MockContractInitCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockContractInitCall) DoAndReturn(f func(context.Context) (*types.Account, error)) *MockContractInitCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Query mocks base method.
func (m *MockContract) Query(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Query", ctx, signer, inv)
	ret0, _ := ret[0].(*contract.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Query indicates an expected call of Query.
func (mr *MockContractMockRecorder) Query(ctx any, signer any, inv any) *MockContractQueryCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Query", reflect.TypeOf((*MockContract)(nil).Query), ctx, signer, inv)
	return &MockContractQueryCall{Call: call}
}

// MockContractQueryCall wrap *gomock.Call.
type MockContractQueryCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockContractQueryCall) Return(arg0 *contract.Response, arg1 error) *MockContractQueryCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockContractQueryCall) Do(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error)) *MockContractQueryCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockContractQueryCall) DoAndReturn(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error)) *MockContractQueryCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Refresh mocks base method.
func (m *MockContract) Refresh(ctx context.Context) (*types.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Refresh", ctx)
	ret0, _ := ret[0].(*types.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Refresh indicates an expected call of Refresh.
func (mr *MockContractMockRecorder) Refresh(ctx any) *MockContractRefreshCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Refresh", reflect.TypeOf((*MockContract)(nil).Refresh), ctx)
	return &MockContractRefreshCall{Call: call}
}

// MockContractRefreshCall wrap *gomock.Call.
type MockContractRefreshCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockContractRefreshCall) Return(arg0 *types.Account, arg1 error) *MockContractRefreshCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockContractRefreshCall) Do(f func(context.Context) (*types.Account, error)) *MockContractRefreshCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockContractRefreshCall) DoAndReturn(f func(context.Context) (*types.Account, error)) *MockContractRefreshCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Test mocks base method.
func (m *MockContract) Test(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Test", ctx, signer, inv)
	ret0, _ := ret[0].(*contract.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Test indicates an expected call of Test.
func (mr *MockContractMockRecorder) Test(ctx any, signer any, inv any) *MockContractTestCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Test", reflect.TypeOf((*MockContract)(nil).Test), ctx, signer, inv)
	return &MockContractTestCall{Call: call}
}

// MockContractTestCall wrap *gomock.Call.
type MockContractTestCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockContractTestCall) Return(arg0 *contract.Response, arg1 error) *MockContractTestCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockContractTestCall) Do(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error)) *MockContractTestCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockContractTestCall) DoAndReturn(f func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error)) *MockContractTestCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
