package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
)

var (
	ownerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	aliceAddr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bobAddr   = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	tokenAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	deployTx  = common.HexToHash("0x01")
)

// mockCompiler

type mockCompiler struct {
	err    error
	builds int
}

func (m *mockCompiler) Build(ctx context.Context) error {
	m.builds++
	return m.err
}

// mockArtifacts

type mockArtifacts struct {
	artifact *domain.Artifact
	err      error
}

func (m *mockArtifacts) LoadArtifact(ctx context.Context, name string) (*domain.Artifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.artifact != nil {
		return m.artifact, nil
	}
	return &domain.Artifact{Name: name, Bytecode: []byte{0x60, 0x80}}, nil
}

// mockSigner

type mockSigner struct {
	address common.Address
}

func (m *mockSigner) Address() common.Address { return m.address }

func (m *mockSigner) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{From: m.address, Context: ctx}, nil
}

type mockSignerResolver struct {
	signer Signer
	err    error
	calls  int
}

func (m *mockSignerResolver) ResolveSigner(ctx context.Context, network *config.Network) (Signer, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.signer != nil {
		return m.signer, nil
	}
	return &mockSigner{address: ownerAddr}, nil
}

// mockLedger is an in-memory PiggyWatt: owner-only mint, burn and issue, decimals 0

type mockLedger struct {
	mu       sync.Mutex
	owner    common.Address
	balances map[common.Address]*big.Int
	supply   *big.Int
	block    uint64
	gas      uint64

	// failRead makes the named view method return an error
	failRead   string
	// dropEvents omits Transfer events from receipts
	dropEvents bool
	// skew is added to every credited balance without changing the emitted event
	skew       int64
}

func newMockLedger(owner common.Address) *mockLedger {
	return &mockLedger{
		owner:    owner,
		balances: map[common.Address]*big.Int{},
		supply:   new(big.Int),
		gas:      50_000,
	}
}

func (l *mockLedger) balance(a common.Address) *big.Int {
	if b, ok := l.balances[a]; ok {
		return b
	}
	return new(big.Int)
}

func (l *mockLedger) credit(to common.Address, amount *big.Int) {
	credited := new(big.Int).Add(amount, big.NewInt(l.skew))
	l.balances[to] = new(big.Int).Add(l.balance(to), credited)
	l.supply = new(big.Int).Add(l.supply, credited)
}

func (l *mockLedger) receipt(transfers ...domain.Transfer) *domain.TxReceipt {
	l.block++
	if l.dropEvents {
		transfers = nil
	}
	return &domain.TxReceipt{
		Hash:        common.BigToHash(new(big.Int).SetUint64(l.block + 0x100)),
		BlockNumber: l.block,
		GasUsed:     l.gas,
		Transfers:   transfers,
	}
}

var errNotOwner = errors.New("execution reverted: Ownable: caller is not the owner")

type mockToken struct {
	ledger  *mockLedger
	address common.Address
	caller  common.Address
}

func (m *mockToken) Address() common.Address { return m.address }

func (m *mockToken) read(method string) error {
	if m.ledger.failRead == method {
		return fmt.Errorf("%s: execution reverted", method)
	}
	return nil
}

func (m *mockToken) Name(ctx context.Context) (string, error) {
	return "Piggy Watt", m.read("name")
}

func (m *mockToken) Symbol(ctx context.Context) (string, error) {
	return "PIGGY", m.read("symbol")
}

func (m *mockToken) Decimals(ctx context.Context) (uint8, error) {
	return 0, m.read("decimals")
}

func (m *mockToken) Owner(ctx context.Context) (common.Address, error) {
	return m.ledger.owner, m.read("owner")
}

func (m *mockToken) TotalSupply(ctx context.Context) (*big.Int, error) {
	m.ledger.mu.Lock()
	defer m.ledger.mu.Unlock()
	return new(big.Int).Set(m.ledger.supply), m.read("totalSupply")
}

func (m *mockToken) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	m.ledger.mu.Lock()
	defer m.ledger.mu.Unlock()
	return new(big.Int).Set(m.ledger.balance(account)), m.read("balanceOf")
}

func (m *mockToken) Mint(ctx context.Context, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	return m.issue(to, amount)
}

func (m *mockToken) IssuePoints(ctx context.Context, to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	return m.issue(to, amount)
}

func (m *mockToken) issue(to common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	m.ledger.mu.Lock()
	defer m.ledger.mu.Unlock()
	if m.caller != m.ledger.owner {
		return nil, errNotOwner
	}
	m.ledger.credit(to, amount)
	return m.ledger.receipt(domain.Transfer{To: to, Value: new(big.Int).Set(amount)}), nil
}

func (m *mockToken) Burn(ctx context.Context, from common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	m.ledger.mu.Lock()
	defer m.ledger.mu.Unlock()
	if m.caller != m.ledger.owner {
		return nil, errNotOwner
	}
	if m.ledger.balance(from).Cmp(amount) < 0 {
		return nil, errors.New("execution reverted: ERC20: burn amount exceeds balance")
	}
	m.ledger.balances[from] = new(big.Int).Sub(m.ledger.balance(from), amount)
	m.ledger.supply = new(big.Int).Sub(m.ledger.supply, amount)
	return m.ledger.receipt(domain.Transfer{From: from, Value: new(big.Int).Set(amount)}), nil
}

func (m *mockToken) BatchIssuePoints(ctx context.Context, recipients []common.Address, amounts []*big.Int) (*domain.TxReceipt, error) {
	m.ledger.mu.Lock()
	defer m.ledger.mu.Unlock()
	if m.caller != m.ledger.owner {
		return nil, errNotOwner
	}
	if len(recipients) != len(amounts) {
		return nil, errors.New("execution reverted: length mismatch")
	}
	transfers := make([]domain.Transfer, 0, len(recipients))
	for i, to := range recipients {
		m.ledger.credit(to, amounts[i])
		transfers = append(transfers, domain.Transfer{To: to, Value: new(big.Int).Set(amounts[i])})
	}
	return m.ledger.receipt(transfers...), nil
}

// mockClient

type mockClient struct {
	chainID    uint64
	ledger     *mockLedger
	balance    *big.Int
	balanceErr error
	code       []byte
	deployErr  error
	waitErr    error
	closed     bool

	deployed      int
	confirmations uint64
}

func newMockClient(chainID uint64) *mockClient {
	return &mockClient{
		chainID: chainID,
		ledger:  newMockLedger(ownerAddr),
		balance: big.NewInt(5e17),
		code:    []byte{0x60, 0x80},
	}
}

func (m *mockClient) ChainID() uint64 { return m.chainID }

func (m *mockClient) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	if m.balanceErr != nil {
		return nil, m.balanceErr
	}
	return m.balance, nil
}

func (m *mockClient) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return m.code, nil
}

func (m *mockClient) Deploy(ctx context.Context, signer Signer, artifact *domain.Artifact) (common.Address, common.Hash, error) {
	if m.deployErr != nil {
		return common.Address{}, common.Hash{}, m.deployErr
	}
	m.deployed++
	m.ledger.owner = signer.Address()
	return tokenAddr, deployTx, nil
}

func (m *mockClient) WaitForConfirmations(ctx context.Context, txHash common.Hash, confirmations uint64) (*domain.TxReceipt, error) {
	m.confirmations = confirmations
	if m.waitErr != nil {
		return nil, m.waitErr
	}
	return &domain.TxReceipt{Hash: txHash, BlockNumber: 1, GasUsed: 1_234_567}, nil
}

func (m *mockClient) Token(address common.Address, signer Signer) TokenContract {
	t := &mockToken{ledger: m.ledger, address: address}
	if signer != nil {
		t.caller = signer.Address()
	}
	return t
}

func (m *mockClient) Close() { m.closed = true }

type mockConnector struct {
	client *mockClient
	err    error
	calls  int
}

func (m *mockConnector) Connect(ctx context.Context, network *config.Network) (ChainClient, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.client, nil
}

// mockConfirmer

type mockConfirmer struct {
	answer bool
	err    error
	asked  int

	// progress, when set, is sampled at prompt time
	progress         *recordingProgress
	spinningAtPrompt bool
}

func (m *mockConfirmer) ConfirmDeployment(ctx context.Context, req *domain.DeploymentRequest, balance *big.Int) (bool, error) {
	m.asked++
	if m.progress != nil {
		m.spinningAtPrompt = m.progress.spinning
	}
	return m.answer, m.err
}

// recordingGas

type recordingGas struct {
	ops []string
	gas []uint64
}

func (r *recordingGas) Record(operation string, gasUsed uint64) {
	r.ops = append(r.ops, operation)
	r.gas = append(r.gas, gasUsed)
}

// recordingProgress

type recordingProgress struct {
	NopProgress
	stages   []ExecutionStage
	spinning bool
}

func (r *recordingProgress) OnProgress(ctx context.Context, event ProgressEvent) {
	r.stages = append(r.stages, event.Stage)
	r.spinning = event.Spinner && event.Stage != StageCompleted
}

func testNetwork(name string) *config.Network {
	switch name {
	case "opbnb_mainnet":
		return &config.Network{
			Name: name, ChainID: 204, Confirmations: 2, Mainnet: true, NativeSymbol: "BNB",
			Accounts: []string{"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"},
			Explorer: config.Explorer{Name: "opBNB", APIURL: "https://api-opbnb.bscscan.com/api", APIKey: "key"},
		}
	case "opbnb_testnet":
		return &config.Network{
			Name: name, ChainID: 5611, Confirmations: 1, NativeSymbol: "BNB",
			Accounts: []string{"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"},
			Explorer: config.Explorer{Name: "opBNBTestnet", APIURL: "https://api-opbnb-testnet.bscscan.com/api", APIKey: "key"},
		}
	default:
		return &config.Network{
			Name: "hardhat", ChainID: 1337, Confirmations: 1, Local: true, NativeSymbol: "ETH",
			Accounts: []string{"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"},
		}
	}
}
