package render

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/piggywatt/pgw-cli/internal/adapters/gasreport"
	"github.com/piggywatt/pgw-cli/internal/domain"
	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deployer = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	token    = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	alice    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func init() {
	color.NoColor = true
}

func testnet() *config.Network {
	return &config.Network{
		Name:         "opbnb_testnet",
		ChainID:      5611,
		NativeSymbol: "BNB",
		Explorer:     config.Explorer{BrowserURL: "https://testnet.opbnbscan.com"},
	}
}

// assertInOrder fails unless every fragment appears in out after the previous one
func assertInOrder(t *testing.T, out string, fragments ...string) {
	t.Helper()
	rest := out
	for _, f := range fragments {
		i := strings.Index(rest, f)
		require.GreaterOrEqual(t, i, 0, "missing or out of order: %q\n%s", f, out)
		rest = rest[i+len(f):]
	}
}

func TestDeployRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewDeployRenderer(&buf, testnet())

	r.RenderStart("PiggyWatt")
	err := r.Render(&domain.DeploymentResult{
		Network:         "opbnb_testnet",
		ChainID:         5611,
		NativeSymbol:    "BNB",
		Deployer:        deployer,
		DeployerBalance: big.NewInt(5e17),
		Address:         token,
		TxHash:          common.HexToHash("0xabc"),
		BlockNumber:     42,
		GasUsed:         1_234_567,
		Token:           domain.TokenMetadata{Name: "Piggy Watt", Symbol: "PIGGY"},
		Owner:           deployer,
		VerifyCommand:   "pgw verify --network opbnb_testnet " + token.Hex(),
	})
	require.NoError(t, err)

	assertInOrder(t, buf.String(),
		"Starting PiggyWatt deployment on opbnb_testnet...",
		"Deployer address: "+deployer.Hex(),
		"Deployer balance: 0.5 BNB",
		"✅ Piggy Watt contract deployed successfully!",
		"Contract address: "+token.Hex(),
		"Deployment transaction: "+common.HexToHash("0xabc").Hex(),
		"Network chain ID: 5611",
		"Block: 42 (gas used 1,234,567)",
		"Explorer: https://testnet.opbnbscan.com/address/"+token.Hex(),
		"=== Contract Information ===",
		"Token name: Piggy Watt",
		"Token symbol: PIGGY",
		"Decimal places: 0",
		"Owner: "+deployer.Hex(),
		"=== Contract Verification Command ===",
		"pgw verify --network opbnb_testnet "+token.Hex(),
	)
}

func TestDeployRenderer_UnknownBalanceNoExplorer(t *testing.T) {
	var buf bytes.Buffer
	network := &config.Network{Name: "hardhat", ChainID: 1337, Local: true, NativeSymbol: "ETH"}

	require.NoError(t, NewDeployRenderer(&buf, network).Render(&domain.DeploymentResult{
		ChainID:      1337,
		NativeSymbol: "ETH",
		Address:      token,
	}))

	assert.Contains(t, buf.String(), "Deployer balance: unknown ETH")
	assert.Contains(t, buf.String(), "✅ Token contract deployed successfully!")
	assert.NotContains(t, buf.String(), "Explorer:")
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{
		Current: "opbnb_testnet",
		Networks: []usecase.NetworkStatus{
			{Name: "hardhat", ChainID: 1337, Confirmations: 1, Local: true, HasSigner: true},
			{Name: "opbnb_testnet", ChainID: 5611, Confirmations: 1, ExplorerURL: "https://testnet.opbnbscan.com"},
			{Name: "broken", Error: errors.New("bad rpc")},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	var testnetLine string
	for _, l := range lines {
		if strings.Contains(l, "opbnb_testnet") {
			testnetLine = l
		}
	}
	assert.True(t, strings.HasPrefix(strings.TrimSpace(testnetLine), "*"), testnetLine)
	assert.Contains(t, testnetLine, "5611")
	assert.Contains(t, testnetLine, "✗")
	assert.Contains(t, buf.String(), "hardhat (local)")
	assert.Contains(t, buf.String(), "error: bad rpc")
}

func TestNetworksRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{}))
	assert.Equal(t, "No networks configured\n", buf.String())
}

func TestGasRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewGasRenderer(&buf).Render([]gasreport.OperationGas{
		{Operation: "issuePoints", Calls: 10, Min: 36_000, Max: 53_100, Avg: 37_710, Total: 377_100},
	})
	require.NoError(t, err)

	assertInOrder(t, buf.String(), "=== Gas Report ===", "OPERATION", "issuePoints", "10", "36,000", "53,100", "37,710", "377,100")

	buf.Reset()
	require.NoError(t, NewGasRenderer(&buf).Render(nil))
	assert.Empty(t, buf.String())
}

func TestTokenRenderer_Change(t *testing.T) {
	var buf bytes.Buffer
	err := NewTokenRenderer(&buf).RenderChange(&domain.BalanceChange{
		Operation:        "burn",
		Account:          alice,
		Receipt:          &domain.TxReceipt{Hash: common.HexToHash("0x01"), BlockNumber: 7, GasUsed: 30_000},
		BalanceBefore:    big.NewInt(1000),
		BalanceAfter:     big.NewInt(600),
		TotalSupplyAfter: big.NewInt(600),
	})
	require.NoError(t, err)

	assertInOrder(t, buf.String(),
		"✅ burn confirmed in block 7",
		"Gas used: 30,000",
		"Account: "+alice.Hex(),
		"Balance: 1000 -> 600 (-400)",
		"Total supply: 600",
	)
}

func TestTokenRenderer_IssueSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := &domain.IssuePointsSummary{
		Target:         alice,
		Amount:         big.NewInt(777),
		Count:          2,
		InitialBalance: big.NewInt(0),
		FinalBalance:   big.NewInt(1554),
		TotalSupply:    big.NewInt(1554),
		Steps: []domain.IssueStep{
			{Index: 1, TxHash: common.HexToHash("0x01"), GasUsed: 53_000, BalanceAfter: big.NewInt(777)},
			{Index: 2, TxHash: common.HexToHash("0x02"), GasUsed: 36_000, BalanceAfter: big.NewInt(1554)},
		},
		TotalGas:   89_000,
		AverageGas: 44_500,
	}
	require.NoError(t, NewTokenRenderer(&buf).RenderIssueSummary(summary))

	assertInOrder(t, buf.String(),
		"Issuing 777 points to "+alice.Hex()+", 2 times",
		"[1/2]", "balance 777",
		"[2/2]", "balance 1554",
		"=== Summary ===",
		"Final balance: 1554",
		"Total gas: 89,000",
		"Average gas per issue: 44,500",
	)
	assert.NotContains(t, buf.String(), "[batch]")
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+5", signed("5"))
	assert.Equal(t, "-5", signed("-5"))
	assert.Equal(t, "+0", signed("0"))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ No contract code at address", FormatError("inspect failed: no contract code at address"))
}
