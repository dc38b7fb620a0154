package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent transfers from one sender must never overdraw the wallet.
// With 1000 in the wallet and 20 transfers of 100 racing, exactly 10
// can succeed and the rest must fail with insufficient funds.
func TestConcurrency_TransfersNeverOverdraw(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "hot-sender", "StrongPass123!")
	app.register(t, "hot-receiver", "StrongPass123!")
	token := app.login(t, "hot-sender", "StrongPass123!")

	senderID := app.userID(t, "hot-sender")
	receiverID := app.userID(t, "hot-receiver")
	app.provisionWallet(t, senderID, token)
	app.provisionWallet(t, receiverID, token)

	code, _ := app.postJSON(t, "/api/v1/wallets/deposit", map[string]interface{}{
		"user_id": senderID.String(),
		"amount":  "1000",
	}, token)
	require.Equal(t, http.StatusOK, code)

	const attempts = 20
	var succeeded, rejected atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, body := app.postJSON(t, "/api/v1/wallets/transfer", map[string]interface{}{
				"sender_user_id":   senderID.String(),
				"receiver_user_id": receiverID.String(),
				"amount":           "100",
			}, token)
			switch code {
			case http.StatusOK:
				succeeded.Add(1)
			case http.StatusBadRequest:
				assert.Equal(t, "WAL_005", body["error_code"])
				rejected.Add(1)
			default:
				t.Errorf("unexpected status %d", code)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), succeeded.Load())
	assert.Equal(t, int64(10), rejected.Load())

	// Sender drained to zero, receiver got everything, nothing lost
	senderWallet, err := app.walletRepo.GetByUserID(context.Background(), senderID)
	require.NoError(t, err)
	receiverWallet, err := app.walletRepo.GetByUserID(context.Background(), receiverID)
	require.NoError(t, err)
	assert.True(t, senderWallet.Balance.IsZero(), "sender balance = %s", senderWallet.Balance)
	assert.True(t, receiverWallet.Balance.Equal(decimal.NewFromInt(1000)),
		"receiver balance = %s", receiverWallet.Balance)

	// One deposit row plus one row per successful transfer
	assert.Equal(t, 11, app.txRepo.count())
}

// Concurrent deposits must all land. No lost updates.
func TestConcurrency_DepositsAllLand(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "saver", "StrongPass123!")
	token := app.login(t, "saver", "StrongPass123!")
	saverID := app.userID(t, "saver")
	app.provisionWallet(t, saverID, token)

	const deposits = 10
	var wg sync.WaitGroup
	for i := 0; i < deposits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := app.postJSON(t, "/api/v1/wallets/deposit", map[string]interface{}{
				"user_id": saverID.String(),
				"amount":  "50",
			}, token)
			assert.Equal(t, http.StatusOK, code)
		}()
	}
	wg.Wait()

	wallet, err := app.walletRepo.GetByUserID(context.Background(), saverID)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(500)),
		"balance = %s", wallet.Balance)
	assert.Equal(t, deposits, app.txRepo.count())
}

// Racing wallet provisioning for the same user creates exactly one wallet.
func TestConcurrency_ProvisionWalletOnce(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "racer", "StrongPass123!")
	token := app.login(t, "racer", "StrongPass123!")
	racerID := app.userID(t, "racer")

	const attempts = 8
	var created, conflicted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, body := app.postJSON(t, "/api/v1/wallets/user/"+racerID.String(), nil, token)
			switch code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusBadRequest:
				assert.Equal(t, "WAL_003", body["error_code"])
				conflicted.Add(1)
			default:
				t.Errorf("unexpected status %d", code)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created.Load())
	assert.Equal(t, int64(attempts-1), conflicted.Load())
}
